package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// livePayload is a backend document with both languages populated.
const livePayload = `{
  "success": true,
  "data": {
    "personal_info": {
      "name": "Ana Souza",
      "title": {"pt": "Engenheira de Software", "en": "Software Engineer"},
      "description": {"pt": "Construo APIs", "en": "I build APIs"},
      "location": {"pt": "Lisboa", "en": "Lisbon"},
      "contact": {"email": "ana@example.com", "linkedin": "https://linkedin.com/in/ana", "github": "https://github.com/ana"}
    },
    "skills": [
      {"_id": "s1", "category": {"pt": "Linguagens", "en": "Languages"}, "technologies": ["Go", "SQL"], "order": 1, "is_active": true}
    ],
    "projects": [
      {"id": 7, "title": {"pt": "Painel", "en": "Dashboard"}, "description": "Metrics dashboard", "technologies": ["Go"], "status": "completed", "featured": true}
    ],
    "goals": [{"_id": "g1", "goal": {"pt": "Aprender Rust", "en": "Learn Rust"}}],
    "current_learning": [{"_id": "c1", "item": "Kubernetes"}]
  }
}`

// looseTypedPayload carries members of unexpected JSON types that the
// view-model either never reads or treats as absent.
const looseTypedPayload = `{
  "success": "true",
  "data": {
    "personal_info": {"name": "Ana Souza", "title": {"en": "Software Engineer"}, "location": 42, "contact": {"email": "ana@example.com", "github": false}},
    "skills": [{"_id": "s1", "category": {"pt": "Linguagens", "en": "Languages"}, "technologies": ["Go", 7], "order": "1", "is_active": 1}],
    "projects": [{"id": "7", "title": {"en": "Dashboard"}, "technologies": "Go", "featured": "true", "order": null}],
    "goals": [{"goal": {"en": "Learn Rust"}, "order": "first", "is_active": "yes"}],
    "education": {"not": "a list"}
  }
}`

// doGet sends a GET request to path.
func doGet(t *testing.T, env *testEnv, path string) *http.Response {
	t.Helper()
	return doRequest(t, env, http.MethodGet, path)
}

// doPost sends an empty-bodied POST request to path.
func doPost(t *testing.T, env *testEnv, path string) *http.Response {
	t.Helper()
	return doRequest(t, env, http.MethodPost, path)
}

func doRequest(t *testing.T, env *testEnv, method, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, env.baseURL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-E2E-Test", "true")

	resp, err := env.httpClient.Do(req)
	require.NoError(t, err)
	t.Logf("%s %s -> %d", method, path, resp.StatusCode)
	return resp
}

// decodeJSON reads and closes the body into T.
func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// readBody reads and closes the body.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// assertStatus fails unless resp has the expected status code.
func assertStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body := readBody(t, resp)
		t.Fatalf("expected status %d, got %d: %s", want, resp.StatusCode, strings.TrimSpace(body))
	}
}

// pollUntil calls check every interval until it returns true or timeout
// elapses.
func pollUntil(t *testing.T, timeout, interval time.Duration, check func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if check() {
			return
		}
		time.Sleep(interval)
	}
	t.Fatalf("condition not met within %s", timeout)
}

// Response shapes as seen by a front end.

type portfolioBody struct {
	Loading  bool    `json:"loading"`
	Error    *string `json:"error"`
	IsOnline bool    `json:"isOnline"`
	Source   string  `json:"source"`
	Data     *struct {
		PT contentBody `json:"pt"`
		EN contentBody `json:"en"`
	} `json:"data"`
}

type contentBody struct {
	PersonalInfo struct {
		Name     string `json:"name"`
		Title    string `json:"title"`
		Location string `json:"location"`
	} `json:"personalInfo"`
	Contact struct {
		Email string `json:"email"`
	} `json:"contact"`
	Skills []struct {
		Category     string   `json:"category"`
		Technologies []string `json:"technologies"`
	} `json:"skills"`
	Projects []struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Status string `json:"status"`
	} `json:"projects"`
	Goals           []string `json:"goals"`
	CurrentLearning []string `json:"currentLearning"`
	Education       []struct {
		Institution string `json:"institution"`
	} `json:"education"`
}

type langBody struct {
	Lang     string      `json:"lang"`
	IsOnline bool        `json:"isOnline"`
	Source   string      `json:"source"`
	Data     contentBody `json:"data"`
}

type statusBody struct {
	Loading     bool       `json:"loading"`
	Error       *string    `json:"error"`
	IsOnline    bool       `json:"isOnline"`
	Source      string     `json:"source"`
	Attempt     uint64     `json:"attempt"`
	CompletedAt *time.Time `json:"completedAt"`
	Notice      *struct {
		Online       bool   `json:"online"`
		Title        string `json:"title"`
		Badge        string `json:"badge"`
		DetailsLabel string `json:"detailsLabel"`
		Detail       string `json:"detail"`
	} `json:"notice"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
