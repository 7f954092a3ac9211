// Package client is the Go SDK for the portfolio REST API.  Every public call
// folds its outcome into a Result; transport failures, timeouts and non-2xx
// statuses never escape as Go errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/DevFolio/pkg/errors"
	"github.com/turtacn/DevFolio/pkg/types/portfolio"
)

const Version = "0.1.0"

// DefaultTimeout bounds every call independently.
const DefaultTimeout = 10 * time.Second

// DefaultMaxResponseBytes caps how much of a response body is read.
const DefaultMaxResponseBytes int64 = 8 << 20

// Logger defines the logging interface used by the Client
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...interface{}) {}
func (noopLogger) Infof(format string, args ...interface{})  {}
func (noopLogger) Errorf(format string, args ...interface{}) {}

// Client talks to {origin}/api.
type Client struct {
	origin     string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxBody    int64
	userAgent  string
	logger     Logger
	observers  []Observer

	personalInfo     *PersonalInfoClient
	personalInfoOnce sync.Once
	skills           *SkillsClient
	skillsOnce       sync.Once
	education        *EducationClient
	educationOnce    sync.Once
	projects         *ProjectsClient
	projectsOnce     sync.Once
	goals            *GoalsClient
	goalsOnce        sync.Once
	learning         *CurrentLearningClient
	learningOnce     sync.Once
}

// NewClient creates a client for the backend at origin.  The origin must be
// an absolute http or https URL; anything else is a configuration error
// reported before any request is attempted.
func NewClient(origin string, opts ...Option) (*Client, error) {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return nil, errors.InvalidConfig("backend origin is required")
	}
	parsed, err := url.Parse(origin)
	if err != nil {
		return nil, errors.InvalidConfig(fmt.Sprintf("invalid backend origin: %v", err))
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.InvalidConfig("backend origin scheme must be http or https")
	}
	if parsed.Host == "" {
		return nil, errors.InvalidConfig("backend origin has no host")
	}

	origin = strings.TrimSuffix(origin, "/")
	c := &Client{
		origin:     origin,
		baseURL:    origin + "/api",
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		maxBody:    DefaultMaxResponseBytes,
		userAgent:  fmt.Sprintf("devfolio-go-sdk/%s", Version),
		logger:     noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	// The log observer runs first so its "API Request" line precedes any
	// custom observer output.
	c.observers = append([]Observer{logObserver{logger: c.logger}}, c.observers...)
	return c, nil
}

// Origin returns the configured backend origin without the /api suffix.
func (c *Client) Origin() string { return c.origin }

// BaseURL returns {origin}/api.
func (c *Client) BaseURL() string { return c.baseURL }

// Timeout returns the per-call time bound.
func (c *Client) Timeout() time.Duration { return c.timeout }

// ─────────────────────────────────────────────────────────────────────────────
// Aggregate endpoints
// ─────────────────────────────────────────────────────────────────────────────

// HealthCheck probes GET /api/health.  Any 2xx is success; the body is
// decoded best-effort and never interpreted.
func (c *Client) HealthCheck(ctx context.Context) Result[portfolio.Health] {
	resp, err := c.execute(ctx, &request{method: http.MethodGet, path: "/health"})
	if err != nil {
		return failure[portfolio.Health](err)
	}
	var h portfolio.Health
	_ = json.Unmarshal(resp.body, &h)
	return success(h)
}

// GetPortfolioData fetches the aggregated payload from GET /api/portfolio.
// Any 2xx is a successful fetch.  A body that is not a JSON document yields
// an envelope without data, which the transformer rejects.
func (c *Client) GetPortfolioData(ctx context.Context) Result[*portfolio.Envelope] {
	resp, err := c.execute(ctx, &request{method: http.MethodGet, path: "/portfolio"})
	if err != nil {
		return failure[*portfolio.Envelope](err)
	}
	env := &portfolio.Envelope{}
	if err := json.Unmarshal(resp.body, env); err != nil {
		c.logger.Debugf("API Response: /portfolio body is not JSON: %v", err)
		env = &portfolio.Envelope{}
	}
	return success(env)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sub-clients (lazy initialization, thread-safe)
// ─────────────────────────────────────────────────────────────────────────────

// PersonalInfo returns the personal-info sub-client.
func (c *Client) PersonalInfo() *PersonalInfoClient {
	c.personalInfoOnce.Do(func() {
		c.personalInfo = &PersonalInfoClient{client: c}
	})
	return c.personalInfo
}

// Skills returns the skills sub-client.
func (c *Client) Skills() *SkillsClient {
	c.skillsOnce.Do(func() {
		c.skills = &SkillsClient{client: c}
	})
	return c.skills
}

// Education returns the education sub-client.
func (c *Client) Education() *EducationClient {
	c.educationOnce.Do(func() {
		c.education = &EducationClient{client: c}
	})
	return c.education
}

// Projects returns the projects sub-client.
func (c *Client) Projects() *ProjectsClient {
	c.projectsOnce.Do(func() {
		c.projects = &ProjectsClient{client: c}
	})
	return c.projects
}

// Goals returns the goals sub-client.
func (c *Client) Goals() *GoalsClient {
	c.goalsOnce.Do(func() {
		c.goals = &GoalsClient{client: c}
	})
	return c.goals
}

// CurrentLearning returns the current-learning sub-client.
func (c *Client) CurrentLearning() *CurrentLearningClient {
	c.learningOnce.Do(func() {
		c.learning = &CurrentLearningClient{client: c}
	})
	return c.learning
}

// ─────────────────────────────────────────────────────────────────────────────
// Request execution
// ─────────────────────────────────────────────────────────────────────────────

type request struct {
	method string
	path   string
	body   interface{}
}

type response struct {
	statusCode int
	body       []byte
}

// call runs one request and decodes a 2xx body into T.
func call[T any](ctx context.Context, c *Client, method, path string, body interface{}) Result[T] {
	resp, err := c.execute(ctx, &request{method: method, path: path, body: body})
	if err != nil {
		return failure[T](err)
	}
	var out T
	if len(bytes.TrimSpace(resp.body)) == 0 {
		return success(out)
	}
	if err := json.Unmarshal(resp.body, &out); err != nil {
		c.logger.Errorf("API Response Error: decode %s: %v", path, err)
		return failure[T](errors.Wrap(err, errors.CodeDecode, "invalid response body"))
	}
	return success(out)
}

// execute performs exactly one HTTP round trip bounded by the client timeout,
// notifying observers before and after.  The returned error is always an
// *errors.AppError whose Message is the caller-facing failure text.
func (c *Client) execute(ctx context.Context, r *request) (*response, error) {
	if !strings.HasPrefix(r.path, "/") {
		r.path = "/" + r.path
	}

	var bodyReader io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeBadRequest, "failed to marshal request body")
		}
		bodyReader = bytes.NewReader(b)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, r.method, c.baseURL+r.path, bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeBadRequest, "failed to create request")
	}

	info := RequestInfo{
		Method:    r.method,
		Path:      r.path,
		URL:       req.URL.String(),
		RequestID: uuid.New().String(),
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", info.RequestID)

	c.notifyBefore(ctx, info)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	var payload []byte
	if err == nil {
		payload, err = io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
		resp.Body.Close()
	}

	out := ResponseInfo{Duration: time.Since(start)}
	if err != nil {
		out.Err = c.classify(ctx, callCtx, err)
		c.notifyAfter(ctx, info, out)
		return nil, out.Err
	}
	if int64(len(payload)) > c.maxBody {
		out.StatusCode = resp.StatusCode
		out.Err = errors.New(errors.CodeDecode,
			fmt.Sprintf("response body exceeds %d bytes", c.maxBody))
		c.notifyAfter(ctx, info, out)
		return nil, out.Err
	}

	out.StatusCode = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		out.Err = errors.New(errors.CodeBadStatus,
			fmt.Sprintf("Request failed with status code %d", resp.StatusCode))
		c.notifyAfter(ctx, info, out)
		return nil, out.Err
	}

	c.notifyAfter(ctx, info, out)
	return &response{statusCode: resp.StatusCode, body: payload}, nil
}

// classify maps a transport error to the uniform failure taxonomy.
func (c *Client) classify(parent, callCtx context.Context, err error) *errors.AppError {
	if stderrors.Is(parent.Err(), context.Canceled) {
		return errors.Wrap(err, errors.CodeCanceled, "canceled")
	}
	var netErr net.Error
	if stderrors.Is(callCtx.Err(), context.DeadlineExceeded) ||
		stderrors.Is(err, context.DeadlineExceeded) ||
		(stderrors.As(err, &netErr) && netErr.Timeout()) {
		return errors.Wrap(err, errors.CodeTimeout,
			fmt.Sprintf("timeout of %dms exceeded", c.timeout.Milliseconds()))
	}
	return errors.Wrap(err, errors.CodeNetwork, "Network Error")
}

// escape encodes a path segment.
func escape(id string) string { return url.PathEscape(id) }
