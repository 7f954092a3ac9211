package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	folioerrors "github.com/turtacn/DevFolio/pkg/errors"
	"github.com/turtacn/DevFolio/pkg/types/portfolio"
)

func TestPersonalInfo_GetAndUpdate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/personal-info", r.URL.Path)
		if r.Method == http.MethodPut {
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]interface{}{"pt": "Dev", "en": "Developer"}, body["title"])
			assert.NotContains(t, body, "subtitle")
		}
		w.Write([]byte(`{"_id":"p1","name":"Pedro","title":{"pt":"Dev","en":"Developer"}}`))
	})

	res := c.PersonalInfo().Get(context.Background())
	require.True(t, res.Success)
	assert.Equal(t, portfolio.EntityID("p1"), res.Data.ID)

	upd := c.PersonalInfo().Update(context.Background(), &portfolio.PersonalInfoUpdate{
		Title: &portfolio.MultiLanguageField{PT: "Dev", EN: "Developer"},
	})
	require.True(t, upd.Success)
	assert.Equal(t, "Developer", upd.Data.Title.Resolve(portfolio.LangEN, ""))

	nilUpd := c.PersonalInfo().Update(context.Background(), nil)
	assert.False(t, nilUpd.Success)
	assert.Equal(t, folioerrors.CodeBadRequest, nilUpd.Code)
}

func TestSkills_CRUD(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/skills":
			w.Write([]byte(`[{"_id":"s1","category":{"pt":"Ferramentas","en":"Tools"},"technologies":["Git"]}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/skills":
			b, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"category":{"pt":"Nuvem","en":"Cloud"},"technologies":["AWS"],"order":5}`, string(b))
			w.Write([]byte(`{"_id":"s2","category":{"pt":"Nuvem","en":"Cloud"},"technologies":["AWS"],"order":5}`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/skills/s2":
			w.Write([]byte(`{"_id":"s2","category":"Cloud"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/skills/s2":
			w.Write([]byte(`{"message":"Skill deleted successfully"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	list := c.Skills().List(ctx)
	require.True(t, list.Success)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Tools", list.Data[0].Category.Resolve(portfolio.LangEN, ""))

	created := c.Skills().Create(ctx, &portfolio.SkillCreate{
		Category:     portfolio.MultiLanguageField{PT: "Nuvem", EN: "Cloud"},
		Technologies: []string{"AWS"},
		Order:        5,
	})
	require.True(t, created.Success)
	assert.Equal(t, portfolio.Int(5), created.Data.Order)

	order := 6
	updated := c.Skills().Update(ctx, "s2", &portfolio.SkillUpdate{Order: &order})
	require.True(t, updated.Success)
	assert.True(t, updated.Data.Category.IsPlain())

	deleted := c.Skills().Delete(ctx, "s2")
	require.True(t, deleted.Success)
	assert.Equal(t, "Skill deleted successfully", deleted.Data.Message)

	missing := c.Skills().Delete(ctx, "nope")
	assert.False(t, missing.Success)
	assert.Equal(t, "Request failed with status code 404", missing.Error)
}

func TestSkills_Validation(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })
	ctx := context.Background()

	assert.False(t, c.Skills().Create(ctx, nil).Success)
	assert.False(t, c.Skills().Create(ctx, &portfolio.SkillCreate{}).Success)
	assert.False(t, c.Skills().Update(ctx, "", &portfolio.SkillUpdate{}).Success)
	assert.False(t, c.Skills().Update(ctx, "s1", nil).Success)
	assert.False(t, c.Skills().Delete(ctx, "").Success)
	assert.Zero(t, calls, "invalid arguments must not reach the server")
}

func TestProjects_PathEscaping(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects/a%2Fb", r.URL.EscapedPath())
		w.Write([]byte(`{"message":"Project deleted successfully"}`))
	})
	res := c.Projects().Delete(context.Background(), "a/b")
	assert.True(t, res.Success)
}

func TestProjects_ListFeaturedCreateUpdate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/projects":
			if r.Method == http.MethodPost {
				w.Write([]byte(`{"_id":"new","title":{"pt":"Novo","en":"New"},"featured":true}`))
				return
			}
			w.Write([]byte(`[{"_id":"a"},{"_id":"b","featured":true}]`))
		case "/api/projects/featured":
			w.Write([]byte(`[{"_id":"b","featured":true}]`))
		case "/api/projects/new":
			w.Write([]byte(`{"_id":"new","status":"active"}`))
		}
	})
	ctx := context.Background()

	all := c.Projects().List(ctx)
	require.True(t, all.Success)
	assert.Len(t, all.Data, 2)

	featured := c.Projects().Featured(ctx)
	require.True(t, featured.Success)
	require.Len(t, featured.Data, 1)
	assert.True(t, bool(featured.Data[0].Featured))

	created := c.Projects().Create(ctx, &portfolio.ProjectCreate{
		Title:    portfolio.MultiLanguageField{PT: "Novo", EN: "New"},
		Featured: true,
	})
	require.True(t, created.Success)
	assert.Equal(t, portfolio.EntityID("new"), created.Data.Key())

	status := portfolio.ProjectActive
	updated := c.Projects().Update(ctx, "new", &portfolio.ProjectUpdate{Status: &status})
	require.True(t, updated.Success)
	assert.Equal(t, portfolio.ProjectActive, updated.Data.Status)

	assert.False(t, c.Projects().Create(ctx, &portfolio.ProjectCreate{}).Success)
}

func TestEducationGoalsLearning(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/education":
			if r.Method == http.MethodPost {
				w.Write([]byte(`{"_id":"e2","institution":"X"}`))
				return
			}
			w.Write([]byte(`[{"_id":"e1","institution":"Universidade Anhaguera"}]`))
		case "/api/goals":
			if r.Method == http.MethodPost {
				w.Write([]byte(`{"_id":"g2","goal":{"pt":"a","en":"b"}}`))
				return
			}
			w.Write([]byte(`[{"_id":"g1","goal":{"pt":"Meta","en":"Goal"}}]`))
		case "/api/current-learning":
			if r.Method == http.MethodPost {
				w.Write([]byte(`{"_id":"l2","item":"Go"}`))
				return
			}
			w.Write([]byte(`[{"_id":"l1","item":{"pt":"Curso","en":"Course"}}]`))
		}
	})
	ctx := context.Background()

	edu := c.Education().List(ctx)
	require.True(t, edu.Success)
	assert.Equal(t, "Universidade Anhaguera", edu.Data[0].Institution.Resolve(portfolio.LangEN, ""))
	assert.True(t, c.Education().Create(ctx, &portfolio.EducationCreate{Institution: "X"}).Success)
	assert.False(t, c.Education().Create(ctx, &portfolio.EducationCreate{}).Success)

	goals := c.Goals().List(ctx)
	require.True(t, goals.Success)
	assert.Equal(t, "Goal", goals.Data[0].Goal.Resolve(portfolio.LangEN, ""))
	assert.True(t, c.Goals().Create(ctx, &portfolio.GoalCreate{Goal: portfolio.MultiLanguageField{PT: "a", EN: "b"}}).Success)

	learning := c.CurrentLearning().List(ctx)
	require.True(t, learning.Success)
	assert.Equal(t, "Curso", learning.Data[0].Item.Resolve(portfolio.LangPT, ""))
	assert.True(t, c.CurrentLearning().Create(ctx, &portfolio.CurrentLearningCreate{Item: portfolio.MultiLanguageField{EN: "Go"}}).Success)
	assert.False(t, c.CurrentLearning().Create(ctx, nil).Success)
}
