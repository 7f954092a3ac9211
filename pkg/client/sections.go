package client

import (
	"context"
	"net/http"

	"github.com/turtacn/DevFolio/pkg/errors"
	"github.com/turtacn/DevFolio/pkg/types/portfolio"
)

// The section endpoints answer with bare records rather than the
// {success, data} envelope of /portfolio, so results decode directly.

func invalidArg[T any](msg string) Result[T] {
	return failure[T](errors.BadRequest(msg))
}

// ─────────────────────────────────────────────────────────────────────────────
// PersonalInfoClient
// ─────────────────────────────────────────────────────────────────────────────

// PersonalInfoClient accesses the singleton profile record.
type PersonalInfoClient struct {
	client *Client
}

// Get retrieves the profile.
// GET /api/personal-info
func (pc *PersonalInfoClient) Get(ctx context.Context) Result[portfolio.PersonalInfo] {
	return call[portfolio.PersonalInfo](ctx, pc.client, http.MethodGet, "/personal-info", nil)
}

// Update replaces the given profile fields.
// PUT /api/personal-info
func (pc *PersonalInfoClient) Update(ctx context.Context, req *portfolio.PersonalInfoUpdate) Result[portfolio.PersonalInfo] {
	if req == nil {
		return invalidArg[portfolio.PersonalInfo]("update body is required")
	}
	return call[portfolio.PersonalInfo](ctx, pc.client, http.MethodPut, "/personal-info", req)
}

// ─────────────────────────────────────────────────────────────────────────────
// SkillsClient
// ─────────────────────────────────────────────────────────────────────────────

// SkillsClient accesses skill groups.
type SkillsClient struct {
	client *Client
}

// List returns the active skill groups in display order.
// GET /api/skills
func (sc *SkillsClient) List(ctx context.Context) Result[[]portfolio.Skill] {
	return call[[]portfolio.Skill](ctx, sc.client, http.MethodGet, "/skills", nil)
}

// Create adds a skill group.
// POST /api/skills
func (sc *SkillsClient) Create(ctx context.Context, req *portfolio.SkillCreate) Result[portfolio.Skill] {
	if req == nil || (req.Category.PT == "" && req.Category.EN == "") {
		return invalidArg[portfolio.Skill]("category is required")
	}
	return call[portfolio.Skill](ctx, sc.client, http.MethodPost, "/skills", req)
}

// Update modifies a skill group.
// PUT /api/skills/{id}
func (sc *SkillsClient) Update(ctx context.Context, id string, req *portfolio.SkillUpdate) Result[portfolio.Skill] {
	if id == "" {
		return invalidArg[portfolio.Skill]("skill id is required")
	}
	if req == nil {
		return invalidArg[portfolio.Skill]("update body is required")
	}
	return call[portfolio.Skill](ctx, sc.client, http.MethodPut, "/skills/"+escape(id), req)
}

// Delete removes a skill group.
// DELETE /api/skills/{id}
func (sc *SkillsClient) Delete(ctx context.Context, id string) Result[portfolio.Message] {
	if id == "" {
		return invalidArg[portfolio.Message]("skill id is required")
	}
	return call[portfolio.Message](ctx, sc.client, http.MethodDelete, "/skills/"+escape(id), nil)
}

// ─────────────────────────────────────────────────────────────────────────────
// EducationClient
// ─────────────────────────────────────────────────────────────────────────────

// EducationClient accesses education entries.
type EducationClient struct {
	client *Client
}

// List returns the education entries.
// GET /api/education
func (ec *EducationClient) List(ctx context.Context) Result[[]portfolio.Education] {
	return call[[]portfolio.Education](ctx, ec.client, http.MethodGet, "/education", nil)
}

// Create adds an education entry.
// POST /api/education
func (ec *EducationClient) Create(ctx context.Context, req *portfolio.EducationCreate) Result[portfolio.Education] {
	if req == nil || req.Institution == "" {
		return invalidArg[portfolio.Education]("institution is required")
	}
	return call[portfolio.Education](ctx, ec.client, http.MethodPost, "/education", req)
}

// ─────────────────────────────────────────────────────────────────────────────
// ProjectsClient
// ─────────────────────────────────────────────────────────────────────────────

// ProjectsClient accesses portfolio projects.
type ProjectsClient struct {
	client *Client
}

// List returns all projects.
// GET /api/projects
func (pc *ProjectsClient) List(ctx context.Context) Result[[]portfolio.Project] {
	return call[[]portfolio.Project](ctx, pc.client, http.MethodGet, "/projects", nil)
}

// Featured returns the featured projects.
// GET /api/projects/featured
func (pc *ProjectsClient) Featured(ctx context.Context) Result[[]portfolio.Project] {
	return call[[]portfolio.Project](ctx, pc.client, http.MethodGet, "/projects/featured", nil)
}

// Create adds a project.
// POST /api/projects
func (pc *ProjectsClient) Create(ctx context.Context, req *portfolio.ProjectCreate) Result[portfolio.Project] {
	if req == nil || (req.Title.PT == "" && req.Title.EN == "") {
		return invalidArg[portfolio.Project]("title is required")
	}
	return call[portfolio.Project](ctx, pc.client, http.MethodPost, "/projects", req)
}

// Update modifies a project.
// PUT /api/projects/{id}
func (pc *ProjectsClient) Update(ctx context.Context, id string, req *portfolio.ProjectUpdate) Result[portfolio.Project] {
	if id == "" {
		return invalidArg[portfolio.Project]("project id is required")
	}
	if req == nil {
		return invalidArg[portfolio.Project]("update body is required")
	}
	return call[portfolio.Project](ctx, pc.client, http.MethodPut, "/projects/"+escape(id), req)
}

// Delete removes a project.
// DELETE /api/projects/{id}
func (pc *ProjectsClient) Delete(ctx context.Context, id string) Result[portfolio.Message] {
	if id == "" {
		return invalidArg[portfolio.Message]("project id is required")
	}
	return call[portfolio.Message](ctx, pc.client, http.MethodDelete, "/projects/"+escape(id), nil)
}

// ─────────────────────────────────────────────────────────────────────────────
// GoalsClient / CurrentLearningClient
// ─────────────────────────────────────────────────────────────────────────────

// GoalsClient accesses career goals.
type GoalsClient struct {
	client *Client
}

// List returns the goals.
// GET /api/goals
func (gc *GoalsClient) List(ctx context.Context) Result[[]portfolio.Goal] {
	return call[[]portfolio.Goal](ctx, gc.client, http.MethodGet, "/goals", nil)
}

// Create adds a goal.
// POST /api/goals
func (gc *GoalsClient) Create(ctx context.Context, req *portfolio.GoalCreate) Result[portfolio.Goal] {
	if req == nil || (req.Goal.PT == "" && req.Goal.EN == "") {
		return invalidArg[portfolio.Goal]("goal is required")
	}
	return call[portfolio.Goal](ctx, gc.client, http.MethodPost, "/goals", req)
}

// CurrentLearningClient accesses the current-learning list.
type CurrentLearningClient struct {
	client *Client
}

// List returns the items being studied.
// GET /api/current-learning
func (lc *CurrentLearningClient) List(ctx context.Context) Result[[]portfolio.CurrentLearning] {
	return call[[]portfolio.CurrentLearning](ctx, lc.client, http.MethodGet, "/current-learning", nil)
}

// Create adds an item.
// POST /api/current-learning
func (lc *CurrentLearningClient) Create(ctx context.Context, req *portfolio.CurrentLearningCreate) Result[portfolio.CurrentLearning] {
	if req == nil || (req.Item.PT == "" && req.Item.EN == "") {
		return invalidArg[portfolio.CurrentLearning]("item is required")
	}
	return call[portfolio.CurrentLearning](ctx, lc.client, http.MethodPost, "/current-learning", req)
}
