// Package portfolio defines the wire types exchanged with the portfolio REST
// API: the aggregated payload returned by GET /api/portfolio, the per-section
// records, and the request bodies of the create/update endpoints.
package portfolio

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Aggregated payload
// ─────────────────────────────────────────────────────────────────────────────

// Envelope is the top-level body of GET /api/portfolio.  Data is nil when the
// backend omitted the wrapper.
type Envelope struct {
	Success bool      `json:"success"`
	Data    *Document `json:"data"`
}

// UnmarshalJSON implements json.Unmarshaler.  Only presence is checked: a
// data member that is not an object leaves Data nil, and members of the
// wrong JSON type decode as absent instead of failing the payload.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	*e = Envelope{}
	var raw struct {
		Success Flag            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := decodeLoose(data, &raw); err != nil {
		return err
	}
	e.Success = bool(raw.Success)
	if d := bytes.TrimSpace(raw.Data); len(d) > 0 && d[0] == '{' {
		var doc Document
		if err := decodeLoose(d, &doc); err != nil {
			return err
		}
		e.Data = &doc
	}
	return nil
}

// decodeLoose unmarshals data into v, keeping whatever decoded when some
// members had the wrong JSON type.  Syntax errors are still returned.
func decodeLoose(data []byte, v interface{}) error {
	err := json.Unmarshal(data, v)
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return nil
	}
	return err
}

// Document is the aggregated portfolio content.  Every field may be absent.
type Document struct {
	PersonalInfo    *PersonalInfo     `json:"personal_info,omitempty"`
	Skills          []Skill           `json:"skills,omitempty"`
	Education       []Education       `json:"education,omitempty"`
	Projects        []Project         `json:"projects,omitempty"`
	Goals           []Goal            `json:"goals,omitempty"`
	CurrentLearning []CurrentLearning `json:"current_learning,omitempty"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Section records
// ─────────────────────────────────────────────────────────────────────────────

// ContactInfo holds the public contact channels.
type ContactInfo struct {
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// PersonalInfo is the singleton profile record.
type PersonalInfo struct {
	ID          EntityID        `json:"_id,omitempty"`
	Name        LocalizedString `json:"name"`
	Title       LocalizedString `json:"title"`
	Subtitle    LocalizedString `json:"subtitle"`
	Description LocalizedString `json:"description"`
	Location    LocalizedString `json:"location"`
	Status      LocalizedString `json:"status"`
	Contact     *ContactInfo    `json:"contact,omitempty"`
}

// Skill is one skill group.
type Skill struct {
	ID           EntityID        `json:"_id,omitempty"`
	Category     LocalizedString `json:"category"`
	Technologies StringList      `json:"technologies"`
	Order        Int             `json:"order"`
	IsActive     Flag            `json:"is_active"`
}

// Education is one education entry.
type Education struct {
	ID          EntityID        `json:"_id,omitempty"`
	Institution LocalizedString `json:"institution"`
	Degree      LocalizedString `json:"degree"`
	Period      LocalizedString `json:"period"`
	Status      LocalizedString `json:"status"`
	Order       Int             `json:"order"`
	IsActive    Flag            `json:"is_active"`
}

// ProjectStatus is the publication state of a project.
type ProjectStatus string

const (
	ProjectActive      ProjectStatus = "active"
	ProjectDevelopment ProjectStatus = "development"
	ProjectPlaceholder ProjectStatus = "placeholder"
)

// Project is one portfolio project.  Either ID or MongoID identifies it.
type Project struct {
	ID           EntityID        `json:"id,omitempty"`
	MongoID      EntityID        `json:"_id,omitempty"`
	Title        LocalizedString `json:"title"`
	Description  LocalizedString `json:"description"`
	Technologies StringList      `json:"technologies"`
	GitHubURL    string          `json:"github_url,omitempty"`
	LiveURL      string          `json:"live_url,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
	Status       ProjectStatus   `json:"status,omitempty"`
	Featured     Flag            `json:"featured"`
	Order        Int             `json:"order"`
}

// Key returns the project's identifier, preferring id over _id.
func (p Project) Key() EntityID {
	if p.ID != "" {
		return p.ID
	}
	return p.MongoID
}

// Goal is one career goal.
type Goal struct {
	ID       EntityID        `json:"_id,omitempty"`
	Goal     LocalizedString `json:"goal"`
	Order    Int             `json:"order"`
	IsActive Flag            `json:"is_active"`
}

// CurrentLearning is one item the owner is currently studying.
type CurrentLearning struct {
	ID       EntityID        `json:"_id,omitempty"`
	Item     LocalizedString `json:"item"`
	Order    Int             `json:"order"`
	IsActive Flag            `json:"is_active"`
}

// Message is the body of delete endpoints.
type Message struct {
	Message string `json:"message"`
}

// Health is the body of GET /api/health.  It is informational only.
type Health struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Request bodies
// ─────────────────────────────────────────────────────────────────────────────

// MultiLanguageField is the strict pt/en pair the write endpoints require.
type MultiLanguageField struct {
	PT string `json:"pt"`
	EN string `json:"en"`
}

// PersonalInfoUpdate is the body of PUT /api/personal-info.  Nil fields are
// left unchanged by the backend.
type PersonalInfoUpdate struct {
	Name        *string             `json:"name,omitempty"`
	Title       *MultiLanguageField `json:"title,omitempty"`
	Subtitle    *MultiLanguageField `json:"subtitle,omitempty"`
	Description *MultiLanguageField `json:"description,omitempty"`
	Location    *string             `json:"location,omitempty"`
	Status      *MultiLanguageField `json:"status,omitempty"`
	Contact     *ContactInfo        `json:"contact,omitempty"`
}

// SkillCreate is the body of POST /api/skills.
type SkillCreate struct {
	Category     MultiLanguageField `json:"category"`
	Technologies []string           `json:"technologies"`
	Order        int                `json:"order"`
}

// SkillUpdate is the body of PUT /api/skills/:id.
type SkillUpdate struct {
	Category     *MultiLanguageField `json:"category,omitempty"`
	Technologies []string            `json:"technologies,omitempty"`
	Order        *int                `json:"order,omitempty"`
	IsActive     *bool               `json:"is_active,omitempty"`
}

// EducationCreate is the body of POST /api/education.
type EducationCreate struct {
	Institution string             `json:"institution"`
	Degree      MultiLanguageField `json:"degree"`
	Period      string             `json:"period"`
	Status      MultiLanguageField `json:"status"`
	Order       int                `json:"order"`
}

// ProjectCreate is the body of POST /api/projects.
type ProjectCreate struct {
	Title        MultiLanguageField `json:"title"`
	Description  MultiLanguageField `json:"description"`
	Technologies []string           `json:"technologies"`
	GitHubURL    string             `json:"github_url,omitempty"`
	LiveURL      string             `json:"live_url,omitempty"`
	ImageURL     string             `json:"image_url,omitempty"`
	Status       ProjectStatus      `json:"status,omitempty"`
	Featured     bool               `json:"featured"`
	Order        int                `json:"order"`
}

// ProjectUpdate is the body of PUT /api/projects/:id.
type ProjectUpdate struct {
	Title        *MultiLanguageField `json:"title,omitempty"`
	Description  *MultiLanguageField `json:"description,omitempty"`
	Technologies []string            `json:"technologies,omitempty"`
	GitHubURL    *string             `json:"github_url,omitempty"`
	LiveURL      *string             `json:"live_url,omitempty"`
	ImageURL     *string             `json:"image_url,omitempty"`
	Status       *ProjectStatus      `json:"status,omitempty"`
	Featured     *bool               `json:"featured,omitempty"`
	Order        *int                `json:"order,omitempty"`
}

// GoalCreate is the body of POST /api/goals.
type GoalCreate struct {
	Goal  MultiLanguageField `json:"goal"`
	Order int                `json:"order"`
}

// CurrentLearningCreate is the body of POST /api/current-learning.
type CurrentLearningCreate struct {
	Item  MultiLanguageField `json:"item"`
	Order int                `json:"order"`
}
