// Package portfolio holds the render-ready bilingual view-model, the
// transformer that builds it from a backend payload, and the built-in
// demonstration dataset used when the backend cannot supply one.
package portfolio

import (
	ptypes "github.com/turtacn/DevFolio/pkg/types/portfolio"
)

// ─────────────────────────────────────────────────────────────────────────────
// ViewModel
// ─────────────────────────────────────────────────────────────────────────────

// ViewModel is the language-partitioned portfolio.  Both partitions are
// values, so a non-nil ViewModel always carries pt and en content.
type ViewModel struct {
	PT Content `json:"pt"`
	EN Content `json:"en"`
}

// Content is one language partition.  Every slice is non-nil.
type Content struct {
	PersonalInfo    PersonalInfo     `json:"personalInfo"`
	Contact         Contact          `json:"contact"`
	Skills          []SkillGroup     `json:"skills"`
	Education       []EducationEntry `json:"education"`
	Projects        []Project        `json:"projects"`
	Goals           []string         `json:"goals"`
	CurrentLearning []string         `json:"currentLearning"`
	Navigation      Navigation       `json:"navigation"`
	Sections        Sections         `json:"sections"`
}

type PersonalInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Status      string `json:"status"`
}

type Contact struct {
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

type SkillGroup struct {
	Category     string   `json:"category"`
	Technologies []string `json:"technologies"`
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period"`
	Status      string `json:"status"`
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	Technologies []string `json:"technologies"`
}

// Partition returns the content for lang, or nil for an unsupported code.
func (vm *ViewModel) Partition(lang ptypes.Lang) *Content {
	if vm == nil {
		return nil
	}
	switch lang {
	case ptypes.LangPT:
		return &vm.PT
	case ptypes.LangEN:
		return &vm.EN
	}
	return nil
}

// Clone returns a deep copy.  The copy shares no slices with vm.
func (vm *ViewModel) Clone() *ViewModel {
	if vm == nil {
		return nil
	}
	return &ViewModel{PT: vm.PT.clone(), EN: vm.EN.clone()}
}

func (c Content) clone() Content {
	out := c
	out.Skills = make([]SkillGroup, len(c.Skills))
	for i, s := range c.Skills {
		out.Skills[i] = SkillGroup{Category: s.Category, Technologies: cloneStrings(s.Technologies)}
	}
	out.Education = append(make([]EducationEntry, 0, len(c.Education)), c.Education...)
	out.Projects = make([]Project, len(c.Projects))
	for i, p := range c.Projects {
		p.Technologies = cloneStrings(p.Technologies)
		out.Projects[i] = p
	}
	out.Goals = cloneStrings(c.Goals)
	out.CurrentLearning = cloneStrings(c.CurrentLearning)
	out.Sections = c.Sections.clone()
	return out
}

func cloneStrings(in []string) []string {
	return append(make([]string, 0, len(in)), in...)
}
