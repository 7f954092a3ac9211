package portfolio

import (
	ptypes "github.com/turtacn/DevFolio/pkg/types/portfolio"
)

// TransformFunc converts a backend payload into a ViewModel, returning nil
// when the payload cannot be transformed.
type TransformFunc func(raw *ptypes.Envelope) *ViewModel

// Defaults are the literal values used when a localized field resolves to
// nothing.  Fields not listed default to the empty string.
type Defaults struct {
	Name               string
	Title              string
	Subtitle           string
	Description        string
	Location           string
	Status             string
	Email              string
	LinkedIn           string
	GitHub             string
	ProjectTitle       string
	ProjectDescription string
	ProjectStatus      string
}

var defaults = map[ptypes.Lang]Defaults{
	ptypes.LangPT: {
		Name:               "Pedro Gomes",
		Title:              "Desenvolvedor Fullstack Junior",
		Subtitle:           "Estudante de Engenharia de Software",
		Description:        "Desenvolvedor em formação",
		Location:           "Brasil",
		Status:             "Disponível para estágio",
		Email:              "pedroballario@gmail.com",
		LinkedIn:           "https://www.linkedin.com/in/pedro-gomes-ba4825354",
		GitHub:             "https://github.com/gomesdev1",
		ProjectTitle:       "EM DESENVOLVIMENTO",
		ProjectDescription: "Projetos serão adicionados conforme desenvolvimento",
		ProjectStatus:      string(ptypes.ProjectPlaceholder),
	},
	ptypes.LangEN: {
		Name:               "Pedro Gomes",
		Title:              "Junior Fullstack Developer",
		Subtitle:           "Software Engineering Student",
		Description:        "Developer in training",
		Location:           "Brazil",
		Status:             "Available for internship",
		Email:              "pedro.gomes@exemplo.com",
		LinkedIn:           "https://linkedin.com/in/pedrogomes",
		GitHub:             "https://github.com/pedrogomes",
		ProjectTitle:       "IN DEVELOPMENT",
		ProjectDescription: "Projects will be added as development progresses",
		ProjectStatus:      string(ptypes.ProjectPlaceholder),
	},
}

// DefaultsFor returns the literal defaults for lang.
func DefaultsFor(lang ptypes.Lang) Defaults {
	return defaults[lang]
}

// Transform builds a ViewModel from raw.  It returns nil when raw is nil or
// has no data wrapper.  Transform is pure: the result shares no memory with
// raw and equal inputs give structurally equal outputs.
func Transform(raw *ptypes.Envelope) *ViewModel {
	if raw == nil || raw.Data == nil {
		return nil
	}
	return &ViewModel{
		PT: buildContent(raw.Data, ptypes.LangPT),
		EN: buildContent(raw.Data, ptypes.LangEN),
	}
}

func buildContent(doc *ptypes.Document, lang ptypes.Lang) Content {
	d := defaults[lang]

	var info ptypes.PersonalInfo
	if doc.PersonalInfo != nil {
		info = *doc.PersonalInfo
	}
	var contact ptypes.ContactInfo
	if info.Contact != nil {
		contact = *info.Contact
	}

	c := Content{
		PersonalInfo: PersonalInfo{
			Name:        info.Name.Resolve(lang, d.Name),
			Title:       info.Title.Resolve(lang, d.Title),
			Subtitle:    info.Subtitle.Resolve(lang, d.Subtitle),
			Description: info.Description.Resolve(lang, d.Description),
			Location:    info.Location.Resolve(lang, d.Location),
			Status:      info.Status.Resolve(lang, d.Status),
		},
		Contact: Contact{
			Email:    orDefault(contact.Email, d.Email),
			LinkedIn: orDefault(contact.LinkedIn, d.LinkedIn),
			GitHub:   orDefault(contact.GitHub, d.GitHub),
		},
		Skills:          make([]SkillGroup, 0, len(doc.Skills)),
		Education:       make([]EducationEntry, 0, len(doc.Education)),
		Projects:        make([]Project, 0, len(doc.Projects)),
		Goals:           make([]string, 0, len(doc.Goals)),
		CurrentLearning: make([]string, 0, len(doc.CurrentLearning)),
		Navigation:      NavigationLabels(lang),
		Sections:        SectionLabels(lang),
	}

	for _, s := range doc.Skills {
		c.Skills = append(c.Skills, SkillGroup{
			Category:     s.Category.Resolve(lang, ""),
			Technologies: cloneStrings(s.Technologies),
		})
	}
	for _, e := range doc.Education {
		c.Education = append(c.Education, EducationEntry{
			Institution: e.Institution.Resolve(lang, ""),
			Degree:      e.Degree.Resolve(lang, ""),
			Period:      e.Period.Resolve(lang, ""),
			Status:      e.Status.Resolve(lang, ""),
		})
	}
	for _, p := range doc.Projects {
		c.Projects = append(c.Projects, Project{
			ID:           p.Key().String(),
			Title:        p.Title.Resolve(lang, d.ProjectTitle),
			Description:  p.Description.Resolve(lang, d.ProjectDescription),
			Status:       orDefault(string(p.Status), d.ProjectStatus),
			Technologies: cloneStrings(p.Technologies),
		})
	}
	for _, g := range doc.Goals {
		c.Goals = append(c.Goals, g.Goal.Resolve(lang, ""))
	}
	for _, l := range doc.CurrentLearning {
		c.CurrentLearning = append(c.CurrentLearning, l.Item.Resolve(lang, ""))
	}
	return c
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
