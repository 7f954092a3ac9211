package portfolio

import (
	ptypes "github.com/turtacn/DevFolio/pkg/types/portfolio"
)

// Navigation holds the menu labels.
type Navigation struct {
	About    string `json:"about"`
	Skills   string `json:"skills"`
	Projects string `json:"projects"`
	Contact  string `json:"contact"`
}

// Sections holds the static per-section headings and copy.
type Sections struct {
	Hero     HeroSection     `json:"hero"`
	About    AboutSection    `json:"about"`
	Skills   SkillsSection   `json:"skills"`
	Projects ProjectsSection `json:"projects"`
	Contact  ContactSection  `json:"contact"`
}

type HeroSection struct {
	Label string `json:"label"`
	CTA1  string `json:"cta1"`
	CTA2  string `json:"cta2"`
}

type AboutSection struct {
	Label          string `json:"label"`
	Title          string `json:"title"`
	FormationTitle string `json:"formationTitle"`
	GoalsTitle     string `json:"goalsTitle"`
}

type SkillsSection struct {
	Label             string `json:"label"`
	Title             string `json:"title"`
	CurrentlyLearning string `json:"currentlyLearning"`
}

type ProjectsSection struct {
	Label           string `json:"label"`
	Title           string `json:"title"`
	Placeholder     string `json:"placeholder"`
	PlaceholderDesc string `json:"placeholderDesc"`
	WaitUpdate      string `json:"waitUpdate"`
}

type ContactSection struct {
	Label        string   `json:"label"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	AvailableFor string   `json:"availableFor"`
	Availability []string `json:"availability"`
	SendEmail    string   `json:"sendEmail"`
	EmailSubject string   `json:"emailSubject"`
}

func (s Sections) clone() Sections {
	s.Contact.Availability = cloneStrings(s.Contact.Availability)
	return s
}

// NavigationLabels returns the menu labels for lang.  Unsupported codes get
// the pt labels.
func NavigationLabels(lang ptypes.Lang) Navigation {
	if lang == ptypes.LangEN {
		return Navigation{About: "ABOUT", Skills: "SKILLS", Projects: "PROJECTS", Contact: "CONTACT"}
	}
	return Navigation{About: "SOBRE", Skills: "HABILIDADES", Projects: "PROJETOS", Contact: "CONTATO"}
}

// SectionLabels returns a fresh copy of the section copy for lang.
// Unsupported codes get the pt copy.
func SectionLabels(lang ptypes.Lang) Sections {
	if lang == ptypes.LangEN {
		return Sections{
			Hero: HeroSection{Label: "DEVELOPER IN TRAINING", CTA1: "GET IN TOUCH", CTA2: "LEARN MORE"},
			About: AboutSection{
				Label:          "WHO I AM",
				Title:          "ABOUT",
				FormationTitle: "EDUCATION",
				GoalsTitle:     "GOALS",
			},
			Skills: SkillsSection{Label: "KNOWLEDGE", Title: "SKILLS", CurrentlyLearning: "CURRENTLY LEARNING"},
			Projects: ProjectsSection{
				Label:           "PORTFOLIO",
				Title:           "PROJECTS",
				Placeholder:     "PROJECTS IN DEVELOPMENT",
				PlaceholderDesc: "This section will be filled as new projects are developed during my studies and practice.",
				WaitUpdate:      "AWAIT UPDATES",
			},
			Contact: ContactSection{
				Label:        "LET'S TALK",
				Title:        "CONTACT",
				Description:  "I'm looking for my first internship opportunity to apply my knowledge and continue learning.",
				AvailableFor: "AVAILABLE FOR",
				Availability: []string{
					"• Development Internship",
					"• Learning Projects",
					"• Mentoring",
					"• Networking",
				},
				SendEmail:    "SEND EMAIL",
				EmailSubject: "Internship Opportunity",
			},
		}
	}
	return Sections{
		Hero: HeroSection{Label: "DESENVOLVEDOR EM FORMAÇÃO", CTA1: "ENTRAR EM CONTATO", CTA2: "CONHECER MAIS"},
		About: AboutSection{
			Label:          "QUEM SOU EU",
			Title:          "SOBRE",
			FormationTitle: "FORMAÇÃO",
			GoalsTitle:     "OBJETIVOS",
		},
		Skills: SkillsSection{Label: "CONHECIMENTOS", Title: "HABILIDADES", CurrentlyLearning: "ATUALMENTE ESTUDANDO"},
		Projects: ProjectsSection{
			Label:           "PORTFÓLIO",
			Title:           "PROJETOS",
			Placeholder:     "PROJETOS EM DESENVOLVIMENTO",
			PlaceholderDesc: "Esta seção será preenchida conforme novos projetos forem desenvolvidos durante meus estudos e práticas.",
			WaitUpdate:      "AGUARDE ATUALIZAÇÕES",
		},
		Contact: ContactSection{
			Label:        "VAMOS CONVERSAR",
			Title:        "CONTATO",
			Description:  "Estou em busca da minha primeira oportunidade de estágio para aplicar meus conhecimentos e continuar aprendendo.",
			AvailableFor: "DISPONÍVEL PARA",
			Availability: []string{
				"• Estágio em Desenvolvimento",
				"• Projetos de Aprendizado",
				"• Mentorias",
				"• Networking",
			},
			SendEmail:    "ENVIAR EMAIL",
			EmailSubject: "Oportunidade de Estágio",
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Notice copy
// ─────────────────────────────────────────────────────────────────────────────

// NoticeText is the copy of the degraded-mode banner for one framing.
type NoticeText struct {
	Title        string `json:"title"`
	Message      string `json:"message"`
	Badge        string `json:"badge"`
	DetailsLabel string `json:"detailsLabel"`
	RetryLabel   string `json:"retryLabel"`
}

// NoticeLabels returns the banner copy.  online selects the "connection
// error, local data" framing; otherwise the "offline, demo data" framing.
func NoticeLabels(lang ptypes.Lang, online bool) NoticeText {
	if lang == ptypes.LangEN {
		t := NoticeText{DetailsLabel: "Technical details", RetryLabel: "TRY AGAIN"}
		if online {
			t.Title = "Connection Error"
			t.Message = "Could not connect to the server. Using local data."
			t.Badge = "ONLINE - LOCAL DATA"
		} else {
			t.Title = "Offline Mode"
			t.Message = "Backend unavailable. Showing demo data."
			t.Badge = "OFFLINE - DEMO MODE"
		}
		return t
	}
	t := NoticeText{DetailsLabel: "Detalhes técnicos", RetryLabel: "TENTAR NOVAMENTE"}
	if online {
		t.Title = "Erro de Conexão"
		t.Message = "Não foi possível conectar com o servidor. Usando dados locais."
		t.Badge = "ONLINE - DADOS LOCAIS"
	} else {
		t.Title = "Modo Offline"
		t.Message = "Backend não disponível. Exibindo dados de demonstração."
		t.Badge = "OFFLINE - MODO DEMO"
	}
	return t
}
