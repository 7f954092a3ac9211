package portfolio

import (
	ptypes "github.com/turtacn/DevFolio/pkg/types/portfolio"
)

// fallbackContact is shared by both partitions of the demonstration dataset.
var fallbackContact = Contact{
	Email:    "seuemail@exemplo.com",
	LinkedIn: "https://linkedin.com/in/seulinkedin",
	GitHub:   "https://github.com/seugithub",
}

// Fallback returns a fresh copy of the built-in demonstration dataset.  It
// already satisfies every ViewModel invariant and carries the same labels as
// Transform output, so callers can render it without further processing.
func Fallback() *ViewModel {
	return &ViewModel{PT: fallbackPT(), EN: fallbackEN()}
}

func fallbackPT() Content {
	return Content{
		PersonalInfo: PersonalInfo{
			Name:        "Pedro Gomes",
			Title:       "Desenvolvedor Fullstack Junior",
			Subtitle:    "Estudante de Engenharia de Software",
			Description: "Cursando Bacharelado em Engenharia de Software (1º semestre) na Universidade Anhaguera, com formação técnica em suporte de TI. Focado em Java, Spring Boot e tecnologias modernas.",
			Location:    "Brasil",
			Status:      "Disponível para estágio",
		},
		Contact: fallbackContact,
		Skills: []SkillGroup{
			{Category: "Backend", Technologies: []string{"Java", "Spring Boot", "MongoDB", "APIs REST", "Orientação a Objetos"}},
			{Category: "Frontend", Technologies: []string{"HTML", "CSS", "JavaScript", "React (aprendendo)"}},
			{Category: "Ferramentas", Technologies: []string{"Git", "Linux", "Suporte Técnico", "Redes de Computadores"}},
			{Category: "Soft Skills", Technologies: []string{"Autodidata", "Dedicado", "Foco em Aprendizado", "Orientado a Detalhes"}},
		},
		Education: []EducationEntry{
			{
				Institution: "Universidade Anhaguera",
				Degree:      "Bacharelado em Engenharia de Software",
				Period:      "2024 - Em andamento",
				Status:      "1º Semestre",
			},
			{
				Institution: "Formação Técnica",
				Degree:      "Suporte de TI",
				Period:      "Concluído",
				Status:      "Redes, Hardware, Software",
			},
		},
		Projects: []Project{{
			ID:           "1",
			Title:        "EM DESENVOLVIMENTO",
			Description:  "Projetos serão adicionados conforme desenvolvimento",
			Status:       string(ptypes.ProjectPlaceholder),
			Technologies: []string{},
		}},
		Goals: []string{
			"Conquistar primeira oportunidade de estágio",
			"Evoluir como desenvolvedor de software",
			"Tornar-se engenheiro de software",
			"Dominar tecnologias fullstack",
		},
		CurrentLearning: []string{
			"Curso Java com Spring Boot",
			"Desenvolvimento de APIs",
			"MongoDB e NoSQL",
			"Frontend com React",
			"Boas práticas de desenvolvimento",
		},
		Navigation: NavigationLabels(ptypes.LangPT),
		Sections:   SectionLabels(ptypes.LangPT),
	}
}

func fallbackEN() Content {
	return Content{
		PersonalInfo: PersonalInfo{
			Name:        "Pedro Gomes",
			Title:       "Junior Fullstack Developer",
			Subtitle:    "Software Engineering Student",
			Description: "Currently pursuing a Bachelor's degree in Software Engineering (1st semester) at Anhaguera University, with technical background in IT support. Focused on Java, Spring Boot and modern technologies.",
			Location:    "Brazil",
			Status:      "Available for internship",
		},
		Contact: fallbackContact,
		Skills: []SkillGroup{
			{Category: "Backend", Technologies: []string{"Java", "Spring Boot", "MongoDB", "APIs REST", "Orientação a Objetos"}},
			{Category: "Frontend", Technologies: []string{"HTML", "CSS", "JavaScript", "React (aprendendo)"}},
			{Category: "Tools", Technologies: []string{"Git", "Linux", "Suporte Técnico", "Redes de Computadores"}},
			{Category: "Soft Skills", Technologies: []string{"Autodidata", "Dedicado", "Foco em Aprendizado", "Orientado a Detalhes"}},
		},
		Education: []EducationEntry{
			{
				Institution: "Universidade Anhaguera",
				Degree:      "Bachelor's in Software Engineering",
				Period:      "2024 - Em andamento",
				Status:      "1st Semester",
			},
			{
				Institution: "Formação Técnica",
				Degree:      "IT Support",
				Period:      "Concluído",
				Status:      "Networks, Hardware, Software",
			},
		},
		Projects: []Project{{
			ID:           "1",
			Title:        "IN DEVELOPMENT",
			Description:  "Projects will be added as development progresses",
			Status:       string(ptypes.ProjectPlaceholder),
			Technologies: []string{},
		}},
		Goals: []string{
			"Secure first internship opportunity",
			"Evolve as a software developer",
			"Become a software engineer",
			"Master fullstack technologies",
		},
		CurrentLearning: []string{
			"Java course with Spring Boot",
			"API Development",
			"MongoDB and NoSQL",
			"Frontend with React",
			"Development best practices",
		},
		Navigation: NavigationLabels(ptypes.LangEN),
		Sections:   SectionLabels(ptypes.LangEN),
	}
}
