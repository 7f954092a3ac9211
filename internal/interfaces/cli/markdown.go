package cli

import (
	"fmt"
	"strings"

	"github.com/turtacn/DevFolio/internal/domain/portfolio"
)

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`",
	"[", `\[`, "]", `\]`, "#", `\#`, "<", `\<`, ">", `\>`,
)

func mdText(s string) string { return mdEscaper.Replace(s) }

// Markdown renders the partition as a one-page résumé, using the section
// headings of its language.  Empty sections are left out.
func (r FetchResult) Markdown() string {
	var sb strings.Builder
	c := r.Content

	if r.Notice != nil {
		fmt.Fprintf(&sb, "> **%s** %s\n", mdText(r.Notice.Badge), mdText(r.Notice.Message))
		if r.Notice.Detail != "" {
			fmt.Fprintf(&sb, ">\n> %s: %s\n", mdText(r.Notice.DetailsLabel), mdText(r.Notice.Detail))
		}
		sb.WriteString("\n")
	}
	if c == nil {
		fmt.Fprintf(&sb, "_source: %s_\n", r.Source)
		return sb.String()
	}

	writeContentMarkdown(&sb, c)
	return sb.String()
}

func writeContentMarkdown(sb *strings.Builder, c *portfolio.Content) {
	info := c.PersonalInfo
	fmt.Fprintf(sb, "# %s\n\n", mdText(info.Name))
	fmt.Fprintf(sb, "**%s**", mdText(info.Title))
	if info.Subtitle != "" {
		fmt.Fprintf(sb, " | %s", mdText(info.Subtitle))
	}
	sb.WriteString("\n\n")
	if info.Description != "" {
		fmt.Fprintf(sb, "%s\n\n", mdText(info.Description))
	}
	for _, v := range []string{info.Location, info.Status} {
		if v != "" {
			fmt.Fprintf(sb, "- %s\n", mdText(v))
		}
	}

	sec := c.Sections
	if len(c.Education) > 0 {
		heading(sb, sec.About.FormationTitle)
		for _, e := range c.Education {
			fmt.Fprintf(sb, "- **%s**, %s", mdText(e.Degree), mdText(e.Institution))
			if e.Period != "" {
				fmt.Fprintf(sb, " (%s)", mdText(e.Period))
			}
			if e.Status != "" {
				fmt.Fprintf(sb, ": %s", mdText(e.Status))
			}
			sb.WriteString("\n")
		}
	}

	if len(c.Skills) > 0 {
		heading(sb, sec.Skills.Title)
		for _, g := range c.Skills {
			fmt.Fprintf(sb, "- **%s**: %s\n", mdText(g.Category), mdText(strings.Join(g.Technologies, ", ")))
		}
	}
	bullets(sb, sec.Skills.CurrentlyLearning, c.CurrentLearning)
	bullets(sb, sec.About.GoalsTitle, c.Goals)

	if len(c.Projects) > 0 {
		heading(sb, sec.Projects.Title)
		for _, p := range c.Projects {
			fmt.Fprintf(sb, "\n### %s\n\n", mdText(p.Title))
			if p.Description != "" {
				fmt.Fprintf(sb, "%s\n\n", mdText(p.Description))
			}
			meta := []string{"`" + p.Status + "`"}
			if len(p.Technologies) > 0 {
				meta = append(meta, mdText(strings.Join(p.Technologies, ", ")))
			}
			fmt.Fprintf(sb, "%s\n", strings.Join(meta, " | "))
		}
	}

	heading(sb, sec.Contact.Title)
	ct := c.Contact
	if ct.Email != "" {
		fmt.Fprintf(sb, "- Email: <%s>\n", ct.Email)
	}
	if ct.LinkedIn != "" {
		fmt.Fprintf(sb, "- LinkedIn: <%s>\n", ct.LinkedIn)
	}
	if ct.GitHub != "" {
		fmt.Fprintf(sb, "- GitHub: <%s>\n", ct.GitHub)
	}
}

func heading(sb *strings.Builder, title string) {
	fmt.Fprintf(sb, "\n## %s\n\n", mdText(title))
}

func bullets(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	heading(sb, title)
	for _, it := range items {
		fmt.Fprintf(sb, "- %s\n", mdText(it))
	}
}
