package cli

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/turtacn/DevFolio/internal/application/acquisition"
	"github.com/turtacn/DevFolio/internal/domain/portfolio"
	"github.com/turtacn/DevFolio/pkg/errors"
	ptypes "github.com/turtacn/DevFolio/pkg/types/portfolio"
)

// withContext returns a command carrying a CLIContext with the given output
// settings, and its stdout buffer.
func withContext(format, query string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetContext(context.WithValue(context.Background(), cliContextKey{}, &CLIContext{OutputFormat: format, Query: query}))
	return cmd, &out
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"text", OutputText},
		{"JSON", OutputJSON},
		{" yaml ", OutputYAML},
		{"table", OutputTable},
		{"markdown", OutputMarkdown},
		{"md", OutputMarkdown},
	}
	for _, tt := range tests {
		got, err := parseOutputFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := parseOutputFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeBadRequest))
	assert.Contains(t, err.Error(), "markdown")
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, validateQuery(""))
	assert.NoError(t, validateQuery("$.data.skills[*].category"))

	err := validateQuery("$.data[")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeBadRequest))
}

func TestPrintYAML_KeepsJSONNamesAndTypes(t *testing.T) {
	cmd, out := withContext(OutputYAML, "")
	data := map[string]interface{}{
		"isOnline": true,
		"flag":     "true",
		"count":    3,
		"items":    []string{"Go", "SQL"},
	}
	require.NoError(t, PrintResult(cmd, data))

	s := out.String()
	assert.NotContains(t, s, "{", "block style only")
	assert.Contains(t, s, "isOnline: true")
	assert.Contains(t, s, `flag: "true"`)
	assert.Contains(t, s, "- Go")

	var back map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &back))
	assert.Equal(t, true, back["isOnline"])
	assert.Equal(t, "true", back["flag"])
	assert.Equal(t, 3, back["count"])
}

func TestPrintResult_Query(t *testing.T) {
	res := FetchResult{Lang: ptypes.LangEN, Source: acquisition.SourceFallback, Content: &portfolio.Fallback().EN}

	cmd, out := withContext(OutputText, "$.data.skills[*].category")
	require.NoError(t, PrintResult(cmd, res))
	assert.Equal(t, "Backend\nFrontend\nTools\nSoft Skills\n", out.String())

	cmd, out = withContext(OutputText, "$.isOnline")
	require.NoError(t, PrintResult(cmd, res))
	assert.Equal(t, "false\n", out.String())

	cmd, out = withContext(OutputJSON, "$.data.contact")
	require.NoError(t, PrintResult(cmd, res))
	assert.JSONEq(t, `{"email":"pedroballario@gmail.com","linkedin":"https://www.linkedin.com/in/pedro-gomes-ba4825354","github":"https://github.com/gomesdev1"}`, out.String())

	cmd, _ = withContext(OutputText, "$.nope")
	err := PrintResult(cmd, res)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeBadRequest))
}

func TestScalarText(t *testing.T) {
	assert.Equal(t, "null", scalarText(nil))
	assert.Equal(t, "1.5", scalarText(1.5))
	assert.Equal(t, "true", scalarText(true))
	assert.Equal(t, `{"a":1}`, scalarText(map[string]int{"a": 1}))
}

func TestMarkdownTable(t *testing.T) {
	got := MarkdownTable([]string{"ID", "NAME"}, [][]string{{"1", "a|b"}, {"2"}})
	want := "" +
		"| ID | NAME |\n" +
		"| --- | --- |\n" +
		"| 1 | a\\|b |\n" +
		"| 2 |  |\n"
	assert.Equal(t, want, got)
	assert.Empty(t, MarkdownTable(nil, nil))
}

// headings parses md and returns its headings in "## text" form.
func headings(t *testing.T, md string) []string {
	t.Helper()
	src := []byte(md)
	root := goldmark.DefaultParser().Parse(text.NewReader(src))

	var out []string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		var sb strings.Builder
		for c := h.FirstChild(); c != nil; c = c.NextSibling() {
			if txt, ok := c.(*ast.Text); ok {
				sb.Write(txt.Segment.Value(src))
			}
		}
		out = append(out, strings.Repeat("#", h.Level)+" "+sb.String())
		return ast.WalkSkipChildren, nil
	})
	require.NoError(t, err)
	return out
}

func TestFetchResultMarkdown_Structure(t *testing.T) {
	en := portfolio.Fallback().EN
	md := FetchResult{Content: &en}.Markdown()

	assert.Equal(t, []string{
		"# Pedro Gomes",
		"## " + en.Sections.About.FormationTitle,
		"## " + en.Sections.Skills.Title,
		"## " + en.Sections.Skills.CurrentlyLearning,
		"## " + en.Sections.About.GoalsTitle,
		"## " + en.Sections.Projects.Title,
		"### IN DEVELOPMENT",
		"## " + en.Sections.Contact.Title,
	}, headings(t, md))
	assert.Contains(t, md, "- Email: <pedroballario@gmail.com>")
	assert.Contains(t, md, "**Backend**: Java, Spring Boot")
}

func TestFetchResultMarkdown_SkipsEmptySectionsAndShowsNotice(t *testing.T) {
	c := portfolio.Content{
		PersonalInfo: portfolio.PersonalInfo{Name: "Ana Souza", Title: "Engineer"},
		Sections:     portfolio.SectionLabels(ptypes.LangPT),
	}
	notice := &acquisition.Notice{
		NoticeText: portfolio.NoticeLabels(ptypes.LangPT, false),
		Detail:     "Network Error",
	}
	md := FetchResult{Content: &c, Notice: notice}.Markdown()

	assert.Equal(t, []string{"# Ana Souza", "## " + c.Sections.Contact.Title}, headings(t, md))
	assert.True(t, strings.HasPrefix(md, "> **OFFLINE - MODO DEMO**"))
	assert.Contains(t, md, "Detalhes técnicos: Network Error")

	assert.Contains(t, FetchResult{Source: acquisition.SourceFallback}.Markdown(), "source: fallback")
}

func TestPrintMarkdown_RendersForTerminal(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", "notty")
	en := portfolio.Fallback().EN

	cmd, out := withContext(OutputMarkdown, "")
	require.NoError(t, PrintResult(cmd, FetchResult{Content: &en}))
	assert.Contains(t, out.String(), "Pedro Gomes")
	assert.Contains(t, out.String(), "Spring Boot")

	cmd, out = withContext(OutputMarkdown, "")
	require.NoError(t, PrintResult(cmd, skillTable{lang: ptypes.LangEN, items: []ptypes.Skill{{Category: ptypes.Plain("Cloud"), Technologies: []string{"AWS"}}}}))
	assert.Contains(t, out.String(), "Cloud")
	assert.Contains(t, out.String(), "AWS")

	cmd, out = withContext(OutputMarkdown, "")
	require.NoError(t, PrintResult(cmd, map[string]int{"answer": 42}))
	assert.Contains(t, out.String(), "answer")
}

func TestFetchCmd_YAMLAndQuery(t *testing.T) {
	srv := newBackend(t, map[string]http.HandlerFunc{
		"GET /api/health":    jsonBody(`{}`),
		"GET /api/portfolio": jsonBody(portfolioPayload),
	})

	out, _, err := run(t, "--backend", srv.URL, "-o", "yaml", "fetch", "--lang", "en")
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "en", doc["lang"])
	assert.Equal(t, true, doc["isOnline"])

	out, _, err = run(t, "--backend", srv.URL, "-q", "$.data.personalInfo.name", "fetch")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace\n", out)

	_, _, err = run(t, "--backend", srv.URL, "-q", "$[", "fetch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query")
}
