package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/turtacn/DevFolio/pkg/errors"
)

// Output formats accepted by --output.
const (
	OutputText     = "text"
	OutputJSON     = "json"
	OutputYAML     = "yaml"
	OutputTable    = "table"
	OutputMarkdown = "markdown"
)

var outputFormats = []string{OutputText, OutputJSON, OutputYAML, OutputTable, OutputMarkdown}

// markdownWrap is the column at which rendered Markdown wraps.
const markdownWrap = 100

func parseOutputFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if f == "md" {
		f = OutputMarkdown
	}
	for _, known := range outputFormats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.CodeBadRequest,
		fmt.Sprintf("unsupported output format %q; expected one of %s", s, strings.Join(outputFormats, ", ")))
}

func validateQuery(q string) error {
	if q == "" {
		return nil
	}
	if _, err := jsonpath.New(q); err != nil {
		return errors.New(errors.CodeBadRequest, fmt.Sprintf("invalid query %q: %v", q, err))
	}
	return nil
}

// tableProvider is implemented by results that render as a table.
type tableProvider interface {
	TableHeaders() []string
	TableRows() [][]string
}

// markdownProvider is implemented by results with a document form.
type markdownProvider interface {
	Markdown() string
}

// PrintResult outputs data in the format specified by CLIContext.  With
// --query, only the selected part of the JSON form is printed.
func PrintResult(cmd *cobra.Command, data interface{}) error {
	format, query := OutputJSON, ""
	if cliCtx, err := GetCLIContext(cmd); err == nil {
		format, query = cliCtx.OutputFormat, cliCtx.Query
	} else if f, ferr := cmd.Flags().GetString("output"); ferr == nil {
		format = strings.ToLower(f)
	}

	if query != "" {
		selected, err := applyQuery(data, query)
		if err != nil {
			return err
		}
		return printSelection(cmd, format, selected)
	}

	switch format {
	case OutputJSON:
		return printJSON(cmd, data)
	case OutputYAML:
		return printYAML(cmd, data)
	case OutputTable:
		return printTable(cmd, data)
	case OutputMarkdown:
		return printMarkdown(cmd, data)
	default:
		return printText(cmd, data)
	}
}

// printJSON outputs data as indented JSON to stdout.
func printJSON(cmd *cobra.Command, data interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// printYAML outputs the JSON form of data as block-style YAML, so keys keep
// their JSON names and order.
func printYAML(cmd *cobra.Command, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	blockStyle(&doc)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// blockStyle drops the flow and quoting styles JSON input produces.  Scalar
// tags are pinned first so that strings such as "true" stay quoted.
func blockStyle(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		n.Tag = n.ShortTag()
	}
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// printText outputs data as a simple string representation to stdout.
func printText(cmd *cobra.Command, data interface{}) error {
	switch v := data.(type) {
	case string:
		fmt.Fprintln(cmd.OutOrStdout(), v)
	case fmt.Stringer:
		fmt.Fprintln(cmd.OutOrStdout(), v.String())
	case tableProvider:
		fmt.Fprint(cmd.OutOrStdout(), FormatTable(v.TableHeaders(), v.TableRows()))
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", v)
	}
	return nil
}

// printTable outputs data as a table if it implements tableProvider,
// otherwise falls back to text.
func printTable(cmd *cobra.Command, data interface{}) error {
	if tp, ok := data.(tableProvider); ok {
		fmt.Fprint(cmd.OutOrStdout(), FormatTable(tp.TableHeaders(), tp.TableRows()))
		return nil
	}
	return printText(cmd, data)
}

// printMarkdown renders the Markdown form of data for the terminal.  Tables
// become GFM tables; anything else is shown as a JSON code block.  The
// style follows GLAMOUR_STYLE and degrades to plain text off a terminal.
func printMarkdown(cmd *cobra.Command, data interface{}) error {
	var md string
	switch v := data.(type) {
	case markdownProvider:
		md = v.Markdown()
	case tableProvider:
		md = MarkdownTable(v.TableHeaders(), v.TableRows())
	default:
		raw, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		md = "```json\n" + string(raw) + "\n```\n"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithEnvironmentConfig(),
		glamour.WithWordWrap(markdownWrap),
	)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// MarkdownTable renders headers and rows as a GFM table.  Pipes inside cells
// are escaped.
func MarkdownTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	cell := strings.NewReplacer("|", `\|`, "\n", " ")

	var sb strings.Builder
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for i := range headers {
			val := ""
			if i < len(cells) {
				val = cell.Replace(cells[i])
			}
			sb.WriteString(" " + val + " |")
		}
		sb.WriteString("\n")
	}
	writeRow(headers)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(sep)
	for _, row := range rows {
		writeRow(row)
	}
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// --query
// ─────────────────────────────────────────────────────────────────────────────

// applyQuery evaluates a JSONPath expression against the JSON form of data.
func applyQuery(data interface{}, query string) (interface{}, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	out, err := jsonpath.Get(query, doc)
	if err != nil {
		return nil, errors.New(errors.CodeBadRequest, fmt.Sprintf("query %q: %v", query, err))
	}
	return out, nil
}

// printSelection prints a query result.  Structured formats encode it as is;
// the others print scalars bare, one list element per line.
func printSelection(cmd *cobra.Command, format string, v interface{}) error {
	switch format {
	case OutputJSON:
		return printJSON(cmd, v)
	case OutputYAML:
		return printYAML(cmd, v)
	}
	if list, ok := v.([]interface{}); ok {
		for _, item := range list {
			fmt.Fprintln(cmd.OutOrStdout(), scalarText(item))
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), scalarText(v))
	return nil
}

func scalarText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Messages
// ─────────────────────────────────────────────────────────────────────────────

// PrintError writes a formatted error message to stderr.
func PrintError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	code := errors.GetCode(err)
	if code == errors.CodeUnknown {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error [%s]: %s\n", code, errors.Message(err))
}

// PrintSuccess writes a formatted success message to stdout.
func PrintSuccess(cmd *cobra.Command, msg string) {
	fmt.Fprintf(cmd.OutOrStdout(), "OK: %s\n", msg)
}

// FormatTable renders headers and rows as an aligned plain-text table.
// Widths are counted in runes so accented labels line up.
func FormatTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	measure := func(cells []string) {
		for i := 0; i < len(cells) && i < len(widths); i++ {
			if n := len([]rune(cells[i])); n > widths[i] {
				widths[i] = n
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i := range headers {
			if i > 0 {
				sb.WriteString("  ")
			}
			val := ""
			if i < len(cells) {
				val = cells[i]
			}
			if i == len(headers)-1 {
				sb.WriteString(val)
			} else {
				sb.WriteString(padRight(val, widths[i]))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(headers)
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	writeRow(sep)
	for _, row := range rows {
		writeRow(row)
	}
	return sb.String()
}

// padRight pads s with spaces to the given width in runes.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
