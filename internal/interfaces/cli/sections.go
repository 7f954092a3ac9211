package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/DevFolio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/DevFolio/pkg/client"
	"github.com/turtacn/DevFolio/pkg/errors"
	ptypes "github.com/turtacn/DevFolio/pkg/types/portfolio"
)

// ─────────────────────────────────────────────────────────────────────────────
// Table renderings.  JSON output keeps the wire records unchanged.
// ─────────────────────────────────────────────────────────────────────────────

type skillTable struct {
	lang  ptypes.Lang
	items []ptypes.Skill
}

func (t skillTable) MarshalJSON() ([]byte, error) { return json.Marshal(t.items) }
func (t skillTable) TableHeaders() []string       { return []string{"ID", "CATEGORY", "ORDER", "TECHNOLOGIES"} }

func (t skillTable) TableRows() [][]string {
	rows := make([][]string, 0, len(t.items))
	for _, s := range t.items {
		rows = append(rows, []string{
			s.ID.String(),
			s.Category.Resolve(t.lang, ""),
			strconv.Itoa(int(s.Order)),
			strings.Join(s.Technologies, ", "),
		})
	}
	return rows
}

type projectTable struct {
	lang  ptypes.Lang
	items []ptypes.Project
}

func (t projectTable) MarshalJSON() ([]byte, error) { return json.Marshal(t.items) }
func (t projectTable) TableHeaders() []string {
	return []string{"ID", "TITLE", "STATUS", "FEATURED", "TECHNOLOGIES"}
}

func (t projectTable) TableRows() [][]string {
	rows := make([][]string, 0, len(t.items))
	for _, p := range t.items {
		rows = append(rows, []string{
			p.Key().String(),
			p.Title.Resolve(t.lang, ""),
			string(p.Status),
			strconv.FormatBool(bool(p.Featured)),
			strings.Join(p.Technologies, ", "),
		})
	}
	return rows
}

type educationTable struct {
	lang  ptypes.Lang
	items []ptypes.Education
}

func (t educationTable) MarshalJSON() ([]byte, error) { return json.Marshal(t.items) }
func (t educationTable) TableHeaders() []string {
	return []string{"ID", "INSTITUTION", "DEGREE", "PERIOD", "STATUS"}
}

func (t educationTable) TableRows() [][]string {
	rows := make([][]string, 0, len(t.items))
	for _, e := range t.items {
		rows = append(rows, []string{
			e.ID.String(),
			e.Institution.Resolve(t.lang, ""),
			e.Degree.Resolve(t.lang, ""),
			e.Period.Resolve(t.lang, ""),
			e.Status.Resolve(t.lang, ""),
		})
	}
	return rows
}

// textTable renders single-text records such as goals and learning items.
type textTable struct {
	header string
	items  interface{}
	ids    []string
	texts  []string
}

func (t textTable) MarshalJSON() ([]byte, error) { return json.Marshal(t.items) }
func (t textTable) TableHeaders() []string       { return []string{"ID", t.header} }

func (t textTable) TableRows() [][]string {
	rows := make([][]string, len(t.texts))
	for i := range t.texts {
		rows[i] = []string{t.ids[i], t.texts[i]}
	}
	return rows
}

func goalTable(lang ptypes.Lang, goals []ptypes.Goal) textTable {
	t := textTable{header: "GOAL", items: goals}
	for _, g := range goals {
		t.ids = append(t.ids, g.ID.String())
		t.texts = append(t.texts, g.Goal.Resolve(lang, ""))
	}
	return t
}

func learningTable(lang ptypes.Lang, items []ptypes.CurrentLearning) textTable {
	t := textTable{header: "ITEM", items: items}
	for _, l := range items {
		t.ids = append(t.ids, l.ID.String())
		t.texts = append(t.texts, l.Item.Resolve(lang, ""))
	}
	return t
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// addLangFlag registers --lang on cmd and returns a parser for its value.
func addLangFlag(cmd *cobra.Command) func() (ptypes.Lang, error) {
	raw := cmd.PersistentFlags().String("lang", string(ptypes.LangPT), "display language (pt, en)")
	return func() (ptypes.Lang, error) {
		l, ok := ptypes.ParseLang(strings.ToLower(strings.TrimSpace(*raw)))
		if !ok {
			return "", errors.New(errors.CodeUnsupportedLang,
				fmt.Sprintf("unsupported language %q; expected pt or en", *raw))
		}
		return l, nil
	}
}

// listCmd builds a "list" subcommand printing what fetch returns.
func listCmd(short string, fetch func(cmd *cobra.Command, c *client.Client) (interface{}, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			out, err := fetch(cmd, cliCtx.Client)
			if err != nil {
				return err
			}
			return PrintResult(cmd, out)
		},
	}
}

// deleteCmd builds a "delete <id>" subcommand.
func deleteCmd(noun string, del func(cmd *cobra.Command, c *client.Client, id string) client.Result[ptypes.Message]) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			res := del(cmd, cliCtx.Client, args[0])
			if res.Failed() {
				return resultError(res.Code, res.Error)
			}
			cliCtx.Logger.Info(noun+" deleted", logging.String("id", args[0]))
			msg := res.Data.Message
			if msg == "" {
				msg = fmt.Sprintf("%s %s deleted", noun, args[0])
			}
			PrintSuccess(cmd, msg)
			return nil
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────────────────────────────────────

// NewSkillsCmd manages skill groups.
func NewSkillsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "skills", Short: "List and manage skill groups"}
	lang := addLangFlag(cmd)

	list := listCmd("List skill groups", func(cmd *cobra.Command, c *client.Client) (interface{}, error) {
		l, err := lang()
		if err != nil {
			return nil, err
		}
		res := c.Skills().List(cmd.Context())
		if res.Failed() {
			return nil, resultError(res.Code, res.Error)
		}
		return skillTable{lang: l, items: res.Data}, nil
	})

	var (
		categoryPT string
		categoryEN string
		techs      []string
		order      int
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a skill group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			l, err := lang()
			if err != nil {
				return err
			}
			if categoryEN == "" {
				categoryEN = categoryPT
			}
			res := cliCtx.Client.Skills().Create(cmd.Context(), &ptypes.SkillCreate{
				Category:     ptypes.MultiLanguageField{PT: categoryPT, EN: categoryEN},
				Technologies: techs,
				Order:        order,
			})
			if res.Failed() {
				return resultError(res.Code, res.Error)
			}
			cliCtx.Logger.Info("skill group created", logging.String("id", res.Data.ID.String()))
			return PrintResult(cmd, skillTable{lang: l, items: []ptypes.Skill{res.Data}})
		},
	}
	add.Flags().StringVar(&categoryPT, "category-pt", "", "category name in Portuguese (required)")
	add.Flags().StringVar(&categoryEN, "category-en", "", "category name in English (default: same as --category-pt)")
	add.Flags().StringSliceVar(&techs, "tech", []string{}, "technology, repeatable or comma separated")
	add.Flags().IntVar(&order, "order", 0, "display order")
	_ = add.MarkFlagRequired("category-pt")

	del := deleteCmd("skill group", func(cmd *cobra.Command, c *client.Client, id string) client.Result[ptypes.Message] {
		return c.Skills().Delete(cmd.Context(), id)
	})

	cmd.AddCommand(list, add, del)
	return cmd
}

// NewProjectsCmd lists and deletes projects.
func NewProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "projects", Short: "List and manage projects"}
	lang := addLangFlag(cmd)

	var featured bool
	list := listCmd("List projects", func(cmd *cobra.Command, c *client.Client) (interface{}, error) {
		l, err := lang()
		if err != nil {
			return nil, err
		}
		var res client.Result[[]ptypes.Project]
		if featured {
			res = c.Projects().Featured(cmd.Context())
		} else {
			res = c.Projects().List(cmd.Context())
		}
		if res.Failed() {
			return nil, resultError(res.Code, res.Error)
		}
		return projectTable{lang: l, items: res.Data}, nil
	})
	list.Flags().BoolVar(&featured, "featured", false, "only featured projects")

	del := deleteCmd("project", func(cmd *cobra.Command, c *client.Client, id string) client.Result[ptypes.Message] {
		return c.Projects().Delete(cmd.Context(), id)
	})

	cmd.AddCommand(list, del)
	return cmd
}

// NewEducationCmd lists education entries.
func NewEducationCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "education", Short: "List education entries"}
	lang := addLangFlag(cmd)

	cmd.AddCommand(listCmd("List education entries", func(cmd *cobra.Command, c *client.Client) (interface{}, error) {
		l, err := lang()
		if err != nil {
			return nil, err
		}
		res := c.Education().List(cmd.Context())
		if res.Failed() {
			return nil, resultError(res.Code, res.Error)
		}
		return educationTable{lang: l, items: res.Data}, nil
	}))
	return cmd
}

// NewGoalsCmd lists goals.
func NewGoalsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "goals", Short: "List goals"}
	lang := addLangFlag(cmd)

	cmd.AddCommand(listCmd("List goals", func(cmd *cobra.Command, c *client.Client) (interface{}, error) {
		l, err := lang()
		if err != nil {
			return nil, err
		}
		res := c.Goals().List(cmd.Context())
		if res.Failed() {
			return nil, resultError(res.Code, res.Error)
		}
		return goalTable(l, res.Data), nil
	}))
	return cmd
}

// NewLearningCmd lists current learning items.
func NewLearningCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "learning", Short: "List current learning items"}
	lang := addLangFlag(cmd)

	cmd.AddCommand(listCmd("List current learning items", func(cmd *cobra.Command, c *client.Client) (interface{}, error) {
		l, err := lang()
		if err != nil {
			return nil, err
		}
		res := c.CurrentLearning().List(cmd.Context())
		if res.Failed() {
			return nil, resultError(res.Code, res.Error)
		}
		return learningTable(l, res.Data), nil
	}))
	return cmd
}
