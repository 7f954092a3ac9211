package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/DevFolio/internal/application/acquisition"
	"github.com/turtacn/DevFolio/internal/domain/portfolio"
	"github.com/turtacn/DevFolio/pkg/errors"
	ptypes "github.com/turtacn/DevFolio/pkg/types/portfolio"
)

// FetchResult is the output of folio fetch: the acquisition outcome and the
// content of one language partition.
type FetchResult struct {
	Lang        ptypes.Lang         `json:"lang"`
	Online      bool                `json:"isOnline"`
	Source      acquisition.Source  `json:"source"`
	Error       string              `json:"error,omitempty"`
	CompletedAt time.Time           `json:"completedAt"`
	Notice      *acquisition.Notice `json:"notice,omitempty"`
	Content     *portfolio.Content  `json:"data"`
}

func (r FetchResult) TableHeaders() []string { return []string{"FIELD", "VALUE"} }

func (r FetchResult) TableRows() [][]string {
	rows := [][]string{
		{"source", string(r.Source)},
		{"online", strconv.FormatBool(r.Online)},
	}
	if r.Error != "" {
		rows = append(rows, []string{"error", r.Error})
	}
	if r.Notice != nil {
		rows = append(rows, []string{"notice", r.Notice.Badge})
	}
	if c := r.Content; c != nil {
		rows = append(rows,
			[]string{"name", c.PersonalInfo.Name},
			[]string{"title", c.PersonalInfo.Title},
			[]string{"location", c.PersonalInfo.Location},
			[]string{"email", c.Contact.Email},
			[]string{"skills", strconv.Itoa(len(c.Skills))},
			[]string{"education", strconv.Itoa(len(c.Education))},
			[]string{"projects", strconv.Itoa(len(c.Projects))},
			[]string{"goals", strconv.Itoa(len(c.Goals))},
			[]string{"learning", strconv.Itoa(len(c.CurrentLearning))},
		)
	}
	return rows
}

func (r FetchResult) String() string {
	var sb strings.Builder
	if r.Online {
		sb.WriteString("source: backend (online)\n")
	} else {
		fmt.Fprintf(&sb, "source: %s (offline)\n", r.Source)
	}
	if r.Notice != nil {
		fmt.Fprintf(&sb, "%s: %s\n", r.Notice.Title, r.Notice.Message)
		if r.Notice.Detail != "" {
			fmt.Fprintf(&sb, "  %s: %s\n", r.Notice.DetailsLabel, r.Notice.Detail)
		}
	}
	if c := r.Content; c != nil {
		fmt.Fprintf(&sb, "\n%s\n%s\n%s\n", c.PersonalInfo.Name, c.PersonalInfo.Title, c.PersonalInfo.Description)
		fmt.Fprintf(&sb, "\n%s\n", c.Navigation.Skills)
		for _, g := range c.Skills {
			fmt.Fprintf(&sb, "  %s: %s\n", g.Category, strings.Join(g.Technologies, ", "))
		}
		fmt.Fprintf(&sb, "\n%s\n", c.Navigation.Projects)
		for _, p := range c.Projects {
			fmt.Fprintf(&sb, "  %s [%s]\n", p.Title, p.Status)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// NewFetchCmd runs one acquisition, falling back to the built-in dataset
// exactly like the server does, and prints one language partition.
func NewFetchCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Acquire the portfolio once and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			l, ok := ptypes.ParseLang(strings.ToLower(lang))
			if !ok {
				return errors.New(errors.CodeUnsupportedLang,
					fmt.Sprintf("unsupported language %q; expected pt or en", lang))
			}
			return runFetch(cmd, cliCtx, l)
		},
	}
	cmd.Flags().StringVar(&lang, "lang", string(ptypes.LangPT), "content language (pt, en)")
	return cmd
}

func runFetch(cmd *cobra.Command, cliCtx *CLIContext, lang ptypes.Lang) error {
	svc := acquisition.NewService(cliCtx.Client, nil,
		acquisition.WithLogger(cliCtx.Logger),
		acquisition.WithNoticeDuration(cliCtx.Config.Notice.Duration))
	defer svc.Close()

	st := svc.Acquire(cmd.Context())
	return PrintResult(cmd, FetchResult{
		Lang:        lang,
		Online:      st.IsOnline,
		Source:      st.Source,
		Error:       st.Error,
		CompletedAt: st.CompletedAt,
		Notice:      svc.Notice(lang),
		Content:     st.Data.Partition(lang),
	})
}
