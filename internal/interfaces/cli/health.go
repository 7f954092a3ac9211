package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/DevFolio/internal/infrastructure/monitoring/logging"
)

// HealthResult is the output of folio health.
type HealthResult struct {
	Origin  string `json:"origin"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (r HealthResult) String() string {
	s := fmt.Sprintf("%s: %s", r.Origin, r.Status)
	if r.Message != "" {
		s += " (" + r.Message + ")"
	}
	return s
}

func (r HealthResult) TableHeaders() []string { return []string{"ORIGIN", "STATUS", "MESSAGE"} }

func (r HealthResult) TableRows() [][]string {
	return [][]string{{r.Origin, r.Status, r.Message}}
}

// NewHealthCmd probes GET /api/health.  An unreachable backend is an error.
func NewHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the backend health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			return runHealth(cmd, cliCtx)
		},
	}
}

func runHealth(cmd *cobra.Command, cliCtx *CLIContext) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res := cliCtx.Client.HealthCheck(ctx)
	if res.Failed() {
		cliCtx.Logger.Debug("health check failed", logging.String("error", res.Error))
		return resultError(res.Code, res.Error)
	}

	status := res.Data.Status
	if status == "" {
		status = "ok"
	}
	return PrintResult(cmd, HealthResult{
		Origin:  cliCtx.Client.Origin(),
		Status:  status,
		Message: res.Data.Message,
	})
}
