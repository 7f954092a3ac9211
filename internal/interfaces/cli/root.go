// Package cli implements the folio command line client.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/DevFolio/internal/config"
	"github.com/turtacn/DevFolio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/DevFolio/pkg/client"
	"github.com/turtacn/DevFolio/pkg/errors"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// BuildInfo holds version information injected at build time.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("folio %s (commit: %s, built: %s)", b.Version, b.Commit, b.BuildDate)
}

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath   string
	Backend      string
	LogLevel     string
	OutputFormat string
	Query        string
	Verbose      bool
	Timeout      time.Duration
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	Client       *client.Client
	OutputFormat string
	Query        string
	Verbose      bool
}

// NewRootCommand creates the root command with its global flags and every
// subcommand.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "DevFolio CLI: inspect and manage portfolio content",
		Long: "folio talks to the portfolio REST API. It probes the backend, runs a full\n" +
			"acquisition with fallback to the built-in dataset, and lists or edits the\n" +
			"individual portfolio sections.",
		Version: BuildInfo{Version, GitCommit, BuildDate}.String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: search ./folio.yaml, ~/.folio, /etc/folio)")
	pf.StringVar(&opts.Backend, "backend", "", "backend origin, e.g. https://api.example.com (overrides FOLIO_BACKEND_ORIGIN)")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", OutputText, "output format ("+strings.Join(outputFormats, ", ")+")")
	pf.StringVarP(&opts.Query, "query", "q", "", "JSONPath applied to the JSON form of the result, e.g. '$.data.skills[*].category'")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")
	pf.DurationVar(&opts.Timeout, "timeout", config.DefaultBackendTimeout, "per-request timeout")

	cmd.AddCommand(
		NewVersionCmd(),
		NewHealthCmd(),
		NewFetchCmd(),
		NewSkillsCmd(),
		NewProjectsCmd(),
		NewEducationCmd(),
		NewGoalsCmd(),
		NewLearningCmd(),
	)
	return cmd
}

// persistentPreRun initializes config, logger, and client, then stores CLIContext.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	format, err := parseOutputFormat(opts.OutputFormat)
	if err != nil {
		return err
	}
	if err := validateQuery(opts.Query); err != nil {
		return err
	}

	cfg, err := initConfig(cmd, opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger, err := initLogger(opts)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	apiClient, err := initClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("client initialization failed: %w", err)
	}

	cliCtx := &CLIContext{
		Config:       cfg,
		Logger:       logger,
		Client:       apiClient,
		OutputFormat: format,
		Query:        opts.Query,
		Verbose:      opts.Verbose,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, cliContextKey{}, cliCtx))
	return nil
}

// initConfig loads configuration with priority: flags > env > file > defaults.
func initConfig(cmd *cobra.Command, opts *RootOptions) (*config.Config, error) {
	overrides := map[string]interface{}{
		"backend.origin": opts.Backend,
	}
	if cmd.Flags().Changed("timeout") {
		overrides["backend.timeout"] = opts.Timeout
	}

	loadOpts := []config.LoadOption{config.WithOverrides(overrides)}
	if opts.ConfigPath != "" {
		loadOpts = append(loadOpts, config.WithConfigPath(opts.ConfigPath))
	} else {
		loadOpts = append(loadOpts, config.WithSearchPaths(defaultSearchPaths()...))
	}
	return config.Load(loadOpts...)
}

func defaultSearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".folio"))
	}
	return append(paths, "/etc/folio")
}

// initLogger creates a logger configured for CLI usage (output to stderr).
func initLogger(opts *RootOptions) (logging.Logger, error) {
	level := strings.ToLower(opts.LogLevel)
	if _, ok := logging.ParseLevel(level); !ok {
		return nil, errors.New(errors.CodeBadRequest, fmt.Sprintf("unknown log level %q", opts.LogLevel))
	}
	if opts.Verbose {
		level = logging.LevelDebug
	}

	return logging.NewLogger(logging.LogConfig{
		Level:            level,
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	})
}

// initClient creates an API client from configuration.
func initClient(cfg *config.Config, logger logging.Logger) (*client.Client, error) {
	return client.NewClient(cfg.Backend.Origin,
		client.WithTimeout(cfg.Backend.Timeout),
		client.WithUserAgent(cfg.Backend.UserAgent),
		client.WithLogger(logging.ClientLogger(logger)),
	)
}

// GetCLIContext extracts CLIContext from a cobra command's context.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.Internal("command context is nil")
	}

	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, errors.Internal("CLIContext not found in command context")
	}
	return cliCtx, nil
}

// Execute is the main entry point for the CLI application.
func Execute() error {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		PrintError(rootCmd, err)
		return err
	}
	return nil
}

// resultError turns a failed client call into an error carrying its code.
func resultError(code errors.ErrorCode, msg string) error {
	if code == "" {
		code = errors.CodeUnknown
	}
	return errors.New(code, msg)
}
