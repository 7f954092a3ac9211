// Command apiserver serves the acquired portfolio over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/turtacn/DevFolio/internal/application/acquisition"
	"github.com/turtacn/DevFolio/internal/config"
	"github.com/turtacn/DevFolio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/DevFolio/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/turtacn/DevFolio/internal/interfaces/http"
	"github.com/turtacn/DevFolio/internal/interfaces/http/handlers"
	"github.com/turtacn/DevFolio/internal/interfaces/http/middleware"
	"github.com/turtacn/DevFolio/pkg/client"
)

// Build-time variables injected via ldflags.
var version = "dev"

// rateLimitCleanup is how often idle rate limit buckets are evicted.
const rateLimitCleanup = 10 * time.Minute

func main() {
	configPath := flag.String("config", "", "path to configuration file (default: search ./folio.yaml, ./configs, /etc/folio)")
	flag.Parse()

	opts := []config.LoadOption{config.WithSearchPaths(".", "configs", "/etc/folio")}
	if *configPath != "" {
		opts = []config.LoadOption{config.WithConfigPath(*configPath)}
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "apiserver: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "apiserver: logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)
	defer func() { _ = logging.Sync(logger) }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *configPath, logger); err != nil {
		logger.Error("apiserver terminated", logging.Err(err))
		_ = logging.Sync(logger)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, configPath string, logger logging.Logger) error {
	logger.Info("starting DevFolio API server",
		logging.String("version", version),
		logging.String("addr", cfg.Server.Addr()),
		logging.String("backend", cfg.Backend.Origin))

	// Metrics
	var (
		appMetrics     *prometheus.AppMetrics
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
			Namespace:            cfg.Metrics.Namespace,
			EnableProcessMetrics: cfg.Metrics.Runtime,
			EnableGoMetrics:      cfg.Metrics.Runtime,
		}, logger)
		if err != nil {
			return err
		}
		appMetrics = prometheus.NewAppMetrics(collector)
		metricsHandler = collector.Handler()
	}

	// API client
	clientOpts := []client.Option{
		client.WithTimeout(cfg.Backend.Timeout),
		client.WithUserAgent(cfg.Backend.UserAgent),
		client.WithLogger(logging.ClientLogger(logger)),
	}
	if appMetrics != nil {
		clientOpts = append(clientOpts, client.WithObserver(prometheus.ClientObserver(appMetrics)))
	}
	apiClient, err := client.NewClient(cfg.Backend.Origin, clientOpts...)
	if err != nil {
		return err
	}

	// Acquisition
	svcOpts := []acquisition.Option{
		acquisition.WithLogger(logger),
		acquisition.WithNoticeDuration(cfg.Notice.Duration),
	}
	if appMetrics != nil {
		svcOpts = append(svcOpts, acquisition.WithMetrics(appMetrics))
	}
	svc := acquisition.NewService(apiClient, nil, svcOpts...)
	defer svc.Close()

	// HTTP
	cors := middleware.DefaultCORSConfig(cfg.Server.CORS.AllowedOrigins...)
	routerCfg := httpserver.RouterConfig{
		PortfolioHandler: handlers.NewPortfolioHandler(svc, logger),
		HealthHandler: handlers.NewHealthHandler(version,
			[]handlers.HealthChecker{&acquisitionReadiness{svc: svc}},
			[]handlers.HealthChecker{&backendProbe{client: apiClient}}),
		CORS:    &cors,
		Logging: middleware.DefaultLoggingConfig(),
		Logger:  logger,
		Mode:    cfg.Server.Mode,
	}
	if cfg.Server.RateLimit.Enabled {
		limiter := middleware.NewTokenBucketLimiter(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst, rateLimitCleanup)
		defer limiter.Stop()
		routerCfg.RateLimiter = limiter
	}
	if appMetrics != nil {
		routerCfg.Metrics = appMetrics
		routerCfg.MetricsHandler = metricsHandler
		routerCfg.MetricsPath = cfg.Metrics.Path
	}

	srv := httpserver.NewServer(httpserver.ServerConfig{
		Addr:            cfg.Server.Addr(),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, httpserver.NewRouter(routerCfg), logger)

	// Only the log level is reloaded; everything else needs a restart.
	if configPath != "" {
		err := config.Watch(configPath, func(c *config.Config) {
			if logging.SetLevel(logger, c.Log.Level) {
				logger.Info("log level reloaded", logging.String("level", c.Log.Level))
			}
		}, func(err error) {
			logger.Warn("ignoring invalid config change", logging.Err(err))
		})
		if err != nil {
			logger.Warn("config watch disabled", logging.Err(err))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		st := svc.Acquire(gctx)
		logger.Info("initial acquisition finished",
			logging.String("source", string(st.Source)),
			logging.Bool("online", st.IsOnline))
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		svc.Close()
		return srv.Stop(context.Background())
	})
	return g.Wait()
}
