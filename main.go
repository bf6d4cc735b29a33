package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rental-sim/config"
	"rental-sim/domain"
	httpLayer "rental-sim/http"
	"rental-sim/logger"
	"rental-sim/report"
	"rental-sim/repository"
	"rental-sim/service"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "rental-sim",
		Short:         "Secondary residence rental simulator (LMNP / SCI)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(reportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type app struct {
	cfg       *config.Config
	log       zerolog.Logger
	sims      *service.SimulationService
	scenarios *service.ScenarioService
	closeFn   func()
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	cache, closeFn := newCache(cfg, log)
	sims := service.NewSimulationService(repository.NewSimulationRepositoryMemory(), cache, log)

	return &app{
		cfg:       cfg,
		log:       log,
		sims:      sims,
		scenarios: service.NewScenarioService(sims),
		closeFn:   closeFn,
	}, nil
}

// newCache prefers Redis when configured and reachable, memory otherwise.
func newCache(cfg *config.Config, log zerolog.Logger) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		return repository.NewMockCache(), func() {}
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, using in-memory cache")
		_ = redisCache.Close()
		return repository.NewMockCache(), func() {}
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("using redis cache")
	return redisCache, func() { _ = redisCache.Close() }
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the simulation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.closeFn()
			if port != 0 {
				a.cfg.Port = port
			}
			return a.serve()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (overrides PORT)")
	return cmd
}

func (a *app) serve() error {
	rateLimiter := httpLayer.NewRateLimiter(a.cfg.RateLimit, a.cfg.RateWindow, a.log)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.RouterConfig{
		Loans:       httpLayer.NewLoanHandler(a.log),
		Simulations: httpLayer.NewSimulationHandler(a.sims, a.scenarios, a.log),
		Limiter:     rateLimiter,
		Log:         a.log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.log.Info().Int("port", a.cfg.Port).Msg("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("starting server: %w", err)
	case <-quit:
		a.log.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	a.log.Info().Msg("server exited")
	return nil
}

func reportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "report [scenario.yaml]",
		Short: "Compare Worst/Base/Best scenarios and save a text report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.closeFn()
			if outDir != "" {
				a.cfg.ReportDir = outDir
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return a.report(cmd.Context(), path)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "report directory (overrides REPORT_DIR)")
	return cmd
}

func (a *app) report(ctx context.Context, scenarioPath string) error {
	worst, best := domain.RecommendedWorst(), domain.RecommendedBest()
	if scenarioPath != "" {
		var err error
		worst, best, err = report.LoadScenarioFile(scenarioPath)
		if err != nil {
			return err
		}
	}

	scenarios, err := a.scenarios.Compare(ctx, worst, best)
	if err != nil {
		return fmt.Errorf("simulating scenarios: %w", err)
	}

	if err := report.Render(os.Stdout, scenarios); err != nil {
		return err
	}

	path, err := report.WriteFile(a.cfg.ReportDir, time.Now(), scenarios)
	if err != nil {
		return err
	}
	a.log.Info().Str("path", path).Msg("report saved")
	return nil
}
