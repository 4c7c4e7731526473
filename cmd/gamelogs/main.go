package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	appgamelogs "github.com/preston-bernstein/nba-dfs-data/internal/app/gamelogs"
	"github.com/preston-bernstein/nba-dfs-data/internal/config"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain"
	domainlogs "github.com/preston-bernstein/nba-dfs-data/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-dfs-data/internal/export"
	"github.com/preston-bernstein/nba-dfs-data/internal/logging"
	"github.com/preston-bernstein/nba-dfs-data/internal/metrics"
	"github.com/preston-bernstein/nba-dfs-data/internal/providers"
	"github.com/preston-bernstein/nba-dfs-data/internal/providers/statsnba"
)

const appVersion = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gamelogs:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		seasonLabels []string
		seasonType   string
		outDir       string
		outFormat    string
		scoringName  string
	)
	flag.StringSliceVar(&seasonLabels, "season", nil, "season label to fetch, e.g. 2024-25 (repeatable)")
	flag.StringVar(&seasonType, "season-type", "regular", "season type: regular or playoffs")
	flag.StringVar(&outDir, "out", "", "output directory (overrides OUTPUT_DIR)")
	flag.StringVar(&outFormat, "format", "", "output format: csv or json (overrides OUTPUT_FORMAT)")
	flag.StringVar(&scoringName, "scoring", "default", "scoring table: default or draftkings")
	flag.Parse()

	if len(seasonLabels) == 0 {
		return errors.New("at least one --season is required")
	}

	cfg := config.Load()
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if outFormat != "" {
		cfg.Output.Format = outFormat
	}

	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	st, err := domain.ParseSeasonType(seasonType)
	if err != nil {
		return err
	}
	weights, err := resolveWeights(scoringName)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nba-dfs-data",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, promHandler, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("telemetry setup: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logging.Error(logger, "telemetry shutdown failed", err)
		}
	}()
	if promHandler != nil {
		go serveMetrics(cfg.Metrics.Port, promHandler, logger)
	}

	provider := buildProvider(cfg.Stats, logger, recorder)
	svc := appgamelogs.NewService(provider, weights, logger, recorder)

	for _, label := range seasonLabels {
		rows, err := svc.FetchSeason(ctx, label, st)
		if err != nil {
			return err
		}
		path := export.GameLogPath(cfg.Output.Dir, domain.Season(label), format)
		if err := export.WriteGameLogs(path, format, rows); err != nil {
			return err
		}
		logging.Info(logger, "wrote game logs",
			logging.FieldSeason, label,
			logging.FieldPath, path,
			logging.FieldCount, len(rows))
	}
	return nil
}

func buildProvider(cfg config.StatsConfig, logger *slog.Logger, recorder *metrics.Recorder) providers.DataProvider {
	client := statsnba.NewClient(statsnba.Config{
		BaseURL:  cfg.BaseURL,
		LeagueID: cfg.LeagueID,
		Timeout:  time.Duration(cfg.Timeout),
	})
	paced := providers.NewRateLimitedProvider(client, time.Duration(cfg.PaceInterval), logger)
	return providers.NewRetryingProvider(paced, logger, recorder, statsnba.ProviderName, cfg.RetryAttempts, time.Duration(cfg.RetryBackoff))
}

func resolveWeights(name string) (domainlogs.Weights, error) {
	switch name {
	case "default", "":
		return domainlogs.DefaultWeights, nil
	case "draftkings", "dk":
		return domainlogs.DraftKingsClassic, nil
	default:
		return domainlogs.Weights{}, fmt.Errorf("unknown scoring table %q", name)
	}
}

func serveMetrics(port string, handler http.Handler, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		logging.Error(logger, "metrics server stopped", err)
	}
}
