package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/preston-bernstein/nba-dfs-data/internal/config"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain"
	domainlogs "github.com/preston-bernstein/nba-dfs-data/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/salaries"
	"github.com/preston-bernstein/nba-dfs-data/internal/export"
	"github.com/preston-bernstein/nba-dfs-data/internal/logging"
	"github.com/preston-bernstein/nba-dfs-data/internal/providers/bref"
)

const appVersion = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bref:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		players      []string
		seasonLabel  string
		seasonType   string
		teamRatings  bool
		outDir       string
		outFormat    string
	)
	flag.StringSliceVar(&players, "player", nil, "player name to fetch game logs for (repeatable)")
	flag.StringVar(&seasonLabel, "season", "", "season label, e.g. 2024-25")
	flag.StringVar(&seasonType, "season-type", "regular", "season type: regular or playoffs")
	flag.BoolVar(&teamRatings, "team-ratings", false, "also fetch the league's team ratings table")
	flag.StringVar(&outDir, "out", "", "output directory (overrides OUTPUT_DIR)")
	flag.StringVar(&outFormat, "format", "", "output format: csv or json (overrides OUTPUT_FORMAT)")
	flag.Parse()

	if len(players) == 0 && !teamRatings {
		return errors.New("nothing to fetch: pass --player and/or --team-ratings")
	}
	if seasonLabel == "" {
		return errors.New("--season is required")
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
	season, err := domain.ParseSeason(seasonLabel)
	if err != nil {
		return err
	}
	st, err := domain.ParseSeasonType(seasonType)
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

	client := bref.NewClient(bref.Config{
		BaseURL:      cfg.Bref.BaseURL,
		Timeout:      time.Duration(cfg.Bref.Timeout),
		PaceInterval: time.Duration(cfg.Bref.PaceInterval),
		MaxAttempts:  cfg.Bref.RetryAttempts,
		Logger:       logger,
	})

	for _, player := range players {
		rows, err := client.PlayerGameLog(ctx, player, season, st)
		if err != nil {
			return err
		}
		for i := range rows {
			rows[i] = rows[i].WithFantasyPoints(domainlogs.DraftKingsClassic)
		}
		path := export.PlayerLogPath(cfg.Output.Dir, salaries.NormalizeName(player), season, format)
		if err := export.WriteGameLogs(path, format, rows); err != nil {
			return err
		}
		logging.Info(logger, "wrote player game logs",
			logging.FieldSeason, season.String(),
			logging.FieldPath, path,
			logging.FieldCount, len(rows))
	}

	if teamRatings {
		ratings, err := client.TeamRatings(ctx, season)
		if err != nil {
			return err
		}
		path := export.TeamMetricsPath(cfg.Output.Dir, season, format)
		if err := export.WriteTeamMetrics(path, format, ratings); err != nil {
			return err
		}
		logging.Info(logger, "wrote team ratings",
			logging.FieldSeason, season.String(),
			logging.FieldPath, path,
			logging.FieldCount, len(ratings))
	}
	return nil
}
