package gamelogs

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-dfs-data/internal/domain"
	domainlogs "github.com/preston-bernstein/nba-dfs-data/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/players"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/teams"
	"github.com/preston-bernstein/nba-dfs-data/internal/logging"
	"github.com/preston-bernstein/nba-dfs-data/internal/metrics"
	"github.com/preston-bernstein/nba-dfs-data/internal/providers"
)

// Service coordinates game-log retrieval: it validates season labels, runs
// the decorated provider chain, and recomputes the fantasy-points column on
// every row before handing them back.
type Service struct {
	provider providers.DataProvider
	weights  domainlogs.Weights
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewService constructs a Service around a provider. Zero-valued weights fall
// back to the default scoring table.
func NewService(provider providers.DataProvider, weights domainlogs.Weights, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if weights == (domainlogs.Weights{}) {
		weights = domainlogs.DefaultWeights
	}
	return &Service{
		provider: provider,
		weights:  weights,
		logger:   logger,
		recorder: recorder,
	}
}

// FetchSeason retrieves all player game logs for one season in a single bulk
// call. A season with no rows yet (preseason, typo-free but future label) is
// a valid empty result, not an error.
func (s *Service) FetchSeason(ctx context.Context, label string, seasonType domain.SeasonType) ([]domainlogs.GameLogRow, error) {
	season, err := domain.ParseSeason(label)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := s.provider.FetchSeasonLogs(ctx, season, seasonType)
	if err != nil {
		return nil, err
	}

	scored := s.score(rows)
	s.recorder.RecordRowsFetched("service", season.String(), len(scored))
	if len(scored) == 0 {
		logging.Warn(s.logger, "season returned no game logs",
			logging.FieldSeason, season.String(),
			logging.FieldSeasonType, string(seasonType))
	} else {
		logging.Info(s.logger, "fetched season game logs",
			logging.FieldSeason, season.String(),
			logging.FieldCount, len(scored),
			logging.FieldDurationMS, time.Since(start).Milliseconds())
	}
	return scored, nil
}

// FetchSeasons loops FetchSeason over several labels, reusing the same
// provider chain so pacing applies across seasons. The first failure aborts
// the loop.
func (s *Service) FetchSeasons(ctx context.Context, labels []string, seasonType domain.SeasonType) (map[domain.Season][]domainlogs.GameLogRow, error) {
	out := make(map[domain.Season][]domainlogs.GameLogRow, len(labels))
	for _, label := range labels {
		rows, err := s.FetchSeason(ctx, label, seasonType)
		if err != nil {
			return nil, err
		}
		season, _ := domain.ParseSeason(label)
		out[season] = rows
	}
	return out, nil
}

// FetchPlayerSeason retrieves one player's game log for a season.
func (s *Service) FetchPlayerSeason(ctx context.Context, playerID int, label string, seasonType domain.SeasonType) ([]domainlogs.GameLogRow, error) {
	season, err := domain.ParseSeason(label)
	if err != nil {
		return nil, err
	}
	rows, err := s.provider.FetchPlayerLogs(ctx, playerID, season, seasonType)
	if err != nil {
		return nil, err
	}
	return s.score(rows), nil
}

// Players retrieves the roster listing for a season.
func (s *Service) Players(ctx context.Context, label string) ([]players.Player, error) {
	season, err := domain.ParseSeason(label)
	if err != nil {
		return nil, err
	}
	return s.provider.FetchPlayers(ctx, season)
}

// TeamMetrics retrieves team-level estimated ratings for a season.
func (s *Service) TeamMetrics(ctx context.Context, label string) ([]teams.TeamMetrics, error) {
	season, err := domain.ParseSeason(label)
	if err != nil {
		return nil, err
	}
	return s.provider.FetchTeamMetrics(ctx, season)
}

func (s *Service) score(rows []domainlogs.GameLogRow) []domainlogs.GameLogRow {
	scored := make([]domainlogs.GameLogRow, len(rows))
	for i, r := range rows {
		scored[i] = r.WithFantasyPoints(s.weights)
	}
	return scored
}
