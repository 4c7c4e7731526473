package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-dfs-data/internal/domain"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/players"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/teams"
)

const defaultPaceInterval = 600 * time.Millisecond

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval
// between outbound calls, independent of any retry state in wrappers below
// it. The stats endpoint throttles aggressively; pacing keeps bulk season
// loops under its quota.
type rateLimitedProvider struct {
	next    DataProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that spaces calls at least
// interval apart. The first call is not delayed.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = defaultPaceInterval
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "pacing wait canceled", "err", err)
		return err
	}
	return nil
}

func (p *rateLimitedProvider) FetchSeasonLogs(ctx context.Context, season domain.Season, seasonType domain.SeasonType) ([]gamelogs.GameLogRow, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchSeasonLogs(ctx, season, seasonType)
}

func (p *rateLimitedProvider) FetchPlayerLogs(ctx context.Context, playerID int, season domain.Season, seasonType domain.SeasonType) ([]gamelogs.GameLogRow, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchPlayerLogs(ctx, playerID, season, seasonType)
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context, season domain.Season) ([]players.Player, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchPlayers(ctx, season)
}

func (p *rateLimitedProvider) FetchTeamMetrics(ctx context.Context, season domain.Season) ([]teams.TeamMetrics, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTeamMetrics(ctx, season)
}
