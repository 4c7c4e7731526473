package providers

import (
	"context"

	"github.com/preston-bernstein/nba-dfs-data/internal/domain"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/players"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/teams"
)

// GameLogProvider defines how upstream game-log data is fetched and
// normalized. FetchSeasonLogs is the bulk league-wide call and is preferred
// when pulling a whole season; FetchPlayerLogs retrieves a single player's
// season.
type GameLogProvider interface {
	FetchSeasonLogs(ctx context.Context, season domain.Season, seasonType domain.SeasonType) ([]gamelogs.GameLogRow, error)
	FetchPlayerLogs(ctx context.Context, playerID int, season domain.Season, seasonType domain.SeasonType) ([]gamelogs.GameLogRow, error)
}

// PlayerProvider fetches the league's roster listing.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context, season domain.Season) ([]players.Player, error)
}

// TeamMetricsProvider fetches team-level estimated ratings.
type TeamMetricsProvider interface {
	FetchTeamMetrics(ctx context.Context, season domain.Season) ([]teams.TeamMetrics, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameLogProvider
	PlayerProvider
	TeamMetricsProvider
}
