package bref

import "time"

// ProviderName labels this client in logs and metrics.
const ProviderName = "bref"

const (
	defaultBaseURL     = "https://www.basketball-reference.com"
	defaultHTTPTimeout = 30 * time.Second

	// Basketball Reference caps traffic at 20 requests per minute.
	defaultPaceInterval = 3100 * time.Millisecond
	defaultMaxAttempts  = 3

	userAgentHeader = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	tableGameLog = "pgl_basic"
	tableRatings = "ratings"
)

// data-stat attribute names used by the game-log table cells.
const (
	statRanker       = "ranker"
	statDate         = "date_game"
	statTeam         = "team_id"
	statGameLocation = "game_location"
	statOpponent     = "opp_id"
	statGameResult   = "game_result"
	statMinutes      = "mp"
	statFGM          = "fg"
	statFGA          = "fga"
	statFG3M         = "fg3"
	statFG3A         = "fg3a"
	statFTM          = "ft"
	statFTA          = "fta"
	statOffReb       = "orb"
	statDefReb       = "drb"
	statRebounds     = "trb"
	statAssists      = "ast"
	statSteals       = "stl"
	statBlocks       = "blk"
	statTurnovers    = "tov"
	statFouls        = "pf"
	statPoints       = "pts"
	statPlusMinus    = "plus_minus"
)

// data-stat attribute names used by the ratings table cells.
const (
	statTeamName  = "team_name"
	statWins      = "wins"
	statLosses    = "losses"
	statOffRating = "off_rtg"
	statDefRating = "def_rtg"
	statNetRating = "net_rtg"
)
