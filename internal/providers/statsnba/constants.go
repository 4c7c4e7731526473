package statsnba

import "time"

// ProviderName labels this client in logs and metrics.
const ProviderName = "statsnba"

const (
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 30 * time.Second
	defaultLeagueID    = "00"

	endpointLeagueGameLog        = "/leaguegamelog"
	endpointPlayerGameLog        = "/playergamelog"
	endpointCommonAllPlayers     = "/commonallplayers"
	endpointTeamEstimatedMetrics = "/teamestimatedmetrics"

	// The stats endpoint rejects requests without browser-like headers.
	refererHeader   = "https://www.nba.com/"
	userAgentHeader = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Column names shared by the game-log result sets. The per-player endpoint
// mixes header casing (Player_ID, Game_ID), so lookups are case-insensitive.
const (
	colPlayerID   = "PLAYER_ID"
	colPlayerName = "PLAYER_NAME"
	colTeamID     = "TEAM_ID"
	colTeamAbbrev = "TEAM_ABBREVIATION"
	colGameID     = "GAME_ID"
	colGameDate   = "GAME_DATE"
	colMatchup    = "MATCHUP"
	colWinLoss    = "WL"
	colMinutes    = "MIN"
	colFGM        = "FGM"
	colFGA        = "FGA"
	colFG3M       = "FG3M"
	colFG3A       = "FG3A"
	colFTM        = "FTM"
	colFTA        = "FTA"
	colOffReb     = "OREB"
	colDefReb     = "DREB"
	colRebounds   = "REB"
	colAssists    = "AST"
	colSteals     = "STL"
	colBlocks     = "BLK"
	colTurnovers  = "TOV"
	colFouls      = "PF"
	colPoints     = "PTS"
	colPlusMinus  = "PLUS_MINUS"
)
