package gamelogs

import "github.com/preston-bernstein/nba-dfs-data/internal/domain"

// GameLogRow is one player's box-score line for one game. Rows are built once
// by the provider mapper and never mutated; FantasyPoints is always recomputed
// locally from the counting stats, never taken from upstream.
type GameLogRow struct {
	Season     domain.Season `json:"season"`
	SeasonType string        `json:"seasonType"`

	PlayerID   int    `json:"playerId"`
	PlayerName string `json:"playerName"`
	TeamID     int    `json:"teamId"`
	TeamAbbrev string `json:"teamAbbrev"`

	GameID   string `json:"gameId"`
	GameDate string `json:"gameDate"`
	Matchup  string `json:"matchup"`
	WinLoss  string `json:"winLoss"`

	Minutes float64 `json:"minutes"`

	FGM       float64 `json:"fgm"`
	FGA       float64 `json:"fga"`
	FG3M      float64 `json:"fg3m"`
	FG3A      float64 `json:"fg3a"`
	FTM       float64 `json:"ftm"`
	FTA       float64 `json:"fta"`
	OffReb    float64 `json:"oreb"`
	DefReb    float64 `json:"dreb"`
	Rebounds  float64 `json:"reb"`
	Assists   float64 `json:"ast"`
	Steals    float64 `json:"stl"`
	Blocks    float64 `json:"blk"`
	Turnovers float64 `json:"tov"`
	Fouls     float64 `json:"pf"`
	Points    float64 `json:"pts"`
	PlusMinus float64 `json:"plusMinus"`

	FantasyPoints float64 `json:"fantasyPoints"`
}

// WithFantasyPoints returns a copy of the row with FantasyPoints recomputed
// under the given weights.
func (r GameLogRow) WithFantasyPoints(w Weights) GameLogRow {
	r.FantasyPoints = w.Score(r)
	return r
}
