package players

// Player is a roster entry from the league's all-players listing, used to
// resolve player IDs when fetching per-player game logs.
type Player struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	TeamID     int    `json:"teamId"`
	TeamAbbrev string `json:"teamAbbrev"`
	FromYear   string `json:"fromYear"`
	ToYear     string `json:"toYear"`
	Active     bool   `json:"active"`
}
