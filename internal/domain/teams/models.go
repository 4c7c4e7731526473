package teams

// TeamMetrics holds the league's estimated team-level ratings, fetched for
// opponent adjustments in the downstream projection workflow.
type TeamMetrics struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	OffRating float64 `json:"offRating"`
	DefRating float64 `json:"defRating"`
	NetRating float64 `json:"netRating"`
	Pace      float64 `json:"pace"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
}
