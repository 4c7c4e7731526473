package salaries

// Vendor identifies a DFS contest platform.
type Vendor string

const (
	DraftKings Vendor = "draftkings"
	FanDuel    Vendor = "fanduel"
)

// SalaryRow is one player's slate entry for one contest platform, in the
// common schema shared by every vendor loader. Rows are immutable; Name is
// the join key used downstream and is always NormalizeName(RawName).
type SalaryRow struct {
	Name    string `json:"name"`
	RawName string `json:"rawName"`

	Salary    int      `json:"salary"`
	Position  string   `json:"position"`
	Positions []string `json:"positions"`

	Team     string `json:"team"`
	Opponent string `json:"opponent"`
	IsHome   bool   `json:"isHome"`

	AvgFantasyPoints float64 `json:"avgFantasyPoints"`

	InjuryStatus  string `json:"injuryStatus,omitempty"`
	InjuryDetails string `json:"injuryDetails,omitempty"`

	Vendor Vendor `json:"vendor"`
}
