package salary

import "github.com/preston-bernstein/nba-dfs-data/internal/domain/salaries"

// Common-schema field names used as keys in the vendor mapping tables.
const (
	fieldName     = "name"
	fieldPosition = "position"
	fieldSalary   = "salary"
	fieldAvgFpts  = "avg_fpts"
	fieldTeam     = "team"
	fieldOpponent = "opponent"
	fieldGameInfo = "game_info"
	fieldInjury   = "injury_status"
	fieldInjNotes = "injury_details"
)

// vendorSpec describes one platform's export as data: which header column
// identifies the format, and how its columns map onto the common schema.
// Adding a vendor means adding a table entry, not code.
type vendorSpec struct {
	vendor    salaries.Vendor
	signature string
	required  map[string]string
	optional  map[string]string
}

var vendorSpecs = map[salaries.Vendor]vendorSpec{
	salaries.DraftKings: {
		vendor:    salaries.DraftKings,
		signature: "AvgPointsPerGame",
		required: map[string]string{
			fieldName:     "Name",
			fieldPosition: "Position",
			fieldSalary:   "Salary",
			fieldAvgFpts:  "AvgPointsPerGame",
			fieldTeam:     "TeamAbbrev",
		},
		optional: map[string]string{
			fieldGameInfo: "Game Info",
		},
	},
	salaries.FanDuel: {
		vendor:    salaries.FanDuel,
		signature: "FPPG",
		required: map[string]string{
			fieldName:     "Nickname",
			fieldPosition: "Position",
			fieldSalary:   "Salary",
			fieldAvgFpts:  "FPPG",
			fieldTeam:     "Team",
		},
		optional: map[string]string{
			fieldOpponent: "Opponent",
			fieldGameInfo: "Game",
			fieldInjury:   "Injury Indicator",
			fieldInjNotes: "Injury Details",
		},
	},
}
