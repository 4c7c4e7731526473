package testutil

import (
	"github.com/preston-bernstein/nba-dfs-data/internal/domain"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/salaries"
)

// SampleGameLog returns a populated game-log fixture with the provided game id.
func SampleGameLog(gameID string) gamelogs.GameLogRow {
	return gamelogs.GameLogRow{
		Season:     domain.Season("2024-25"),
		SeasonType: string(domain.RegularSeason),
		PlayerID:   2544,
		PlayerName: "Test Player",
		TeamID:     1610612747,
		TeamAbbrev: "LAL",
		GameID:     gameID,
		GameDate:   "2024-11-01",
		Matchup:    "LAL vs. BOS",
		WinLoss:    "W",
		Minutes:    36,
		FGM:        10,
		FGA:        20,
		Points:     25,
		Rebounds:   8,
		Assists:    9,
		Steals:     1,
		Blocks:     1,
		Turnovers:  3,
	}
}

// SampleSalaryRow returns a normalized salary fixture for the given vendor.
func SampleSalaryRow(vendor salaries.Vendor) salaries.SalaryRow {
	return salaries.SalaryRow{
		Name:             "test player",
		RawName:          "Test Player",
		Salary:           9000,
		Position:         "SF",
		Positions:        []string{"SF", "F"},
		Team:             "LAL",
		Opponent:         "BOS",
		IsHome:           true,
		AvgFantasyPoints: 42.5,
		Vendor:           vendor,
	}
}
