package bref

import (
	"github.com/preston-bernstein/nba-dfs-data/internal/domain"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/teams"
)

func mapGameLogRows(rows []tableRow, playerName string, season domain.Season, seasonType domain.SeasonType) []gamelogs.GameLogRow {
	out := make([]gamelogs.GameLogRow, 0, len(rows))
	for _, row := range rows {
		// Inactive/DNP games carry no minutes cell.
		if row.str(statMinutes) == "" {
			continue
		}
		out = append(out, gamelogs.GameLogRow{
			Season:     season,
			SeasonType: string(seasonType),
			PlayerName: playerName,
			TeamAbbrev: row.str(statTeam),
			GameDate:   row.str(statDate),
			Matchup:    matchup(row),
			WinLoss:    winLoss(row.str(statGameResult)),
			Minutes:    parseMinutes(row.str(statMinutes)),
			FGM:        row.num(statFGM),
			FGA:        row.num(statFGA),
			FG3M:       row.num(statFG3M),
			FG3A:       row.num(statFG3A),
			FTM:        row.num(statFTM),
			FTA:        row.num(statFTA),
			OffReb:     row.num(statOffReb),
			DefReb:     row.num(statDefReb),
			Rebounds:   row.num(statRebounds),
			Assists:    row.num(statAssists),
			Steals:     row.num(statSteals),
			Blocks:     row.num(statBlocks),
			Turnovers:  row.num(statTurnovers),
			Fouls:      row.num(statFouls),
			Points:     row.num(statPoints),
			PlusMinus:  row.num(statPlusMinus),
			// FantasyPoints stays zero here; the scoring step always
			// recomputes it from a single weights table.
		})
	}
	return out
}

// matchup renders the site's location marker ("@" for road games) in the
// stats-API matchup style.
func matchup(row tableRow) string {
	team, opp := row.str(statTeam), row.str(statOpponent)
	if row.str(statGameLocation) == "@" {
		return team + " @ " + opp
	}
	return team + " vs. " + opp
}

// winLoss reduces the site's result cell ("W (+12)") to the bare letter.
func winLoss(result string) string {
	if result == "" {
		return ""
	}
	return result[:1]
}

func mapTeamRatings(rows []tableRow) []teams.TeamMetrics {
	out := make([]teams.TeamMetrics, 0, len(rows))
	for _, row := range rows {
		if row.str(statTeamName) == "" {
			continue
		}
		out = append(out, teams.TeamMetrics{
			Name:      row.str(statTeamName),
			OffRating: row.num(statOffRating),
			DefRating: row.num(statDefRating),
			NetRating: row.num(statNetRating),
			Wins:      row.integer(statWins),
			Losses:    row.integer(statLosses),
		})
	}
	return out
}
