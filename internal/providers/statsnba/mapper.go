package statsnba

import (
	"github.com/preston-bernstein/nba-dfs-data/internal/domain"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/players"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/teams"
)

func mapGameLogRows(rs *resultSet, season domain.Season, seasonType domain.SeasonType) []gamelogs.GameLogRow {
	cols := rs.columns()
	rows := make([]gamelogs.GameLogRow, 0, len(rs.RowSet))
	for _, raw := range rs.RowSet {
		// FantasyPoints stays zero here: the upstream FANTASY_PTS column is
		// never trusted, the scoring service recomputes it from the stats.
		rows = append(rows, gamelogs.GameLogRow{
			Season:     season,
			SeasonType: string(seasonType),
			PlayerID:   cols.integer(raw, colPlayerID),
			PlayerName: cols.str(raw, colPlayerName),
			TeamID:     cols.integer(raw, colTeamID),
			TeamAbbrev: cols.str(raw, colTeamAbbrev),
			GameID:     cols.str(raw, colGameID),
			GameDate:   cols.str(raw, colGameDate),
			Matchup:    cols.str(raw, colMatchup),
			WinLoss:    cols.str(raw, colWinLoss),
			Minutes:    cols.num(raw, colMinutes),
			FGM:        cols.num(raw, colFGM),
			FGA:        cols.num(raw, colFGA),
			FG3M:       cols.num(raw, colFG3M),
			FG3A:       cols.num(raw, colFG3A),
			FTM:        cols.num(raw, colFTM),
			FTA:        cols.num(raw, colFTA),
			OffReb:     cols.num(raw, colOffReb),
			DefReb:     cols.num(raw, colDefReb),
			Rebounds:   cols.num(raw, colRebounds),
			Assists:    cols.num(raw, colAssists),
			Steals:     cols.num(raw, colSteals),
			Blocks:     cols.num(raw, colBlocks),
			Turnovers:  cols.num(raw, colTurnovers),
			Fouls:      cols.num(raw, colFouls),
			Points:     cols.num(raw, colPoints),
			PlusMinus:  cols.num(raw, colPlusMinus),
		})
	}
	return rows
}

func mapPlayers(rs *resultSet) []players.Player {
	cols := rs.columns()
	out := make([]players.Player, 0, len(rs.RowSet))
	for _, raw := range rs.RowSet {
		out = append(out, players.Player{
			ID:         cols.integer(raw, "PERSON_ID"),
			Name:       cols.str(raw, "DISPLAY_FIRST_LAST"),
			TeamID:     cols.integer(raw, "TEAM_ID"),
			TeamAbbrev: cols.str(raw, "TEAM_ABBREVIATION"),
			FromYear:   cols.str(raw, "FROM_YEAR"),
			ToYear:     cols.str(raw, "TO_YEAR"),
			Active:     cols.integer(raw, "ROSTERSTATUS") == 1,
		})
	}
	return out
}

func mapTeamMetrics(rs *resultSet) []teams.TeamMetrics {
	cols := rs.columns()
	out := make([]teams.TeamMetrics, 0, len(rs.RowSet))
	for _, raw := range rs.RowSet {
		out = append(out, teams.TeamMetrics{
			ID:        cols.integer(raw, "TEAM_ID"),
			Name:      cols.str(raw, "TEAM_NAME"),
			OffRating: cols.num(raw, "E_OFF_RATING"),
			DefRating: cols.num(raw, "E_DEF_RATING"),
			NetRating: cols.num(raw, "E_NET_RATING"),
			Pace:      cols.num(raw, "E_PACE"),
			Wins:      cols.integer(raw, "W"),
			Losses:    cols.integer(raw, "L"),
		})
	}
	return out
}
