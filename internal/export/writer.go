package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/preston-bernstein/nba-dfs-data/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/salaries"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/teams"
)

var gameLogHeader = []string{
	"season", "season_type", "player_id", "player_name", "team_id", "team_abbrev",
	"game_id", "game_date", "matchup", "wl", "min",
	"fgm", "fga", "fg3m", "fg3a", "ftm", "fta",
	"oreb", "dreb", "reb", "ast", "stl", "blk", "tov", "pf", "pts",
	"plus_minus", "fantasy_points",
}

var salaryHeader = []string{
	"name", "raw_name", "salary", "position", "positions", "team", "opponent",
	"is_home", "avg_fpts", "injury_status", "injury_details", "vendor",
}

// WriteGameLogs persists one season's rows to path in the given format,
// creating parent directories. The write is atomic: a temp file is renamed
// into place so a crashed run never leaves a truncated table.
func WriteGameLogs(path string, format Format, rows []gamelogs.GameLogRow) error {
	switch format {
	case FormatJSON:
		return writeAtomic(path, func(f *os.File) error {
			data, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return err
			}
			_, err = f.Write(data)
			return err
		})
	case FormatCSV:
		return writeAtomic(path, func(f *os.File) error {
			w := csv.NewWriter(f)
			if err := w.Write(gameLogHeader); err != nil {
				return err
			}
			for _, r := range rows {
				if err := w.Write(gameLogRecord(r)); err != nil {
					return err
				}
			}
			w.Flush()
			return w.Error()
		})
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteSalaries persists normalized salary rows to path.
func WriteSalaries(path string, format Format, rows []salaries.SalaryRow) error {
	switch format {
	case FormatJSON:
		return writeAtomic(path, func(f *os.File) error {
			data, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return err
			}
			_, err = f.Write(data)
			return err
		})
	case FormatCSV:
		return writeAtomic(path, func(f *os.File) error {
			w := csv.NewWriter(f)
			if err := w.Write(salaryHeader); err != nil {
				return err
			}
			for _, r := range rows {
				if err := w.Write(salaryRecord(r)); err != nil {
					return err
				}
			}
			w.Flush()
			return w.Error()
		})
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

var teamMetricsHeader = []string{
	"team_id", "team_name", "off_rtg", "def_rtg", "net_rtg", "pace", "wins", "losses",
}

// WriteTeamMetrics persists team rating rows to path.
func WriteTeamMetrics(path string, format Format, rows []teams.TeamMetrics) error {
	switch format {
	case FormatJSON:
		return writeAtomic(path, func(f *os.File) error {
			data, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return err
			}
			_, err = f.Write(data)
			return err
		})
	case FormatCSV:
		return writeAtomic(path, func(f *os.File) error {
			w := csv.NewWriter(f)
			if err := w.Write(teamMetricsHeader); err != nil {
				return err
			}
			for _, r := range rows {
				if err := w.Write(teamMetricsRecord(r)); err != nil {
					return err
				}
			}
			w.Flush()
			return w.Error()
		})
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func gameLogRecord(r gamelogs.GameLogRow) []string {
	return []string{
		r.Season.String(), r.SeasonType,
		strconv.Itoa(r.PlayerID), r.PlayerName,
		strconv.Itoa(r.TeamID), r.TeamAbbrev,
		r.GameID, r.GameDate, r.Matchup, r.WinLoss,
		num(r.Minutes),
		num(r.FGM), num(r.FGA), num(r.FG3M), num(r.FG3A), num(r.FTM), num(r.FTA),
		num(r.OffReb), num(r.DefReb), num(r.Rebounds), num(r.Assists),
		num(r.Steals), num(r.Blocks), num(r.Turnovers), num(r.Fouls), num(r.Points),
		num(r.PlusMinus), num(r.FantasyPoints),
	}
}

func salaryRecord(r salaries.SalaryRow) []string {
	positions := ""
	for i, p := range r.Positions {
		if i > 0 {
			positions += "/"
		}
		positions += p
	}
	return []string{
		r.Name, r.RawName,
		strconv.Itoa(r.Salary),
		r.Position, positions,
		r.Team, r.Opponent,
		strconv.FormatBool(r.IsHome),
		num(r.AvgFantasyPoints),
		r.InjuryStatus, r.InjuryDetails,
		string(r.Vendor),
	}
}

func teamMetricsRecord(r teams.TeamMetrics) []string {
	return []string{
		strconv.Itoa(r.ID), r.Name,
		num(r.OffRating), num(r.DefRating), num(r.NetRating), num(r.Pace),
		strconv.Itoa(r.Wins), strconv.Itoa(r.Losses),
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeAtomic(path string, write func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
