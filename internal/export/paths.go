package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/preston-bernstein/nba-dfs-data/internal/domain"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/salaries"
)

// Format selects the tabular encoding for output files.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(v string) (Format, error) {
	switch strings.ToLower(v) {
	case "", string(FormatCSV):
		return FormatCSV, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q", v)
	}
}

// GameLogPath names a season's output file under dir, e.g.
// dir/game_logs_2024_25.csv.
func GameLogPath(dir string, season domain.Season, format Format) string {
	label := strings.ReplaceAll(season.String(), "-", "_")
	return filepath.Join(dir, fmt.Sprintf("game_logs_%s.%s", label, format))
}

// SalaryPath names a normalized salary output file under dir.
func SalaryPath(dir string, vendor salaries.Vendor, format Format) string {
	return filepath.Join(dir, fmt.Sprintf("salaries_%s.%s", vendor, format))
}

// TeamMetricsPath names a season's team ratings output file under dir.
func TeamMetricsPath(dir string, season domain.Season, format Format) string {
	label := strings.ReplaceAll(season.String(), "-", "_")
	return filepath.Join(dir, fmt.Sprintf("team_ratings_%s.%s", label, format))
}

// PlayerLogPath names a single player's game-log output file under dir. The
// player key is expected to be a normalized name; spaces become underscores.
func PlayerLogPath(dir string, player string, season domain.Season, format Format) string {
	label := strings.ReplaceAll(season.String(), "-", "_")
	key := strings.ReplaceAll(player, " ", "_")
	return filepath.Join(dir, fmt.Sprintf("player_logs_%s_%s.%s", key, label, format))
}
