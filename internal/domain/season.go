package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// Season is an NBA season label in the stats.nba.com format, e.g. "2024-25":
// a four-digit start year and the two-digit suffix of the following year.
type Season string

var seasonPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// InvalidSeasonError reports a season label that does not match the expected
// "YYYY-YY" shape or whose suffix is not the year after the start year.
type InvalidSeasonError struct {
	Label string
}

func (e *InvalidSeasonError) Error() string {
	return fmt.Sprintf("invalid season label %q: want format YYYY-YY with consecutive years", e.Label)
}

// ParseSeason validates a season label and returns it as a Season.
func ParseSeason(label string) (Season, error) {
	m := seasonPattern.FindStringSubmatch(label)
	if m == nil {
		return "", &InvalidSeasonError{Label: label}
	}
	start, err := strconv.Atoi(m[1])
	if err != nil {
		return "", &InvalidSeasonError{Label: label}
	}
	suffix, err := strconv.Atoi(m[2])
	if err != nil {
		return "", &InvalidSeasonError{Label: label}
	}
	if (start+1)%100 != suffix {
		return "", &InvalidSeasonError{Label: label}
	}
	return Season(label), nil
}

// StartYear returns the first calendar year of the season. The receiver is
// assumed to have come from ParseSeason.
func (s Season) StartYear() int {
	year, _ := strconv.Atoi(string(s)[:4])
	return year
}

func (s Season) String() string { return string(s) }

// SeasonType selects which slice of the schedule a game-log query covers.
type SeasonType string

const (
	RegularSeason SeasonType = "Regular Season"
	Playoffs      SeasonType = "Playoffs"
)

// ParseSeasonType maps user-facing names onto the upstream values.
func ParseSeasonType(v string) (SeasonType, error) {
	switch v {
	case "", "regular", "regular-season", string(RegularSeason):
		return RegularSeason, nil
	case "playoffs", string(Playoffs):
		return Playoffs, nil
	default:
		return "", fmt.Errorf("unknown season type %q", v)
	}
}
