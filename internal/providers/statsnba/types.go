package statsnba

import (
	"fmt"
	"strings"
)

// envelope is the wire shape every stats endpoint shares: one or more named
// result sets, each a header list plus positional rows. teamestimatedmetrics
// returns a single "resultSet" object instead of the usual array.
type envelope struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
	ResultSet  *resultSet  `json:"resultSet"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// first returns the primary result set of an envelope.
func (e *envelope) first() (*resultSet, error) {
	if len(e.ResultSets) > 0 {
		return &e.ResultSets[0], nil
	}
	if e.ResultSet != nil {
		return e.ResultSet, nil
	}
	return nil, fmt.Errorf("statsnba: response %q contains no result sets", e.Resource)
}

// columns indexes a result set's headers for case-insensitive lookup.
type columns map[string]int

func (rs *resultSet) columns() columns {
	idx := make(columns, len(rs.Headers))
	for i, h := range rs.Headers {
		idx[strings.ToUpper(h)] = i
	}
	return idx
}

// The row cells arrive as JSON any values (float64, string, or null), so the
// accessors below tolerate both missing columns and null cells.

func (c columns) str(row []any, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}

func (c columns) num(row []any, name string) float64 {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return 0
	}
	if v, ok := row[i].(float64); ok {
		return v
	}
	return 0
}

func (c columns) integer(row []any, name string) int {
	return int(c.num(row, name))
}
