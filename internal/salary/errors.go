package salary

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-dfs-data/internal/domain/salaries"
)

// SchemaError reports a vendor export missing a column its format requires.
type SchemaError struct {
	Vendor salaries.Vendor
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s export missing required column %q", e.Vendor, e.Column)
}

// UnknownFormatError reports a salary file whose header matches no known
// vendor signature.
type UnknownFormatError struct {
	Columns []string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown salary file format: no vendor signature among columns [%s]", strings.Join(e.Columns, ", "))
}

// ParseError reports a malformed field value in an otherwise well-formed
// export. Row is 1-based counting the header row, matching what a user sees
// in a spreadsheet.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d column %q: bad value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
