package salary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-dfs-data/internal/domain/salaries"
)

// LoadDraftKings parses a DraftKings salary export into the common schema.
func LoadDraftKings(path string) ([]salaries.SalaryRow, error) {
	return loadVendorFile(path, vendorSpecs[salaries.DraftKings])
}

// LoadFanDuel parses a FanDuel salary export into the common schema.
func LoadFanDuel(path string) ([]salaries.SalaryRow, error) {
	return loadVendorFile(path, vendorSpecs[salaries.FanDuel])
}

// LoadSalaryFile reads the header row, detects the vendor from its signature
// column, and dispatches to that vendor's loader. The result is identical to
// calling the vendor loader directly.
func LoadSalaryFile(path string) ([]salaries.SalaryRow, error) {
	header, err := readHeader(path)
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(header))
	for _, col := range header {
		present[strings.TrimSpace(col)] = struct{}{}
	}
	for _, spec := range vendorSpecs {
		if _, ok := present[spec.signature]; ok {
			return loadVendorFile(path, spec)
		}
	}
	return nil, &UnknownFormatError{Columns: header}
}

// DetectVendor reports which platform produced the file at path, without
// parsing its rows.
func DetectVendor(path string) (salaries.Vendor, error) {
	header, err := readHeader(path)
	if err != nil {
		return "", err
	}
	for _, col := range header {
		for _, spec := range vendorSpecs {
			if strings.TrimSpace(col) == spec.signature {
				return spec.vendor, nil
			}
		}
	}
	return "", &UnknownFormatError{Columns: header}
}

func readHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	return header, nil
}

func loadVendorFile(path string, spec vendorSpec) ([]salaries.SalaryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadVendor(f, spec)
}

func loadVendor(r io.Reader, spec vendorSpec) ([]salaries.SalaryRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading %s header: %w", spec.vendor, err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}

	cols := make(map[string]int, len(spec.required)+len(spec.optional))
	for field, source := range spec.required {
		i, ok := idx[source]
		if !ok {
			return nil, &SchemaError{Vendor: spec.vendor, Column: source}
		}
		cols[field] = i
	}
	for field, source := range spec.optional {
		if i, ok := idx[source]; ok {
			cols[field] = i
		}
	}

	var rows []salaries.SalaryRow
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s row: %w", spec.vendor, err)
		}
		line++

		row, err := buildRow(record, cols, spec, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func buildRow(record []string, cols map[string]int, spec vendorSpec, line int) (salaries.SalaryRow, error) {
	cell := func(field string) string {
		i, ok := cols[field]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rawName := cell(fieldName)
	positions := splitPositions(cell(fieldPosition))

	sal, err := parseSalary(cell(fieldSalary), spec.required[fieldSalary], line)
	if err != nil {
		return salaries.SalaryRow{}, err
	}

	avg, err := parseAvgFpts(cell(fieldAvgFpts), spec.required[fieldAvgFpts], line)
	if err != nil {
		return salaries.SalaryRow{}, err
	}

	row := salaries.SalaryRow{
		Name:             salaries.NormalizeName(rawName),
		RawName:          rawName,
		Salary:           sal,
		Positions:        positions,
		Team:             strings.ToUpper(cell(fieldTeam)),
		AvgFantasyPoints: avg,
		InjuryStatus:     cell(fieldInjury),
		InjuryDetails:    cell(fieldInjNotes),
		Vendor:           spec.vendor,
	}
	if len(positions) > 0 {
		row.Position = positions[0]
	}

	switch spec.vendor {
	case salaries.DraftKings:
		row.Opponent, row.IsHome = parseGameInfo(cell(fieldGameInfo), row.Team)
	case salaries.FanDuel:
		row.Opponent = strings.ToUpper(cell(fieldOpponent))
		if game := cell(fieldGameInfo); game != "" {
			row.IsHome = !strings.HasPrefix(strings.ToUpper(game), row.Team)
		}
	}
	return row, nil
}

func splitPositions(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseSalary(raw, column string, line int) (int, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(raw)
	sal, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, &ParseError{Row: line, Column: column, Value: raw, Err: err}
	}
	if sal < 0 {
		return 0, &ParseError{Row: line, Column: column, Value: raw, Err: fmt.Errorf("salary must be non-negative")}
	}
	return sal, nil
}

func parseAvgFpts(raw, column string, line int) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	avg, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParseError{Row: line, Column: column, Value: raw, Err: err}
	}
	return avg, nil
}

// parseGameInfo derives opponent and home/away from a DraftKings matchup
// string such as "PHX@LAL 10:30PM ET". The home team is the one after the @.
func parseGameInfo(info, team string) (opponent string, isHome bool) {
	if info == "" || !strings.Contains(info, "@") {
		return "", false
	}
	matchup := strings.Fields(info)[0]
	sides := strings.Split(matchup, "@")
	if len(sides) != 2 {
		return "", false
	}
	away, home := strings.ToUpper(sides[0]), strings.ToUpper(sides[1])
	if strings.EqualFold(team, home) {
		return away, true
	}
	return home, false
}
