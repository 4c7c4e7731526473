package bref

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Basketball Reference ships several tables inside HTML comments so they only
// render via JavaScript. Stripping the comment markers before parsing makes
// those tables visible to the selector queries.
func uncomment(html string) string {
	html = strings.ReplaceAll(html, "<!--", "")
	return strings.ReplaceAll(html, "-->", "")
}

// tableRow holds one <tr> keyed by each cell's data-stat attribute.
type tableRow map[string]string

// parseTable extracts the body rows of the table with the given id. Repeated
// in-table header rows (class "thead") are skipped.
func parseTable(html, tableID string) ([]tableRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(uncomment(html)))
	if err != nil {
		return nil, err
	}

	var rows []tableRow
	doc.Find("table#" + tableID + " tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.HasClass("thead") {
			return
		}
		row := make(tableRow)
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			if stat, ok := cell.Attr("data-stat"); ok {
				row[stat] = strings.TrimSpace(cell.Text())
			}
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})
	return rows, nil
}

func (r tableRow) str(stat string) string {
	return r[stat]
}

func (r tableRow) num(stat string) float64 {
	v, err := strconv.ParseFloat(r[stat], 64)
	if err != nil {
		return 0
	}
	return v
}

func (r tableRow) integer(stat string) int {
	return int(r.num(stat))
}

// parseMinutes converts the "MM:SS" minutes-played format to decimal minutes.
func parseMinutes(raw string) float64 {
	mins, secs, found := strings.Cut(raw, ":")
	if !found {
		v, _ := strconv.ParseFloat(raw, 64)
		return v
	}
	m, err := strconv.ParseFloat(mins, 64)
	if err != nil {
		return 0
	}
	s, err := strconv.ParseFloat(secs, 64)
	if err != nil {
		return m
	}
	return m + s/60
}
