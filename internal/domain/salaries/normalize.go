package salaries

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes, so
// "Dončić" becomes "Doncic".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var suffixes = map[string]struct{}{
	"jr":  {},
	"sr":  {},
	"ii":  {},
	"iii": {},
	"iv":  {},
}

// NormalizeName standardizes a raw vendor name string for cross-source joins:
// lowercase, diacritics stripped, periods and apostrophes removed, hyphens
// collapsed to a single space, trailing generational suffixes dropped, and
// whitespace collapsed. Idempotent: normalizing an already-normalized name is
// a no-op.
func NormalizeName(raw string) string {
	s := strings.ToLower(raw)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = strings.NewReplacer(".", "", "'", "", "’", "", "-", " ").Replace(s)

	fields := strings.Fields(s)
	for len(fields) > 1 {
		if _, ok := suffixes[fields[len(fields)-1]]; !ok {
			break
		}
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}
