package extract

import (
	"regexp"
	"strings"
)

// Part number acceptance is deliberately permissive: a false positive is
// harmless because filtering only matches codes the inventory actually
// contains. A token qualifies when it is alphanumeric (with ._/- as
// separators), at least 4 characters, and contains at least one digit.
const minPartNumberLen = 4

var (
	partNumberShapeRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._/-]*[a-zA-Z0-9]$`)
	hasDigitRe        = regexp.MustCompile(`\d`)
	pureDigitsRe      = regexp.MustCompile(`^\d+$`)
	yearShapeRe       = regexp.MustCompile(`^(?:19|20)\d{2}$`)
)

// findPartNumbers scans both the canonical and the original query: the
// translation pass can mangle codes embedded in non-Latin text, so codes
// found in the raw input are trusted too. Results are uppercased and
// deduplicated in order of appearance.
func findPartNumbers(canonical, original string) []string {
	seen := map[string]bool{}
	var out []string
	for _, text := range []string{canonical, original} {
		for _, tok := range strings.Fields(text) {
			code, ok := asPartNumber(tok)
			if !ok || seen[code] {
				continue
			}
			seen[code] = true
			out = append(out, code)
		}
	}
	return out
}

func asPartNumber(tok string) (string, bool) {
	tok = strings.Trim(tok, ".,;:!?()[]\"'")
	if len(tok) < minPartNumberLen {
		return "", false
	}
	if !partNumberShapeRe.MatchString(tok) || !hasDigitRe.MatchString(tok) {
		return "", false
	}
	if pureDigitsRe.MatchString(tok) {
		// A bare 4-digit number in the model-year range is a year;
		// shorter all-digit runs are prices or quantities.
		if yearShapeRe.MatchString(tok) {
			return "", false
		}
		if len(tok) < 5 {
			return "", false
		}
	}
	return strings.ToUpper(tok), true
}
