package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/partdex/partdex/internal/domain/intent"
)

// topN limits. Values outside [2,50] are ignored rather than clamped: a
// "top 1" or "top 500" is more likely a part code fragment or a quantity
// than a result-count request.
const (
	minTopN = 2
	maxTopN = 50
)

// bulkDefaultQuantity is assumed when a bulk/wholesale phrase carries no
// explicit number.
const bulkDefaultQuantity = 100

// topN rules: how many distinct result rows to show. Kept fully disjoint
// from the requestedQuantity rules — the two fields answer different
// questions and are never derived from each other.
var (
	topNRe = regexp.MustCompile(
		`\b(?:best|top|first|show me|show|give me|get|find|limit to|only show)\s+(\d{1,2})\b`)
	topNSuffixRe = regexp.MustCompile(
		`\b(\d{1,2})\s+(?:options|results|suppliers|offers|alternatives|variants|choices|rows)\b`)
)

// requestedQuantity rules: the stock minimum the buyer needs.
var (
	qtyLabelRe = regexp.MustCompile(`\bqty[:\s]*(\d+)\b`)
	qtyNeedRe  = regexp.MustCompile(`\b(?:need|require|want|buy|order)\s+(\d+)\b`)
	qtyUnitsRe = regexp.MustCompile(`\b(\d+)\s*(?:units?|pcs?|pieces?|pc)\b`)
	qtyTimesRe = regexp.MustCompile(`(?:\bx\s?(\d+)\b|\b(\d+)\s?x\b)`)
	bulkRe     = regexp.MustCompile(`\b(?:bulk|wholesale|large (?:quantity|order)|in quantity)\b`)
)

// unitWords disqualify a topN match: "find 50 units" is a quantity even
// though "find N" looks like a result-count phrase.
var unitWords = []string{"units", "unit", "pcs", "pc", "pieces", "piece"}

// extractCounts fills TopN and RequestedQuantity independently. A query
// matching both rule sets populates both fields.
func extractCounts(q string, it *intent.Intent) {
	if n, ok := findTopN(q); ok {
		it.TopN = &n
	}
	if n, ok := findRequestedQuantity(q); ok {
		it.RequestedQuantity = &n
	}
}

func findTopN(q string) (int, bool) {
	for _, idx := range topNRe.FindAllStringSubmatchIndex(q, -1) {
		if followedByUnitWord(q, idx[3]) {
			continue
		}
		if n, ok := topNInRange(q[idx[2]:idx[3]]); ok {
			return n, true
		}
	}
	if m := topNSuffixRe.FindStringSubmatch(q); m != nil {
		if n, ok := topNInRange(m[1]); ok {
			return n, true
		}
	}
	return 0, false
}

func topNInRange(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < minTopN || n > maxTopN {
		return 0, false
	}
	return n, true
}

func followedByUnitWord(q string, end int) bool {
	rest := strings.Fields(q[end:])
	if len(rest) == 0 {
		return false
	}
	for _, u := range unitWords {
		if rest[0] == u {
			return true
		}
	}
	return false
}

func findRequestedQuantity(q string) (int, bool) {
	for _, re := range []*regexp.Regexp{qtyLabelRe, qtyUnitsRe} {
		if m := re.FindStringSubmatch(q); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				return n, true
			}
		}
	}
	// "need N" only counts when N is not itself a topN phrase target
	// ("need 3 options" is a result-count request).
	for _, idx := range qtyNeedRe.FindAllStringSubmatchIndex(q, -1) {
		if isResultWordNext(q, idx[3]) {
			continue
		}
		if n, err := strconv.Atoi(q[idx[2]:idx[3]]); err == nil && n > 0 {
			return n, true
		}
	}
	if m := qtyTimesRe.FindStringSubmatch(q); m != nil {
		digits := m[1]
		if digits == "" {
			digits = m[2]
		}
		if n, err := strconv.Atoi(digits); err == nil && n > 0 {
			return n, true
		}
	}
	if bulkRe.MatchString(q) {
		return bulkDefaultQuantity, true
	}
	return 0, false
}

var resultWords = []string{"options", "results", "suppliers", "offers", "alternatives", "variants", "choices", "rows"}

func isResultWordNext(q string, end int) bool {
	rest := strings.Fields(q[end:])
	if len(rest) == 0 {
		return false
	}
	for _, w := range resultWords {
		if rest[0] == w {
			return true
		}
	}
	return false
}
