// Package normalize rewrites a raw, possibly multilingual, possibly
// typo-ridden query into a canonical lowercase English token stream for
// the rule-based extractor. It never fails: unknown scripts and missing
// dictionary coverage simply fall through untranslated.
package normalize

import (
	"strings"

	"github.com/partdex/partdex/internal/domain/lang"
)

// Result is the normalizer output. Original is retained verbatim because
// later rules re-scan it when matching patterns (part numbers in
// particular) that a translation pass may have mangled.
type Result struct {
	Original  string
	Canonical string
	Language  lang.Code
}

// Normalize detects the query language, translates known domain terms to
// English, corrects common typos, and lowercases the result.
func Normalize(raw string) Result {
	original := strings.TrimSpace(raw)
	code := DetectLanguage(original)

	canonical := original
	if code != lang.English {
		canonical = Translate(canonical, code)
	}
	canonical = CorrectTypos(canonical)
	canonical = squashSpaces(strings.ToLower(canonical))

	return Result{
		Original:  original,
		Canonical: canonical,
		Language:  code,
	}
}
