package normalize

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// typoTable corrects common misspellings of vehicle brands, parts brands
// and domain vocabulary. Whole-word replacement only: "filtr" must not
// rewrite "filtration".
var typoTable = map[string]string{
	// Vehicle brands
	"toyata":     "toyota",
	"toyoto":     "toyota",
	"toyotta":    "toyota",
	"mersedes":   "mercedes",
	"mercedez":   "mercedes",
	"merc":       "mercedes",
	"hundai":     "hyundai",
	"hyundia":    "hyundai",
	"huyndai":    "hyundai",
	"nisan":      "nissan",
	"nissann":    "nissan",
	"volkswagon": "volkswagen",
	"wolkswagen": "volkswagen",
	"mitsubushi": "mitsubishi",
	"mitshubishi": "mitsubishi",
	"porshe":     "porsche",
	"porche":     "porsche",
	"chevorlet":  "chevrolet",
	"cheverolet": "chevrolet",
	"reno":       "renault",
	"pegeot":     "peugeot",
	"peugot":     "peugeot",

	// Parts brands
	"bosh":    "bosch",
	"boshe":   "bosch",
	"bosche":  "bosch",
	"denzo":   "denso",
	"brembow": "brembo",
	"valio":   "valeo",
	"mahl":    "mahle",
	"sachz":   "sachs",
	"bilstien": "bilstein",

	// Domain vocabulary
	"filtr":     "filter",
	"fliter":    "filter",
	"filtter":   "filter",
	"breakpads": "brake pads",
	"brakepads": "brake pads",
	"brak":      "brake",
	"breake":    "brake",
	"braek":     "brake",
	"batery":    "battery",
	"bateri":    "battery",
	"battary":   "battery",
	"deliveri":  "delivery",
	"delivry":   "delivery",
	"delviery":  "delivery",
	"shiping":   "shipping",
	"cheep":     "cheap",
	"chep":      "cheap",
	"waranty":   "warranty",
	"warrenty":  "warranty",
	"garantee":  "guarantee",
	"quantaty":  "quantity",
	"quanity":   "quantity",
	"alternater": "alternator",
	"radiater":  "radiator",
	"sparkplug": "spark plug",
}

var (
	typoOnce sync.Once
	typoRe   *regexp.Regexp
)

// CorrectTypos applies the typo table to the query via one alternation
// regex, whole-word and case-insensitive.
func CorrectTypos(query string) string {
	typoOnce.Do(func() {
		words := make([]string, 0, len(typoTable))
		for w := range typoTable {
			words = append(words, regexp.QuoteMeta(w))
		}
		// Longest alternative first: "brakepads" before "brak".
		sort.Slice(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
		typoRe = regexp.MustCompile(`(?i)\b(` + strings.Join(words, "|") + `)\b`)
	})
	return typoRe.ReplaceAllStringFunc(query, func(m string) string {
		return typoTable[strings.ToLower(m)]
	})
}
