package extract

import (
	"strings"
	"sync"
)

// maxKeywords caps free-text keywords per query. Beyond that the extra
// words are filler and only dilute matching.
const maxKeywords = 8

// stopWords are query tokens that carry no matching value: determiners,
// commerce filler and the vocabulary already claimed by the structured
// rule families (price, stock, delivery, quality, sort, counts).
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "for": true, "with": true,
	"and": true, "or": true, "to": true, "in": true, "on": true, "at": true,
	"me": true, "my": true, "i": true, "is": true, "are": true, "it": true,
	"this": true, "that": true, "all": true, "any": true, "some": true,
	"please": true, "pls": true, "hi": true, "hello": true, "thanks": true,

	"find": true, "search": true, "show": true, "give": true, "get": true,
	"need": true, "want": true, "looking": true, "buy": true, "order": true,
	"require": true, "list": true, "display": true,

	"part": true, "parts": true, "product": true, "products": true,
	"item": true, "items": true, "spare": true, "spares": true,
	"supplier": true, "suppliers": true, "offer": true, "offers": true,
	"option": true, "options": true, "result": true, "results": true,
	"alternative": true, "alternatives": true, "variant": true, "variants": true,
	"choice": true, "choices": true, "row": true, "rows": true,

	"price": true, "prices": true, "cost": true, "cheap": true, "cheapest": true,
	"expensive": true, "budget": true, "under": true, "over": true,
	"below": true, "above": true, "around": true, "about": true,
	"between": true, "than": true, "less": true, "more": true, "most": true,
	"max": true, "maximum": true, "min": true, "minimum": true,
	"usd": true, "aed": true, "eur": true, "gbp": true, "dollar": true,
	"dollars": true, "dirham": true, "dirhams": true, "euro": true, "euros": true,

	"stock": true, "available": true, "availability": true, "ready": true,
	"delivery": true, "shipping": true, "fast": true, "quick": true,
	"express": true, "urgent": true, "asap": true, "immediately": true,
	"day": true, "days": true, "within": true,

	"oem": true, "original": true, "genuine": true, "aftermarket": true,
	"premium": true, "quality": true, "warranty": true, "certified": true,
	"verified": true, "trusted": true,

	"qty": true, "quantity": true, "unit": true, "units": true,
	"pc": true, "pcs": true, "piece": true, "pieces": true,
	"bulk": true, "wholesale": true,

	"best": true, "top": true, "first": true, "only": true, "limit": true,
	"sort": true, "sorted": true, "by": true, "based": true, "ordered": true,
	"lowest": true, "highest": true, "fastest": true, "quickest": true,
	"new": true, "used": true, "from": true, "made": true,
	"exclude": true, "excluding": true, "without": true, "except": true,
	"avoid": true, "no": true, "not": true,
	"compare": true, "comparison": true, "versus": true, "vs": true,
	"similar": true, "substitute": true, "substitutes": true,
	"equivalent": true, "equivalents": true, "replacement": true,
}

var (
	claimedOnce   sync.Once
	claimedTokens map[string]bool
)

// claimed merges the stop words with every token the brand and category
// tables can match, so structured hits never echo into keywords.
func claimed() map[string]bool {
	claimedOnce.Do(func() {
		claimedTokens = map[string]bool{}
		for w := range stopWords {
			claimedTokens[w] = true
		}
		for w := range brandTokens() {
			claimedTokens[w] = true
		}
		for w := range categoryTokens() {
			claimedTokens[w] = true
		}
		for _, ow := range originWords {
			claimedTokens[ow.word] = true
		}
	})
	return claimedTokens
}

// findKeywords returns the free-text tokens left after the structured
// families have claimed theirs. Pure numbers are never keywords; they
// belong to the price, count or year families.
func findKeywords(q string) []string {
	skip := claimed()
	var out []string
	seen := map[string]bool{}
	for _, tok := range strings.Fields(q) {
		tok = strings.Trim(tok, ".,;:!?()[]\"'")
		if len(tok) < 2 || skip[tok] || seen[tok] {
			continue
		}
		if isNumeric(tok) {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
