package normalize

import (
	"strings"
	"unicode"

	"github.com/partdex/partdex/internal/domain/lang"
)

type latinProfile struct {
	code lang.Code
	// markers are characters that only (or almost only) appear in this
	// language among the ones we support. A single diacritic is a
	// stronger signal than a shared function word.
	markers string
	// stopWords separate Latin-script languages sharing the alphabet.
	// Ambiguous words (es/pt "para", fr/it "la") are listed once for
	// the language where they are most distinctive.
	stopWords []string
}

// latinProfiles is ordered: detection walks it top to bottom so that ties
// resolve deterministically.
var latinProfiles = []latinProfile{
	{lang.German, "ßäöü", []string{"der", "die", "das", "und", "für", "mit", "ich", "brauche", "unter", "über"}},
	{lang.Polish, "ąćęłńśźż", []string{"dla", "szukam", "tanie", "poniżej", "oraz"}},
	{lang.Turkish, "ğışİ", []string{"ve", "için", "ucuz", "arıyorum", "altında"}},
	{lang.Portuguese, "ãõ", []string{"os", "uma", "com", "preciso", "procuro", "barata", "abaixo"}},
	{lang.Spanish, "ñ¿¡", []string{"el", "los", "las", "una", "para", "busco", "necesito", "barato", "menos"}},
	{lang.French, "àâæëîïœùû", []string{"le", "les", "des", "une", "avec", "pour", "je", "cherche", "moins", "pas"}},
	{lang.Italian, "ò", []string{"il", "gli", "delle", "per", "cerco", "economico", "sotto"}},
	{lang.Dutch, "ĳ", []string{"de", "het", "een", "voor", "ik", "zoek", "goedkope", "onder"}},
}

// DetectLanguage guesses the query language. Non-Latin scripts are decided
// by Unicode block; Latin-script languages by diacritic markers and
// stop-word hits. Defaults to English when nothing matches.
func DetectLanguage(query string) lang.Code {
	for _, r := range query {
		switch {
		case unicode.Is(unicode.Arabic, r):
			return lang.Arabic
		case unicode.Is(unicode.Hangul, r):
			return lang.Korean
		case unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			return lang.Japanese
		case unicode.Is(unicode.Han, r):
			// Han alone is Chinese; Japanese queries carry kana too.
			if containsKana(query) {
				return lang.Japanese
			}
			return lang.Chinese
		case unicode.Is(unicode.Cyrillic, r):
			return lang.Russian
		}
	}

	lower := strings.ToLower(query)
	for _, p := range latinProfiles {
		if strings.ContainsAny(lower, p.markers) {
			return p.code
		}
	}

	words := strings.Fields(lower)
	best := lang.English
	bestHits := 0
	for _, p := range latinProfiles {
		hits := 0
		for _, w := range words {
			for _, s := range p.stopWords {
				if w == s {
					hits++
					break
				}
			}
		}
		if hits > bestHits {
			best, bestHits = p.code, hits
		}
	}
	return best
}

func containsKana(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) {
			return true
		}
	}
	return false
}
