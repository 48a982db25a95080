package lang

// Code is a detected query language.
type Code string

// Supported language codes.
const (
	English    Code = "en"
	Arabic     Code = "ar"
	Chinese    Code = "zh"
	Japanese   Code = "ja"
	Korean     Code = "ko"
	Russian    Code = "ru"
	German     Code = "de"
	French     Code = "fr"
	Spanish    Code = "es"
	Portuguese Code = "pt"
	Italian    Code = "it"
	Dutch      Code = "nl"
	Polish     Code = "pl"
	Turkish    Code = "tr"
)

// IsValid checks if the code is one of the supported values.
func (c Code) IsValid() bool {
	switch c {
	case English, Arabic, Chinese, Japanese, Korean, Russian,
		German, French, Spanish, Portuguese, Italian, Dutch, Polish, Turkish:
		return true
	}
	return false
}

// IsLatin reports whether the language is written in Latin script.
func (c Code) IsLatin() bool {
	switch c {
	case Arabic, Chinese, Japanese, Korean, Russian:
		return false
	}
	return true
}
