package normalize

import (
	"testing"

	"github.com/partdex/partdex/internal/domain/lang"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		query string
		want  lang.Code
	}{
		{"find brake pads", lang.English},
		{"", lang.English},
		{"RC0009", lang.English},
		{"فحمات فرامل رخيصة", lang.Arabic},
		{"在库便宜的刹车片", lang.Chinese},
		{"ブレーキパッド 安い", lang.Japanese},
		{"安いブレーキ", lang.Japanese}, // Han plus kana is Japanese, not Chinese
		{"브레이크 패드 재고", lang.Korean},
		{"дешевые тормозные колодки", lang.Russian},
		{"günstige bremsbeläge für toyota", lang.German},
		{"ich brauche bremsbelaege", lang.German},
		{"pastillas de freno baratas para toyota", lang.Spanish},
		{"je cherche des plaquettes de frein pas cher", lang.French},
		{"en ucuz fren balataları", lang.Turkish},
	}

	for _, tt := range tests {
		if got := DetectLanguage(tt.query); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %s, want %s", tt.query, got, tt.want)
		}
	}
}

func TestDetectLanguageDeterministic(t *testing.T) {
	// A query with stop-word hits in several languages must always
	// resolve the same way.
	const q = "la auto filter"
	first := DetectLanguage(q)
	for i := 0; i < 20; i++ {
		if got := DetectLanguage(q); got != first {
			t.Fatalf("run %d: DetectLanguage(%q) = %s, earlier %s", i, q, got, first)
		}
	}
}

func TestTranslateChinese(t *testing.T) {
	got := Translate("在库便宜的刹车片", lang.Chinese)
	if got != "in stock cheap brake pads" {
		t.Errorf("Translate = %q, want %q", got, "in stock cheap brake pads")
	}
}

func TestTranslateKeepsUnknownTokens(t *testing.T) {
	// Part codes and uncovered words fall through untranslated.
	got := Translate("找 RC0009", lang.Chinese)
	if got != "find RC0009" {
		t.Errorf("Translate = %q, want %q", got, "find RC0009")
	}
}

func TestCorrectTypos(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bosh filtr", "bosch filter"},
		{"toyata brakepads", "toyota brake pads"},
		{"cheep delivry", "cheap delivery"},
		{"filtration systems", "filtration systems"}, // whole-word only
		{"BOSH oil filter", "bosch oil filter"},
	}
	for _, tt := range tests {
		if got := CorrectTypos(tt.in); got != tt.want {
			t.Errorf("CorrectTypos(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw       string
		canonical string
		language  lang.Code
	}{
		{"  Find BOSH Brake  Pads ", "find bosch brake pads", lang.English},
		{"在库便宜的刹车片", "in stock cheap brake pads", lang.Chinese},
		{"", "", lang.English},
		{"дешевые тормозные колодки в наличии", "cheap brake pads in stock", lang.Russian},
	}
	for _, tt := range tests {
		got := Normalize(tt.raw)
		if got.Canonical != tt.canonical {
			t.Errorf("Normalize(%q).Canonical = %q, want %q", tt.raw, got.Canonical, tt.canonical)
		}
		if got.Language != tt.language {
			t.Errorf("Normalize(%q).Language = %s, want %s", tt.raw, got.Language, tt.language)
		}
	}
}

func TestNormalizeKeepsOriginal(t *testing.T) {
	got := Normalize("  需要 06A115561B  ")
	if got.Original != "需要 06A115561B" {
		t.Errorf("Original = %q, want trimmed raw query", got.Original)
	}
	if got.Language != lang.Chinese {
		t.Errorf("Language = %s, want zh", got.Language)
	}
}
