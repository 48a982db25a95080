package openai

import (
	"reflect"
	"testing"
)

func TestDecodeLenient(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{
			name: "strict",
			raw:  `{"a": 1}`,
			want: map[string]any{"a": float64(1)},
		},
		{
			name: "fenced",
			raw:  "```json\n{\"a\": 1}\n```",
			want: map[string]any{"a": float64(1)},
		},
		{
			name: "fenced without tag",
			raw:  "```\n{\"a\": 1}\n```",
			want: map[string]any{"a": float64(1)},
		},
		{
			name: "prose around object",
			raw:  "Here is the intent:\n{\"a\": 1}\nLet me know if you need more.",
			want: map[string]any{"a": float64(1)},
		},
		{
			name: "braces inside string values",
			raw:  `result: {"summary": "curly {brace} inside", "n": 2}`,
			want: map[string]any{"summary": "curly {brace} inside", "n": float64(2)},
		},
		{
			name: "truncated object",
			raw:  `{"a": 1, "b": [1, 2`,
			want: map[string]any{"a": float64(1), "b": []any{float64(1), float64(2)}},
		},
		{
			name: "truncated string value",
			raw:  `{"a": "cut of`,
			want: map[string]any{"a": "cut of"},
		},
		{
			name: "trailing comma after truncation",
			raw:  `{"a": 1,`,
			want: map[string]any{"a": float64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			if err := DecodeLenient(tt.raw, &got); err != nil {
				t.Fatalf("DecodeLenient(%q) error: %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeLenient(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecodeLenientRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "no json here", "[1, 2, 3]"} {
		var got map[string]any
		if err := DecodeLenient(raw, &got); err == nil {
			t.Errorf("DecodeLenient(%q) = %v, want error", raw, got)
		}
	}
}
