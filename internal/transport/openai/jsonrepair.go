package openai

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON signals that no decodable JSON object was found in the text.
var ErrNoJSON = errors.New("no JSON object in response")

// DecodeLenient unmarshals the first JSON object found in free-form model
// output into v. Layered fallbacks: strict parse, fence-stripped parse,
// first balanced object, bracket-balance repair. Fragile by nature, which
// is why it is isolated here.
func DecodeLenient(raw string, v any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrNoJSON
	}

	if json.Unmarshal([]byte(raw), v) == nil {
		return nil
	}

	stripped := stripFences(raw)
	if json.Unmarshal([]byte(stripped), v) == nil {
		return nil
	}

	obj, ok := firstObject(stripped)
	if !ok {
		return ErrNoJSON
	}
	if json.Unmarshal([]byte(obj), v) == nil {
		return nil
	}

	repaired := closeBrackets(obj)
	if json.Unmarshal([]byte(repaired), v) == nil {
		return nil
	}

	return ErrNoJSON
}

// stripFences removes markdown code fences, with or without a language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// Drop the language tag line ("json").
		if first := strings.TrimSpace(s[:i]); first == "json" || first == "" {
			s = s[i+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// firstObject extracts the first balanced top-level {...} span, tracking
// strings so braces inside values do not count. A truncated response
// returns the unbalanced tail for repair.
func firstObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	// Unbalanced: return what is there and let closeBrackets try.
	return s[start:], true
}

// closeBrackets appends the closers a truncated object is missing. A
// dangling string value is closed first.
func closeBrackets(s string) string {
	var stack []byte
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) > 0 && stack[len(stack)-1] == c {
				stack = stack[:len(stack)-1]
			}
		}
	}

	s = strings.TrimSpace(s)
	if inString {
		s += `"`
	}
	// A truncated "key": or trailing comma cannot be closed into valid
	// JSON by brackets alone; drop the dangling tail.
	s = strings.TrimRight(s, ", \n\t")
	if strings.HasSuffix(s, ":") {
		s += "null"
	}
	for i := len(stack) - 1; i >= 0; i-- {
		s += string(stack[i])
	}
	return s
}
