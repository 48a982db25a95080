package ingest

import (
	"strconv"
	"strings"
)

// parseAmount reads a price-like value tolerating currency symbols,
// thousand separators and European decimal commas. Unparseable input
// resolves to 0, the "no price published" value.
func parseAmount(s string) float64 {
	if s == "" {
		return 0
	}

	cleaned := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c == '.' || c == '-' || c == ',' {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return 0
	}
	str := string(cleaned)

	if strings.Contains(str, ".") {
		// Dot present, commas are thousand separators.
		return parseOrZero(strings.ReplaceAll(str, ",", ""))
	}

	// No dot. A single comma followed by 1-2 digits is a European
	// decimal ("12,34"); anything else is a thousand separator.
	if strings.Count(str, ",") == 1 {
		comma := strings.IndexByte(str, ',')
		if tail := len(str) - comma - 1; tail >= 1 && tail <= 2 {
			return parseOrZero(str[:comma] + "." + str[comma+1:])
		}
	}
	return parseOrZero(strings.ReplaceAll(str, ",", ""))
}

// parseCount extracts the first run of digits. "10+" and ">100 pcs" both
// resolve to their leading number; no digits resolves to 0.
func parseCount(s string) int64 {
	start, end := -1, len(s)
	for i := 0; i < len(s); i++ {
		digit := s[i] >= '0' && s[i] <= '9'
		if digit && start < 0 {
			start = i
		}
		if !digit && start >= 0 {
			end = i
			break
		}
	}
	if start < 0 {
		return 0
	}
	v, err := strconv.ParseInt(s[start:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
