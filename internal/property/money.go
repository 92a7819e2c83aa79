package property

import (
	"strconv"
	"strings"
)

// ParsePrice extracts the peso amount from a display string like "₱5,000".
// Every non-digit rune is stripped and the remainder parsed as an integer.
// Strings with no digits parse to 0. This is the single parse boundary:
// anything that needs a numeric price goes through here.
func ParsePrice(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// FormatPrice renders a peso amount with the currency sign and comma
// grouping, e.g. 5000 -> "₱5,000".
func FormatPrice(pesos int64) string {
	return "₱" + formatWithCommas(pesos)
}

func formatWithCommas(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
