package property

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"₱5,000", 5000},
		{"₱0", 0},
		{"", 0},
		{"5000", 5000},
		{"₱12,000 per day", 12000},
		{"no digits here", 0},
		{"₱1,234,567", 1234567},
	}
	for _, tt := range tests {
		if got := ParsePrice(tt.in); got != tt.want {
			t.Errorf("ParsePrice(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParsePriceIdempotentWithFormat(t *testing.T) {
	amounts := []int64{0, 5, 500, 5000, 1234567}
	for _, amount := range amounts {
		if got := ParsePrice(FormatPrice(amount)); got != amount {
			t.Errorf("ParsePrice(FormatPrice(%d)) = %d", amount, got)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "₱0"},
		{500, "₱500"},
		{5000, "₱5,000"},
		{12000, "₱12,000"},
		{1234567, "₱1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
