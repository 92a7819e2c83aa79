package property

import "testing"

func TestCategoryIsValid(t *testing.T) {
	for _, c := range ValidCategories {
		if !c.IsValid() {
			t.Errorf("%q should be valid", c)
		}
	}
	for _, c := range []Category{"", "beach", "Volcano"} {
		if c.IsValid() {
			t.Errorf("%q should be invalid", c)
		}
	}
}

func TestValidStatus(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"active", true},
		{"inactive", true},
		{"pending", true},
		{"Active", false},
		{"archived", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidStatus(tt.in); got != tt.want {
			t.Errorf("ValidStatus(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDisplayPrice(t *testing.T) {
	p := Property{Price: 5000}
	if got := p.DisplayPrice(); got != "₱5,000" {
		t.Errorf("got %q", got)
	}
}
