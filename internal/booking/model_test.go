package booking

import "testing"

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range ValidStatuses {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []Status{"", "done", "PENDING"} {
		if s.IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestShootDays(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    int64
		wantErr bool
	}{
		{"single day", "2026-03-10", "2026-03-10", 1, false},
		{"weekend", "2026-03-14", "2026-03-15", 2, false},
		{"full week", "2026-03-01", "2026-03-07", 7, false},
		{"across month", "2026-02-27", "2026-03-02", 4, false},
		{"end before start", "2026-03-10", "2026-03-09", 0, true},
		{"bad start format", "10-03-2026", "2026-03-12", 0, true},
		{"bad end format", "2026-03-10", "tomorrow", 0, true},
		{"empty", "", "", 0, true},
	}
	for _, tt := range tests {
		got, err := ShootDays(tt.start, tt.end)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %d days, want %d", tt.name, got, tt.want)
		}
	}
}
