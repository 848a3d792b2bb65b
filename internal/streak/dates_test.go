package streak

import (
	"errors"
	"testing"
	"time"
)

func TestToLocalDateString_UsesWallClock(t *testing.T) {
	nearMidnight := time.Date(2026, 2, 10, 23, 59, 0, 0, time.Local)
	if got := ToLocalDateString(nearMidnight); got != "2026-02-10" {
		t.Fatalf("expected 2026-02-10, got %s", got)
	}
}

func TestNormalizeToDateOnly(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"date-only passthrough", "2026-02-10", "2026-02-10"},
		{"timestamp", "2026-02-10T22:15:00", "2026-02-10"},
		{"timestamp with space", "2026-02-10 08:30:00", "2026-02-10"},
	}
	for _, tt := range tests {
		got, err := NormalizeToDateOnly(tt.input)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("%s: expected %s, got %s", tt.name, tt.want, got)
		}

		// Normalizing the output again must be a no-op.
		again, err := NormalizeToDateOnly(got)
		if err != nil || again != got {
			t.Fatalf("%s: normalization not idempotent: %s -> %s (%v)", tt.name, got, again, err)
		}
	}
}

func TestNormalizeToDateOnly_RejectsGarbage(t *testing.T) {
	for _, input := range []string{"not-a-date", "2026-13-45", "10/02/2026", ""} {
		_, err := NormalizeToDateOnly(input)
		var parseErr *DateParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected DateParseError for %q, got %v", input, err)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2026-02-10", "2026-02-10", 0},
		{"2026-02-11", "2026-02-10", 1},
		{"2026-02-20", "2026-02-10", 10},
		{"2026-02-10", "2026-02-20", -10},
		{"2026-03-01", "2026-02-28", 1},
		{"2027-01-01", "2026-12-31", 1},
	}
	for _, tt := range tests {
		got, err := DaysBetween(tt.a, tt.b)
		if err != nil {
			t.Fatalf("DaysBetween(%s, %s): %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Fatalf("DaysBetween(%s, %s): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestDaysBetween_PropagatesParseErrors(t *testing.T) {
	if _, err := DaysBetween("junk", "2026-02-10"); err == nil {
		t.Fatal("expected error for unparseable first argument")
	}
	if _, err := DaysBetween("2026-02-10", "junk"); err == nil {
		t.Fatal("expected error for unparseable second argument")
	}
}
