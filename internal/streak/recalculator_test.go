package streak

import (
	"slices"
	"testing"
	"time"
)

func TestRecalculateStreakFromDates(t *testing.T) {
	today := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty history", nil, 0},
		{"three consecutive days ending today", []string{"2026-03-15", "2026-03-14", "2026-03-13"}, 3},
		{"newest entry not today", []string{"2026-03-14", "2026-03-13"}, 0},
		{"stops at first gap", []string{"2026-03-15", "2026-03-14", "2026-03-12", "2026-03-11"}, 2},
		{"only today", []string{"2026-03-15"}, 1},
	}
	for _, tt := range tests {
		got, err := RecalculateStreakFromDates(tt.dates, today)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestRecalculateStreakFromDates_RejectsMalformedDate(t *testing.T) {
	today := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)
	if _, err := RecalculateStreakFromDates([]string{"2026-03-15", "bogus"}, today); err == nil {
		t.Fatal("expected error for malformed history entry")
	}
}

// Replaying consecutive-day entries one at a time through the incremental
// calculator must agree with recalculating from the full resulting history.
func TestRecalculatorAgreesWithCalculatorReplay(t *testing.T) {
	today := time.Date(2026, 3, 20, 9, 0, 0, 0, time.Local)
	const days = 12

	state := State{JournalType: TypeJourney}
	var history []string
	for i := days - 1; i >= 0; i-- {
		entryDate := ToLocalDateString(today.AddDate(0, 0, -i))
		result, err := CalculateUpdatedStreak(state.CurrentStreak, state.LastEntryDate, entryDate)
		if err != nil {
			t.Fatalf("replay day %d: %v", i, err)
		}
		state.CurrentStreak = result.NewStreak
		state.LastEntryDate = result.LastEntryDate
		history = append(history, entryDate)
	}

	slices.Reverse(history) // most recent first
	recalculated, err := RecalculateStreakFromDates(history, today)
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}

	if state.CurrentStreak != days || recalculated != days {
		t.Fatalf("replay produced %d, recalculation produced %d, expected %d", state.CurrentStreak, recalculated, days)
	}
}
