package streak

// CalculateUpdatedStreak applies one new entry to a streak and returns the
// updated counter plus the normalized entry date the host should persist as
// the new LastEntryDate. Pure: it never reads or writes state.
//
// Transition table:
//   - no prior entry        -> 1 (cold start)
//   - same day (re-save)    -> max(current, 1); a streak never drops below 1
//     once any entry exists
//   - next day              -> current + 1
//   - any other delta       -> 1; backdated/out-of-order entries reset the
//     same way forward gaps do
func CalculateUpdatedStreak(currentStreak int, lastEntryDate, newEntryDate string) (Result, error) {
	if currentStreak < 0 {
		return Result{}, ErrNegativeStreak
	}

	normalized, err := NormalizeToDateOnly(newEntryDate)
	if err != nil {
		return Result{}, err
	}

	if lastEntryDate == "" {
		return Result{NewStreak: 1, LastEntryDate: normalized}, nil
	}

	diff, err := DaysBetween(normalized, lastEntryDate)
	if err != nil {
		return Result{}, err
	}

	switch diff {
	case 0:
		return Result{NewStreak: max(currentStreak, 1), LastEntryDate: normalized}, nil
	case 1:
		return Result{NewStreak: currentStreak + 1, LastEntryDate: normalized}, nil
	default:
		return Result{NewStreak: 1, LastEntryDate: normalized}, nil
	}
}
