package streak

import "time"

// RecalculateStreakFromDates rebuilds a streak count from a full entry-date
// history, used by the repair/import path when drift from the incremental
// calculator is suspected.
//
// datesDesc must hold distinct date-only strings sorted most-recent-first;
// deduplication is the caller's responsibility. The walk starts a cursor at
// today's local date and counts while each date matches, so a history whose
// newest entry is not today yields 0.
func RecalculateStreakFromDates(datesDesc []string, today time.Time) (int, error) {
	cursor := today
	cursorDate := ToLocalDateString(cursor)

	count := 0
	for _, d := range datesDesc {
		normalized, err := NormalizeToDateOnly(d)
		if err != nil {
			return 0, err
		}
		if normalized != cursorDate {
			break
		}
		count++
		cursor = cursor.AddDate(0, 0, -1)
		cursorDate = ToLocalDateString(cursor)
	}

	return count, nil
}
