package streak

// CheckForNewMilestones returns the badges newly earned by a streak moving
// from oldStreak to newStreak, in ascending threshold order.
//
// Detection only fires on genuine forward progress: a same-day re-save or a
// reset (newStreak <= oldStreak) returns nothing. A single jump may cross
// several thresholds at once; importing a 90-day backlog in one update earns
// all five badges. Badges whose ID is already present in existing are skipped,
// which makes the call idempotent: feeding one call's output back into
// existing and calling again yields nothing.
//
// existing may span all journal types; IDs embed the type, so identical
// thresholds in different types can never collide.
func CheckForNewMilestones(journalType JournalType, oldStreak, newStreak int, existing BadgeSet, todayDate string) ([]EarnedBadge, error) {
	if !journalType.Valid() {
		return nil, ErrUnknownJournalType
	}
	if oldStreak < 0 || newStreak < 0 {
		return nil, ErrNegativeStreak
	}
	if newStreak <= oldStreak {
		return nil, nil
	}

	earnedDate, err := NormalizeToDateOnly(todayDate)
	if err != nil {
		return nil, err
	}

	var earned []EarnedBadge
	for _, threshold := range Thresholds {
		if oldStreak >= threshold || threshold > newStreak {
			continue
		}
		id := BadgeID(journalType, threshold)
		if existing.Has(id) {
			continue
		}
		earned = append(earned, EarnedBadge{
			ID:          id,
			JournalType: journalType,
			Threshold:   threshold,
			EarnedDate:  earnedDate,
		})
	}

	return earned, nil
}
