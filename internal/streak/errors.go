package streak

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeStreak indicates a caller passed a negative streak count.
	ErrNegativeStreak = errors.New("streak count cannot be negative")
	// ErrUnknownJournalType indicates a journal type outside the closed enum.
	ErrUnknownJournalType = errors.New("unknown journal type")
)

// DateParseError reports an input that is neither a date-only string nor a
// recognizable timestamp. It is raised at the date boundary so a bad input can
// never flow into day arithmetic and silently corrupt a streak.
type DateParseError struct {
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("unparseable date %q", e.Value)
}
