package journal

import (
	"context"
	"time"

	"github.com/inkwellapp/streak-service/internal/streak"
)

// Entry is one saved journal entry event. The service keeps only what streak
// accounting needs: which category was journaled and on which local calendar
// day. Entry bodies live with the journaling services, not here.
type Entry struct {
	ID          string             `json:"id" firestore:"id"`
	UserID      string             `json:"user_id" firestore:"user_id"`
	JournalType streak.JournalType `json:"journal_type" firestore:"journal_type"`
	Date        string             `json:"date" firestore:"date"`
	CreatedAt   time.Time          `json:"created_at" firestore:"created_at"`
}

// EntryInput is the client payload for recording a completed entry.
type EntryInput struct {
	JournalType streak.JournalType `json:"journal_type" validate:"required"`
	// Date is the device-local entry date, either YYYY-MM-DD or a timestamp.
	Date string `json:"date" validate:"required"`
}

// AwardedBadge pairs a newly earned badge with its catalog display metadata so
// clients can render the celebration without a second round trip.
type AwardedBadge struct {
	streak.EarnedBadge
	Display streak.BadgeDisplayInfo `json:"display"`
}

// RecordResult is the outcome of recording one entry.
type RecordResult struct {
	Entry Entry `json:"entry"`
	// Streak is the updated state for the entry's own journal type; nil when
	// the streak computation failed after the entry was saved.
	Streak *streak.State `json:"streak,omitempty"`
	// OverallStreak is the updated cross-category state, maintained alongside
	// every non-overall entry.
	OverallStreak *streak.State  `json:"overall_streak,omitempty"`
	NewBadges     []AwardedBadge `json:"new_badges,omitempty"`
	// Warning is set when streak accounting failed; the entry itself is saved
	// regardless and the streak self-corrects on the next entry.
	Warning string `json:"warning,omitempty"`
}

// MilestoneRow is one threshold's status plus its catalog metadata, used for
// the locked/unlocked achievements display.
type MilestoneRow struct {
	streak.MilestoneStatus
	Display streak.BadgeDisplayInfo `json:"display"`
}

// MilestoneView is the full achievements projection for one journal type.
type MilestoneView struct {
	JournalType streak.JournalType `json:"journal_type"`
	Milestones  []MilestoneRow     `json:"milestones"`
}

// RecalculationResult reports a repair run for one journal type.
type RecalculationResult struct {
	JournalType        streak.JournalType `json:"journal_type"`
	PreviousStreak     int                `json:"previous_streak"`
	RecalculatedStreak int                `json:"recalculated_streak"`
	Drifted            bool               `json:"drifted"`
	NewBadges          []AwardedBadge     `json:"new_badges,omitempty"`
}

// ProgressUpdate transforms the stored streak state for one (user, type) into
// its successor and the badges newly earned by the change. Implementations of
// Repository run it inside one logical transaction per (user, journal type),
// which is what keeps milestone detection's forward-progress precondition safe
// under concurrent submissions.
type ProgressUpdate func(state streak.State, badges streak.BadgeSet) (streak.State, []streak.EarnedBadge, error)

// Repository defines the persistence interface for streak progress data.
type Repository interface {
	SaveEntry(ctx context.Context, entry Entry) error
	UpdateProgress(ctx context.Context, userID string, journalType streak.JournalType, update ProgressUpdate) (streak.State, []streak.EarnedBadge, error)
	GetStreakStates(ctx context.Context, userID string) ([]streak.State, error)
	GetBadges(ctx context.Context, userID string) (streak.BadgeSet, error)
	SetBadgeCelebrated(ctx context.Context, userID, badgeID string) error
	// GetEntryDates returns the distinct entry dates for one journal type,
	// most recent first.
	GetEntryDates(ctx context.Context, userID string, journalType streak.JournalType) ([]string, error)
}

// Service defines the streak service interface.
type Service interface {
	RecordEntry(ctx context.Context, userID string, input EntryInput) (*RecordResult, error)
	GetStreaks(ctx context.Context, userID string) ([]streak.State, error)
	GetMilestones(ctx context.Context, userID string, journalType streak.JournalType) (*MilestoneView, error)
	CelebrateBadge(ctx context.Context, userID, badgeID string) error
	RecalculateStreak(ctx context.Context, userID string, journalType streak.JournalType) (*RecalculationResult, error)
}
