package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/inkwellapp/streak-service/internal/events"
	"github.com/inkwellapp/streak-service/internal/streak"
)

type service struct {
	repo      Repository
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates the streak service on top of a repository and event publisher.
func NewService(repo Repository, publisher events.Publisher, logger *slog.Logger) Service {
	return &service{repo: repo, publisher: publisher, logger: logger, now: time.Now}
}

// RecordEntry saves the entry, then advances the streak for its journal type
// and the cross-category overall streak, awarding any crossed milestones. The
// entry save is committed before any streak math runs; if the streak update
// fails afterwards the result carries a warning instead of an error, since an
// undercounted streak self-corrects on the next entry.
func (s *service) RecordEntry(ctx context.Context, userID string, input EntryInput) (*RecordResult, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if !input.JournalType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidJournalType, input.JournalType)
	}

	entryDate, err := streak.NormalizeToDateOnly(input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntryDate, err)
	}

	entry := Entry{
		ID:          uuid.NewString(),
		UserID:      userID,
		JournalType: input.JournalType,
		Date:        entryDate,
		CreatedAt:   s.now(),
	}
	if err := s.repo.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}

	result := &RecordResult{Entry: entry}

	state, badges, err := s.advanceStreak(ctx, userID, input.JournalType, entryDate)
	if err != nil {
		s.logger.WarnContext(ctx, "streak update failed after entry save", "userId", userID, "journalType", input.JournalType, "error", err)
		result.Warning = "streak update failed; it will self-correct on your next entry"
		return result, nil
	}
	result.Streak = &state
	result.NewBadges = append(result.NewBadges, badges...)

	if input.JournalType != streak.TypeOverall {
		overall, overallBadges, err := s.advanceStreak(ctx, userID, streak.TypeOverall, entryDate)
		if err != nil {
			s.logger.WarnContext(ctx, "overall streak update failed", "userId", userID, "error", err)
		} else {
			result.OverallStreak = &overall
			result.NewBadges = append(result.NewBadges, overallBadges...)
		}
	}

	s.publishEntryRecorded(ctx, result)
	return result, nil
}

// advanceStreak runs one read-compute-write cycle for a (user, type) pair.
func (s *service) advanceStreak(ctx context.Context, userID string, journalType streak.JournalType, entryDate string) (streak.State, []AwardedBadge, error) {
	today := streak.ToLocalDateString(s.now())

	state, newBadges, err := s.repo.UpdateProgress(ctx, userID, journalType,
		func(prior streak.State, badges streak.BadgeSet) (streak.State, []streak.EarnedBadge, error) {
			result, err := streak.CalculateUpdatedStreak(prior.CurrentStreak, prior.LastEntryDate, entryDate)
			if err != nil {
				return streak.State{}, nil, err
			}

			next := streak.State{
				JournalType:   journalType,
				CurrentStreak: result.NewStreak,
				LastEntryDate: result.LastEntryDate,
			}

			earned, err := streak.CheckForNewMilestones(journalType, prior.CurrentStreak, result.NewStreak, badges, today)
			if err != nil {
				return streak.State{}, nil, err
			}
			return next, earned, nil
		})
	if err != nil {
		return streak.State{}, nil, err
	}

	return state, s.withDisplay(ctx, userID, newBadges), nil
}

// withDisplay decorates new badges with catalog metadata and publishes one
// badge.earned event per award.
func (s *service) withDisplay(ctx context.Context, userID string, earned []streak.EarnedBadge) []AwardedBadge {
	if len(earned) == 0 {
		return nil
	}
	awarded := make([]AwardedBadge, 0, len(earned))
	for _, badge := range earned {
		display := streak.GetBadgeDisplayInfo(badge)
		awarded = append(awarded, AwardedBadge{EarnedBadge: badge, Display: display})

		event := events.BadgeEarned{
			UserID:      userID,
			BadgeID:     badge.ID,
			JournalType: badge.JournalType,
			Threshold:   badge.Threshold,
			EarnedDate:  badge.EarnedDate,
			Reflective:  display.Reflective,
			EarnedAt:    s.now(),
		}
		if err := s.publisher.Publish(ctx, events.TopicBadgeEvents, event); err != nil {
			s.logger.WarnContext(ctx, "badge event publish failed", "badgeId", badge.ID, "error", err)
		}
	}
	return awarded
}

func (s *service) publishEntryRecorded(ctx context.Context, result *RecordResult) {
	event := events.EntryRecorded{
		UserID:      result.Entry.UserID,
		EntryID:     result.Entry.ID,
		JournalType: result.Entry.JournalType,
		EntryDate:   result.Entry.Date,
		RecordedAt:  s.now(),
	}
	if result.Streak != nil {
		event.Streak = result.Streak.CurrentStreak
	}
	if err := s.publisher.Publish(ctx, events.TopicEntryEvents, event); err != nil {
		s.logger.WarnContext(ctx, "entry event publish failed", "entryId", result.Entry.ID, "error", err)
	}
}

// GetStreaks returns the streak state for every journal type, including zero
// states for types the user has never journaled in.
func (s *service) GetStreaks(ctx context.Context, userID string) ([]streak.State, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	stored, err := s.repo.GetStreakStates(ctx, userID)
	if err != nil {
		return nil, err
	}

	byType := make(map[streak.JournalType]streak.State, len(stored))
	for _, state := range stored {
		byType[state.JournalType] = state
	}

	states := make([]streak.State, 0, len(streak.JournalTypes))
	for _, journalType := range streak.JournalTypes {
		state, ok := byType[journalType]
		if !ok {
			state = streak.State{JournalType: journalType}
		}
		states = append(states, state)
	}
	return states, nil
}

// GetMilestones projects the earned/locked status of all five thresholds for
// one journal type, each row annotated with catalog display metadata.
func (s *service) GetMilestones(ctx context.Context, userID string, journalType streak.JournalType) (*MilestoneView, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if !journalType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidJournalType, journalType)
	}

	badges, err := s.repo.GetBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	statuses := streak.GetMilestonesForType(journalType, badges)
	rows := make([]MilestoneRow, 0, len(statuses))
	for _, status := range statuses {
		rows = append(rows, MilestoneRow{
			MilestoneStatus: status,
			Display: streak.GetBadgeDisplayInfo(streak.EarnedBadge{
				JournalType: journalType,
				Threshold:   status.Threshold,
			}),
		})
	}

	return &MilestoneView{JournalType: journalType, Milestones: rows}, nil
}

// CelebrateBadge flips the badge's celebrated flag after its first display.
func (s *service) CelebrateBadge(ctx context.Context, userID, badgeID string) error {
	if userID == "" {
		return ErrMissingUserID
	}
	return s.repo.SetBadgeCelebrated(ctx, userID, badgeID)
}

// RecalculateStreak rebuilds one journal type's streak from its full entry
// history, the repair path for suspected drift and for imported backlogs.
// Badges for thresholds the rebuilt streak has crossed are awarded through the
// same detector as the incremental path.
func (s *service) RecalculateStreak(ctx context.Context, userID string, journalType streak.JournalType) (*RecalculationResult, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if !journalType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidJournalType, journalType)
	}

	dates, err := s.repo.GetEntryDates(ctx, userID, journalType)
	if err != nil {
		return nil, err
	}

	rebuilt, err := streak.RecalculateStreakFromDates(dates, s.now())
	if err != nil {
		return nil, err
	}

	today := streak.ToLocalDateString(s.now())
	var previous int
	state, newBadges, err := s.repo.UpdateProgress(ctx, userID, journalType,
		func(prior streak.State, badges streak.BadgeSet) (streak.State, []streak.EarnedBadge, error) {
			previous = prior.CurrentStreak

			next := streak.State{
				JournalType:   journalType,
				CurrentStreak: rebuilt,
				LastEntryDate: prior.LastEntryDate,
			}
			if len(dates) > 0 {
				next.LastEntryDate = dates[0]
			}

			earned, err := streak.CheckForNewMilestones(journalType, prior.CurrentStreak, rebuilt, badges, today)
			if err != nil {
				return streak.State{}, nil, err
			}
			return next, earned, nil
		})
	if err != nil {
		return nil, err
	}

	if previous != state.CurrentStreak {
		s.logger.InfoContext(ctx, "streak drift repaired", "userId", userID, "journalType", journalType, "from", previous, "to", state.CurrentStreak)
	}

	return &RecalculationResult{
		JournalType:        journalType,
		PreviousStreak:     previous,
		RecalculatedStreak: state.CurrentStreak,
		Drifted:            previous != state.CurrentStreak,
		NewBadges:          s.withDisplay(ctx, userID, newBadges),
	}, nil
}
