package journal

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/inkwellapp/streak-service/internal/events"
	"github.com/inkwellapp/streak-service/internal/streak"
)

type fakeRepo struct {
	saveEntryFn          func(context.Context, Entry) error
	updateProgressFn     func(context.Context, string, streak.JournalType, ProgressUpdate) (streak.State, []streak.EarnedBadge, error)
	getStreakStatesFn    func(context.Context, string) ([]streak.State, error)
	getBadgesFn          func(context.Context, string) (streak.BadgeSet, error)
	setBadgeCelebratedFn func(context.Context, string, string) error
	getEntryDatesFn      func(context.Context, string, streak.JournalType) ([]string, error)
}

func (f *fakeRepo) SaveEntry(ctx context.Context, entry Entry) error {
	if f.saveEntryFn != nil {
		return f.saveEntryFn(ctx, entry)
	}
	return nil
}

func (f *fakeRepo) UpdateProgress(ctx context.Context, userID string, journalType streak.JournalType, update ProgressUpdate) (streak.State, []streak.EarnedBadge, error) {
	if f.updateProgressFn != nil {
		return f.updateProgressFn(ctx, userID, journalType, update)
	}
	return update(streak.State{JournalType: journalType}, streak.BadgeSet{})
}

func (f *fakeRepo) GetStreakStates(ctx context.Context, userID string) ([]streak.State, error) {
	if f.getStreakStatesFn != nil {
		return f.getStreakStatesFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeRepo) GetBadges(ctx context.Context, userID string) (streak.BadgeSet, error) {
	if f.getBadgesFn != nil {
		return f.getBadgesFn(ctx, userID)
	}
	return streak.BadgeSet{}, nil
}

func (f *fakeRepo) SetBadgeCelebrated(ctx context.Context, userID, badgeID string) error {
	if f.setBadgeCelebratedFn != nil {
		return f.setBadgeCelebratedFn(ctx, userID, badgeID)
	}
	return nil
}

func (f *fakeRepo) GetEntryDates(ctx context.Context, userID string, journalType streak.JournalType) ([]string, error) {
	if f.getEntryDatesFn != nil {
		return f.getEntryDatesFn(ctx, userID, journalType)
	}
	return nil, nil
}

type capturePublisher struct {
	published []string // topics in publish order
	payloads  []any
}

func (p *capturePublisher) Publish(_ context.Context, topic string, payload any) error {
	p.published = append(p.published, topic)
	p.payloads = append(p.payloads, payload)
	return nil
}

func newTestService(repo Repository, publisher events.Publisher) *service {
	return NewService(repo, publisher, slog.Default()).(*service)
}

func TestRecordEntry_ColdStartUpdatesTypeAndOverall(t *testing.T) {
	repo := NewMemoryRepository()
	publisher := &capturePublisher{}
	svc := newTestService(repo, publisher)

	today := streak.ToLocalDateString(time.Now())
	result, err := svc.RecordEntry(context.Background(), "user-123", EntryInput{JournalType: streak.TypeMood, Date: today})
	if err != nil {
		t.Fatalf("RecordEntry returned error: %v", err)
	}

	if result.Entry.ID == "" || result.Entry.Date != today {
		t.Fatalf("entry not populated: %+v", result.Entry)
	}
	if result.Streak == nil || result.Streak.CurrentStreak != 1 {
		t.Fatalf("expected mood streak 1, got %+v", result.Streak)
	}
	if result.OverallStreak == nil || result.OverallStreak.CurrentStreak != 1 {
		t.Fatalf("expected overall streak 1, got %+v", result.OverallStreak)
	}
	if len(result.NewBadges) != 0 || result.Warning != "" {
		t.Fatalf("unexpected badges or warning: %+v", result)
	}
}

func TestRecordEntry_AwardsBadgeWithDisplayInfo(t *testing.T) {
	now := time.Now()
	yesterday := streak.ToLocalDateString(now.AddDate(0, 0, -1))
	today := streak.ToLocalDateString(now)

	repo := &fakeRepo{
		updateProgressFn: func(_ context.Context, _ string, journalType streak.JournalType, update ProgressUpdate) (streak.State, []streak.EarnedBadge, error) {
			prior := streak.State{JournalType: journalType, CurrentStreak: 6, LastEntryDate: yesterday}
			if journalType == streak.TypeOverall {
				prior.CurrentStreak = 2
			}
			return update(prior, streak.BadgeSet{})
		},
	}
	publisher := &capturePublisher{}
	svc := newTestService(repo, publisher)

	result, err := svc.RecordEntry(context.Background(), "user-123", EntryInput{JournalType: streak.TypeMood, Date: today})
	if err != nil {
		t.Fatalf("RecordEntry returned error: %v", err)
	}

	if result.Streak.CurrentStreak != 7 {
		t.Fatalf("expected streak 7, got %d", result.Streak.CurrentStreak)
	}
	if len(result.NewBadges) != 1 {
		t.Fatalf("expected 1 badge, got %d", len(result.NewBadges))
	}
	badge := result.NewBadges[0]
	if badge.ID != "mood-7" || badge.Display.Title == "" || badge.Display.TypeLabel == "" {
		t.Fatalf("badge missing display info: %+v", badge)
	}

	var sawBadgeEvent, sawEntryEvent bool
	for _, topic := range publisher.published {
		switch topic {
		case events.TopicBadgeEvents:
			sawBadgeEvent = true
		case events.TopicEntryEvents:
			sawEntryEvent = true
		}
	}
	if !sawBadgeEvent || !sawEntryEvent {
		t.Fatalf("expected badge and entry events, got %v", publisher.published)
	}
}

func TestRecordEntry_RejectsBadInput(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &capturePublisher{})

	if _, err := svc.RecordEntry(context.Background(), "", EntryInput{JournalType: streak.TypeMood, Date: "2026-02-10"}); !errors.Is(err, ErrMissingUserID) {
		t.Fatalf("expected ErrMissingUserID, got %v", err)
	}
	if _, err := svc.RecordEntry(context.Background(), "user-123", EntryInput{JournalType: "diary", Date: "2026-02-10"}); !errors.Is(err, ErrInvalidJournalType) {
		t.Fatalf("expected ErrInvalidJournalType, got %v", err)
	}
	if _, err := svc.RecordEntry(context.Background(), "user-123", EntryInput{JournalType: streak.TypeMood, Date: "someday"}); !errors.Is(err, ErrInvalidEntryDate) {
		t.Fatalf("expected ErrInvalidEntryDate, got %v", err)
	}
}

func TestRecordEntry_StreakFailureDoesNotBlockSave(t *testing.T) {
	saved := false
	repo := &fakeRepo{
		saveEntryFn: func(context.Context, Entry) error {
			saved = true
			return nil
		},
		updateProgressFn: func(context.Context, string, streak.JournalType, ProgressUpdate) (streak.State, []streak.EarnedBadge, error) {
			return streak.State{}, nil, errors.New("firestore unavailable")
		},
	}
	svc := newTestService(repo, &capturePublisher{})

	result, err := svc.RecordEntry(context.Background(), "user-123", EntryInput{JournalType: streak.TypeJourney, Date: "2026-02-10"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !saved {
		t.Fatal("entry was not saved")
	}
	if result.Warning == "" || result.Streak != nil {
		t.Fatalf("expected warning with no streak, got %+v", result)
	}
}

func TestGetStreaks_FillsZeroStates(t *testing.T) {
	repo := &fakeRepo{
		getStreakStatesFn: func(context.Context, string) ([]streak.State, error) {
			return []streak.State{{JournalType: streak.TypeMood, CurrentStreak: 4, LastEntryDate: "2026-02-10"}}, nil
		},
	}
	svc := newTestService(repo, &capturePublisher{})

	states, err := svc.GetStreaks(context.Background(), "user-123")
	if err != nil {
		t.Fatalf("GetStreaks returned error: %v", err)
	}
	if len(states) != len(streak.JournalTypes) {
		t.Fatalf("expected %d states, got %d", len(streak.JournalTypes), len(states))
	}
	for _, state := range states {
		if state.JournalType == streak.TypeMood {
			if state.CurrentStreak != 4 {
				t.Fatalf("stored mood state lost: %+v", state)
			}
			continue
		}
		if state.CurrentStreak != 0 || state.LastEntryDate != "" {
			t.Fatalf("expected zero state for %s, got %+v", state.JournalType, state)
		}
	}
}

func TestGetMilestones_ProjectsAllThresholds(t *testing.T) {
	repo := &fakeRepo{
		getBadgesFn: func(context.Context, string) (streak.BadgeSet, error) {
			badges := streak.BadgeSet{}
			badges.Add(streak.EarnedBadge{ID: "flip-7", JournalType: streak.TypeFlip, Threshold: 7, EarnedDate: "2026-02-01"})
			return badges, nil
		},
	}
	svc := newTestService(repo, &capturePublisher{})

	view, err := svc.GetMilestones(context.Background(), "user-123", streak.TypeFlip)
	if err != nil {
		t.Fatalf("GetMilestones returned error: %v", err)
	}
	if len(view.Milestones) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(view.Milestones))
	}
	for i, row := range view.Milestones {
		if row.Display.Title == "" {
			t.Fatalf("row %d missing display info", i)
		}
		if wantEarned := row.Threshold == 7; row.Earned != wantEarned {
			t.Fatalf("threshold %d: earned = %v", row.Threshold, row.Earned)
		}
	}
}

func TestCelebrateBadge_PropagatesNotFound(t *testing.T) {
	repo := &fakeRepo{
		setBadgeCelebratedFn: func(context.Context, string, string) error {
			return ErrBadgeNotFound
		},
	}
	svc := newTestService(repo, &capturePublisher{})

	if err := svc.CelebrateBadge(context.Background(), "user-123", "mood-999"); !errors.Is(err, ErrBadgeNotFound) {
		t.Fatalf("expected ErrBadgeNotFound, got %v", err)
	}
}

func TestRecalculateStreak_RepairsDriftAndAwardsBackfill(t *testing.T) {
	now := time.Now()
	dates := make([]string, 0, 90)
	for i := 0; i < 90; i++ {
		dates = append(dates, streak.ToLocalDateString(now.AddDate(0, 0, -i)))
	}

	repo := &fakeRepo{
		getEntryDatesFn: func(context.Context, string, streak.JournalType) ([]string, error) {
			return dates, nil
		},
		updateProgressFn: func(_ context.Context, _ string, journalType streak.JournalType, update ProgressUpdate) (streak.State, []streak.EarnedBadge, error) {
			prior := streak.State{JournalType: journalType, CurrentStreak: 3, LastEntryDate: dates[0]}
			return update(prior, streak.BadgeSet{})
		},
	}
	svc := newTestService(repo, &capturePublisher{})

	result, err := svc.RecalculateStreak(context.Background(), "user-123", streak.TypeJourney)
	if err != nil {
		t.Fatalf("RecalculateStreak returned error: %v", err)
	}
	if result.RecalculatedStreak != 90 || result.PreviousStreak != 3 || !result.Drifted {
		t.Fatalf("unexpected repair result: %+v", result)
	}
	if len(result.NewBadges) != 5 {
		t.Fatalf("expected all 5 badges from backfill, got %d", len(result.NewBadges))
	}
	for i, want := range streak.Thresholds {
		if result.NewBadges[i].Threshold != want {
			t.Fatalf("badge %d: expected threshold %d, got %d", i, want, result.NewBadges[i].Threshold)
		}
	}
}
