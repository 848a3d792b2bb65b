package journal

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/inkwellapp/streak-service/internal/streak"
)

// memoryRepository keeps all progress data in process memory. Used for local
// development and tests (DATASTORE=memory).
type memoryRepository struct {
	mu      sync.Mutex
	entries map[string][]Entry                             // userID -> entries
	states  map[string]map[streak.JournalType]streak.State // userID -> type -> state
	badges  map[string]streak.BadgeSet                     // userID -> badges
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		entries: make(map[string][]Entry),
		states:  make(map[string]map[streak.JournalType]streak.State),
		badges:  make(map[string]streak.BadgeSet),
	}
}

func (r *memoryRepository) SaveEntry(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.UserID] = append(r.entries[entry.UserID], entry)
	return nil
}

// UpdateProgress serializes all updates behind one mutex, which trivially
// satisfies the one-transaction-per-(user, type) requirement.
func (r *memoryRepository) UpdateProgress(_ context.Context, userID string, journalType streak.JournalType, update ProgressUpdate) (streak.State, []streak.EarnedBadge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userStates, ok := r.states[userID]
	if !ok {
		userStates = make(map[streak.JournalType]streak.State)
		r.states[userID] = userStates
	}
	prior, ok := userStates[journalType]
	if !ok {
		prior = streak.State{JournalType: journalType}
	}

	userBadges, ok := r.badges[userID]
	if !ok {
		userBadges = make(streak.BadgeSet)
		r.badges[userID] = userBadges
	}

	// Copy so the update closure cannot mutate stored badges.
	badgesCopy := make(streak.BadgeSet, len(userBadges))
	for id, badge := range userBadges {
		badgesCopy[id] = badge
	}

	next, earned, err := update(prior, badgesCopy)
	if err != nil {
		return streak.State{}, nil, err
	}

	for _, badge := range earned {
		if userBadges.Has(badge.ID) {
			return streak.State{}, nil, fmt.Errorf("badge %s already exists", badge.ID)
		}
	}

	userStates[journalType] = next
	userBadges.Add(earned...)
	return next, earned, nil
}

func (r *memoryRepository) GetStreakStates(_ context.Context, userID string) ([]streak.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var states []streak.State
	for _, journalType := range streak.JournalTypes {
		if state, ok := r.states[userID][journalType]; ok {
			states = append(states, state)
		}
	}
	return states, nil
}

func (r *memoryRepository) GetBadges(_ context.Context, userID string) (streak.BadgeSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	badges := make(streak.BadgeSet, len(r.badges[userID]))
	for id, badge := range r.badges[userID] {
		badges[id] = badge
	}
	return badges, nil
}

func (r *memoryRepository) SetBadgeCelebrated(_ context.Context, userID, badgeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	badge, ok := r.badges[userID][badgeID]
	if !ok {
		return ErrBadgeNotFound
	}
	badge.Celebrated = true
	r.badges[userID][badgeID] = badge
	return nil
}

func (r *memoryRepository) GetEntryDates(_ context.Context, userID string, journalType streak.JournalType) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{})
	var dates []string
	for _, entry := range r.entries[userID] {
		if entry.JournalType != journalType {
			continue
		}
		if _, ok := seen[entry.Date]; ok {
			continue
		}
		seen[entry.Date] = struct{}{}
		dates = append(dates, entry.Date)
	}

	slices.Sort(dates)
	slices.Reverse(dates)
	return dates, nil
}
