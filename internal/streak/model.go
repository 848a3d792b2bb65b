package streak

import "fmt"

// JournalType identifies one of the four independent engagement categories.
// Streaks and badges for different types never interact.
type JournalType string

const (
	TypeJourney JournalType = "journey"
	TypeMood    JournalType = "mood"
	TypeFlip    JournalType = "flip"
	TypeOverall JournalType = "overall"
)

// JournalTypes lists every journal type in canonical order.
var JournalTypes = []JournalType{TypeJourney, TypeMood, TypeFlip, TypeOverall}

// Valid reports whether t is one of the known journal types.
func (t JournalType) Valid() bool {
	switch t {
	case TypeJourney, TypeMood, TypeFlip, TypeOverall:
		return true
	}
	return false
}

// Thresholds are the fixed ascending streak lengths that award a badge.
var Thresholds = []int{7, 14, 30, 60, 90}

// State holds the streak counter for one journal type. An empty LastEntryDate
// means no entry has ever been recorded for the type.
type State struct {
	JournalType   JournalType `json:"journal_type" firestore:"journal_type"`
	CurrentStreak int         `json:"current_streak" firestore:"current_streak"`
	LastEntryDate string      `json:"last_entry_date,omitempty" firestore:"last_entry_date"`
}

// Result is the outcome of applying one entry to a streak.
type Result struct {
	NewStreak     int
	LastEntryDate string
}

// EarnedBadge records that a threshold was crossed for a journal type.
// Created once per (type, threshold); only Celebrated is ever mutated afterwards.
type EarnedBadge struct {
	ID          string      `json:"id" firestore:"id"`
	JournalType JournalType `json:"journal_type" firestore:"journal_type"`
	Threshold   int         `json:"threshold" firestore:"threshold"`
	EarnedDate  string      `json:"earned_date" firestore:"earned_date"`
	Celebrated  bool        `json:"celebrated" firestore:"celebrated"`
}

// BadgeID builds the deterministic badge identifier for a (type, threshold) pair.
func BadgeID(journalType JournalType, threshold int) string {
	return fmt.Sprintf("%s-%d", journalType, threshold)
}

// BadgeSet is a collection of earned badges keyed by badge ID. Membership by
// ID is the sole uniqueness mechanism.
type BadgeSet map[string]EarnedBadge

// Has reports whether a badge with the given ID is in the set.
func (s BadgeSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts the badges into the set, keyed by ID.
func (s BadgeSet) Add(badges ...EarnedBadge) {
	for _, b := range badges {
		s[b.ID] = b
	}
}
