package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/inkwellapp/streak-service/internal/streak"
)

// Topic names used by Inkwell services.
const (
	TopicEntryEvents = "journal.entry.events"
	TopicBadgeEvents = "journal.badge.events"
)

// EntryRecorded is emitted after a journal entry is saved and its streak updated.
type EntryRecorded struct {
	UserID      string             `json:"userId"`
	EntryID     string             `json:"entryId"`
	JournalType streak.JournalType `json:"journalType"`
	EntryDate   string             `json:"entryDate"`
	Streak      int                `json:"streak"`
	RecordedAt  time.Time          `json:"recordedAt"`
}

// BadgeEarned is emitted once per newly awarded milestone badge.
type BadgeEarned struct {
	UserID      string             `json:"userId"`
	BadgeID     string             `json:"badgeId"`
	JournalType streak.JournalType `json:"journalType"`
	Threshold   int                `json:"threshold"`
	EarnedDate  string             `json:"earnedDate"`
	Reflective  bool               `json:"reflective"`
	EarnedAt    time.Time          `json:"earnedAt"`
}

// Publisher delivers event payloads to a topic. Publishing is best effort from
// the caller's perspective; a failed publish must never fail the request that
// produced the event.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// LogPublisher writes events to the structured log. It is the default
// publisher until a message broker is attached in deployment.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher returns a Publisher backed by the supplied logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, payload any) error {
	p.logger.InfoContext(ctx, "event published", "topic", topic, "payload", payload)
	return nil
}
