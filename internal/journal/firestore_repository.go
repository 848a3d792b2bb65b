package journal

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/inkwellapp/streak-service/internal/streak"
)

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository creates a Firestore-backed repository. Layout:
// users/{uid}/entries/{entryId}, users/{uid}/streaks/{journalType},
// users/{uid}/badges/{badgeId}.
func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

func (r *firestoreRepository) userDoc(userID string) *firestore.DocumentRef {
	return r.client.Collection("users").Doc(userID)
}

func (r *firestoreRepository) SaveEntry(ctx context.Context, entry Entry) error {
	_, err := r.userDoc(entry.UserID).Collection("entries").Doc(entry.ID).Create(ctx, entry)
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

// UpdateProgress runs the read-compute-write cycle for one (user, journal
// type) inside a Firestore transaction, so concurrent submissions for the
// same type serialize instead of clobbering each other's streak reads.
func (r *firestoreRepository) UpdateProgress(ctx context.Context, userID string, journalType streak.JournalType, update ProgressUpdate) (streak.State, []streak.EarnedBadge, error) {
	var (
		nextState streak.State
		newBadges []streak.EarnedBadge
	)

	stateRef := r.userDoc(userID).Collection("streaks").Doc(string(journalType))
	badgesQuery := r.userDoc(userID).Collection("badges").Query

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		prior := streak.State{JournalType: journalType}
		snap, err := tx.Get(stateRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return fmt.Errorf("read streak state: %w", err)
		}
		if snap != nil && snap.Exists() {
			if err := snap.DataTo(&prior); err != nil {
				return fmt.Errorf("unmarshal streak state: %w", err)
			}
		}

		docs, err := tx.Documents(badgesQuery).GetAll()
		if err != nil {
			return fmt.Errorf("read badges: %w", err)
		}
		badges := make(streak.BadgeSet, len(docs))
		for _, doc := range docs {
			var badge streak.EarnedBadge
			if err := doc.DataTo(&badge); err != nil {
				return fmt.Errorf("unmarshal badge %s: %w", doc.Ref.ID, err)
			}
			badges[badge.ID] = badge
		}

		nextState, newBadges, err = update(prior, badges)
		if err != nil {
			return err
		}

		if err := tx.Set(stateRef, nextState); err != nil {
			return fmt.Errorf("write streak state: %w", err)
		}
		for _, badge := range newBadges {
			badgeRef := r.userDoc(userID).Collection("badges").Doc(badge.ID)
			// Create, not Set: a concurrent award of the same badge must fail
			// the transaction rather than silently overwrite.
			if err := tx.Create(badgeRef, badge); err != nil {
				return fmt.Errorf("write badge %s: %w", badge.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return streak.State{}, nil, err
	}

	return nextState, newBadges, nil
}

func (r *firestoreRepository) GetStreakStates(ctx context.Context, userID string) ([]streak.State, error) {
	iter := r.userDoc(userID).Collection("streaks").Documents(ctx)
	defer iter.Stop()

	var states []streak.State
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read streak states: %w", err)
		}

		var state streak.State
		if err := doc.DataTo(&state); err != nil {
			return nil, fmt.Errorf("unmarshal streak state %s: %w", doc.Ref.ID, err)
		}
		states = append(states, state)
	}
	return states, nil
}

func (r *firestoreRepository) GetBadges(ctx context.Context, userID string) (streak.BadgeSet, error) {
	iter := r.userDoc(userID).Collection("badges").Documents(ctx)
	defer iter.Stop()

	badges := make(streak.BadgeSet)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read badges: %w", err)
		}

		var badge streak.EarnedBadge
		if err := doc.DataTo(&badge); err != nil {
			return nil, fmt.Errorf("unmarshal badge %s: %w", doc.Ref.ID, err)
		}
		badges[badge.ID] = badge
	}
	return badges, nil
}

func (r *firestoreRepository) SetBadgeCelebrated(ctx context.Context, userID, badgeID string) error {
	ref := r.userDoc(userID).Collection("badges").Doc(badgeID)
	_, err := ref.Update(ctx, []firestore.Update{{Path: "celebrated", Value: true}})
	if status.Code(err) == codes.NotFound {
		return ErrBadgeNotFound
	}
	if err != nil {
		return fmt.Errorf("update badge %s: %w", badgeID, err)
	}
	return nil
}

func (r *firestoreRepository) GetEntryDates(ctx context.Context, userID string, journalType streak.JournalType) ([]string, error) {
	iter := r.userDoc(userID).Collection("entries").
		Where("journal_type", "==", string(journalType)).
		OrderBy("date", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var dates []string
	seen := make(map[string]struct{})
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read entry dates: %w", err)
		}

		var entry Entry
		if err := doc.DataTo(&entry); err != nil {
			return nil, fmt.Errorf("unmarshal entry %s: %w", doc.Ref.ID, err)
		}
		if _, ok := seen[entry.Date]; ok {
			continue
		}
		seen[entry.Date] = struct{}{}
		dates = append(dates, entry.Date)
	}
	return dates, nil
}
