package journal

import "errors"

var (
	// ErrMissingUserID indicates a required user id was absent.
	ErrMissingUserID = errors.New("user id is required")
	// ErrInvalidJournalType indicates a journal type outside the supported set.
	ErrInvalidJournalType = errors.New("invalid journal type")
	// ErrInvalidEntryDate indicates an entry date that could not be parsed.
	ErrInvalidEntryDate = errors.New("invalid entry date")
	// ErrBadgeNotFound indicates the referenced badge does not exist for the user.
	ErrBadgeNotFound = errors.New("badge not found")
)
