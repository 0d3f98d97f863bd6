package repository

import (
	"errors"
	"time"

	"acsync-backend/internal/contact/domain"
)

// ErrPersonNotFound is returned when a profile update targets a missing person
var ErrPersonNotFound = errors.New("person not found")

// PersonRepository defines data access for the persons table
type PersonRepository interface {
	// FindByACContactID finds a person by their AC contact link (exact match)
	FindByACContactID(acContactID string) (*domain.Person, error)

	// FindByEmail finds a person by normalized primary email
	FindByEmail(email string) (*domain.Person, error)

	// LinkACContact sets the AC contact id and profile source on a person
	LinkACContact(personID uint, acContactID string) error

	// ApplyProfile applies non-empty differing fields to the person and
	// records one ProfileUpdate per change, all within one transaction.
	// Returns the change set; an empty set means nothing was written.
	ApplyProfile(personID uint, acContactID string, profile *domain.ProfileFields) ([]domain.FieldChange, error)
}

// ProfileUpdateRepository defines data access for the change history
type ProfileUpdateRepository interface {
	// FindUpdates returns change records newest-first, optionally filtered
	// by timestamp and sync status
	FindUpdates(since *time.Time, limit int, includeSynced bool) ([]*domain.ProfileUpdate, error)

	// MarkSynced flags a batch of change records as pulled by the consumer
	MarkSynced(updateIDs []uint, syncedAt time.Time) (int64, error)

	// CountSyncedBefore counts synced records older than the cutoff
	CountSyncedBefore(cutoff time.Time) (int64, error)

	// DeleteSyncedBefore purges synced records older than the cutoff
	DeleteSyncedBefore(cutoff time.Time) (int64, error)
}

// WebhookLogRepository defines data access for the inbound-event audit trail
type WebhookLogRepository interface {
	// Create appends one audit entry for an inbound event
	Create(entry *domain.WebhookLog) error
}
