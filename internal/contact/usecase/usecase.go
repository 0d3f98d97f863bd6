package usecase

import (
	"time"

	"acsync-backend/internal/contact/domain"
)

// ReconcileUsecase defines the business logic for inbound webhook events
type ReconcileUsecase interface {
	// HandleContactAdd links an existing person to a new AC contact, or logs
	// the event for the next export sync when the person is unknown
	HandleContactAdd(payload *domain.WebhookPayload) (*EventResult, error)

	// HandleContactUpdate resolves the person, applies the profile diff and
	// records the field-level change history
	HandleContactUpdate(payload *domain.WebhookPayload) (*EventResult, error)

	// HandleContactDelete logs the event; deletions are never propagated
	HandleContactDelete(payload *domain.WebhookPayload) (*EventResult, error)
}

// EventResult is the outcome reported back to ActiveCampaign. Success=false
// with a message is a deferred state, not an error; the caller still gets 200.
type EventResult struct {
	Success     bool   `json:"success"`
	PersonID    *uint  `json:"person_id,omitempty"`
	ACContactID string `json:"ac_contact_id"`
	Message     string `json:"message"`
}

// SyncUsecase defines the downstream pull interface over the change history
type SyncUsecase interface {
	// GetProfileUpdates returns change records for the sync consumer
	GetProfileUpdates(since *time.Time, limit int, includeSynced bool) ([]*domain.ProfileUpdate, error)

	// ConfirmSync marks a batch of change records as pulled
	ConfirmSync(updateIDs []uint) (int64, error)

	// CleanupSynced purges synced change records older than daysOld days.
	// With dryRun it only counts what would be deleted.
	CleanupSynced(daysOld int, dryRun bool) (*CleanupResult, error)
}

// CleanupResult reports what a retention cleanup did (or would do)
type CleanupResult struct {
	Count      int64
	CutoffDate time.Time
	DryRun     bool
}
