package domain

import "time"

// ProfileUpdate records one field's before/after value from one reconciliation.
// Rows are pulled by the downstream sync job and acknowledged exactly once via
// the synced_to_local flag.
type ProfileUpdate struct {
	ID            uint       `json:"update_id" gorm:"primaryKey;column:update_id"`
	PersonID      uint       `json:"person_id" gorm:"index;not null"`
	ACContactID   string     `json:"ac_contact_id" gorm:"not null"`
	FieldName     string     `json:"field_name" gorm:"not null"`
	OldValue      string     `json:"old_value"`
	NewValue      string     `json:"new_value"`
	// UpdatedAt is the reconciliation time; gorm must not rewrite it on confirm
	UpdatedAt     time.Time  `json:"updated_at" gorm:"index;autoUpdateTime:false"`
	Source        string     `json:"source" gorm:"default:webhook"`
	SyncedToLocal bool       `json:"synced_to_local" gorm:"default:false"`
	SyncedAt      *time.Time `json:"synced_at,omitempty"`
}
