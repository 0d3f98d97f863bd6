package domain

import "time"

// WebhookLog records every inbound webhook event regardless of outcome
type WebhookLog struct {
	ID           string    `json:"log_id" gorm:"primaryKey;column:log_id"`
	WebhookType  string    `json:"webhook_type" gorm:"not null"`
	ACContactID  string    `json:"ac_contact_id" gorm:"index"`
	Email        string    `json:"email"`
	ReceivedAt   time.Time `json:"received_at" gorm:"index;not null"`
	Payload      string    `json:"payload,omitempty"`
	Processed    bool      `json:"processed" gorm:"default:false"`
	PersonID     *uint     `json:"person_id,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
}
