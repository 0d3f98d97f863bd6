package domain

import "strings"

// Webhook event types sent by ActiveCampaign
const (
	EventContactAdd    = "contact_add"
	EventContactUpdate = "contact_update"
	EventContactDelete = "contact_delete"
)

// FieldValue is one AC custom-field entry from the webhook payload
type FieldValue struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ContactPayload is the contact object inside a webhook envelope. AC sends
// camelCase in JSON bodies and snake_case in form-encoded ones, so both name
// spellings are accepted.
type ContactPayload struct {
	ID             string       `json:"id"`
	Email          string       `json:"email"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	Phone          string       `json:"phone"`
	FirstNameSnake string       `json:"first_name,omitempty"`
	LastNameSnake  string       `json:"last_name,omitempty"`
	FieldValues    []FieldValue `json:"fieldValues,omitempty"`
}

// FirstNameValue returns the first name from whichever spelling was sent
func (c *ContactPayload) FirstNameValue() string {
	if c.FirstName != "" {
		return c.FirstName
	}
	return c.FirstNameSnake
}

// LastNameValue returns the last name from whichever spelling was sent
func (c *ContactPayload) LastNameValue() string {
	if c.LastName != "" {
		return c.LastName
	}
	return c.LastNameSnake
}

// WebhookPayload is the normalized inbound event envelope
type WebhookPayload struct {
	Type      string         `json:"type"`
	ContactID string         `json:"contact_id,omitempty"`
	Contact   ContactPayload `json:"contact"`
}

// ContactIDValue prefers the nested contact id over the top-level fallback
func (p *WebhookPayload) ContactIDValue() string {
	if p.Contact.ID != "" {
		return p.Contact.ID
	}
	return p.ContactID
}

// EmailValue returns the contact email normalized for matching
func (p *WebhookPayload) EmailValue() string {
	return NormalizeEmail(p.Contact.Email)
}

// NormalizeEventType prefixes bare AC event names ("update") with "contact_"
func NormalizeEventType(eventType string) string {
	if eventType != "" && !strings.HasPrefix(eventType, "contact_") {
		return "contact_" + eventType
	}
	return eventType
}
