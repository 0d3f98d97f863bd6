package domain

import "time"

// ProfileSourceActiveCampaign tags records whose AC link came from this service
const ProfileSourceActiveCampaign = "activecampaign"

// Person represents a contact in the local analytics store. Records are created
// by the export/import pipeline; this service only mutates tracked profile
// fields when a webhook reports a change.
type Person struct {
	ID                  uint       `json:"person_id" gorm:"primaryKey;column:person_id"`
	Name                string     `json:"name"`
	PrimaryEmail        string     `json:"primary_email"`
	Phone               string     `json:"phone,omitempty"`
	Company             string     `json:"company,omitempty"`
	Position            string     `json:"position,omitempty"`
	Industry            string     `json:"industry,omitempty"`
	Location            string     `json:"location,omitempty"`
	ProfessionalSummary string     `json:"professional_summary,omitempty"`
	ACContactID         *string    `json:"ac_contact_id,omitempty" gorm:"uniqueIndex"`
	ACLastSynced        *time.Time `json:"ac_last_synced,omitempty"`
	ACProfileSource     string     `json:"ac_profile_source,omitempty" gorm:"default:activecampaign"`
}

func (Person) TableName() string {
	return "persons"
}

// HasACContact reports whether the person is already linked to an AC contact
func (p *Person) HasACContact() bool {
	return p.ACContactID != nil && *p.ACContactID != ""
}
