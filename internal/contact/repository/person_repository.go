package repository

import (
	"time"

	"acsync-backend/internal/contact/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormPersonRepository implements PersonRepository using GORM
type gormPersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new GORM-based PersonRepository
func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &gormPersonRepository{db: db}
}

func (r *gormPersonRepository) FindByACContactID(acContactID string) (*domain.Person, error) {
	var person domain.Person
	err := r.db.Where("ac_contact_id = ?", acContactID).First(&person).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

func (r *gormPersonRepository) FindByEmail(email string) (*domain.Person, error) {
	var person domain.Person
	err := r.db.Where("LOWER(TRIM(primary_email)) = ?", domain.NormalizeEmail(email)).First(&person).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

func (r *gormPersonRepository) LinkACContact(personID uint, acContactID string) error {
	return r.db.Model(&domain.Person{}).Where("person_id = ?", personID).
		Updates(map[string]interface{}{
			"ac_contact_id":     acContactID,
			"ac_profile_source": domain.ProfileSourceActiveCampaign,
		}).Error
}

// ApplyProfile runs the read-diff-write cycle in one transaction with the
// person row locked, so two webhooks for the same person cannot interleave
// between the read and the update.
func (r *gormPersonRepository) ApplyProfile(personID uint, acContactID string, profile *domain.ProfileFields) ([]domain.FieldChange, error) {
	var changes []domain.FieldChange

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var person domain.Person
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&person, personID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrPersonNotFound
			}
			return err
		}

		changes = profile.ApplyTo(&person)
		if len(changes) == 0 {
			return nil
		}

		now := time.Now()
		updates := map[string]interface{}{"ac_last_synced": now}
		for _, change := range changes {
			updates[change.Field] = change.NewValue
		}
		if err := tx.Model(&domain.Person{}).Where("person_id = ?", personID).Updates(updates).Error; err != nil {
			return err
		}

		records := make([]*domain.ProfileUpdate, 0, len(changes))
		for _, change := range changes {
			records = append(records, &domain.ProfileUpdate{
				PersonID:    personID,
				ACContactID: acContactID,
				FieldName:   change.Field,
				OldValue:    change.OldValue,
				NewValue:    change.NewValue,
				UpdatedAt:   now,
				Source:      "webhook",
			})
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return nil, err
	}

	return changes, nil
}
