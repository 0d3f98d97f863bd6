package usecase

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"acsync-backend/internal/contact/domain"
	"acsync-backend/internal/contact/repository"
)

// reconcileUsecase implements ReconcileUsecase
type reconcileUsecase struct {
	personRepo     repository.PersonRepository
	webhookLogRepo repository.WebhookLogRepository
	customFields   []domain.CustomFieldRule
}

// NewReconcileUsecase creates a new instance of reconcileUsecase. A nil
// customFields keeps the default AC custom-field keyword mapping.
func NewReconcileUsecase(personRepo repository.PersonRepository, webhookLogRepo repository.WebhookLogRepository, customFields []domain.CustomFieldRule) ReconcileUsecase {
	if customFields == nil {
		customFields = domain.DefaultCustomFieldRules()
	}
	return &reconcileUsecase{
		personRepo:     personRepo,
		webhookLogRepo: webhookLogRepo,
		customFields:   customFields,
	}
}

// resolve matches an inbound event to a person. The AC contact id always wins;
// the email fallback links the AC id onto unlinked records as a side effect,
// and never overrides an existing link.
func (u *reconcileUsecase) resolve(acContactID, email string) (*domain.Person, error) {
	if acContactID != "" {
		person, err := u.personRepo.FindByACContactID(acContactID)
		if err != nil {
			return nil, err
		}
		if person != nil {
			return person, nil
		}
	}

	if email == "" {
		return nil, nil
	}
	person, err := u.personRepo.FindByEmail(email)
	if err != nil || person == nil {
		return nil, err
	}

	if acContactID != "" && !person.HasACContact() {
		log.Printf("[Reconcile] Linking person %d (%s) to AC#%s", person.ID, email, acContactID)
		if err := u.personRepo.LinkACContact(person.ID, acContactID); err != nil {
			return nil, err
		}
		person.ACContactID = &acContactID
		person.ACProfileSource = domain.ProfileSourceActiveCampaign
	}
	return person, nil
}

// extractProfile maps the structured contact fields directly and routes each
// fieldValues entry through the keyword mapping. Entries are not deduplicated,
// so a later entry overwrites an earlier one for the same attribute.
func (u *reconcileUsecase) extractProfile(contact *domain.ContactPayload) *domain.ProfileFields {
	profile := &domain.ProfileFields{
		FirstName: contact.FirstNameValue(),
		LastName:  contact.LastNameValue(),
		Email:     domain.NormalizeEmail(contact.Email),
		Phone:     contact.Phone,
	}

	for _, fv := range contact.FieldValues {
		name := strings.ToLower(fv.Field)
		for _, rule := range u.customFields {
			if strings.Contains(name, rule.Keyword) {
				rule.Assign(profile, fv.Value)
				break
			}
		}
	}

	return profile
}

// logWebhook writes the audit entry for an inbound event. Audit failures are
// logged and swallowed so they cannot fail the webhook response.
func (u *reconcileUsecase) logWebhook(webhookType string, payload *domain.WebhookPayload, processed bool, personID *uint, errorMessage string) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Reconcile] Failed to serialize webhook payload: %v", err)
	}

	entry := &domain.WebhookLog{
		WebhookType:  webhookType,
		ACContactID:  payload.ContactIDValue(),
		Email:        payload.EmailValue(),
		Payload:      string(raw),
		Processed:    processed,
		PersonID:     personID,
		ErrorMessage: errorMessage,
	}
	if err := u.webhookLogRepo.Create(entry); err != nil {
		log.Printf("[Reconcile] Failed to log webhook: %v", err)
	}
}

func (u *reconcileUsecase) HandleContactAdd(payload *domain.WebhookPayload) (*EventResult, error) {
	acContactID := payload.ContactIDValue()
	email := payload.EmailValue()
	log.Printf("[Reconcile] Processing contact_add for AC#%s (%s)", acContactID, email)

	person, err := u.resolve(acContactID, email)
	if err != nil {
		return nil, err
	}

	if person == nil {
		// Not in the store yet; the export job will bring it in
		log.Printf("[Reconcile] New AC contact #%s - will sync via export", acContactID)
		u.logWebhook(domain.EventContactAdd, payload, false, nil, "new contact - pending export sync")
		return &EventResult{
			Success:     false,
			ACContactID: acContactID,
			Message:     "new contact - will sync via next export",
		}, nil
	}

	u.logWebhook(domain.EventContactAdd, payload, true, &person.ID, "")
	return &EventResult{
		Success:     true,
		PersonID:    &person.ID,
		ACContactID: acContactID,
		Message:     "linked to existing person",
	}, nil
}

func (u *reconcileUsecase) HandleContactUpdate(payload *domain.WebhookPayload) (*EventResult, error) {
	acContactID := payload.ContactIDValue()
	email := payload.EmailValue()
	log.Printf("[Reconcile] Processing contact_update for AC#%s (%s)", acContactID, email)

	person, err := u.resolve(acContactID, email)
	if err != nil {
		return nil, err
	}

	if person == nil {
		log.Printf("[Reconcile] Contact AC#%s not found in analytics store", acContactID)
		u.logWebhook(domain.EventContactUpdate, payload, false, nil, "contact not in analytics store")
		return &EventResult{
			Success:     false,
			ACContactID: acContactID,
			Message:     "contact not found in analytics store",
		}, nil
	}

	profile := u.extractProfile(&payload.Contact)
	changes, err := u.personRepo.ApplyProfile(person.ID, acContactID, profile)
	if err == repository.ErrPersonNotFound {
		u.logWebhook(domain.EventContactUpdate, payload, false, nil, err.Error())
		return &EventResult{
			Success:     false,
			PersonID:    &person.ID,
			ACContactID: acContactID,
			Message:     "update failed",
		}, nil
	}
	if err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		log.Printf("[Reconcile] Updated %d fields for person %d", len(changes), person.ID)
	} else {
		log.Printf("[Reconcile] No changes needed for person %d", person.ID)
	}

	u.logWebhook(domain.EventContactUpdate, payload, true, &person.ID, "")
	return &EventResult{
		Success:     true,
		PersonID:    &person.ID,
		ACContactID: acContactID,
		Message:     fmt.Sprintf("profile updated (%d changes)", len(changes)),
	}, nil
}

func (u *reconcileUsecase) HandleContactDelete(payload *domain.WebhookPayload) (*EventResult, error) {
	acContactID := payload.ContactIDValue()
	log.Printf("[Reconcile] Processing contact_delete for AC#%s", acContactID)

	// Deletions are never propagated; the event is only recorded
	u.logWebhook(domain.EventContactDelete, payload, true, nil, "")
	return &EventResult{
		Success:     true,
		ACContactID: acContactID,
		Message:     "deletion logged (no action taken)",
	}, nil
}
