package delivery

import (
	"log"
	"net/http"
	"strings"

	"acsync-backend/internal/contact/domain"
	"acsync-backend/internal/contact/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles the ActiveCampaign webhook ingress
type WebhookHandler struct {
	reconcileUsecase usecase.ReconcileUsecase
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(reconcileUsecase usecase.ReconcileUsecase) *WebhookHandler {
	return &WebhookHandler{
		reconcileUsecase: reconcileUsecase,
	}
}

// structured contact keys in the bracket-form body; everything else under
// contact[...] is treated as a custom field entry
var formContactKeys = map[string]func(*domain.ContactPayload, string){
	"id":         func(c *domain.ContactPayload, v string) { c.ID = v },
	"email":      func(c *domain.ContactPayload, v string) { c.Email = v },
	"firstName":  func(c *domain.ContactPayload, v string) { c.FirstName = v },
	"first_name": func(c *domain.ContactPayload, v string) { c.FirstNameSnake = v },
	"lastName":   func(c *domain.ContactPayload, v string) { c.LastName = v },
	"last_name":  func(c *domain.ContactPayload, v string) { c.LastNameSnake = v },
	"phone":      func(c *domain.ContactPayload, v string) { c.Phone = v },
}

// parsePayload accepts either a JSON envelope or AC's form encoding, where
// keys use contact[fieldname] bracket notation. Unknown bracket keys are
// folded into fieldValues so custom-field extraction treats both content
// types the same way.
func parsePayload(c *gin.Context) (*domain.WebhookPayload, error) {
	contentType := c.ContentType()

	if strings.Contains(contentType, "application/x-www-form-urlencoded") {
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}

		payload := &domain.WebhookPayload{}
		for key, values := range c.Request.PostForm {
			if len(values) == 0 {
				continue
			}
			value := values[0]

			if key == "type" {
				payload.Type = value
				continue
			}
			if !strings.HasPrefix(key, "contact[") || !strings.HasSuffix(key, "]") {
				continue
			}
			fieldName := strings.TrimSuffix(strings.TrimPrefix(key, "contact["), "]")
			if assign, ok := formContactKeys[fieldName]; ok {
				assign(&payload.Contact, value)
				continue
			}
			payload.Contact.FieldValues = append(payload.Contact.FieldValues, domain.FieldValue{
				Field: fieldName,
				Value: value,
			})
		}
		// AC's form sender omits the type on some events; treat those as updates
		if payload.Type == "" {
			payload.Type = domain.EventContactUpdate
		}
		return payload, nil
	}

	// JSON, or anything else AC might label it as
	var payload domain.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Receive is the main webhook endpoint
// POST /webhook/activecampaign
func (h *WebhookHandler) Receive(c *gin.Context) {
	payload, err := parsePayload(c)
	if err != nil {
		log.Printf("[Webhook] Failed to parse payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}

	webhookType := domain.NormalizeEventType(payload.Type)
	log.Printf("[Webhook] Received webhook: %s", webhookType)

	var result *usecase.EventResult
	switch webhookType {
	case domain.EventContactAdd:
		result, err = h.reconcileUsecase.HandleContactAdd(payload)
	case domain.EventContactUpdate:
		result, err = h.reconcileUsecase.HandleContactUpdate(payload)
	case domain.EventContactDelete:
		result, err = h.reconcileUsecase.HandleContactDelete(payload)
	default:
		log.Printf("[Webhook] Unknown webhook type: %s", webhookType)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unknown webhook type"})
		return
	}

	if err != nil {
		// Store failures stay in the log; the caller gets a generic message
		log.Printf("[Webhook] Processing error for %s: %v", webhookType, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
