package repository

import (
	"time"

	"acsync-backend/internal/contact/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormWebhookLogRepository implements WebhookLogRepository using GORM
type gormWebhookLogRepository struct {
	db *gorm.DB
}

// NewWebhookLogRepository creates a new GORM-based WebhookLogRepository
func NewWebhookLogRepository(db *gorm.DB) WebhookLogRepository {
	return &gormWebhookLogRepository{db: db}
}

func (r *gormWebhookLogRepository) Create(entry *domain.WebhookLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.ReceivedAt.IsZero() {
		entry.ReceivedAt = time.Now()
	}
	return r.db.Create(entry).Error
}
