package repository

import (
	"time"

	"acsync-backend/internal/contact/domain"

	"gorm.io/gorm"
)

// gormProfileUpdateRepository implements ProfileUpdateRepository using GORM
type gormProfileUpdateRepository struct {
	db *gorm.DB
}

// NewProfileUpdateRepository creates a new GORM-based ProfileUpdateRepository
func NewProfileUpdateRepository(db *gorm.DB) ProfileUpdateRepository {
	return &gormProfileUpdateRepository{db: db}
}

func (r *gormProfileUpdateRepository) FindUpdates(since *time.Time, limit int, includeSynced bool) ([]*domain.ProfileUpdate, error) {
	var updates []*domain.ProfileUpdate

	query := r.db.Model(&domain.ProfileUpdate{})
	if !includeSynced {
		query = query.Where("synced_to_local = ?", false)
	}
	if since != nil {
		query = query.Where("updated_at >= ?", *since)
	}

	err := query.Order("updated_at DESC").Limit(limit).Find(&updates).Error
	return updates, err
}

func (r *gormProfileUpdateRepository) MarkSynced(updateIDs []uint, syncedAt time.Time) (int64, error) {
	result := r.db.Model(&domain.ProfileUpdate{}).Where("update_id IN ?", updateIDs).
		Updates(map[string]interface{}{
			"synced_to_local": true,
			"synced_at":       syncedAt,
		})
	return result.RowsAffected, result.Error
}

func (r *gormProfileUpdateRepository) CountSyncedBefore(cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.ProfileUpdate{}).
		Where("synced_to_local = ? AND synced_at < ?", true, cutoff).
		Count(&count).Error
	return count, err
}

func (r *gormProfileUpdateRepository) DeleteSyncedBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("synced_to_local = ? AND synced_at < ?", true, cutoff).
		Delete(&domain.ProfileUpdate{})
	return result.RowsAffected, result.Error
}
