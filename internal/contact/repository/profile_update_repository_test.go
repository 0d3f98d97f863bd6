package repository

import (
	"testing"
	"time"

	"acsync-backend/internal/contact/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.ProfileUpdate{}))
	return db
}

func TestMarkSyncedPreservesReconciliationTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileUpdateRepository(db)

	changedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	update := &domain.ProfileUpdate{
		PersonID:    1,
		ACContactID: "42",
		FieldName:   "name",
		OldValue:    "John Doe",
		NewValue:    "Jane",
		UpdatedAt:   changedAt,
		Source:      "webhook",
	}
	require.NoError(t, db.Create(update).Error)

	confirmed, err := repo.MarkSynced([]uint{update.ID}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), confirmed)

	var reloaded domain.ProfileUpdate
	require.NoError(t, db.First(&reloaded, update.ID).Error)
	assert.True(t, reloaded.SyncedToLocal)
	require.NotNil(t, reloaded.SyncedAt)
	assert.True(t, reloaded.UpdatedAt.Equal(changedAt),
		"confirming a sync must not touch updated_at; got %v", reloaded.UpdatedAt)
}

func TestFindUpdatesFiltersOnReconciliationTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileUpdateRepository(db)

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&domain.ProfileUpdate{PersonID: 1, ACContactID: "42", FieldName: "name", UpdatedAt: older}).Error)
	require.NoError(t, db.Create(&domain.ProfileUpdate{PersonID: 1, ACContactID: "42", FieldName: "phone", UpdatedAt: newer}).Error)

	// Confirming the older row must not pull it into a since-window it predates
	_, err := repo.MarkSynced([]uint{1}, time.Now())
	require.NoError(t, err)

	updates, err := repo.FindUpdates(&newer, 100, true)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "phone", updates[0].FieldName)

	// Default view hides synced rows
	updates, err = repo.FindUpdates(nil, 100, false)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "phone", updates[0].FieldName)

	// Newest-first ordering over the full set
	updates, err = repo.FindUpdates(nil, 100, true)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "phone", updates[0].FieldName)
	assert.Equal(t, "name", updates[1].FieldName)
}
