package usecase

import (
	"testing"
	"time"

	"acsync-backend/internal/contact/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProfileUpdateRepo is an in-memory ProfileUpdateRepository
type fakeProfileUpdateRepo struct {
	updates   []*domain.ProfileUpdate
	lastLimit int
}

func (f *fakeProfileUpdateRepo) FindUpdates(since *time.Time, limit int, includeSynced bool) ([]*domain.ProfileUpdate, error) {
	f.lastLimit = limit
	var out []*domain.ProfileUpdate
	for _, u := range f.updates {
		if !includeSynced && u.SyncedToLocal {
			continue
		}
		if since != nil && u.UpdatedAt.Before(*since) {
			continue
		}
		out = append(out, u)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeProfileUpdateRepo) MarkSynced(updateIDs []uint, syncedAt time.Time) (int64, error) {
	var affected int64
	ids := make(map[uint]bool, len(updateIDs))
	for _, id := range updateIDs {
		ids[id] = true
	}
	for _, u := range f.updates {
		if ids[u.ID] && !u.SyncedToLocal {
			u.SyncedToLocal = true
			at := syncedAt
			u.SyncedAt = &at
			affected++
		}
	}
	return affected, nil
}

func (f *fakeProfileUpdateRepo) CountSyncedBefore(cutoff time.Time) (int64, error) {
	var count int64
	for _, u := range f.updates {
		if u.SyncedToLocal && u.SyncedAt != nil && u.SyncedAt.Before(cutoff) {
			count++
		}
	}
	return count, nil
}

func (f *fakeProfileUpdateRepo) DeleteSyncedBefore(cutoff time.Time) (int64, error) {
	var kept []*domain.ProfileUpdate
	var deleted int64
	for _, u := range f.updates {
		if u.SyncedToLocal && u.SyncedAt != nil && u.SyncedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, u)
	}
	f.updates = kept
	return deleted, nil
}

func TestGetProfileUpdatesDefaultsAndFilters(t *testing.T) {
	now := time.Now()
	repo := &fakeProfileUpdateRepo{updates: []*domain.ProfileUpdate{
		{ID: 1, FieldName: "name", UpdatedAt: now},
		{ID: 2, FieldName: "phone", UpdatedAt: now, SyncedToLocal: true, SyncedAt: &now},
	}}
	uc := NewSyncUsecase(repo, 500)

	updates, err := uc.GetProfileUpdates(nil, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 500, repo.lastLimit, "zero limit falls back to the configured default")
	require.Len(t, updates, 1)
	assert.Equal(t, uint(1), updates[0].ID)

	updates, err = uc.GetProfileUpdates(nil, 10, true)
	require.NoError(t, err)
	assert.Len(t, updates, 2)
}

func TestConfirmSync(t *testing.T) {
	now := time.Now()
	repo := &fakeProfileUpdateRepo{updates: []*domain.ProfileUpdate{
		{ID: 1, UpdatedAt: now},
		{ID: 2, UpdatedAt: now},
		{ID: 3, UpdatedAt: now},
	}}
	uc := NewSyncUsecase(repo, 0)

	confirmed, err := uc.ConfirmSync([]uint{1, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), confirmed)
	assert.True(t, repo.updates[0].SyncedToLocal)
	assert.False(t, repo.updates[1].SyncedToLocal)
	require.NotNil(t, repo.updates[2].SyncedAt)

	_, err = uc.ConfirmSync(nil)
	assert.Error(t, err, "an empty batch is a caller bug")
}

func TestCleanupSynced(t *testing.T) {
	old := time.Now().AddDate(0, 0, -45)
	recent := time.Now().AddDate(0, 0, -2)
	repo := &fakeProfileUpdateRepo{updates: []*domain.ProfileUpdate{
		{ID: 1, SyncedToLocal: true, SyncedAt: &old},
		{ID: 2, SyncedToLocal: true, SyncedAt: &recent},
		{ID: 3},
	}}
	uc := NewSyncUsecase(repo, 0)

	result, err := uc.CleanupSynced(30, true)
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, int64(1), result.Count)
	assert.Len(t, repo.updates, 3, "dry run must not delete")

	result, err = uc.CleanupSynced(30, false)
	require.NoError(t, err)
	assert.False(t, result.DryRun)
	assert.Equal(t, int64(1), result.Count)
	assert.Len(t, repo.updates, 2)
}
