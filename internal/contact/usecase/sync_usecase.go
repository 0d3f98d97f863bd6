package usecase

import (
	"errors"
	"log"
	"time"

	"acsync-backend/internal/contact/domain"
	"acsync-backend/internal/contact/repository"
)

// syncUsecase implements SyncUsecase
type syncUsecase struct {
	profileUpdateRepo repository.ProfileUpdateRepository
	defaultLimit      int
}

// NewSyncUsecase creates a new instance of syncUsecase
func NewSyncUsecase(profileUpdateRepo repository.ProfileUpdateRepository, defaultLimit int) SyncUsecase {
	if defaultLimit <= 0 {
		defaultLimit = 1000
	}
	return &syncUsecase{
		profileUpdateRepo: profileUpdateRepo,
		defaultLimit:      defaultLimit,
	}
}

func (u *syncUsecase) GetProfileUpdates(since *time.Time, limit int, includeSynced bool) ([]*domain.ProfileUpdate, error) {
	if limit <= 0 {
		limit = u.defaultLimit
	}
	return u.profileUpdateRepo.FindUpdates(since, limit, includeSynced)
}

func (u *syncUsecase) ConfirmSync(updateIDs []uint) (int64, error) {
	if len(updateIDs) == 0 {
		return 0, errors.New("no update ids provided")
	}
	confirmed, err := u.profileUpdateRepo.MarkSynced(updateIDs, time.Now())
	if err != nil {
		return 0, err
	}
	log.Printf("[Sync] Marked %d updates as synced", confirmed)
	return confirmed, nil
}

func (u *syncUsecase) CleanupSynced(daysOld int, dryRun bool) (*CleanupResult, error) {
	if daysOld <= 0 {
		daysOld = 30
	}
	cutoff := time.Now().AddDate(0, 0, -daysOld)

	if dryRun {
		count, err := u.profileUpdateRepo.CountSyncedBefore(cutoff)
		if err != nil {
			return nil, err
		}
		return &CleanupResult{Count: count, CutoffDate: cutoff, DryRun: true}, nil
	}

	deleted, err := u.profileUpdateRepo.DeleteSyncedBefore(cutoff)
	if err != nil {
		return nil, err
	}
	log.Printf("[Sync] Deleted %d synced updates older than %d days", deleted, daysOld)
	return &CleanupResult{Count: deleted, CutoffDate: cutoff, DryRun: false}, nil
}
