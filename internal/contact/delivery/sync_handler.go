package delivery

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"acsync-backend/internal/contact/usecase"

	"github.com/gin-gonic/gin"
)

// SyncHandler exposes the change history to the downstream sync consumer
type SyncHandler struct {
	syncUsecase usecase.SyncUsecase
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(syncUsecase usecase.SyncUsecase) *SyncHandler {
	return &SyncHandler{
		syncUsecase: syncUsecase,
	}
}

// ConfirmSyncRequest is the acknowledge body from the sync consumer
type ConfirmSyncRequest struct {
	UpdateIDs []uint `json:"update_ids" binding:"required"`
}

// CleanupRequest controls the retention purge. DryRun defaults to true so a
// bare request never deletes anything.
type CleanupRequest struct {
	DaysOld int   `json:"days_old"`
	DryRun  *bool `json:"dry_run"`
}

// GetProfileUpdates returns change records for the sync consumer
// GET /api/profile-updates?since=&limit=&include_synced=
func (h *SyncHandler) GetProfileUpdates(c *gin.Context) {
	var since *time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "since must be an RFC3339 timestamp"})
			return
		}
		since = &parsed
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	includeSynced := c.Query("include_synced") == "true"

	updates, err := h.syncUsecase.GetProfileUpdates(since, limit, includeSynced)
	if err != nil {
		log.Printf("[Sync] Failed to fetch profile updates: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(updates),
		"updates": updates,
	})
}

// ConfirmSync marks a batch of change records as synced
// POST /api/profile-updates/confirm
func (h *SyncHandler) ConfirmSync(c *gin.Context) {
	var req ConfirmSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "update_ids required"})
		return
	}
	if len(req.UpdateIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "no update_ids provided"})
		return
	}

	confirmed, err := h.syncUsecase.ConfirmSync(req.UpdateIDs)
	if err != nil {
		log.Printf("[Sync] Confirmation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"updates_confirmed": confirmed,
	})
}

// Cleanup purges synced change records past the retention window
// POST /api/profile-updates/cleanup
func (h *SyncHandler) Cleanup(c *gin.Context) {
	req := CleanupRequest{DaysOld: 30}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
			return
		}
	}

	dryRun := true
	if req.DryRun != nil {
		dryRun = *req.DryRun
	}

	result, err := h.syncUsecase.CleanupSynced(req.DaysOld, dryRun)
	if err != nil {
		log.Printf("[Sync] Cleanup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
		return
	}

	response := gin.H{
		"success":     true,
		"cutoff_date": result.CutoffDate.Format(time.RFC3339),
		"dry_run":     result.DryRun,
	}
	if result.DryRun {
		response["would_delete"] = result.Count
	} else {
		response["deleted"] = result.Count
	}
	c.JSON(http.StatusOK, response)
}
