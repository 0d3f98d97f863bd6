package api

import (
	"net/http"
	"time"

	"acsync-backend/internal/contact/delivery"
	"acsync-backend/internal/contact/usecase"
	"acsync-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, reconcileUc usecase.ReconcileUsecase, syncUc usecase.SyncUsecase, cfg *config.Config, db *gorm.DB) {
	webhookHandler := delivery.NewWebhookHandler(reconcileUc)
	syncHandler := delivery.NewSyncHandler(syncUc)

	// Service banner
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "ActiveCampaign Webhook Receiver",
			"status":  "running",
			"endpoints": gin.H{
				"health":  "/health",
				"webhook": "/webhook/activecampaign",
				"api":     "/api/profile-updates",
			},
		})
	})

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = err.Error()
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = err.Error()
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "activecampaign-webhook-receiver",
			"timestamp": time.Now().Format(time.RFC3339),
			"database":  dbStatus,
		})
	})

	// Webhook ingress, signature-checked when a secret is configured
	r.POST("/webhook/activecampaign", delivery.SignatureMiddleware(cfg.ACWebhookSecret), webhookHandler.Receive)

	api := r.Group("/api")
	{
		// Downstream pull interface over the change history
		updates := api.Group("/profile-updates")
		{
			updates.GET("", syncHandler.GetProfileUpdates)
			updates.POST("/confirm", syncHandler.ConfirmSync)
			updates.POST("/cleanup", syncHandler.Cleanup)
		}
	}
}
