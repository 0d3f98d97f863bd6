package api

import (
	"log"

	"acsync-backend/internal/contact/usecase"
	"acsync-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	reconcileUsecase usecase.ReconcileUsecase
	syncUsecase      usecase.SyncUsecase
	config           *config.Config
	db               *gorm.DB
}

func NewHandler(reconcileUc usecase.ReconcileUsecase, syncUc usecase.SyncUsecase, cfg *config.Config, db *gorm.DB) *Handler {
	if cfg.ACWebhookSecret == "" {
		log.Println("Warning: AC_WEBHOOK_SECRET not set. Webhook signature verification is disabled - do not run this way in production.")
	}

	return &Handler{
		reconcileUsecase: reconcileUc,
		syncUsecase:      syncUc,
		config:           cfg,
		db:               db,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-AC-Signature, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.reconcileUsecase, h.syncUsecase, h.config, h.db)

	return r.Run(addr)
}
