package main

import (
	"log"

	api "acsync-backend/cmd/api"
	contactdomain "acsync-backend/internal/contact/domain"
	contactRepo "acsync-backend/internal/contact/repository"
	contactUsecase "acsync-backend/internal/contact/usecase"
	"acsync-backend/pkg/config"
	"acsync-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&contactdomain.Person{}, &contactdomain.ProfileUpdate{}, &contactdomain.WebhookLog{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	personRepo := contactRepo.NewPersonRepository(db)
	profileUpdateRepo := contactRepo.NewProfileUpdateRepository(db)
	webhookLogRepo := contactRepo.NewWebhookLogRepository(db)

	// Initialize use cases (dependency injection)
	reconcileUsecaseInstance := contactUsecase.NewReconcileUsecase(personRepo, webhookLogRepo, nil)
	syncUsecaseInstance := contactUsecase.NewSyncUsecase(profileUpdateRepo, cfg.SyncLimit)

	// Initialize HTTP handler
	handler := api.NewHandler(reconcileUsecaseInstance, syncUsecaseInstance, cfg, db)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
