package app

import (
	"log"
	"photomarket/internal/config"
	"photomarket/internal/database"
	"photomarket/internal/payment"
	"photomarket/internal/repository"
	"photomarket/internal/service"
	"photomarket/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Could not connect to the DB: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Could not initialize MinIO: %v", err)
	}

	// payment gateway
	gateway := payment.NewStripeGateway(cfg)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, gateway)

	return db, services
}
