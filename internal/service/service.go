package service

import (
	"photomarket/internal/config"
	"photomarket/internal/payment"
	"photomarket/internal/repository"
	"photomarket/internal/storage"
)

type Service struct {
	Auth     AuthService
	Image    ImageService
	Purchase PurchaseService
	Card     CardService
	Tables   TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, gateway payment.Gateway) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User, gateway, cfg),
		Image:    NewImageService(rep.Image, storage),
		Purchase: NewPurchaseService(rep.User, rep.Image, storage, gateway, cfg),
		Card:     NewCardService(rep.User, gateway),
		Tables:   NewTablesService(rep.Tables),
	}
}
