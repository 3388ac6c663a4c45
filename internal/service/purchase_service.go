package service

import (
	"context"
	"errors"
	"fmt"
	"photomarket/internal/config"
	"photomarket/internal/models"
	"photomarket/internal/payment"
	"photomarket/internal/repository"
	"photomarket/internal/storage"
)

type PurchaseService interface {
	Purchase(ctx context.Context, userID, imageID, cardToken string) error
	GetPurchasedImageURL(ctx context.Context, userID, imageID string) (string, error)
	ListPurchasedImages(ctx context.Context, userID string) ([]*models.Image, error)
}

type purchaseService struct {
	userRepo  repository.UserRepository
	imageRepo repository.ImageRepository
	storage   storage.Storage
	gateway   payment.Gateway
	cfg       *config.Config
}

func NewPurchaseService(userRepo repository.UserRepository, imageRepo repository.ImageRepository, storage storage.Storage, gateway payment.Gateway, cfg *config.Config) PurchaseService {
	return &purchaseService{
		userRepo:  userRepo,
		imageRepo: imageRepo,
		storage:   storage,
		gateway:   gateway,
		cfg:       cfg,
	}
}

// Purchase runs one buy attempt: validate, charge, record. The charge
// is issued exactly once and never retried; a failed charge ends the
// attempt with no state changes. The two recording writes that follow
// a successful charge are independent and not wrapped in a transaction.
func (s *purchaseService) Purchase(ctx context.Context, userID, imageID, cardToken string) error {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, models.ErrImageNotFound) {
			return models.ErrNotPurchasable
		}
		return err
	}

	if !image.InMarket {
		return models.ErrNotPurchasable
	}

	customer, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	amount := image.EffectivePrice()

	if cardToken != "" {
		_, err = s.gateway.ChargeToken(ctx, cardToken, amount, image.Name)
	} else {
		err = s.chargeStoredCustomer(ctx, customer, amount, image.Name)
	}
	if err != nil {
		return err
	}

	// charged: record the entitlement and flag the listing
	err = s.userRepo.AppendPurchasedImage(ctx, userID, imageID)
	if err != nil {
		return fmt.Errorf("charge succeeded but purchase was not recorded: %w", err)
	}

	err = s.imageRepo.MarkPurchased(ctx, imageID)
	if err != nil {
		return fmt.Errorf("charge succeeded but listing was not flagged: %w", err)
	}

	return nil
}

func (s *purchaseService) chargeStoredCustomer(ctx context.Context, customer *models.User, amount float64, memo string) error {
	if customer.StripeCustomerID == "" {
		return models.ErrNoPaymentMethod
	}

	cards, err := s.gateway.ListCards(ctx, customer.StripeCustomerID)
	if err != nil {
		return err
	}

	if len(cards) == 0 {
		return models.ErrNoPaymentMethod
	}

	_, err = s.gateway.ChargeCustomer(ctx, customer.StripeCustomerID, amount, memo)
	return err
}

// GetPurchasedImageURL is the entitlement read path: a signed link is
// issued only when the purchase list already contains the image id.
func (s *purchaseService) GetPurchasedImageURL(ctx context.Context, userID, imageID string) (string, error) {
	purchased, err := s.userRepo.GetPurchasedImageIDs(ctx, userID)
	if err != nil {
		return "", err
	}

	entitled := false
	for _, id := range purchased {
		if id == imageID {
			entitled = true
			break
		}
	}

	if !entitled {
		return "", models.ErrNotEntitled
	}

	return s.storage.GetSignedURL(ctx, imageID, s.cfg.MinIO.URLExpiry)
}

func (s *purchaseService) ListPurchasedImages(ctx context.Context, userID string) ([]*models.Image, error) {
	purchased, err := s.userRepo.GetPurchasedImageIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	images := make([]*models.Image, 0, len(purchased))
	for _, imageID := range purchased {
		image, err := s.imageRepo.GetByID(ctx, imageID)
		if err != nil {
			if errors.Is(err, models.ErrImageNotFound) {
				continue
			}
			return nil, err
		}
		images = append(images, image)
	}

	return images, nil
}
