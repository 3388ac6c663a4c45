package service

import (
	"context"
	"fmt"
	"log"
	"photomarket/internal/models"
	"photomarket/internal/repository"
	"photomarket/internal/storage"
	"time"
)

type UploadImageRequest struct {
	PhotographerID string
	Name           string
	Cost           float64
	TakenOn        *time.Time
	Data           []byte
}

type ImageService interface {
	UploadImage(ctx context.Context, req UploadImageRequest) (*models.Image, string, error)
	GetImage(ctx context.Context, imageID string) (*models.Image, error)
	ListImages(ctx context.Context) ([]*models.Image, error)
	DeleteImage(ctx context.Context, imageID string) (*models.Image, error)
	SetName(ctx context.Context, imageID, name string) (*models.Image, error)
	SetCost(ctx context.Context, imageID string, cost float64) (*models.Image, error)
	SetDiscount(ctx context.Context, imageID string, discount float64) (*models.Image, error)
	RemoveDiscount(ctx context.Context, imageID string) (*models.Image, error)
}

type imageService struct {
	imageRepo repository.ImageRepository
	storage   storage.Storage
}

func NewImageService(imageRepo repository.ImageRepository, storage storage.Storage) ImageService {
	return &imageService{
		imageRepo: imageRepo,
		storage:   storage,
	}
}

func (s *imageService) UploadImage(ctx context.Context, req UploadImageRequest) (*models.Image, string, error) {
	image := &models.Image{
		PhotographerID: req.PhotographerID,
		Name:           req.Name,
		Cost:           req.Cost,
		TakenOn:        req.TakenOn,
	}

	err := s.imageRepo.Create(ctx, image)
	if err != nil {
		return nil, "", fmt.Errorf("could not create listing: %w", err)
	}

	// blob key is the listing id, 1:1 with the catalog record
	contentType, err := s.storage.UploadImage(ctx, image.ImageID, req.Data)
	if err != nil {
		if repoErr := s.imageRepo.Delete(ctx, image.ImageID); repoErr != nil {
			log.Printf("Warning: could not remove listing %s after failed upload: %v", image.ImageID, repoErr)
		}
		return nil, "", err
	}

	return image, contentType, nil
}

func (s *imageService) GetImage(ctx context.Context, imageID string) (*models.Image, error) {
	return s.imageRepo.GetByID(ctx, imageID)
}

func (s *imageService) ListImages(ctx context.Context) ([]*models.Image, error) {
	return s.imageRepo.GetAll(ctx)
}

// DeleteImage hides a purchased listing instead of removing it: buyers
// keep access to the blob, the listing just leaves the market. Unsold
// listings are removed from both the catalog and storage.
func (s *imageService) DeleteImage(ctx context.Context, imageID string) (*models.Image, error) {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}

	if image.HasBeenPurchased {
		err = s.imageRepo.Hide(ctx, imageID)
		if err != nil {
			return nil, err
		}

		image.InMarket = false
		return image, nil
	}

	err = s.storage.DeleteImage(ctx, imageID)
	if err != nil {
		return nil, err
	}

	err = s.imageRepo.Delete(ctx, imageID)
	if err != nil {
		return nil, err
	}

	return image, nil
}

func (s *imageService) SetName(ctx context.Context, imageID, name string) (*models.Image, error) {
	_, err := s.mutableImage(ctx, imageID)
	if err != nil {
		return nil, err
	}

	err = s.imageRepo.UpdateName(ctx, imageID, name)
	if err != nil {
		return nil, err
	}

	return s.imageRepo.GetByID(ctx, imageID)
}

func (s *imageService) SetCost(ctx context.Context, imageID string, cost float64) (*models.Image, error) {
	_, err := s.mutableImage(ctx, imageID)
	if err != nil {
		return nil, err
	}

	err = s.imageRepo.UpdateCost(ctx, imageID, cost)
	if err != nil {
		return nil, err
	}

	return s.imageRepo.GetByID(ctx, imageID)
}

func (s *imageService) SetDiscount(ctx context.Context, imageID string, discount float64) (*models.Image, error) {
	image, err := s.mutableImage(ctx, imageID)
	if err != nil {
		return nil, err
	}

	// discount never exceeds cost
	if discount > image.Cost {
		discount = image.Cost
	}

	err = s.imageRepo.SetDiscount(ctx, imageID, discount)
	if err != nil {
		return nil, err
	}

	return s.imageRepo.GetByID(ctx, imageID)
}

func (s *imageService) RemoveDiscount(ctx context.Context, imageID string) (*models.Image, error) {
	_, err := s.mutableImage(ctx, imageID)
	if err != nil {
		return nil, err
	}

	err = s.imageRepo.SetDiscount(ctx, imageID, 0)
	if err != nil {
		return nil, err
	}

	return s.imageRepo.GetByID(ctx, imageID)
}

// mutableImage loads the listing and rejects mutation once it has left
// the market.
func (s *imageService) mutableImage(ctx context.Context, imageID string) (*models.Image, error) {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}

	if !image.InMarket {
		return nil, models.ErrListingHidden
	}

	return image, nil
}
