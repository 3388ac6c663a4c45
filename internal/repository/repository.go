package repository

import (
	"context"
	"github.com/jmoiron/sqlx"
	"photomarket/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	SetStripeCustomerID(ctx context.Context, userID, stripeCustomerID string) error
	AppendPurchasedImage(ctx context.Context, userID, imageID string) error
	GetPurchasedImageIDs(ctx context.Context, userID string) ([]string, error)
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, imageID string) (*models.Image, error)
	GetAll(ctx context.Context) ([]*models.Image, error)
	UpdateName(ctx context.Context, imageID, name string) error
	UpdateCost(ctx context.Context, imageID string, cost float64) error
	SetDiscount(ctx context.Context, imageID string, amount float64) error
	MarkPurchased(ctx context.Context, imageID string) error
	Hide(ctx context.Context, imageID string) error
	Delete(ctx context.Context, imageID string) error
}

type TablesRepository interface {
	CountTablesDB() (int, error)
}

type Repository struct {
	User   UserRepository
	Image  ImageRepository
	Tables TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:   NewUserRepository(db),
		Image:  NewImageRepository(db),
		Tables: NewTablesRepository(db),
	}
}
