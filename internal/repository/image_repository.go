package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"photomarket/internal/models"
	"time"
)

type ImageRepositoryImpl struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) *ImageRepositoryImpl {
	return &ImageRepositoryImpl{db: db}
}

func (r *ImageRepositoryImpl) Create(ctx context.Context, image *models.Image) error {
	if image.ImageID == "" {
		image.ImageID = uuid.New().String()
	}

	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now()
	}

	image.InMarket = true
	image.HasBeenPurchased = false

	query := `
		INSERT INTO images (image_id, photographer_id, name, cost, discount_amount, in_market, has_been_purchased, taken_on, created_at)
		VALUES (:image_id, :photographer_id, :name, :cost, :discount_amount, :in_market, :has_been_purchased, :taken_on, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, image)
	if err != nil {
		return fmt.Errorf("could not create image: %w", err)
	}

	return nil
}

func (r *ImageRepositoryImpl) GetByID(ctx context.Context, imageID string) (*models.Image, error) {
	var image models.Image

	query := `SELECT * FROM images WHERE image_id = $1`

	err := r.db.GetContext(ctx, &image, query, imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrImageNotFound
		}
		return nil, fmt.Errorf("could not fetch image: %w", err)
	}

	return &image, nil
}

func (r *ImageRepositoryImpl) GetAll(ctx context.Context) ([]*models.Image, error) {
	var images []*models.Image

	query := `SELECT * FROM images ORDER BY created_at`

	err := r.db.SelectContext(ctx, &images, query)
	if err != nil {
		return nil, fmt.Errorf("could not fetch images: %w", err)
	}

	return images, nil
}

func (r *ImageRepositoryImpl) UpdateName(ctx context.Context, imageID, name string) error {
	query := `UPDATE images SET name = $1 WHERE image_id = $2`

	return r.execOnImage(ctx, query, name, imageID)
}

func (r *ImageRepositoryImpl) UpdateCost(ctx context.Context, imageID string, cost float64) error {
	query := `UPDATE images SET cost = $1 WHERE image_id = $2`

	return r.execOnImage(ctx, query, cost, imageID)
}

func (r *ImageRepositoryImpl) SetDiscount(ctx context.Context, imageID string, amount float64) error {
	query := `UPDATE images SET discount_amount = $1 WHERE image_id = $2`

	return r.execOnImage(ctx, query, amount, imageID)
}

func (r *ImageRepositoryImpl) MarkPurchased(ctx context.Context, imageID string) error {
	// set exactly once, never cleared
	query := `UPDATE images SET has_been_purchased = TRUE WHERE image_id = $1`

	return r.execOnImage(ctx, query, imageID)
}

func (r *ImageRepositoryImpl) Hide(ctx context.Context, imageID string) error {
	query := `UPDATE images SET in_market = FALSE WHERE image_id = $1`

	return r.execOnImage(ctx, query, imageID)
}

func (r *ImageRepositoryImpl) Delete(ctx context.Context, imageID string) error {
	query := `DELETE FROM images WHERE image_id = $1`

	return r.execOnImage(ctx, query, imageID)
}

func (r *ImageRepositoryImpl) execOnImage(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("could not update image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check affected rows: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrImageNotFound
	}

	return nil
}
