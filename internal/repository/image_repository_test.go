package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photomarket/internal/models"
)

func newImageRepoMock(t *testing.T) (*ImageRepositoryImpl, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewImageRepository(sqlxDB), mock, func() { db.Close() }
}

func imageColumns() []string {
	return []string{
		"image_id", "photographer_id", "name", "cost", "discount_amount",
		"in_market", "has_been_purchased", "taken_on", "created_at",
	}
}

func TestImageRepository_Create(t *testing.T) {
	repo, mock, closeDB := newImageRepoMock(t)
	defer closeDB()

	ctx := context.Background()

	t.Run("generates id and resets market flags", func(t *testing.T) {
		image := &models.Image{
			PhotographerID:   uuid.New().String(),
			Name:             "Sunset",
			Cost:             100,
			InMarket:         false,
			HasBeenPurchased: true,
		}

		mock.ExpectExec(`
		INSERT INTO images (image_id, photographer_id, name, cost, discount_amount, in_market, has_been_purchased, taken_on, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`).
			WithArgs(
				sqlmock.AnyArg(), // image_id is generated in the repository
				image.PhotographerID,
				"Sunset",
				100.0,
				0.0,
				true,
				false,
				nil,
				sqlmock.AnyArg(), // created_at
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(ctx, image)

		assert.NoError(t, err)
		assert.NotEmpty(t, image.ImageID)
		assert.True(t, image.InMarket)
		assert.False(t, image.HasBeenPurchased)

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})
}

func TestImageRepository_GetByID(t *testing.T) {
	repo, mock, closeDB := newImageRepoMock(t)
	defer closeDB()

	ctx := context.Background()
	imageID := uuid.New().String()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(imageColumns()).
			AddRow(imageID, uuid.New().String(), "Sunset", 100.0, 20.0, true, false, nil, time.Now())

		mock.ExpectQuery(`SELECT * FROM images WHERE image_id = $1`).
			WithArgs(imageID).
			WillReturnRows(rows)

		image, err := repo.GetByID(ctx, imageID)

		require.NoError(t, err)
		assert.Equal(t, imageID, image.ImageID)
		assert.Equal(t, 80.0, image.EffectivePrice())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM images WHERE image_id = $1`).
			WithArgs(imageID).
			WillReturnError(sql.ErrNoRows)

		image, err := repo.GetByID(ctx, imageID)

		assert.ErrorIs(t, err, models.ErrImageNotFound)
		assert.Nil(t, image)
	})
}

func TestImageRepository_Updates(t *testing.T) {
	repo, mock, closeDB := newImageRepoMock(t)
	defer closeDB()

	ctx := context.Background()
	imageID := uuid.New().String()

	t.Run("update name", func(t *testing.T) {
		mock.ExpectExec(`UPDATE images SET name = $1 WHERE image_id = $2`).
			WithArgs("New name", imageID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateName(ctx, imageID, "New name")

		assert.NoError(t, err)
	})

	t.Run("update on a missing image", func(t *testing.T) {
		mock.ExpectExec(`UPDATE images SET cost = $1 WHERE image_id = $2`).
			WithArgs(50.0, imageID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateCost(ctx, imageID, 50)

		assert.ErrorIs(t, err, models.ErrImageNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE images SET discount_amount = $1 WHERE image_id = $2`).
			WithArgs(10.0, imageID).
			WillReturnError(errors.New("connection failed"))

		err := repo.SetDiscount(ctx, imageID, 10)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "could not update image")
	})

	t.Run("mark purchased", func(t *testing.T) {
		mock.ExpectExec(`UPDATE images SET has_been_purchased = TRUE WHERE image_id = $1`).
			WithArgs(imageID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkPurchased(ctx, imageID)

		assert.NoError(t, err)
	})

	t.Run("hide listing", func(t *testing.T) {
		mock.ExpectExec(`UPDATE images SET in_market = FALSE WHERE image_id = $1`).
			WithArgs(imageID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Hide(ctx, imageID)

		assert.NoError(t, err)
	})
}

func TestImageRepository_Delete(t *testing.T) {
	repo, mock, closeDB := newImageRepoMock(t)
	defer closeDB()

	ctx := context.Background()
	imageID := uuid.New().String()

	t.Run("deletes the listing", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM images WHERE image_id = $1`).
			WithArgs(imageID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, imageID)

		assert.NoError(t, err)
	})

	t.Run("missing listing", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM images WHERE image_id = $1`).
			WithArgs(imageID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, imageID)

		assert.ErrorIs(t, err, models.ErrImageNotFound)
	})
}
