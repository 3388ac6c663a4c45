package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	"photomarket/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	// create user id
	user.UserID = uuid.New().String()
	user.PasswordHash = string(hashedPassword)

	if user.AccountType == "" {
		user.AccountType = models.AccountTypeCustomer
	}

	query := `
		INSERT INTO users (user_id, first_name, last_name, account_type, email, password_hash, stripe_customer_id)
		VALUES (:user_id, :first_name, :last_name, :account_type, :email, :password_hash, :stripe_customer_id)
	`

	_, err = r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("could not create user: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT user_id, first_name, last_name, account_type, email, password_hash, stripe_customer_id, created_at
		FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT user_id, first_name, last_name, account_type, email, password_hash, stripe_customer_id, created_at
		FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("could not fetch user by email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("invalid password")
	}

	return user, nil
}

func (r *userRepository) SetStripeCustomerID(ctx context.Context, userID, stripeCustomerID string) error {
	// set once: never overwrite an existing customer handle
	query := `
		UPDATE users
		SET stripe_customer_id = $1
		WHERE user_id = $2 AND stripe_customer_id = ''
	`

	result, err := r.db.ExecContext(ctx, query, stripeCustomerID, userID)
	if err != nil {
		return fmt.Errorf("could not set stripe customer id: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("stripe customer id already set for user %s", userID)
	}

	return nil
}

func (r *userRepository) AppendPurchasedImage(ctx context.Context, userID, imageID string) error {
	// append-only, no dedup at this layer
	query := `INSERT INTO purchased_images (user_id, image_id) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, userID, imageID)
	if err != nil {
		return fmt.Errorf("could not record purchase: %w", err)
	}

	return nil
}

func (r *userRepository) GetPurchasedImageIDs(ctx context.Context, userID string) ([]string, error) {
	var imageIDs []string

	query := `SELECT image_id FROM purchased_images WHERE user_id = $1 ORDER BY id`

	err := r.db.SelectContext(ctx, &imageIDs, query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch purchased images: %w", err)
	}

	return imageIDs, nil
}
