package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"photomarket/internal/config"
	"photomarket/internal/models"
	"photomarket/internal/payment"
	"photomarket/internal/repository"
	"time"
)

type AuthService interface {
	Register(ctx context.Context, req models.CreateUserRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GenerateToken(user *models.User) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	gateway  payment.Gateway
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, gateway payment.Gateway, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		gateway:  gateway,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, string, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		return nil, "", fmt.Errorf("could not check email: %w", err)
	}
	if existingUser != nil {
		return nil, "", models.ErrDuplicateEmail
	}

	// remote customer record first, its handle is written once at creation
	fullName := req.FirstName + " " + req.LastName
	stripeCustomerID, err := s.gateway.CreateCustomer(ctx, fullName, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("could not create gateway customer: %w", err)
	}

	user := &models.User{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		AccountType:      models.AccountTypeCustomer,
		Email:            req.Email,
		StripeCustomerID: stripeCustomerID,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("could not create user: %w", err)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", fmt.Errorf("authentication failed: %w", err)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":      user.UserID,
		"account_type": user.AccountType,
		"exp":          time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return tokenString, nil
}
