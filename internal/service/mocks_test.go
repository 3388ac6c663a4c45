package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"photomarket/internal/models"
	"photomarket/internal/payment"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) SetStripeCustomerID(ctx context.Context, userID, stripeCustomerID string) error {
	args := m.Called(ctx, userID, stripeCustomerID)
	return args.Error(0)
}

func (m *mockUserRepository) AppendPurchasedImage(ctx context.Context, userID, imageID string) error {
	args := m.Called(ctx, userID, imageID)
	return args.Error(0)
}

func (m *mockUserRepository) GetPurchasedImageIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockImageRepository struct {
	mock.Mock
}

func (m *mockImageRepository) Create(ctx context.Context, image *models.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *mockImageRepository) GetByID(ctx context.Context, imageID string) (*models.Image, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *mockImageRepository) GetAll(ctx context.Context) ([]*models.Image, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Image), args.Error(1)
}

func (m *mockImageRepository) UpdateName(ctx context.Context, imageID, name string) error {
	args := m.Called(ctx, imageID, name)
	return args.Error(0)
}

func (m *mockImageRepository) UpdateCost(ctx context.Context, imageID string, cost float64) error {
	args := m.Called(ctx, imageID, cost)
	return args.Error(0)
}

func (m *mockImageRepository) SetDiscount(ctx context.Context, imageID string, amount float64) error {
	args := m.Called(ctx, imageID, amount)
	return args.Error(0)
}

func (m *mockImageRepository) MarkPurchased(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

func (m *mockImageRepository) Hide(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

func (m *mockImageRepository) Delete(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadImage(ctx context.Context, imageID string, data []byte) (string, error) {
	args := m.Called(ctx, imageID, data)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) DeleteImage(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

func (m *mockStorage) GetSignedURL(ctx context.Context, imageID string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, imageID, expiry)
	return args.String(0), args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateCustomer(ctx context.Context, name, email string) (string, error) {
	args := m.Called(ctx, name, email)
	return args.String(0), args.Error(1)
}

func (m *mockGateway) TokenizeCard(ctx context.Context, number string, expMonth, expYear int, cvc string) (string, error) {
	args := m.Called(ctx, number, expMonth, expYear, cvc)
	return args.String(0), args.Error(1)
}

func (m *mockGateway) SaveCardFromToken(ctx context.Context, customerID, cardToken string) (*payment.Card, error) {
	args := m.Called(ctx, customerID, cardToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Card), args.Error(1)
}

func (m *mockGateway) GetCard(ctx context.Context, customerID, cardID string) (*payment.Card, error) {
	args := m.Called(ctx, customerID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Card), args.Error(1)
}

func (m *mockGateway) ListCards(ctx context.Context, customerID string) ([]*payment.Card, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Card), args.Error(1)
}

func (m *mockGateway) DeleteCard(ctx context.Context, customerID, cardID string) error {
	args := m.Called(ctx, customerID, cardID)
	return args.Error(0)
}

func (m *mockGateway) MakeDefaultCard(ctx context.Context, customerID, cardID string) error {
	args := m.Called(ctx, customerID, cardID)
	return args.Error(0)
}

func (m *mockGateway) ChargeToken(ctx context.Context, cardToken string, amount float64, memo string) (string, error) {
	args := m.Called(ctx, cardToken, amount, memo)
	return args.String(0), args.Error(1)
}

func (m *mockGateway) ChargeCustomer(ctx context.Context, customerID string, amount float64, memo string) (string, error) {
	args := m.Called(ctx, customerID, amount, memo)
	return args.String(0), args.Error(1)
}
