package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"photomarket/internal/models"
	"photomarket/internal/payment"
	"photomarket/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) GenerateToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadImage(ctx context.Context, req service.UploadImageRequest) (*models.Image, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.Image), args.String(1), args.Error(2)
}

func (m *MockImageService) GetImage(ctx context.Context, imageID string) (*models.Image, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockImageService) ListImages(ctx context.Context) ([]*models.Image, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Image), args.Error(1)
}

func (m *MockImageService) DeleteImage(ctx context.Context, imageID string) (*models.Image, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockImageService) SetName(ctx context.Context, imageID, name string) (*models.Image, error) {
	args := m.Called(ctx, imageID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockImageService) SetCost(ctx context.Context, imageID string, cost float64) (*models.Image, error) {
	args := m.Called(ctx, imageID, cost)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockImageService) SetDiscount(ctx context.Context, imageID string, discount float64) (*models.Image, error) {
	args := m.Called(ctx, imageID, discount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockImageService) RemoveDiscount(ctx context.Context, imageID string) (*models.Image, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) Purchase(ctx context.Context, userID, imageID, cardToken string) error {
	args := m.Called(ctx, userID, imageID, cardToken)
	return args.Error(0)
}

func (m *MockPurchaseService) GetPurchasedImageURL(ctx context.Context, userID, imageID string) (string, error) {
	args := m.Called(ctx, userID, imageID)
	return args.String(0), args.Error(1)
}

func (m *MockPurchaseService) ListPurchasedImages(ctx context.Context, userID string) ([]*models.Image, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Image), args.Error(1)
}

type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) SaveCard(ctx context.Context, userID, cardToken string) (*payment.Card, error) {
	args := m.Called(ctx, userID, cardToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Card), args.Error(1)
}

func (m *MockCardService) RemoveCard(ctx context.Context, userID, cardID string) error {
	args := m.Called(ctx, userID, cardID)
	return args.Error(0)
}

func (m *MockCardService) ListCards(ctx context.Context, userID string) ([]*payment.Card, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Card), args.Error(1)
}

func (m *MockCardService) MakeDefaultCard(ctx context.Context, userID, cardID string) error {
	args := m.Called(ctx, userID, cardID)
	return args.Error(0)
}

func (m *MockCardService) TokenizeCard(ctx context.Context, userID string, req service.TokenizeCardRequest) (string, error) {
	args := m.Called(ctx, userID, req)
	return args.String(0), args.Error(1)
}

var _ service.TablesService = (*MockTablesService)(nil)

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) CountTables() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
