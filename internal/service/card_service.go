package service

import (
	"context"
	"fmt"
	"photomarket/internal/payment"
	"photomarket/internal/repository"
)

type TokenizeCardRequest struct {
	Number   string
	ExpMonth int
	ExpYear  int
	CVC      string
}

type CardService interface {
	SaveCard(ctx context.Context, userID, cardToken string) (*payment.Card, error)
	RemoveCard(ctx context.Context, userID, cardID string) error
	ListCards(ctx context.Context, userID string) ([]*payment.Card, error)
	MakeDefaultCard(ctx context.Context, userID, cardID string) error
	TokenizeCard(ctx context.Context, userID string, req TokenizeCardRequest) (string, error)
}

type cardService struct {
	userRepo repository.UserRepository
	gateway  payment.Gateway
}

func NewCardService(userRepo repository.UserRepository, gateway payment.Gateway) CardService {
	return &cardService{
		userRepo: userRepo,
		gateway:  gateway,
	}
}

func (s *cardService) SaveCard(ctx context.Context, userID, cardToken string) (*payment.Card, error) {
	customerID, err := s.ensureCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.gateway.SaveCardFromToken(ctx, customerID, cardToken)
}

func (s *cardService) RemoveCard(ctx context.Context, userID, cardID string) error {
	customerID, err := s.ensureCustomer(ctx, userID)
	if err != nil {
		return err
	}

	// the card must belong to this customer
	_, err = s.gateway.GetCard(ctx, customerID, cardID)
	if err != nil {
		return err
	}

	return s.gateway.DeleteCard(ctx, customerID, cardID)
}

func (s *cardService) ListCards(ctx context.Context, userID string) ([]*payment.Card, error) {
	customerID, err := s.ensureCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.gateway.ListCards(ctx, customerID)
}

func (s *cardService) MakeDefaultCard(ctx context.Context, userID, cardID string) error {
	customerID, err := s.ensureCustomer(ctx, userID)
	if err != nil {
		return err
	}

	_, err = s.gateway.GetCard(ctx, customerID, cardID)
	if err != nil {
		return err
	}

	return s.gateway.MakeDefaultCard(ctx, customerID, cardID)
}

func (s *cardService) TokenizeCard(ctx context.Context, userID string, req TokenizeCardRequest) (string, error) {
	_, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	return s.gateway.TokenizeCard(ctx, req.Number, req.ExpMonth, req.ExpYear, req.CVC)
}

// ensureCustomer resolves the user's gateway customer handle, creating
// the remote record for accounts that predate gateway registration.
func (s *cardService) ensureCustomer(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if user.StripeCustomerID != "" {
		return user.StripeCustomerID, nil
	}

	fullName := user.FirstName + " " + user.LastName
	customerID, err := s.gateway.CreateCustomer(ctx, fullName, user.Email)
	if err != nil {
		return "", err
	}

	err = s.userRepo.SetStripeCustomerID(ctx, userID, customerID)
	if err != nil {
		return "", fmt.Errorf("could not store gateway customer handle: %w", err)
	}

	return customerID, nil
}
