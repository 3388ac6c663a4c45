package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"photomarket/internal/config"
	"photomarket/internal/models"
)

// Gateway is the payment processor boundary. Amounts are major currency
// units here and converted to minor units (x100) inside the adapter.
type Gateway interface {
	CreateCustomer(ctx context.Context, name, email string) (string, error)
	TokenizeCard(ctx context.Context, number string, expMonth, expYear int, cvc string) (string, error)
	SaveCardFromToken(ctx context.Context, customerID, cardToken string) (*Card, error)
	GetCard(ctx context.Context, customerID, cardID string) (*Card, error)
	ListCards(ctx context.Context, customerID string) ([]*Card, error)
	DeleteCard(ctx context.Context, customerID, cardID string) error
	MakeDefaultCard(ctx context.Context, customerID, cardID string) error
	ChargeToken(ctx context.Context, cardToken string, amount float64, memo string) (string, error)
	ChargeCustomer(ctx context.Context, customerID string, amount float64, memo string) (string, error)
}

// Card is a stored payment instrument attached to a gateway customer.
type Card struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int64  `json:"expMonth"`
	ExpYear  int64  `json:"expYear"`
}

type StripeGateway struct {
	sc       *client.API
	currency string
}

func NewStripeGateway(cfg *config.Config) *StripeGateway {
	sc := &client.API{}
	sc.Init(cfg.Stripe.APIKey, nil)

	return &StripeGateway{
		sc:       sc,
		currency: cfg.Stripe.Currency,
	}
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, name, email string) (string, error) {
	params := &stripe.CustomerParams{
		Params:      stripe.Params{Context: ctx},
		Name:        stripe.String(name),
		Email:       stripe.String(email),
		Description: stripe.String("Customer " + name),
	}

	customer, err := g.sc.Customers.New(params)
	if err != nil {
		return "", wrapGatewayError("create customer", err)
	}

	return customer.ID, nil
}

func (g *StripeGateway) TokenizeCard(ctx context.Context, number string, expMonth, expYear int, cvc string) (string, error) {
	params := &stripe.TokenParams{
		Params: stripe.Params{Context: ctx},
		Card: &stripe.CardParams{
			Number:   stripe.String(number),
			ExpMonth: stripe.String(strconv.Itoa(expMonth)),
			ExpYear:  stripe.String(strconv.Itoa(expYear)),
			CVC:      stripe.String(cvc),
		},
	}

	token, err := g.sc.Tokens.New(params)
	if err != nil {
		return "", wrapGatewayError("tokenize card", err)
	}

	return token.ID, nil
}

func (g *StripeGateway) SaveCardFromToken(ctx context.Context, customerID, cardToken string) (*Card, error) {
	params := &stripe.CardParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
		Token:    stripe.String(cardToken),
	}

	card, err := g.sc.Cards.New(params)
	if err != nil {
		return nil, wrapGatewayError("save card", err)
	}

	return toCard(card), nil
}

func (g *StripeGateway) GetCard(ctx context.Context, customerID, cardID string) (*Card, error) {
	params := &stripe.CardParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
	}

	card, err := g.sc.Cards.Get(cardID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == 404 {
			return nil, models.ErrCardNotFound
		}
		return nil, wrapGatewayError("get card", err)
	}

	return toCard(card), nil
}

func (g *StripeGateway) ListCards(ctx context.Context, customerID string) ([]*Card, error) {
	params := &stripe.CardListParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx

	var cards []*Card
	iter := g.sc.Cards.List(params)
	for iter.Next() {
		cards = append(cards, toCard(iter.Card()))
	}

	if err := iter.Err(); err != nil {
		return nil, wrapGatewayError("list cards", err)
	}

	return cards, nil
}

func (g *StripeGateway) DeleteCard(ctx context.Context, customerID, cardID string) error {
	params := &stripe.CardParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
	}

	_, err := g.sc.Cards.Del(cardID, params)
	if err != nil {
		return wrapGatewayError("delete card", err)
	}

	return nil
}

func (g *StripeGateway) MakeDefaultCard(ctx context.Context, customerID, cardID string) error {
	params := &stripe.CustomerParams{
		Params:        stripe.Params{Context: ctx},
		DefaultSource: stripe.String(cardID),
	}

	_, err := g.sc.Customers.Update(customerID, params)
	if err != nil {
		return wrapGatewayError("make default card", err)
	}

	return nil
}

func (g *StripeGateway) ChargeToken(ctx context.Context, cardToken string, amount float64, memo string) (string, error) {
	params := g.chargeParams(ctx, amount, memo)
	if err := params.SetSource(cardToken); err != nil {
		return "", wrapGatewayError("charge", err)
	}

	return g.charge(params)
}

func (g *StripeGateway) ChargeCustomer(ctx context.Context, customerID string, amount float64, memo string) (string, error) {
	params := g.chargeParams(ctx, amount, memo)
	params.Customer = stripe.String(customerID)

	return g.charge(params)
}

func (g *StripeGateway) chargeParams(ctx context.Context, amount float64, memo string) *stripe.ChargeParams {
	return &stripe.ChargeParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(toMinorUnits(amount)),
		Currency:    stripe.String(g.currency),
		Description: stripe.String(memo),
	}
}

func (g *StripeGateway) charge(params *stripe.ChargeParams) (string, error) {
	charge, err := g.sc.Charges.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeCardDeclined {
			return "", fmt.Errorf("%w: %v", models.ErrPaymentDeclined, err)
		}
		return "", wrapGatewayError("charge", err)
	}

	return charge.ID, nil
}

func toCard(card *stripe.Card) *Card {
	return &Card{
		ID:       card.ID,
		Brand:    string(card.Brand),
		Last4:    card.Last4,
		ExpMonth: card.ExpMonth,
		ExpYear:  card.ExpYear,
	}
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func wrapGatewayError(op string, err error) error {
	return &models.GatewayError{Op: op, Cause: err}
}
