package models

import (
	"time"
)

type User struct {
	UserID           string    `json:"userId" db:"user_id"`
	FirstName        string    `json:"firstName" db:"first_name"`
	LastName         string    `json:"lastName" db:"last_name"`
	AccountType      string    `json:"accountType" db:"account_type"`
	Email            string    `json:"email" db:"email"`
	PasswordHash     string    `json:"-" db:"password_hash"`
	StripeCustomerID string    `json:"stripeCustomerId" db:"stripe_customer_id"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

const (
	AccountTypeCustomer = "customer"
	AccountTypeAdmin    = "admin"
)

type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type Image struct {
	ImageID          string     `json:"imageId" db:"image_id"`
	PhotographerID   string     `json:"photographerId" db:"photographer_id"`
	Name             string     `json:"name" db:"name"`
	Cost             float64    `json:"cost" db:"cost"`
	DiscountAmount   float64    `json:"discountAmount" db:"discount_amount"`
	InMarket         bool       `json:"inMarket" db:"in_market"`
	HasBeenPurchased bool       `json:"hasBeenPurchased" db:"has_been_purchased"`
	TakenOn          *time.Time `json:"takenOn,omitempty" db:"taken_on"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
}

// EffectivePrice is what the customer actually pays. The discount is
// clamped to the cost on write, so this never goes negative.
func (i *Image) EffectivePrice() float64 {
	return i.Cost - i.DiscountAmount
}
