package models

import (
	"errors"
	"fmt"
)

// Domain errors shared by services and handlers. Handlers map these to
// HTTP statuses with errors.Is / errors.As.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrImageNotFound   = errors.New("image not found")
	ErrDuplicateEmail  = errors.New("user already exists")
	ErrNotPurchasable  = errors.New("image not purchasable or not found")
	ErrListingHidden   = errors.New("listing is no longer in the market")
	ErrNoPaymentMethod = errors.New("no payment method on file")
	ErrPaymentDeclined = errors.New("payment was declined")
	ErrNotEntitled     = errors.New("image has not been purchased by this user")
	ErrCardNotFound    = errors.New("card is not saved for this customer")
)

// GatewayError wraps a payment gateway failure. The gateway is never
// retried, the cause propagates to the caller as-is.
type GatewayError struct {
	Op    string
	Cause error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s failed: %v", e.Op, e.Cause)
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// StorageError wraps an object storage failure. AccessDenied indicates
// misconfigured credentials rather than a transient fault and is
// surfaced distinctly.
type StorageError struct {
	Op           string
	AccessDenied bool
	Cause        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("object storage %s failed: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}
