package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"photomarket/internal/models"
)

// ErrorResponse - standard error payload
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorItem mirrors the express-validator error shape that
// API clients already depend on.
type ValidationErrorItem struct {
	Msg      string `json:"msg"`
	Param    string `json:"param,omitempty"`
	Location string `json:"location,omitempty"`
}

type ValidationErrorResponse struct {
	Errors []ValidationErrorItem `json:"errors"`
}

// WriteError - universal helper for error responses
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteValidationErrors - error array for request validation failures
func WriteValidationErrors(w http.ResponseWriter, items []ValidationErrorItem) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ValidationErrorResponse{Errors: items})
}

// WriteSuccess - helper for successful responses
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError maps domain errors to HTTP statuses.
func WriteServiceError(w http.ResponseWriter, err error) {
	var storageErr *models.StorageError

	switch {
	case errors.Is(err, models.ErrUserNotFound):
		WriteError(w, "Error, your account could not be found", http.StatusNotFound)
	case errors.Is(err, models.ErrImageNotFound):
		WriteError(w, "Error, image not found", http.StatusNotFound)
	case errors.Is(err, models.ErrNotPurchasable):
		WriteError(w, "Error, image not purchasable or not found", http.StatusNotFound)
	case errors.Is(err, models.ErrListingHidden):
		WriteError(w, "Error, cant change this image since it was deleted", http.StatusConflict)
	case errors.Is(err, models.ErrNoPaymentMethod):
		WriteError(w, "Error, cards not found", http.StatusPaymentRequired)
	case errors.Is(err, models.ErrPaymentDeclined):
		WriteError(w, "Error, the payment was declined", http.StatusPaymentRequired)
	case errors.Is(err, models.ErrNotEntitled):
		WriteError(w, "Error, you have not purchased this image and cannot access it", http.StatusForbidden)
	case errors.Is(err, models.ErrCardNotFound):
		WriteError(w, "You dont have that card saved", http.StatusForbidden)
	case errors.As(err, &storageErr) && storageErr.AccessDenied:
		WriteError(w, "Error, storage access denied", http.StatusForbidden)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
