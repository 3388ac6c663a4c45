package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"photomarket/internal/models"
	"regexp"
	"unicode/utf8"
)

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// field checks, same shape and wording the clients already parse
	var items []ValidationErrorItem

	if req.FirstName == "" {
		items = append(items, ValidationErrorItem{Msg: "name is required", Param: "firstName", Location: "body"})
	}

	if req.LastName == "" {
		items = append(items, ValidationErrorItem{Msg: "name is required", Param: "lastName", Location: "body"})
	}

	if !emailPattern.MatchString(req.Email) {
		items = append(items, ValidationErrorItem{Msg: "please include valid email", Param: "email", Location: "body"})
	}

	if utf8.RuneCountInString(req.Password) < 6 {
		items = append(items, ValidationErrorItem{Msg: "Please enter a password with 8 or more charectars", Param: "password", Location: "body"})
	}

	if len(items) > 0 {
		WriteValidationErrors(w, items)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid request data", http.StatusBadRequest)
		return
	}

	serviceReq := models.CreateUserRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}

	_, token, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			WriteValidationErrors(w, []ValidationErrorItem{{Msg: " User already exists "}})
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var items []ValidationErrorItem

	if !emailPattern.MatchString(req.Email) {
		items = append(items, ValidationErrorItem{Msg: "please include valid email", Param: "email", Location: "body"})
	}

	if req.Password == "" {
		items = append(items, ValidationErrorItem{Msg: "password is required", Param: "password", Location: "body"})
	}

	if len(items) > 0 {
		WriteValidationErrors(w, items)
		return
	}

	_, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteValidationErrors(w, []ValidationErrorItem{{Msg: " invalid credentials "}})
		return
	}

	WriteSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}
