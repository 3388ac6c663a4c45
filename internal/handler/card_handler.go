package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"photomarket/internal/middleware"
	"photomarket/internal/service"
)

type SaveCardRequest struct {
	CardToken string `json:"card_token" validate:"required"`
}

type TokenizeCardRequest struct {
	CardNumber string `json:"card_number" validate:"required"`
	ExpMonth   int    `json:"exp_month" validate:"required,min=1,max=12"`
	ExpYear    int    `json:"exp_year" validate:"required"`
	CVC        string `json:"cvc" validate:"required"`
}

func (h *Handlers) SaveCreditCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req SaveCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.CardToken == "" {
		WriteValidationErrors(w, []ValidationErrorItem{{Msg: "card token is required", Param: "card_token", Location: "body"}})
		return
	}

	card, err := h.CardService.SaveCard(r.Context(), userID, req.CardToken)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, card, http.StatusOK)
}

func (h *Handlers) RemoveCreditCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	cardID := mux.Vars(r)["card_id"]

	err := h.CardService.RemoveCard(r.Context(), userID, cardID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, "Deleted card", http.StatusOK)
}

func (h *Handlers) MakeDefaultCreditCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	cardID := mux.Vars(r)["card_id"]

	err := h.CardService.MakeDefaultCard(r.Context(), userID, cardID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, "updated card", http.StatusOK)
}

func (h *Handlers) ListCreditCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	cards, err := h.CardService.ListCards(r.Context(), userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, cards, http.StatusOK)
}

func (h *Handlers) TokenizeCreditCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req TokenizeCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid card details", http.StatusBadRequest)
		return
	}

	token, err := h.CardService.TokenizeCard(r.Context(), userID, service.TokenizeCardRequest{
		Number:   req.CardNumber,
		ExpMonth: req.ExpMonth,
		ExpYear:  req.ExpYear,
		CVC:      req.CVC,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, token, http.StatusOK)
}
