package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"photomarket/internal/middleware"
)

type PurchaseRequest struct {
	CardToken string `json:"card_token"`
}

type SignedURLResponse struct {
	URL string `json:"url"`
}

func (h *Handlers) PurchaseImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	// body is optional: without a card token the stored default card is charged
	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	imageID := mux.Vars(r)["image_id"]

	err := h.PurchaseService.Purchase(r.Context(), userID, imageID, req.CardToken)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, "purchased", http.StatusOK)
}

func (h *Handlers) GetPurchasedImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	imageID := mux.Vars(r)["image_id"]

	signedURL, err := h.PurchaseService.GetPurchasedImageURL(r.Context(), userID, imageID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, SignedURLResponse{URL: signedURL}, http.StatusOK)
}

func (h *Handlers) GetPurchasedImages(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	images, err := h.PurchaseService.ListPurchasedImages(r.Context(), userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, images, http.StatusOK)
}
