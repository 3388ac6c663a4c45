package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"photomarket/internal/middleware"
	"photomarket/internal/service"
)

type UploadImageBody struct {
	ImageName string     `json:"image_name"`
	Cost      *float64   `json:"cost"`
	TakenOn   *time.Time `json:"taken_on,omitempty"`
}

type UploadImageData struct {
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
}

type UploadImageResponse struct {
	Data UploadImageData `json:"data"`
	Img  interface{}     `json:"img"`
}

type SetNameRequest struct {
	ImageName string `json:"image_name" validate:"required"`
}

type SetCostRequest struct {
	Cost *float64 `json:"cost" validate:"required"`
}

type SetDiscountRequest struct {
	Discount *float64 `json:"discount" validate:"required"`
}

// requireAdmin rejects non-admin principals before any state is touched.
func (h *Handlers) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	accountType, ok := middleware.AccountType(r.Context())
	if !ok || accountType != "admin" {
		WriteError(w, "Error, must be an admin", http.StatusForbidden)
		return false
	}
	return true
}

func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	// metadata rides in the "body" form field as JSON
	var body UploadImageBody
	if err := json.Unmarshal([]byte(r.FormValue("body")), &body); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if body.ImageName == "" {
		WriteError(w, "Error, must enter an image name", http.StatusBadRequest)
		return
	}

	if body.Cost == nil {
		WriteError(w, "Error, cost must be entered", http.StatusBadRequest)
		return
	}

	if *body.Cost < 0 {
		WriteError(w, "Cost must be non negative", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Error, image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		WriteError(w, "Could not read uploaded file", http.StatusInternalServerError)
		return
	}

	photographerID, _ := middleware.UserID(r.Context())

	image, contentType, err := h.ImageService.UploadImage(r.Context(), service.UploadImageRequest{
		PhotographerID: photographerID,
		Name:           body.ImageName,
		Cost:           *body.Cost,
		TakenOn:        body.TakenOn,
		Data:           data,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, UploadImageResponse{
		Data: UploadImageData{Key: image.ImageID, ContentType: contentType},
		Img:  image,
	}, http.StatusOK)
}

func (h *Handlers) GetImage(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	imageID := mux.Vars(r)["image_id"]

	image, err := h.ImageService.GetImage(r.Context(), imageID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, image, http.StatusOK)
}

func (h *Handlers) GetImages(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	images, err := h.ImageService.ListImages(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, images, http.StatusOK)
}

func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	imageID := mux.Vars(r)["image_id"]

	image, err := h.ImageService.DeleteImage(r.Context(), imageID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, image, http.StatusOK)
}

func (h *Handlers) SetImageName(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req SetNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ImageName == "" {
		WriteValidationErrors(w, []ValidationErrorItem{{Msg: "name is required", Param: "image_name", Location: "body"}})
		return
	}

	imageID := mux.Vars(r)["image_id"]

	image, err := h.ImageService.SetName(r.Context(), imageID, req.ImageName)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, image, http.StatusOK)
}

func (h *Handlers) SetImageCost(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req SetCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Cost == nil {
		WriteValidationErrors(w, []ValidationErrorItem{{Msg: "cost is required", Param: "cost", Location: "body"}})
		return
	}

	if *req.Cost < 0 {
		WriteError(w, "Cost must be non negative", http.StatusBadRequest)
		return
	}

	imageID := mux.Vars(r)["image_id"]

	image, err := h.ImageService.SetCost(r.Context(), imageID, *req.Cost)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, image, http.StatusOK)
}

func (h *Handlers) SetImageDiscount(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req SetDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Discount == nil {
		WriteValidationErrors(w, []ValidationErrorItem{{Msg: "discount is required", Param: "discount", Location: "body"}})
		return
	}

	if *req.Discount < 0 {
		WriteError(w, "Error, discount must be non negative", http.StatusBadRequest)
		return
	}

	imageID := mux.Vars(r)["image_id"]

	image, err := h.ImageService.SetDiscount(r.Context(), imageID, *req.Discount)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, image, http.StatusOK)
}

func (h *Handlers) RemoveImageDiscount(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	imageID := mux.Vars(r)["image_id"]

	image, err := h.ImageService.RemoveDiscount(r.Context(), imageID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, image, http.StatusOK)
}
