package handlers

import (
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"net/http"
	"photomarket/internal/config"
	"photomarket/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	ImageService    service.ImageService
	PurchaseService service.PurchaseService
	CardService     service.CardService
	TablesService   service.TablesService
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:     service.Auth,
		ImageService:    service.Image,
		PurchaseService: service.Purchase,
		CardService:     service.Card,
		TablesService:   service.Tables,
		Cfg:             config,
		Validate:        validator.New(),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode("Hello from the photo market!")
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
