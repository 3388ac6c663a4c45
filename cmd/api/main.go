package main

import (
	"fmt"
	"log"
	"net/http"
	"photomarket/cmd/app"
	"photomarket/internal/config"
	handlers "photomarket/internal/handler"
	"photomarket/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set in the .env file")
	}

	db, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", handler.TablesHandler).Methods(http.MethodGet)

	router.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", handler.Login).Methods(http.MethodPost)

	router.HandleFunc("/admin/image/upload", handler.UploadImage).Methods(http.MethodPost)
	router.HandleFunc("/admin/images", handler.GetImages).Methods(http.MethodGet)
	router.HandleFunc("/admin/image/{image_id}", handler.GetImage).Methods(http.MethodGet)
	router.HandleFunc("/admin/image/{image_id}", handler.DeleteImage).Methods(http.MethodDelete)
	router.HandleFunc("/admin/image/{image_id}/set-name", handler.SetImageName).Methods(http.MethodPut)
	router.HandleFunc("/admin/image/{image_id}/set-cost", handler.SetImageCost).Methods(http.MethodPut)
	router.HandleFunc("/admin/image/{image_id}/discount/amount", handler.SetImageDiscount).Methods(http.MethodPut)
	router.HandleFunc("/admin/image/{image_id}/discount/remove", handler.RemoveImageDiscount).Methods(http.MethodPut)

	router.HandleFunc("/customer/image/{image_id}/purchase", handler.PurchaseImage).Methods(http.MethodPost)
	router.HandleFunc("/customer/images", handler.GetPurchasedImages).Methods(http.MethodGet)
	router.HandleFunc("/customer/image/{image_id}", handler.GetPurchasedImage).Methods(http.MethodGet)

	router.HandleFunc("/customer/save-credit-card", handler.SaveCreditCard).Methods(http.MethodPost)
	router.HandleFunc("/customer/remove-credit-card/{card_id}", handler.RemoveCreditCard).Methods(http.MethodPost)
	router.HandleFunc("/customer/make-default-credit-card/{card_id}", handler.MakeDefaultCreditCard).Methods(http.MethodPost)
	router.HandleFunc("/customer/list-all-credit-cards", handler.ListCreditCards).Methods(http.MethodGet)
	router.HandleFunc("/customer/credit-card/tokenize", handler.TokenizeCreditCard).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Server listening on %s\n", addr)
	fmt.Printf("Database: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
