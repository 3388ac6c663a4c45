package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"log"
	"net/http"
	"photomarket/internal/config"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const (
	ContextUserID      contextKey = "userID"
	ContextAccountType contextKey = "accountType"
)

// UserID returns the authenticated user id from the request context.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ContextUserID).(string)
	return userID, ok
}

// AccountType returns the authenticated account type from the request context.
func AccountType(ctx context.Context) (string, bool) {
	accountType, ok := ctx.Value(ContextAccountType).(string)
	return accountType, ok
}

// writeAuthError mirrors the handler error payload without importing the
// handler package, which itself depends on the context helpers above.
func writeAuthError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// AuthMiddleware verifies the JWT token from the x-auth-token header and
// adds the principal to the context
func AuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skipping public endpoints
			publicPaths := []string{
				"/register",
				"/login",
				"/health",
				"/tables",
				"/",
			}

			for _, path := range publicPaths {
				if r.URL.Path == path {
					next.ServeHTTP(w, r)
					return
				}
			}

			// Extracting the token from the header
			tokenString := r.Header.Get("x-auth-token")
			if tokenString == "" {
				writeAuthError(w, "No token, authorization denied", http.StatusUnauthorized)
				return
			}

			// Parse token
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				// Checking the signature algorithm
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecretKey), nil
			})

			if err != nil || !token.Valid {
				writeAuthError(w, "Token is not valid", http.StatusUnauthorized)
				return
			}

			// Extracting claims
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeAuthError(w, "Invalid token claims", http.StatusUnauthorized)
				return
			}

			userID, ok1 := claims["user_id"].(string)
			accountType, ok2 := claims["account_type"].(string)

			if !ok1 || !ok2 {
				writeAuthError(w, "Invalid token payload", http.StatusUnauthorized)
				return
			}

			// Adding the principal to the context
			ctx := r.Context()
			ctx = context.WithValue(ctx, ContextUserID, userID)
			ctx = context.WithValue(ctx, ContextAccountType, accountType)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-auth-token")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
