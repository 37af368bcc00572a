package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/xelth-com/eckportgo/internal/utils"
)

type contextKey string

const UserContextKey contextKey = "user"

// Auth verifies JWT bearer tokens and stores the claims in the request
// context. Applied to the administrative routes only; the stored role label
// is carried but not enforced.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				deny(w, "Se requiere autenticación")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				deny(w, "Formato de autorización inválido")
				return
			}

			claims, err := utils.ValidateToken(parts[1], secret)
			if err != nil {
				deny(w, "Token inválido o expirado")
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func deny(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "message": message})
}

// Claims returns the validated claims stored by Auth, if any.
func Claims(r *http.Request) jwt.MapClaims {
	if claims, ok := r.Context().Value(UserContextKey).(jwt.MapClaims); ok {
		return claims
	}
	return nil
}
