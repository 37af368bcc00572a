package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xelth-com/eckportgo/internal/models"
	"github.com/xelth-com/eckportgo/internal/utils"
)

func TestAuthMiddleware(t *testing.T) {
	secret := "test-secret"
	var seen uint
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.ActorID(Claims(r))
		w.WriteHeader(http.StatusOK)
	})
	guarded := Auth(secret)(next)

	// No header
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no header: status = %d, want 401", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("denial content type = %q", ct)
	}

	// Malformed header
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("malformed header: status = %d, want 401", rec.Code)
	}

	// Valid token reaches the handler with claims attached
	token, err := utils.GenerateToken(&models.Usuario{ID: 9, Nombre: "admin", Rol: "admin"}, secret)
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200", rec.Code)
	}
	if seen != 9 {
		t.Errorf("actor id from claims = %d, want 9", seen)
	}

	// Token signed with another key is rejected
	otro, err := utils.GenerateToken(&models.Usuario{ID: 9, Nombre: "admin"}, "otra-clave")
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+otro)
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("foreign token: status = %d, want 401", rec.Code)
	}
}
