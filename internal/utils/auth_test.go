package utils

import (
	"testing"

	"github.com/xelth-com/eckportgo/internal/models"
)

func TestPasswordHashing(t *testing.T) {
	password := "secret123"

	// Test Hashing
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if hash == password {
		t.Error("Hash should not match plaintext password")
	}
	if len(hash) == 0 {
		t.Error("Hash should not be empty")
	}

	// Test Comparison (Success)
	if !CheckPasswordHash(password, hash) {
		t.Error("Password should match hash")
	}

	// Test Comparison (Failure)
	if CheckPasswordHash("wrongpassword", hash) {
		t.Error("Wrong password should not match hash")
	}
}

func TestJWT(t *testing.T) {
	secret := "test-secret-key-12345"

	usuario := &models.Usuario{
		ID:     42,
		Nombre: "operador1",
		Rol:    "admin",
	}

	// Test Generation
	token, err := GenerateToken(usuario, secret)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if token == "" {
		t.Error("Token should not be empty")
	}

	// Test Validation (Success)
	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if claims["nombre_usuario"] != usuario.Nombre {
		t.Errorf("Expected user %s, got %v", usuario.Nombre, claims["nombre_usuario"])
	}
	if claims["rol"] != usuario.Rol {
		t.Errorf("Expected role %s, got %v", usuario.Rol, claims["rol"])
	}
	if ActorID(claims) != usuario.ID {
		t.Errorf("Expected actor id %d, got %d", usuario.ID, ActorID(claims))
	}

	// Test Validation (Failure - Wrong Key)
	_, err = ValidateToken(token, "wrong-key")
	if err == nil {
		t.Error("Validation should fail with wrong key")
	}
}

func TestActorIDWithoutClaims(t *testing.T) {
	if got := ActorID(nil); got != 0 {
		t.Errorf("Expected 0 for missing claims, got %d", got)
	}
}
