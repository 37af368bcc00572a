package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Validation("campo requerido"), http.StatusBadRequest},
		{NotFound("no existe"), http.StatusNotFound},
		{Conflict("duplicado"), http.StatusConflict},
		{Auth("credenciales"), http.StatusUnauthorized},
		{Internal(errors.New("driver: broken")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := StatusOf(c.err); got != c.status {
			t.Errorf("StatusOf(%v) = %d, want %d", c.err, got, c.status)
		}
	}
}

func TestStatusOfWrapped(t *testing.T) {
	err := fmt.Errorf("contexto: %w", NotFound("Cliente no encontrado"))
	if got := StatusOf(err); got != http.StatusNotFound {
		t.Errorf("StatusOf wrapped = %d, want 404", got)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should see through wrapping")
	}
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := Internal(cause)
	if err.Message != "Error interno del servidor" {
		t.Errorf("Internal message = %q", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("Internal should wrap the cause for logging")
	}
}

func TestValidationFormatting(t *testing.T) {
	err := Validation("El parámetro %q debe ser numérico", "dias")
	want := `El parámetro "dias" debe ser numérico`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
