package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/xelth-com/eckportgo/internal/apperr"
)

// envelope is the uniform success payload: data plus an optional human
// message. Errors use a flat {ok, message} shape instead.
type envelope struct {
	Ok      bool        `json:"ok"`
	Data    interface{} `json:"data"`
	Mensaje string      `json:"mensaje,omitempty"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondData wraps data in the success envelope.
func respondData(w http.ResponseWriter, status int, data interface{}, mensaje string) {
	respondJSON(w, status, envelope{Ok: true, Data: data, Mensaje: mensaje})
}

// respondError maps an application error onto the wire. Client errors echo
// their message; internals are logged and replaced by a generic message so no
// driver detail leaks.
func respondError(w http.ResponseWriter, err error) {
	status := apperr.StatusOf(err)

	var ae *apperr.Error
	message := "Error interno del servidor"
	if errors.As(err, &ae) && status != http.StatusInternalServerError {
		message = ae.Message
	}
	if status == http.StatusInternalServerError {
		log.Printf("❌ Error interno: %v", err)
	}

	respondJSON(w, status, map[string]interface{}{
		"ok":      false,
		"message": message,
	})
}

// pathID parses the numeric {id} path variable.
func pathID(r *http.Request) (uint, error) {
	return pathUint(r, "id")
}

func pathUint(r *http.Request, name string) (uint, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.Validation("El parámetro %q debe ser un número válido", name)
	}
	return uint(id), nil
}

// decodeBody parses a JSON request body into dst.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("Cuerpo de la petición inválido")
	}
	return nil
}
