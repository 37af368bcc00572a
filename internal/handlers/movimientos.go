package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/eckportgo/internal/models"
	"github.com/xelth-com/eckportgo/internal/repos"
)

func (r *Router) listMovimientos(w http.ResponseWriter, req *http.Request) {
	movimientos, err := r.store.Movimientos.List(req.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, movimientos, "")
}

func (r *Router) getMovimiento(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	movimiento, err := r.store.Movimientos.GetByID(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, movimiento, "")
}

func (r *Router) movimientosPorContenedor(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	movimientos, err := r.store.Movimientos.PorContenedor(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, movimientos, "")
}

func (r *Router) movimientosPorTipo(w http.ResponseWriter, req *http.Request) {
	movimientos, err := r.store.Movimientos.PorTipo(req.Context(), mux.Vars(req)["tipo"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, movimientos, "")
}

// movimientosRecientes lists activity of the last N days, 7 by default
func (r *Router) movimientosRecientes(w http.ResponseWriter, req *http.Request) {
	dias := repos.DiasODefecto(req.URL.Query().Get("dias"), 7)
	movimientos, err := r.store.Movimientos.Recientes(req.Context(), dias)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, movimientos, "")
}

func (r *Router) createMovimiento(w http.ResponseWriter, req *http.Request) {
	var movimiento models.Movimiento
	if err := decodeBody(req, &movimiento); err != nil {
		respondError(w, err)
		return
	}
	creado, err := r.store.Movimientos.Create(req.Context(), &movimiento)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, creado, "Movimiento registrado exitosamente")
}

func (r *Router) updateMovimiento(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	var movimiento models.Movimiento
	if err := decodeBody(req, &movimiento); err != nil {
		respondError(w, err)
		return
	}
	actualizado, err := r.store.Movimientos.Update(req.Context(), id, &movimiento)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, actualizado, "Movimiento actualizado exitosamente")
}

func (r *Router) deleteMovimiento(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := r.store.Movimientos.Delete(req.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, nil, "Movimiento eliminado exitosamente")
}
