package handlers

import (
	"net/http"

	"github.com/xelth-com/eckportgo/internal/models"
)

func (r *Router) listLotes(w http.ResponseWriter, req *http.Request) {
	lotes, err := r.store.Lotes.List(req.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, lotes, "")
}

func (r *Router) getLote(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	lote, err := r.store.Lotes.GetByID(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, lote, "")
}

func (r *Router) lotesPorContenedor(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	lotes, err := r.store.Lotes.PorContenedor(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, lotes, "")
}

func (r *Router) lotesPorProducto(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	lotes, err := r.store.Lotes.PorProducto(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, lotes, "")
}

func (r *Router) createLote(w http.ResponseWriter, req *http.Request) {
	var lote models.Lote
	if err := decodeBody(req, &lote); err != nil {
		respondError(w, err)
		return
	}
	creado, err := r.store.Lotes.Create(req.Context(), &lote)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, creado, "Lote creado exitosamente")
}

func (r *Router) updateLote(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	var lote models.Lote
	if err := decodeBody(req, &lote); err != nil {
		respondError(w, err)
		return
	}
	actualizado, err := r.store.Lotes.Update(req.Context(), id, &lote)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, actualizado, "Lote actualizado exitosamente")
}

func (r *Router) deleteLote(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := r.store.Lotes.Delete(req.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, nil, "Lote eliminado exitosamente")
}
