package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/eckportgo/internal/models"
)

func (r *Router) listEmbarcaciones(w http.ResponseWriter, req *http.Request) {
	embarcaciones, err := r.store.Embarcaciones.List(req.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, embarcaciones, "")
}

func (r *Router) getEmbarcacion(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	embarcacion, err := r.store.Embarcaciones.GetByID(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, embarcacion, "")
}

func (r *Router) buscarEmbarcaciones(w http.ResponseWriter, req *http.Request) {
	embarcaciones, err := r.store.Embarcaciones.BuscarPorNombre(req.Context(), mux.Vars(req)["nombre"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, embarcaciones, "")
}

// embarcacionesEnPuerto lists vessels that have arrived and not yet departed
func (r *Router) embarcacionesEnPuerto(w http.ResponseWriter, req *http.Request) {
	embarcaciones, err := r.store.Embarcaciones.EnPuerto(req.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, embarcaciones, "")
}

func (r *Router) contenedoresDeEmbarcacion(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	contenedores, err := r.store.Embarcaciones.Contenedores(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, contenedores, "")
}

func (r *Router) createEmbarcacion(w http.ResponseWriter, req *http.Request) {
	var embarcacion models.Embarcacion
	if err := decodeBody(req, &embarcacion); err != nil {
		respondError(w, err)
		return
	}
	creada, err := r.store.Embarcaciones.Create(req.Context(), &embarcacion)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, creada, "Embarcación creada exitosamente")
}

func (r *Router) updateEmbarcacion(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	var embarcacion models.Embarcacion
	if err := decodeBody(req, &embarcacion); err != nil {
		respondError(w, err)
		return
	}
	actualizada, err := r.store.Embarcaciones.Update(req.Context(), id, &embarcacion)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, actualizada, "Embarcación actualizada exitosamente")
}

func (r *Router) deleteEmbarcacion(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := r.store.Embarcaciones.Delete(req.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, nil, "Embarcación eliminada exitosamente")
}
