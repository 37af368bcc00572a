package handlers

import (
	"net/http"

	"github.com/xelth-com/eckportgo/internal/models"
	"github.com/xelth-com/eckportgo/internal/repos"
)

func (r *Router) listHistorial(w http.ResponseWriter, req *http.Request) {
	historial, err := r.store.Historial.List(req.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, historial, "")
}

func (r *Router) getHistorial(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	registro, err := r.store.Historial.GetByID(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, registro, "")
}

func (r *Router) historialPorContenedor(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	historial, err := r.store.Historial.PorContenedor(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, historial, "")
}

func (r *Router) historialPorUsuario(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	historial, err := r.store.Historial.PorUsuario(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, historial, "")
}

func (r *Router) historialPorFechas(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	desde, hasta, err := repos.RangoFechas(q.Get("fechaInicio"), q.Get("fechaFin"))
	if err != nil {
		respondError(w, err)
		return
	}
	historial, err := r.store.Historial.PorFechas(req.Context(), desde, hasta)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, historial, "")
}

// corregirHistorial amends a misrecorded transition. The original timestamp is
// preserved; only the states and the attributed user can change.
func (r *Router) corregirHistorial(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	var registro models.HistorialEstado
	if err := decodeBody(req, &registro); err != nil {
		respondError(w, err)
		return
	}
	corregido, err := r.store.Historial.Corregir(req.Context(), id, &registro)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, corregido, "Registro de historial corregido exitosamente")
}
