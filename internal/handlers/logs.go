package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/eckportgo/internal/models"
	"github.com/xelth-com/eckportgo/internal/repos"
)

func (r *Router) listLogs(w http.ResponseWriter, req *http.Request) {
	logs, err := r.store.Logs.List(req.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, logs, "")
}

func (r *Router) getLog(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	entrada, err := r.store.Logs.GetByID(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, entrada, "")
}

func (r *Router) logsRecientes(w http.ResponseWriter, req *http.Request) {
	dias := repos.DiasODefecto(req.URL.Query().Get("dias"), 7)
	logs, err := r.store.Logs.Recientes(req.Context(), dias)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, logs, "")
}

func (r *Router) logsPorAccion(w http.ResponseWriter, req *http.Request) {
	logs, err := r.store.Logs.PorAccion(req.Context(), mux.Vars(req)["accion"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, logs, "")
}

func (r *Router) logsPorUsuarioAfectado(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	logs, err := r.store.Logs.PorUsuarioAfectado(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, logs, "")
}

func (r *Router) logsPorUsuarioAccion(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	logs, err := r.store.Logs.PorUsuarioAccion(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, logs, "")
}

func (r *Router) logsPorFechas(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	desde, hasta, err := repos.RangoFechas(q.Get("fechaInicio"), q.Get("fechaFin"))
	if err != nil {
		respondError(w, err)
		return
	}
	logs, err := r.store.Logs.PorFechas(req.Context(), desde, hasta)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, logs, "")
}

// corregirLog amends a misattributed audit entry; the timestamp is kept
func (r *Router) corregirLog(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	var entrada models.LogUsuario
	if err := decodeBody(req, &entrada); err != nil {
		respondError(w, err)
		return
	}
	corregida, err := r.store.Logs.Corregir(req.Context(), id, &entrada)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, corregida, "Registro corregido exitosamente")
}
