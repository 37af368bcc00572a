package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/eckportgo/internal/repos"
)

func (r *Router) listAlertas(w http.ResponseWriter, req *http.Request) {
	alertas, err := r.store.Alertas.List(req.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, alertas, "")
}

func (r *Router) getAlerta(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	alerta, err := r.store.Alertas.GetByID(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, alerta, "")
}

// alertasActivas lists the alert states that demand operator attention
func (r *Router) alertasActivas(w http.ResponseWriter, req *http.Request) {
	alertas, err := r.store.Alertas.Activas(req.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, alertas, "")
}

func (r *Router) alertasRecientes(w http.ResponseWriter, req *http.Request) {
	dias := repos.DiasODefecto(req.URL.Query().Get("dias"), 7)
	alertas, err := r.store.Alertas.Recientes(req.Context(), dias)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, alertas, "")
}

func (r *Router) alertasPorEstado(w http.ResponseWriter, req *http.Request) {
	alertas, err := r.store.Alertas.PorEstado(req.Context(), mux.Vars(req)["estado"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, alertas, "")
}

func (r *Router) alertasPorContenedor(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	alertas, err := r.store.Alertas.PorContenedor(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, alertas, "")
}

func (r *Router) alertasPorFechas(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	desde, hasta, err := repos.RangoFechas(q.Get("fechaInicio"), q.Get("fechaFin"))
	if err != nil {
		respondError(w, err)
		return
	}
	alertas, err := r.store.Alertas.PorFechas(req.Context(), desde, hasta)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, alertas, "")
}

// updateAlerta changes the alert state and pushes the update to live
// subscribers
func (r *Router) updateAlerta(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	var body struct {
		Estado string `json:"estado"`
	}
	if err := decodeBody(req, &body); err != nil {
		respondError(w, err)
		return
	}
	alerta, err := r.store.Alertas.ActualizarEstado(req.Context(), id, body.Estado)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, alerta, "Alerta actualizada exitosamente")
}
