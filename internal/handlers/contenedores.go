package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/eckportgo/internal/labels"
	"github.com/xelth-com/eckportgo/internal/middleware"
	"github.com/xelth-com/eckportgo/internal/models"
	"github.com/xelth-com/eckportgo/internal/utils"
)

func (r *Router) listContenedores(w http.ResponseWriter, req *http.Request) {
	contenedores, err := r.store.Contenedores.List(req.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, contenedores, "")
}

func (r *Router) getContenedor(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	contenedor, err := r.store.Contenedores.GetByID(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, contenedor, "")
}

func (r *Router) buscarContenedores(w http.ResponseWriter, req *http.Request) {
	contenedores, err := r.store.Contenedores.BuscarPorCodigo(req.Context(), mux.Vars(req)["codigo"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, contenedores, "")
}

func (r *Router) contenedoresPorEstado(w http.ResponseWriter, req *http.Request) {
	contenedores, err := r.store.Contenedores.PorEstado(req.Context(), mux.Vars(req)["estado"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, contenedores, "")
}

func (r *Router) createContenedor(w http.ResponseWriter, req *http.Request) {
	var contenedor models.Contenedor
	if err := decodeBody(req, &contenedor); err != nil {
		respondError(w, err)
		return
	}
	creado, err := r.store.Contenedores.Create(req.Context(), &contenedor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, creado, "Contenedor creado exitosamente")
}

// updateContenedor applies field changes; a state change additionally writes
// a history row attributed to the authenticated user, if any.
func (r *Router) updateContenedor(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	var contenedor models.Contenedor
	if err := decodeBody(req, &contenedor); err != nil {
		respondError(w, err)
		return
	}
	actorID := utils.ActorID(middleware.Claims(req))
	actualizado, err := r.store.Contenedores.Update(req.Context(), id, &contenedor, actorID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, actualizado, "Contenedor actualizado exitosamente")
}

func (r *Router) deleteContenedor(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := r.store.Contenedores.Delete(req.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, nil, "Contenedor eliminado exitosamente")
}

// etiquetaContenedor streams a printable PDF sticker for the container
func (r *Router) etiquetaContenedor(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	contenedor, err := r.store.Contenedores.GetByID(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	pdf, err := labels.EtiquetaContenedor(contenedor)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="etiqueta_%s.pdf"`, contenedor.Codigo))
	w.Write(pdf)
}
