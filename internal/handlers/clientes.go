package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/eckportgo/internal/models"
)

func (r *Router) listClientes(w http.ResponseWriter, req *http.Request) {
	clientes, err := r.store.Clientes.List(req.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, clientes, "")
}

func (r *Router) getCliente(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	cliente, err := r.store.Clientes.GetByID(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, cliente, "")
}

func (r *Router) buscarClientes(w http.ResponseWriter, req *http.Request) {
	clientes, err := r.store.Clientes.BuscarPorNombre(req.Context(), mux.Vars(req)["nombre"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, clientes, "")
}

func (r *Router) contenedoresDeCliente(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	contenedores, err := r.store.Clientes.Contenedores(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, contenedores, "")
}

func (r *Router) createCliente(w http.ResponseWriter, req *http.Request) {
	var cliente models.Cliente
	if err := decodeBody(req, &cliente); err != nil {
		respondError(w, err)
		return
	}
	creado, err := r.store.Clientes.Create(req.Context(), &cliente)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, creado, "Cliente creado exitosamente")
}

func (r *Router) updateCliente(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	var cliente models.Cliente
	if err := decodeBody(req, &cliente); err != nil {
		respondError(w, err)
		return
	}
	actualizado, err := r.store.Clientes.Update(req.Context(), id, &cliente)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, actualizado, "Cliente actualizado exitosamente")
}

func (r *Router) deleteCliente(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := r.store.Clientes.Delete(req.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, nil, "Cliente eliminado exitosamente")
}
