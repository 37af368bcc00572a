package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/eckportgo/internal/models"
)

func (r *Router) listProductos(w http.ResponseWriter, req *http.Request) {
	productos, err := r.store.Productos.List(req.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, productos, "")
}

func (r *Router) getProducto(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	producto, err := r.store.Productos.GetByID(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, producto, "")
}

func (r *Router) buscarProductos(w http.ResponseWriter, req *http.Request) {
	productos, err := r.store.Productos.BuscarPorNombre(req.Context(), mux.Vars(req)["nombre"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, productos, "")
}

func (r *Router) productosPorTipo(w http.ResponseWriter, req *http.Request) {
	productos, err := r.store.Productos.PorTipo(req.Context(), mux.Vars(req)["tipo"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, productos, "")
}

func (r *Router) createProducto(w http.ResponseWriter, req *http.Request) {
	var producto models.Producto
	if err := decodeBody(req, &producto); err != nil {
		respondError(w, err)
		return
	}
	creado, err := r.store.Productos.Create(req.Context(), &producto)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, creado, "Producto creado exitosamente")
}

func (r *Router) updateProducto(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	var producto models.Producto
	if err := decodeBody(req, &producto); err != nil {
		respondError(w, err)
		return
	}
	actualizado, err := r.store.Productos.Update(req.Context(), id, &producto)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, actualizado, "Producto actualizado exitosamente")
}

func (r *Router) deleteProducto(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := r.store.Productos.Delete(req.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, nil, "Producto eliminado exitosamente")
}
