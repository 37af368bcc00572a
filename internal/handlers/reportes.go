package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xelth-com/eckportgo/internal/apperr"
	"github.com/xelth-com/eckportgo/internal/reports"
)

// reporteDinamico resolves the report by its external name and runs it
func (r *Router) reporteDinamico(w http.ResponseWriter, req *http.Request) {
	nombre := mux.Vars(req)["nombre"]
	if _, ok := reports.Lookup(nombre); !ok {
		respondError(w, apperr.NotFound("Reporte no encontrado: %s", nombre))
		return
	}
	r.ejecutarReporte(nombre)(w, req)
}

// ejecutarReporte builds the procedure signature from the request filters,
// invokes it and renders the result as JSON or PDF.
func (r *Router) ejecutarReporte(nombre string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		builder, ok := reports.Lookup(nombre)
		if !ok {
			respondError(w, apperr.NotFound("Reporte no encontrado: %s", nombre))
			return
		}
		sig, err := builder(mux.Vars(req), req.URL.Query())
		if err != nil {
			respondError(w, err)
			return
		}
		res, err := r.invoker.Invoke(req.Context(), sig)
		if err != nil {
			respondError(w, err)
			return
		}

		if strings.EqualFold(req.URL.Query().Get("formato"), "pdf") {
			pdf, err := reports.RenderPDF(tituloReporte(nombre), res)
			if err != nil {
				respondError(w, apperr.Internal(err))
				return
			}
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s.pdf"`, nombre))
			w.Write(pdf)
			return
		}

		respondData(w, http.StatusOK, res, "")
	}
}

// tituloReporte turns the external report name into a printable heading
func tituloReporte(nombre string) string {
	partes := strings.Split(nombre, "-")
	for i, p := range partes {
		if p != "" {
			partes[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return "Reporte: " + strings.Join(partes, " ")
}
