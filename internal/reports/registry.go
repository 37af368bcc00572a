package reports

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/xelth-com/eckportgo/internal/apperr"
)

// Builder validates request filters and produces the procedure signature for
// one report. vars carries path parameters, q the query string.
type Builder func(vars map[string]string, q url.Values) (Signature, error)

// Registry maps the external report names to their procedure signatures.
// Cursor parameter names differ between procedures because they were authored
// independently; signatures registered without a CursorName exercise the
// capability-based discovery fallback. Whether a procedure exposes exactly
// one cursor-shaped output is validated here, at integration time, not per
// request.
var Registry = map[string]Builder{
	"contenedores-activos": func(_ map[string]string, q url.Values) (Signature, error) {
		return Signature{
			Procedure:  "rep_contenedores_activos",
			Params:     []Param{{Name: "p_estado", Value: optTexto(q.Get("estado"))}},
			CursorName: "p_cursor",
		}, nil
	},
	"ranking-clientes": func(_ map[string]string, q url.Values) (Signature, error) {
		limite, err := optNumero(q.Get("limite"), "limite")
		if err != nil {
			return Signature{}, err
		}
		return Signature{
			Procedure:  "rep_ranking_clientes",
			Params:     []Param{{Name: "p_limite", Value: limite}},
			CursorName: "p_cursor",
		}, nil
	},
	"contenedores-proxima-salida": func(_ map[string]string, q url.Values) (Signature, error) {
		dias, err := strconv.Atoi(q.Get("dias"))
		if err != nil {
			return Signature{}, apperr.Validation(`El parámetro "dias" es requerido y debe ser un número válido`)
		}
		return Signature{
			Procedure: "rep_contenedores_proxima_salida",
			Params: []Param{
				{Name: "dias", Value: dias},
				{Name: "p_nombre_embarcacion", Value: optTexto(q.Get("embarcacion"))},
			},
			CursorName: "p_cursor",
		}, nil
	},
	"productos-mensuales": func(_ map[string]string, q url.Values) (Signature, error) {
		mes, err := optNumero(q.Get("mes"), "mes")
		if err != nil {
			return Signature{}, err
		}
		anio, err := optNumero(q.Get("anio"), "anio")
		if err != nil {
			return Signature{}, err
		}
		return Signature{
			Procedure: "rep_productos_mensuales",
			Params: []Param{
				{Name: "p_mes", Value: mes},
				{Name: "p_anio", Value: anio},
			},
			CursorName: "p_cursor",
		}, nil
	},
	// Integrated without a fixed cursor contract; discovery locates the
	// cursor by capability.
	"historial-contenedor": func(vars map[string]string, _ url.Values) (Signature, error) {
		codigo := vars["codigo"]
		if strings.TrimSpace(codigo) == "" {
			return Signature{}, apperr.Validation("Se requiere un codigo de contenedor válido")
		}
		return Signature{
			Procedure: "rep_historial_contenedor",
			Params:    []Param{{Name: "p_codigo_contenedor", Value: codigo}},
		}, nil
	},
	"embarcaciones-contenedores": func(_ map[string]string, q url.Values) (Signature, error) {
		return Signature{
			Procedure:  "rep_embarcaciones_contenedores",
			Params:     []Param{{Name: "p_solo_con_contenedores", Value: banderaSN(q.Get("solo_con_contenedores"))}},
			CursorName: "cursor_out",
		}, nil
	},
	"estado-puerto": func(_ map[string]string, q url.Values) (Signature, error) {
		return Signature{
			Procedure: "rep_estado_puerto",
			Params:    []Param{{Name: "p_excluir_vacios", Value: banderaSN(q.Get("excluir_vacios"))}},
		}, nil
	},
	"contenedores-abandonados": func(_ map[string]string, q url.Values) (Signature, error) {
		dias, err := optNumero(q.Get("dias_antiguedad"), "dias_antiguedad")
		if err != nil {
			return Signature{}, err
		}
		return Signature{
			Procedure:  "rep_contenedores_abandonados",
			Params:     []Param{{Name: "p_dias_antiguedad", Value: dias}},
			CursorName: "cursor_out",
		}, nil
	},
	"alertas-detalle": func(_ map[string]string, q url.Values) (Signature, error) {
		dias, err := optNumero(q.Get("dias_recientes"), "dias_recientes")
		if err != nil {
			return Signature{}, err
		}
		return Signature{
			Procedure: "rep_alertas_detalle",
			Params: []Param{
				{Name: "p_estado_alerta", Value: optTexto(q.Get("estado_alerta"))},
				{Name: "p_dias_recientes", Value: dias},
			},
			CursorName: "p_cursor",
		}, nil
	},
	"auditoria-usuarios": func(_ map[string]string, q url.Values) (Signature, error) {
		desde, err := optFecha(q.Get("fecha_desde"), "fecha_desde")
		if err != nil {
			return Signature{}, err
		}
		hasta, err := optFecha(q.Get("fecha_hasta"), "fecha_hasta")
		if err != nil {
			return Signature{}, err
		}
		return Signature{
			Procedure: "rep_auditoria_usuarios",
			Params: []Param{
				{Name: "p_usuario", Value: optTexto(q.Get("usuario"))},
				{Name: "p_accion", Value: optTexto(q.Get("accion"))},
				{Name: "p_fecha_desde", Value: desde},
				{Name: "p_fecha_hasta", Value: hasta},
			},
			CursorName: "p_cursor",
		}, nil
	},
}

// Lookup resolves an external report name.
func Lookup(nombre string) (Builder, bool) {
	b, ok := Registry[nombre]
	return b, ok
}

func optTexto(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func optNumero(s, nombre string) (interface{}, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, apperr.Validation("El parámetro %q debe ser numérico", nombre)
	}
	return n, nil
}

func optFecha(s, nombre string) (interface{}, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, apperr.Validation("El parámetro %q debe ser una fecha YYYY-MM-DD", nombre)
	}
	return t, nil
}

// banderaSN normalizes an optional yes/no flag to the procedure convention.
func banderaSN(s string) string {
	if strings.EqualFold(s, "S") || strings.EqualFold(s, "Y") {
		return strings.ToUpper(s)
	}
	return "N"
}
