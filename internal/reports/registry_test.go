package reports

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/xelth-com/eckportgo/internal/apperr"
)

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("reporte-inexistente"); ok {
		t.Error("unknown report should not resolve")
	}
}

func TestProximaSalidaRequiresDias(t *testing.T) {
	builder, ok := Lookup("contenedores-proxima-salida")
	if !ok {
		t.Fatal("report not registered")
	}

	_, err := builder(nil, url.Values{})
	if err == nil {
		t.Fatal("missing dias should fail")
	}
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apperr.StatusOf(err))
	}

	_, err = builder(nil, url.Values{"dias": {"pronto"}})
	if err == nil {
		t.Error("non-numeric dias should fail")
	}

	sig, err := builder(nil, url.Values{"dias": {"15"}})
	if err != nil {
		t.Fatalf("valid dias: %v", err)
	}
	if sig.Procedure != "rep_contenedores_proxima_salida" {
		t.Errorf("procedure = %s", sig.Procedure)
	}
	if sig.Params[0].Value != 15 {
		t.Errorf("dias = %v", sig.Params[0].Value)
	}
}

func TestHistorialContenedorRequiresCodigo(t *testing.T) {
	builder, _ := Lookup("historial-contenedor")

	_, err := builder(map[string]string{"codigo": "  "}, url.Values{})
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Errorf("blank codigo: status = %d, want 400", apperr.StatusOf(err))
	}

	sig, err := builder(map[string]string{"codigo": "CONT-001"}, url.Values{})
	if err != nil {
		t.Fatalf("valid codigo: %v", err)
	}
	// This procedure predates the shared cursor naming convention; it relies
	// on discovery by capability.
	if sig.CursorName != "" {
		t.Errorf("CursorName = %q, want empty", sig.CursorName)
	}
}

func TestBanderaSN(t *testing.T) {
	cases := map[string]string{
		"S": "S", "s": "S", "Y": "Y", "": "N", "no": "N", "true": "N",
	}
	for in, want := range cases {
		if got := banderaSN(in); got != want {
			t.Errorf("banderaSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOptionalFilters(t *testing.T) {
	if optTexto("") != nil {
		t.Error("empty text filter should bind NULL")
	}
	if optTexto("dañado") != "dañado" {
		t.Error("text filter should pass through")
	}

	if v, err := optNumero("", "limite"); err != nil || v != nil {
		t.Errorf("empty number = %v, %v", v, err)
	}
	if _, err := optNumero("diez", "limite"); apperr.StatusOf(err) != http.StatusBadRequest {
		t.Error("non-numeric filter should be a 400")
	}

	if _, err := optFecha("2026-13-40", "fecha_desde"); apperr.StatusOf(err) != http.StatusBadRequest {
		t.Error("bad date filter should be a 400")
	}
}

func TestEveryBuilderAcceptsEmptyInput(t *testing.T) {
	// Reports with no required filters must build a signature from a bare
	// request. The two with required inputs are covered above.
	requeridos := map[string]bool{
		"contenedores-proxima-salida": true,
		"historial-contenedor":        true,
	}
	for nombre, builder := range Registry {
		if requeridos[nombre] {
			continue
		}
		sig, err := builder(map[string]string{}, url.Values{})
		if err != nil {
			t.Errorf("%s: %v", nombre, err)
			continue
		}
		if sig.Procedure == "" {
			t.Errorf("%s: empty procedure name", nombre)
		}
	}
}
