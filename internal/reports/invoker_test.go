package reports

import (
	"errors"
	"testing"
)

func TestBuscarCursorByDeclaredName(t *testing.T) {
	cols := []columna{
		{Nombre: "total", Tipo: "INT4"},
		{Nombre: "p_cursor", Tipo: "REFCURSOR"},
	}
	idx, err := buscarCursor(cols, "P_CURSOR")
	if err != nil {
		t.Fatalf("buscarCursor: %v", err)
	}
	if idx != 1 {
		t.Errorf("idx = %d, want 1", idx)
	}
}

func TestBuscarCursorByCapability(t *testing.T) {
	// No declared name: the cursor must be found by its column type, whatever
	// the procedure happened to call it.
	cols := []columna{
		{Nombre: "total_embarcaciones", Tipo: "INT4"},
		{Nombre: "resultado", Tipo: "REFCURSOR"},
	}
	idx, err := buscarCursor(cols, "")
	if err != nil {
		t.Fatalf("buscarCursor: %v", err)
	}
	if idx != 1 {
		t.Errorf("idx = %d, want 1", idx)
	}
}

func TestBuscarCursorByCapabilityOID(t *testing.T) {
	// The production driver has no refcursor entry in its type map and reports
	// the column type as the bare OID string. This is exactly the column set
	// rep_estado_puerto comes back with.
	cols := []columna{
		{Nombre: "total_embarcaciones", Tipo: "INT4"},
		{Nombre: "resultado", Tipo: "1790"},
	}
	idx, err := buscarCursor(cols, "")
	if err != nil {
		t.Fatalf("buscarCursor: %v", err)
	}
	if idx != 1 {
		t.Errorf("idx = %d, want 1", idx)
	}
}

func TestBuscarCursorDeclaredNameMissingFallsBackToOID(t *testing.T) {
	cols := []columna{
		{Nombre: "datos", Tipo: "1790"},
	}
	idx, err := buscarCursor(cols, "p_cursor")
	if err != nil {
		t.Fatalf("buscarCursor: %v", err)
	}
	if idx != 0 {
		t.Errorf("idx = %d, want 0", idx)
	}
}

func TestBuscarCursorDeclaredNameMissingFallsBack(t *testing.T) {
	cols := []columna{
		{Nombre: "cursor_out", Tipo: "REFCURSOR"},
	}
	idx, err := buscarCursor(cols, "p_cursor")
	if err != nil {
		t.Fatalf("buscarCursor: %v", err)
	}
	if idx != 0 {
		t.Errorf("idx = %d, want 0", idx)
	}
}

func TestBuscarCursorAbsent(t *testing.T) {
	cols := []columna{
		{Nombre: "total", Tipo: "INT4"},
		{Nombre: "nombre", Tipo: "TEXT"},
	}
	if _, err := buscarCursor(cols, ""); !errors.Is(err, errSinCursor) {
		t.Errorf("expected errSinCursor, got %v", err)
	}
}

// filasFalsas feeds the materializer a fixed data set.
type filasFalsas struct {
	cols []string
	data [][]interface{}
	pos  int
}

func (f *filasFalsas) Columns() ([]string, error) { return f.cols, nil }

func (f *filasFalsas) Next() bool {
	if f.pos >= len(f.data) {
		return false
	}
	f.pos++
	return true
}

func (f *filasFalsas) Scan(dest ...interface{}) error {
	row := f.data[f.pos-1]
	for i := range dest {
		*dest[i].(*interface{}) = row[i]
	}
	return nil
}

func (f *filasFalsas) Err() error { return nil }

func TestMaterialize(t *testing.T) {
	src := &filasFalsas{
		cols: []string{"codigo", "estado"},
		data: [][]interface{}{
			{[]byte("CONT-001"), "disponible"},
			{[]byte("CONT-002"), "dañado"},
		},
	}
	res, err := materialize(src, MaxRows)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if len(res.Filas) != 2 {
		t.Fatalf("got %d rows, want 2", len(res.Filas))
	}
	// Byte slices become strings so JSON output stays readable.
	if res.Filas[0]["codigo"] != "CONT-001" {
		t.Errorf("codigo = %v (%T)", res.Filas[0]["codigo"], res.Filas[0]["codigo"])
	}
	if res.Filas[1]["estado"] != "dañado" {
		t.Errorf("estado = %v", res.Filas[1]["estado"])
	}
	if len(res.Columnas) != 2 || res.Columnas[0] != "codigo" {
		t.Errorf("Columnas = %v", res.Columnas)
	}
}

func TestMaterializeRowCap(t *testing.T) {
	data := make([][]interface{}, 25)
	for i := range data {
		data[i] = []interface{}{i}
	}
	src := &filasFalsas{cols: []string{"n"}, data: data}

	res, err := materialize(src, 10)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if len(res.Filas) != 10 {
		t.Errorf("got %d rows, want cap of 10", len(res.Filas))
	}
}

func TestMaterializeEmpty(t *testing.T) {
	src := &filasFalsas{cols: []string{"n"}}
	res, err := materialize(src, MaxRows)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if res.Filas == nil {
		t.Error("Filas should be an empty slice, not nil")
	}
	if len(res.Filas) != 0 {
		t.Errorf("got %d rows, want 0", len(res.Filas))
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := quoteIdent("<unnamed portal 1>"); got != `"<unnamed portal 1>"` {
		t.Errorf("quoteIdent = %s", got)
	}
	if got := quoteIdent(`c"ur`); got != `"c""ur"` {
		t.Errorf("quoteIdent = %s", got)
	}
}
