// Package reports is the dynamic report-execution bridge: it invokes the
// database-side report procedures and streams their cursor output back as
// structured rows, without assuming the bind name the procedure gave its
// cursor parameter.
package reports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/xelth-com/eckportgo/internal/apperr"
)

// MaxRows bounds every report result set.
const MaxRows = 1000

// Param is a named input parameter, bound positionally in declaration order.
type Param struct {
	Name  string
	Value interface{}
}

// Signature describes one report procedure. CursorName is the declared name
// of the refcursor output when the procedure was integrated with a fixed
// contract; when empty, the invoker falls back to locating the cursor by its
// column type. The fallback is a compatibility shim for procedures authored
// independently, not a general pattern.
type Signature struct {
	Procedure  string
	Params     []Param
	CursorName string
}

// Row is one result row keyed by column name.
type Row map[string]interface{}

// Resultado carries the materialized rows plus column order for renderers.
type Resultado struct {
	Columnas []string
	Filas    []Row
}

// Pool is the connection checkout surface of the database layer.
type Pool interface {
	Acquire(ctx context.Context) (*sql.Conn, error)
	Release(conn *sql.Conn)
}

// Invoker executes report procedures against pooled connections.
type Invoker struct {
	pool Pool
}

func NewInvoker(pool Pool) *Invoker {
	return &Invoker{pool: pool}
}

// Invoke runs the procedure, discovers its cursor output, fetches up to
// MaxRows rows and closes the cursor. The connection is released on every
// exit path.
func (inv *Invoker) Invoke(ctx context.Context, sig Signature) (*Resultado, error) {
	conn, err := inv.pool.Acquire(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer inv.pool.Release(conn)

	// Refcursors only live inside a transaction.
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	res, err := inv.invokeTx(ctx, tx, sig)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, apperr.Internal(err)
	}
	return res, nil
}

func (inv *Invoker) invokeTx(ctx context.Context, tx *sql.Tx, sig Signature) (*Resultado, error) {
	placeholders := make([]string, len(sig.Params))
	args := make([]interface{}, len(sig.Params))
	for i, p := range sig.Params {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = p.Value
	}
	call := fmt.Sprintf("SELECT * FROM %s(%s)", sig.Procedure, strings.Join(placeholders, ", "))

	out, err := tx.QueryContext(ctx, call, args...)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("ejecutando %s: %w", sig.Procedure, err))
	}

	cursor, err := cursorFromOutputs(out, sig.CursorName)
	out.Close()
	if err != nil {
		return nil, err
	}

	// Bounded fetch, then explicit close so no cursor handle leaks even when
	// the underlying cursor holds more rows.
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("FETCH FORWARD %d FROM %s", MaxRows, quoteIdent(cursor)))
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("leyendo cursor de %s: %w", sig.Procedure, err))
	}
	res, err := materialize(rows, MaxRows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, "CLOSE "+quoteIdent(cursor)); err != nil {
		return nil, apperr.Internal(fmt.Errorf("cerrando cursor de %s: %w", sig.Procedure, err))
	}
	return res, nil
}

// columna is the output-binding shape the discovery logic operates on.
type columna struct {
	Nombre string
	Tipo   string
}

var errSinCursor = errors.New("no se encontró cursor en la respuesta del procedimiento")

// oidRefcursor is the pg_type OID of refcursor. The pgx stdlib driver keeps
// no refcursor entry in its default type map, so DatabaseTypeName reports the
// numeric OID string for these columns rather than a type name.
const oidRefcursor = "1790"

func esRefcursor(tipo string) bool {
	return strings.EqualFold(tipo, "REFCURSOR") || tipo == oidRefcursor
}

// buscarCursor locates the cursor among the procedure outputs. With a
// declared name it matches by name; otherwise it scans for the one output
// whose runtime type exposes cursor capability (refcursor by name or OID).
func buscarCursor(cols []columna, declarado string) (int, error) {
	if declarado != "" {
		for i, c := range cols {
			if strings.EqualFold(c.Nombre, declarado) {
				return i, nil
			}
		}
	}
	for i, c := range cols {
		if esRefcursor(c.Tipo) {
			return i, nil
		}
	}
	return -1, errSinCursor
}

// cursorFromOutputs scans the single output row of the call and returns the
// server-side name of the discovered cursor.
func cursorFromOutputs(out *sql.Rows, declarado string) (string, error) {
	tipos, err := out.ColumnTypes()
	if err != nil {
		return "", apperr.Internal(err)
	}
	cols := make([]columna, len(tipos))
	for i, t := range tipos {
		cols[i] = columna{Nombre: t.Name(), Tipo: t.DatabaseTypeName()}
	}

	idx, err := buscarCursor(cols, declarado)
	if err != nil {
		return "", apperr.Internal(err)
	}

	if !out.Next() {
		if err := out.Err(); err != nil {
			return "", apperr.Internal(err)
		}
		return "", apperr.Internal(errSinCursor)
	}
	vals := make([]interface{}, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := out.Scan(ptrs...); err != nil {
		return "", apperr.Internal(err)
	}

	switch v := vals[idx].(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", apperr.Internal(fmt.Errorf("el cursor %q no es utilizable (%T)", cols[idx].Nombre, vals[idx]))
	}
}

// filaFuente abstracts *sql.Rows for the materializer.
type filaFuente interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// materialize drains up to max rows into column-keyed maps.
func materialize(rows filaFuente, max int) (*Resultado, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	res := &Resultado{Columnas: cols, Filas: []Row{}}
	for len(res.Filas) < max && rows.Next() {
		vals := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, apperr.Internal(err)
		}
		fila := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				fila[col] = string(b)
				continue
			}
			fila[col] = vals[i]
		}
		res.Filas = append(res.Filas, fila)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err)
	}
	return res, nil
}

// quoteIdent quotes a server-generated cursor name for FETCH/CLOSE.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
