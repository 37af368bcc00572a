package repos

import (
	"strconv"
	"time"

	"github.com/xelth-com/eckportgo/internal/apperr"
)

const fechaLayout = "2006-01-02"

// RangoFechas parses an inclusive date range. The end date is interpreted as
// end-of-day: the returned upper bound is fin + 1 day, exclusive, so a record
// timestamped exactly at fin 00:00 falls inside the range.
func RangoFechas(inicio, fin string) (time.Time, time.Time, error) {
	if inicio == "" || fin == "" {
		return time.Time{}, time.Time{}, apperr.Validation("Se requieren fechaInicio y fechaFin (formato YYYY-MM-DD)")
	}
	desde, err := time.Parse(fechaLayout, inicio)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("fechaInicio inválida: %s", inicio)
	}
	hasta, err := time.Parse(fechaLayout, fin)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("fechaFin inválida: %s", fin)
	}
	if desde.After(hasta) {
		return time.Time{}, time.Time{}, apperr.Validation("fechaInicio no puede ser posterior a fechaFin")
	}
	return desde, hasta.AddDate(0, 0, 1), nil
}

// DiasODefecto parses a "last N days" parameter, falling back to def when the
// value is absent or not numeric.
func DiasODefecto(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
