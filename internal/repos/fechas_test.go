package repos

import (
	"testing"
	"time"

	"github.com/xelth-com/eckportgo/internal/apperr"
)

func TestRangoFechas(t *testing.T) {
	desde, hasta, err := RangoFechas("2026-03-01", "2026-03-15")
	if err != nil {
		t.Fatalf("RangoFechas: %v", err)
	}
	if !desde.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("desde = %v", desde)
	}
	// The end date is inclusive: the upper bound is the following midnight.
	if !hasta.Equal(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("hasta = %v", hasta)
	}

	// A record stamped exactly at fin 00:00 must fall inside the range.
	enFin := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !enFin.Before(hasta) || enFin.Before(desde) {
		t.Error("record at fin 00:00 should be inside the range")
	}
}

func TestRangoFechasInvalid(t *testing.T) {
	cases := [][2]string{
		{"", "2026-03-15"},
		{"2026-03-01", ""},
		{"01/03/2026", "2026-03-15"},
		{"2026-03-01", "ayer"},
		// Inverted range is malformed input, not an empty result set.
		{"2026-03-15", "2026-03-01"},
	}
	for _, c := range cases {
		_, _, err := RangoFechas(c[0], c[1])
		if err == nil {
			t.Errorf("RangoFechas(%q, %q) should fail", c[0], c[1])
			continue
		}
		if apperr.StatusOf(err) != 400 {
			t.Errorf("RangoFechas(%q, %q) status = %d, want 400", c[0], c[1], apperr.StatusOf(err))
		}
	}
}

func TestDiasODefecto(t *testing.T) {
	cases := []struct {
		in   string
		def  int
		want int
	}{
		{"", 7, 7},
		{"30", 7, 30},
		{"abc", 7, 7},
		{"-3", 7, 7},
		{"0", 14, 14},
	}
	for _, c := range cases {
		if got := DiasODefecto(c.in, c.def); got != c.want {
			t.Errorf("DiasODefecto(%q, %d) = %d, want %d", c.in, c.def, got, c.want)
		}
	}
}
