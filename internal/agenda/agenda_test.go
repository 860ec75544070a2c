package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/segurtec/api-instalaciones/internal/tipos"
)

func TestProximaFecha(t *testing.T) {
	casos := []struct {
		nombre   string
		desde    tipos.Fecha
		meses    int
		esperado string
	}{
		{"caso simple", tipos.NuevaFecha(2024, time.May, 15), 6, "2024-11-15"},
		{"fin de mes a febrero bisiesto", tipos.NuevaFecha(2024, time.January, 31), 1, "2024-02-29"},
		{"fin de mes a febrero no bisiesto", tipos.NuevaFecha(2023, time.January, 31), 1, "2023-02-28"},
		{"31 a mes de 30 días", tipos.NuevaFecha(2024, time.March, 31), 6, "2024-09-30"},
		{"cruce de año", tipos.NuevaFecha(2024, time.November, 30), 3, "2025-02-28"},
		{"doce meses", tipos.NuevaFecha(2024, time.February, 29), 12, "2025-02-28"},
		{"más de un año", tipos.NuevaFecha(2024, time.January, 15), 18, "2025-07-15"},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, ProximaFecha(c.desde, c.meses).String())
		})
	}
}
