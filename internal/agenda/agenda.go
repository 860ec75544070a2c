// Package agenda calcula la fecha del próximo mantenimiento de una
// instalación a partir de su frecuencia en meses.
package agenda

import (
	"time"

	"github.com/segurtec/api-instalaciones/internal/tipos"
)

// ProximaFecha suma meses de calendario a una fecha. Si el día no existe en
// el mes destino se ajusta al último día válido (31/01 + 1 mes = 29/02 en
// bisiesto, 28/02 si no). No se usa time.AddDate porque desborda al mes
// siguiente en ese caso.
func ProximaFecha(desde tipos.Fecha, meses int) tipos.Fecha {
	anio, mes, dia := desde.Date()

	total := int(mes) - 1 + meses
	anio += total / 12
	mes = time.Month(total%12 + 1)

	if ultimo := diasEnMes(anio, mes); dia > ultimo {
		dia = ultimo
	}
	return tipos.NuevaFecha(anio, mes, dia)
}

func diasEnMes(anio int, mes time.Month) int {
	// el día 0 del mes siguiente es el último día de este mes
	return time.Date(anio, mes+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
