package tipos

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const FormatoFecha = "2006-01-02"

// Fecha es una fecha de calendario sin componente horario. Viaja en JSON
// como "YYYY-MM-DD" y se persiste como DATE.
type Fecha struct {
	time.Time
}

func NuevaFecha(anio int, mes time.Month, dia int) Fecha {
	return Fecha{time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)}
}

// ParsearFecha acepta "YYYY-MM-DD" y también timestamps RFC3339,
// descartando la hora.
func ParsearFecha(s string) (Fecha, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(FormatoFecha, s); err == nil {
		return Fecha{t}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NuevaFecha(t.Date()), nil
	}
	// sqlite guarda timestamps como "2006-01-02 15:04:05+00:00"
	if len(s) > len(FormatoFecha) {
		if t, err := time.Parse(FormatoFecha, s[:len(FormatoFecha)]); err == nil {
			return Fecha{t}, nil
		}
	}
	return Fecha{}, fmt.Errorf("fecha inválida %q (se espera YYYY-MM-DD)", s)
}

func (f Fecha) String() string {
	return f.Format(FormatoFecha)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.Format(FormatoFecha) + `"`), nil
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = Fecha{}
		return nil
	}
	parsed, err := ParsearFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Value implementa driver.Valuer para GORM.
func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.Time, nil
}

// Scan implementa sql.Scanner; acepta time.Time y strings de la base.
func (f *Fecha) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*f = Fecha{}
		return nil
	case time.Time:
		*f = NuevaFecha(v.Date())
		return nil
	case string:
		parsed, err := ParsearFecha(v)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	case []byte:
		return f.Scan(string(v))
	default:
		return fmt.Errorf("no se puede convertir %T a Fecha", src)
	}
}

// GormDataType fuerza la columna a DATE.
func (Fecha) GormDataType() string {
	return "date"
}
