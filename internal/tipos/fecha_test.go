package tipos

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFechaJSON(t *testing.T) {
	f := NuevaFecha(2024, time.January, 31)

	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-31"`, string(b))

	var otra Fecha
	require.NoError(t, json.Unmarshal(b, &otra))
	assert.True(t, f.Equal(otra.Time))
}

func TestFechaJSONNull(t *testing.T) {
	var f Fecha
	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	require.NoError(t, json.Unmarshal([]byte("null"), &f))
	assert.True(t, f.IsZero())
}

func TestParsearFecha(t *testing.T) {
	f, err := ParsearFecha("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", f.String())

	// un timestamp completo también se acepta, descartando la hora
	f, err = ParsearFecha("2024-06-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", f.String())

	_, err = ParsearFecha("01/06/2024")
	assert.Error(t, err)
}

func TestFechaScan(t *testing.T) {
	var f Fecha
	require.NoError(t, f.Scan(time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-05", f.String())

	require.NoError(t, f.Scan("2024-04-06"))
	assert.Equal(t, "2024-04-06", f.String())

	require.NoError(t, f.Scan(nil))
	assert.True(t, f.IsZero())
}
