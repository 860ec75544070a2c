package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segurtec/api-instalaciones/internal/auth"
	"github.com/segurtec/api-instalaciones/internal/config"
)

func nuevoJWT() *auth.JWT {
	return auth.NewJWT(&config.JWTConfig{SigningKey: "clave-de-test", ExpirationHours: 1})
}

func TestGenerarYValidar(t *testing.T) {
	j := nuevoJWT()

	tok, err := j.GenerarToken(7, 3, "ADMIN")
	require.NoError(t, err)

	claims, err := j.ValidarToken(tok)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UsuarioID)
	assert.EqualValues(t, 3, claims.EmpresaID)
	assert.Equal(t, "ADMIN", claims.Rol)
}

func TestValidarConOtraClave(t *testing.T) {
	tok, err := nuevoJWT().GenerarToken(1, 1, "ADMIN")
	require.NoError(t, err)

	otro := auth.NewJWT(&config.JWTConfig{SigningKey: "otra-clave", ExpirationHours: 1})
	_, err = otro.ValidarToken(tok)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	j := nuevoJWT()
	siguiente := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.EqualValues(t, 3, auth.EmpresaDeContexto(r.Context()))
		assert.EqualValues(t, 7, auth.UsuarioDeContexto(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("token válido", func(t *testing.T) {
		tok, err := j.GenerarToken(7, 3, "INSTALADOR")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		j.Middleware(siguiente).ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("sin token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		j.Middleware(siguiente).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token alterado", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer no.es.jwt")
		w := httptest.NewRecorder()
		j.Middleware(siguiente).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
