package tenancy_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/tenancy"
	"github.com/segurtec/api-instalaciones/internal/testutil"
)

func TestVerificarReferencia(t *testing.T) {
	db := testutil.DB(t)
	empA := testutil.Empresa(t, db, "Empresa A")
	empB := testutil.Empresa(t, db, "Empresa B")
	cli := testutil.Cliente(t, db, empA.ID, "Cliente de A")

	t.Run("misma empresa", func(t *testing.T) {
		assert.NoError(t, tenancy.VerificarReferencia(db, "clientes", cli.ID, empA.ID, "cliente"))
	})

	t.Run("otra empresa", func(t *testing.T) {
		err := tenancy.VerificarReferencia(db, "clientes", cli.ID, empB.ID, "cliente")
		assert.True(t, apperrors.EsCodigo(err, http.StatusForbidden))
	})

	t.Run("id inexistente", func(t *testing.T) {
		err := tenancy.VerificarReferencia(db, "clientes", 9999, empA.ID, "cliente")
		assert.True(t, apperrors.EsCodigo(err, http.StatusNotFound))
	})
}

func TestResolverEmpresa(t *testing.T) {
	db := testutil.DB(t)
	emp := testutil.Empresa(t, db, "Empresa")

	t.Run("cuerpo vacío usa el token", func(t *testing.T) {
		id, err := tenancy.ResolverEmpresa(db, 0, emp.ID)
		assert.NoError(t, err)
		assert.Equal(t, emp.ID, id)
	})

	t.Run("cuerpo distinto al token", func(t *testing.T) {
		_, err := tenancy.ResolverEmpresa(db, emp.ID+1, emp.ID)
		assert.True(t, apperrors.EsCodigo(err, http.StatusForbidden))
	})
}
