package pendiente_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/instalacion"
	"github.com/segurtec/api-instalaciones/internal/pendiente"
	"github.com/segurtec/api-instalaciones/internal/testutil"
	"github.com/segurtec/api-instalaciones/internal/tipos"
)

func TestCrearValidaReferencias(t *testing.T) {
	db := testutil.DB(t)
	repo := pendiente.NewRepository()
	emp := testutil.Empresa(t, db, "A")
	cli := testutil.Cliente(t, db, emp.ID, "Cliente")
	otro := testutil.Cliente(t, db, emp.ID, "Otro cliente")

	inst := &instalacion.Instalacion{
		EmpresaID: emp.ID, ClienteID: cli.ID,
		FechaInstalacion: tipos.NuevaFecha(2024, time.May, 1), Activa: true,
	}
	require.NoError(t, db.Create(inst).Error)

	t.Run("referencias coherentes", func(t *testing.T) {
		p := &pendiente.Pendiente{
			EmpresaID: emp.ID, ClienteID: cli.ID, InstalacionID: inst.ID,
			Fecha: tipos.NuevaFecha(2024, time.June, 1), Notas: "revisar sensor",
		}
		assert.NoError(t, repo.Crear(db, p))
	})

	t.Run("instalación de otro cliente", func(t *testing.T) {
		p := &pendiente.Pendiente{
			EmpresaID: emp.ID, ClienteID: otro.ID, InstalacionID: inst.ID,
			Fecha: tipos.NuevaFecha(2024, time.June, 1),
		}
		err := repo.Crear(db, p)
		assert.True(t, apperrors.EsCodigo(err, http.StatusBadRequest))
	})

	t.Run("instalación inexistente", func(t *testing.T) {
		p := &pendiente.Pendiente{
			EmpresaID: emp.ID, ClienteID: cli.ID, InstalacionID: 999,
			Fecha: tipos.NuevaFecha(2024, time.June, 1),
		}
		err := repo.Crear(db, p)
		assert.True(t, apperrors.EsCodigo(err, http.StatusNotFound))
	})
}

func TestCrearCruzandoEmpresas(t *testing.T) {
	db := testutil.DB(t)
	repo := pendiente.NewRepository()
	empA := testutil.Empresa(t, db, "A")
	empB := testutil.Empresa(t, db, "B")
	cliA := testutil.Cliente(t, db, empA.ID, "Cliente de A")

	inst := &instalacion.Instalacion{
		EmpresaID: empA.ID, ClienteID: cliA.ID,
		FechaInstalacion: tipos.NuevaFecha(2024, time.May, 1), Activa: true,
	}
	require.NoError(t, db.Create(inst).Error)

	p := &pendiente.Pendiente{
		EmpresaID: empB.ID, ClienteID: cliA.ID, InstalacionID: inst.ID,
		Fecha: tipos.NuevaFecha(2024, time.June, 1),
	}
	err := repo.Crear(db, p)
	assert.True(t, apperrors.EsCodigo(err, http.StatusForbidden))

	var n int64
	require.NoError(t, db.Model(&pendiente.Pendiente{}).Count(&n).Error)
	assert.Zero(t, n)
}
