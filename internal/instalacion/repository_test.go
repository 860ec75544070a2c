package instalacion_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/instalacion"
	"github.com/segurtec/api-instalaciones/internal/mantenimiento"
	"github.com/segurtec/api-instalaciones/internal/pendiente"
	"github.com/segurtec/api-instalaciones/internal/testutil"
	"github.com/segurtec/api-instalaciones/internal/tipos"
)

func TestCrearCalculaProximoMantenimiento(t *testing.T) {
	db := testutil.DB(t)
	repo := instalacion.NewRepository()
	emp := testutil.Empresa(t, db, "A")
	cli := testutil.Cliente(t, db, emp.ID, "Cliente")

	i := &instalacion.Instalacion{
		EmpresaID:        emp.ID,
		ClienteID:        cli.ID,
		TipoSistema:      instalacion.TipoCamaras,
		FechaInstalacion: tipos.NuevaFecha(2024, time.January, 31),
		FrecuenciaMeses:  1,
		Activa:           true,
	}
	require.NoError(t, repo.Crear(db, i))

	// 31/01 + 1 mes se ajusta al último día de febrero
	require.NotNil(t, i.ProximoMantenimiento)
	assert.Equal(t, "2024-02-29", i.ProximoMantenimiento.String())
}

func TestCrearRespetaProximoExplicito(t *testing.T) {
	db := testutil.DB(t)
	repo := instalacion.NewRepository()
	emp := testutil.Empresa(t, db, "A")
	cli := testutil.Cliente(t, db, emp.ID, "Cliente")

	proximo := tipos.NuevaFecha(2025, time.March, 1)
	i := &instalacion.Instalacion{
		EmpresaID:            emp.ID,
		ClienteID:            cli.ID,
		FechaInstalacion:     tipos.NuevaFecha(2024, time.June, 10),
		ProximoMantenimiento: &proximo,
		Activa:               true,
	}
	require.NoError(t, repo.Crear(db, i))

	assert.Equal(t, "2025-03-01", i.ProximoMantenimiento.String())
	// sin frecuencia en el alta aplica la de defecto
	assert.Equal(t, instalacion.FrecuenciaPorDefecto, i.FrecuenciaMeses)
}

func TestCrearClienteDeOtraEmpresa(t *testing.T) {
	db := testutil.DB(t)
	repo := instalacion.NewRepository()
	empA := testutil.Empresa(t, db, "A")
	empB := testutil.Empresa(t, db, "B")
	cliB := testutil.Cliente(t, db, empB.ID, "Cliente de B")

	i := &instalacion.Instalacion{
		EmpresaID:        empA.ID,
		ClienteID:        cliB.ID,
		FechaInstalacion: tipos.NuevaFecha(2024, time.June, 10),
		Activa:           true,
	}
	err := repo.Crear(db, i)
	assert.True(t, apperrors.EsCodigo(err, http.StatusForbidden))

	// la violación no deja nada escrito
	var n int64
	require.NoError(t, db.Model(&instalacion.Instalacion{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestEliminarCascada(t *testing.T) {
	db := testutil.DB(t)
	repo := instalacion.NewRepository()
	emp := testutil.Empresa(t, db, "A")
	cli := testutil.Cliente(t, db, emp.ID, "Cliente")

	i := &instalacion.Instalacion{
		EmpresaID:        emp.ID,
		ClienteID:        cli.ID,
		FechaInstalacion: tipos.NuevaFecha(2024, time.June, 10),
		Activa:           true,
	}
	require.NoError(t, repo.Crear(db, i))
	require.NoError(t, db.Create(&mantenimiento.Mantenimiento{
		EmpresaID: emp.ID, InstalacionID: i.ID, Fecha: tipos.NuevaFecha(2024, time.December, 10),
	}).Error)
	require.NoError(t, db.Create(&pendiente.Pendiente{
		EmpresaID: emp.ID, ClienteID: cli.ID, InstalacionID: i.ID, Fecha: tipos.NuevaFecha(2024, time.July, 1),
	}).Error)

	require.NoError(t, repo.Eliminar(db, i.ID))

	var mantos, pends int64
	require.NoError(t, db.Model(&mantenimiento.Mantenimiento{}).Count(&mantos).Error)
	require.NoError(t, db.Model(&pendiente.Pendiente{}).Count(&pends).Error)
	assert.Zero(t, mantos)
	assert.Zero(t, pends)
}

func TestBuscarPorIDAcotadoPorEmpresa(t *testing.T) {
	db := testutil.DB(t)
	repo := instalacion.NewRepository()
	empA := testutil.Empresa(t, db, "A")
	empB := testutil.Empresa(t, db, "B")
	cli := testutil.Cliente(t, db, empA.ID, "Cliente")

	i := &instalacion.Instalacion{
		EmpresaID:        empA.ID,
		ClienteID:        cli.ID,
		FechaInstalacion: tipos.NuevaFecha(2024, time.June, 10),
		Activa:           true,
	}
	require.NoError(t, repo.Crear(db, i))

	_, err := repo.BuscarPorID(db, i.ID, empB.ID)
	assert.True(t, apperrors.EsCodigo(err, http.StatusNotFound))
}
