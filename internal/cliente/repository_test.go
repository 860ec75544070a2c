package cliente_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/cliente"
	"github.com/segurtec/api-instalaciones/internal/componente"
	"github.com/segurtec/api-instalaciones/internal/instalacion"
	"github.com/segurtec/api-instalaciones/internal/mantenimiento"
	"github.com/segurtec/api-instalaciones/internal/pendiente"
	"github.com/segurtec/api-instalaciones/internal/presupuesto"
	"github.com/segurtec/api-instalaciones/internal/testutil"
	"github.com/segurtec/api-instalaciones/internal/tipos"
)

// armarCliente crea un cliente con una instalación, un mantenimiento, un
// pendiente y un presupuesto con componentes.
func armarCliente(t *testing.T, db *gorm.DB, empresaID uint, nombre string) *cliente.Cliente {
	t.Helper()
	cli := testutil.Cliente(t, db, empresaID, nombre)

	inst := &instalacion.Instalacion{
		EmpresaID:        empresaID,
		ClienteID:        cli.ID,
		FechaInstalacion: tipos.NuevaFecha(2024, time.March, 1),
		FrecuenciaMeses:  6,
		Activa:           true,
	}
	require.NoError(t, db.Create(inst).Error)
	require.NoError(t, db.Create(&mantenimiento.Mantenimiento{
		EmpresaID: empresaID, InstalacionID: inst.ID, Fecha: tipos.NuevaFecha(2024, time.September, 1),
	}).Error)
	require.NoError(t, db.Create(&pendiente.Pendiente{
		EmpresaID: empresaID, ClienteID: cli.ID, InstalacionID: inst.ID, Fecha: tipos.NuevaFecha(2024, time.April, 1),
	}).Error)
	p := &presupuesto.Presupuesto{
		EmpresaID: empresaID,
		ClienteID: &cli.ID,
		Estado:    "pendiente",
		Componentes: []componente.Componente{
			{Nombre: "Cámara domo", Cantidad: 4, Precio: 120},
			{Nombre: "DVR", Cantidad: 1, Precio: 300},
		},
	}
	require.NoError(t, db.Create(p).Error)
	return cli
}

func contar(t *testing.T, db *gorm.DB, modelo interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(modelo).Count(&n).Error)
	return n
}

func TestEliminarCascadaCompleta(t *testing.T) {
	db := testutil.DB(t)
	repo := cliente.NewRepository()
	emp := testutil.Empresa(t, db, "A")

	borrar := armarCliente(t, db, emp.ID, "Se borra")
	queda := armarCliente(t, db, emp.ID, "Queda")

	require.NoError(t, repo.Eliminar(db, borrar.ID))

	// todo lo del cliente borrado desapareció
	var n int64
	require.NoError(t, db.Model(&instalacion.Instalacion{}).Where("cliente_id = ?", borrar.ID).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&pendiente.Pendiente{}).Where("cliente_id = ?", borrar.ID).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&presupuesto.Presupuesto{}).Where("cliente_id = ?", borrar.ID).Count(&n).Error)
	assert.Zero(t, n)

	// el otro cliente conserva su árbol entero
	assert.EqualValues(t, 1, contar(t, db, &instalacion.Instalacion{}))
	assert.EqualValues(t, 1, contar(t, db, &mantenimiento.Mantenimiento{}))
	assert.EqualValues(t, 1, contar(t, db, &pendiente.Pendiente{}))
	assert.EqualValues(t, 1, contar(t, db, &presupuesto.Presupuesto{}))
	assert.EqualValues(t, 2, contar(t, db, &componente.Componente{}))

	_, err := repo.BuscarPorID(db, borrar.ID, emp.ID)
	assert.Error(t, err)
	c, err := repo.BuscarPorID(db, queda.ID, emp.ID)
	require.NoError(t, err)
	assert.Len(t, c.Instalaciones, 1)
}

func TestListarSoloLaPropiaEmpresa(t *testing.T) {
	db := testutil.DB(t)
	repo := cliente.NewRepository()
	empA := testutil.Empresa(t, db, "A")
	empB := testutil.Empresa(t, db, "B")
	testutil.Cliente(t, db, empA.ID, "De A")
	testutil.Cliente(t, db, empB.ID, "De B")

	lista, err := repo.ListarPorEmpresa(db, empA.ID)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "De A", lista[0].Nombre)
}

func TestBuscarPorIDCargaHijos(t *testing.T) {
	db := testutil.DB(t)
	repo := cliente.NewRepository()
	emp := testutil.Empresa(t, db, "A")
	cli := armarCliente(t, db, emp.ID, "Con hijos")

	c, err := repo.BuscarPorID(db, cli.ID, emp.ID)
	require.NoError(t, err)
	require.Len(t, c.Instalaciones, 1)
	assert.Len(t, c.Instalaciones[0].Mantenimientos, 1)
	assert.Len(t, c.Pendientes, 1)
	require.Len(t, c.Presupuestos, 1)
	assert.Len(t, c.Presupuestos[0].Componentes, 2)
}
