package empresa_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/componente"
	"github.com/segurtec/api-instalaciones/internal/empresa"
	"github.com/segurtec/api-instalaciones/internal/instalacion"
	"github.com/segurtec/api-instalaciones/internal/mantenimiento"
	"github.com/segurtec/api-instalaciones/internal/pendiente"
	"github.com/segurtec/api-instalaciones/internal/presupuesto"
	"github.com/segurtec/api-instalaciones/internal/testutil"
	"github.com/segurtec/api-instalaciones/internal/tipos"
	"github.com/segurtec/api-instalaciones/internal/usuario"
)

// poblarEmpresa llena el tenant con un registro de cada entidad.
func poblarEmpresa(t *testing.T, db *gorm.DB, empresaID uint) {
	t.Helper()

	u := &usuario.Usuario{
		EmpresaID: empresaID, Nombre: "Técnico", Email: "tec" + time.Now().Format("150405.000000") + "@test.com",
		Password: "hash", Rol: usuario.RolInstalador, Activo: true,
	}
	require.NoError(t, db.Create(u).Error)

	cli := testutil.Cliente(t, db, empresaID, "Cliente")
	inst := &instalacion.Instalacion{
		EmpresaID: empresaID, ClienteID: cli.ID, InstaladorID: &u.ID,
		FechaInstalacion: tipos.NuevaFecha(2024, time.February, 1), FrecuenciaMeses: 6, Activa: true,
	}
	require.NoError(t, db.Create(inst).Error)
	require.NoError(t, db.Create(&mantenimiento.Mantenimiento{
		EmpresaID: empresaID, InstalacionID: inst.ID, RealizadoPor: &u.ID,
		Fecha: tipos.NuevaFecha(2024, time.August, 1),
	}).Error)
	require.NoError(t, db.Create(&pendiente.Pendiente{
		EmpresaID: empresaID, ClienteID: cli.ID, InstalacionID: inst.ID,
		Fecha: tipos.NuevaFecha(2024, time.March, 1),
	}).Error)
	require.NoError(t, db.Create(&presupuesto.Presupuesto{
		EmpresaID: empresaID, ClienteID: &cli.ID, Estado: "pendiente", CreadoPor: &u.ID,
		Componentes: []componente.Componente{{Nombre: "Sirena", Cantidad: 1, Precio: 80}},
	}).Error)
}

func TestEliminarBorraTodoElTenant(t *testing.T) {
	db := testutil.DB(t)
	repo := empresa.NewRepository()

	borrar := testutil.Empresa(t, db, "Se borra")
	queda := testutil.Empresa(t, db, "Queda")
	poblarEmpresa(t, db, borrar.ID)
	poblarEmpresa(t, db, queda.ID)

	require.NoError(t, repo.Eliminar(db, borrar.ID))

	// clausura completa: no sobrevive ningún registro del tenant borrado
	tablas := []string{"usuarios", "clientes", "instalaciones", "mantenimientos", "pendientes", "presupuestos"}
	for _, tabla := range tablas {
		var n int64
		require.NoError(t, db.Table(tabla).Where("empresa_id = ?", borrar.ID).Count(&n).Error)
		assert.Zero(t, n, "quedaron registros en %s", tabla)
	}
	var comps int64
	require.NoError(t, db.Table("componentes").Count(&comps).Error)
	assert.EqualValues(t, 1, comps, "solo deben quedar los componentes del otro tenant")

	_, err := repo.BuscarPorID(db, borrar.ID)
	assert.Error(t, err)

	// el otro tenant quedó intacto
	for _, tabla := range tablas {
		var n int64
		require.NoError(t, db.Table(tabla).Where("empresa_id = ?", queda.ID).Count(&n).Error)
		assert.EqualValues(t, 1, n, "se perdieron registros de %s", tabla)
	}
}

func TestActualizarParcial(t *testing.T) {
	db := testutil.DB(t)
	repo := empresa.NewRepository()
	e := testutil.Empresa(t, db, "Original")

	e.Plan = "PRO"
	require.NoError(t, repo.Actualizar(db, e))

	otra, err := repo.BuscarPorID(db, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", otra.Nombre)
	assert.Equal(t, "PRO", otra.Plan)
}
