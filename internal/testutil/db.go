// Package testutil arma una base sqlite en memoria con el esquema completo
// para los tests de repositorios y handlers.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/segurtec/api-instalaciones/internal/cliente"
	"github.com/segurtec/api-instalaciones/internal/componente"
	"github.com/segurtec/api-instalaciones/internal/empresa"
	"github.com/segurtec/api-instalaciones/internal/instalacion"
	"github.com/segurtec/api-instalaciones/internal/mantenimiento"
	"github.com/segurtec/api-instalaciones/internal/pendiente"
	"github.com/segurtec/api-instalaciones/internal/presupuesto"
	"github.com/segurtec/api-instalaciones/internal/usuario"
)

func DB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// una sola conexión: cada conexión nueva a :memory: ve una base vacía
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&empresa.Empresa{},
		&usuario.Usuario{},
		&cliente.Cliente{},
		&instalacion.Instalacion{},
		&mantenimiento.Mantenimiento{},
		&pendiente.Pendiente{},
		&presupuesto.Presupuesto{},
		&componente.Componente{},
	))
	return db
}

// Empresa inserta un tenant de prueba.
func Empresa(t *testing.T, db *gorm.DB, nombre string) *empresa.Empresa {
	t.Helper()
	e := &empresa.Empresa{Nombre: nombre, Plan: "FREE", MaxUsuarios: 10, Activa: true}
	require.NoError(t, db.Create(e).Error)
	return e
}

// Cliente inserta un cliente de prueba en la empresa dada.
func Cliente(t *testing.T, db *gorm.DB, empresaID uint, nombre string) *cliente.Cliente {
	t.Helper()
	c := &cliente.Cliente{EmpresaID: empresaID, Nombre: nombre, Activo: true}
	require.NoError(t, db.Create(c).Error)
	return c
}
