package cliente

import (
	"errors"

	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/componente"
	"github.com/segurtec/api-instalaciones/internal/instalacion"
	"github.com/segurtec/api-instalaciones/internal/mantenimiento"
	"github.com/segurtec/api-instalaciones/internal/pendiente"
	"github.com/segurtec/api-instalaciones/internal/presupuesto"
)

type Repository interface {
	Crear(db *gorm.DB, c *Cliente) error
	ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Cliente, error)
	BuscarPorID(db *gorm.DB, id, empresaID uint) (*Cliente, error)
	Actualizar(db *gorm.DB, c *Cliente) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Crear(db *gorm.DB, c *Cliente) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Cliente, error) {
	var list []Cliente
	err := db.Where("empresa_id = ?", empresaID).
		Preload("Instalaciones").
		Preload("Pendientes").
		Preload("Presupuestos.Componentes").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id, empresaID uint) (*Cliente, error) {
	var c Cliente
	err := db.Where("empresa_id = ?", empresaID).
		Preload("Instalaciones.Mantenimientos").
		Preload("Instalaciones.Pendientes").
		Preload("Pendientes").
		Preload("Presupuestos.Componentes").
		First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NoEncontrado("cliente")
		}
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, c *Cliente) error {
	return db.Omit("Instalaciones", "Pendientes", "Presupuestos").Save(c).Error
}

// Eliminar borra el cliente con todo lo que depende de él, hijos primero:
// componentes de sus presupuestos, presupuestos, pendientes, mantenimientos
// de sus instalaciones, instalaciones y por último el cliente.
func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	presupuestos := db.Session(&gorm.Session{NewDB: true}).
		Table("presupuestos").Select("id").Where("cliente_id = ?", id)
	if err := db.Where("presupuesto_id IN (?)", presupuestos).Delete(&componente.Componente{}).Error; err != nil {
		return err
	}
	if err := db.Where("cliente_id = ?", id).Delete(&presupuesto.Presupuesto{}).Error; err != nil {
		return err
	}
	if err := db.Where("cliente_id = ?", id).Delete(&pendiente.Pendiente{}).Error; err != nil {
		return err
	}
	instalaciones := db.Session(&gorm.Session{NewDB: true}).
		Table("instalaciones").Select("id").Where("cliente_id = ?", id)
	if err := db.Where("instalacion_id IN (?)", instalaciones).Delete(&mantenimiento.Mantenimiento{}).Error; err != nil {
		return err
	}
	if err := db.Where("cliente_id = ?", id).Delete(&instalacion.Instalacion{}).Error; err != nil {
		return err
	}
	return db.Delete(&Cliente{}, id).Error
}
