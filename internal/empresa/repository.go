package empresa

import (
	"errors"

	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/cliente"
	"github.com/segurtec/api-instalaciones/internal/componente"
	"github.com/segurtec/api-instalaciones/internal/instalacion"
	"github.com/segurtec/api-instalaciones/internal/mantenimiento"
	"github.com/segurtec/api-instalaciones/internal/pendiente"
	"github.com/segurtec/api-instalaciones/internal/presupuesto"
)

type Repository interface {
	Crear(db *gorm.DB, e *Empresa) error
	Listar(db *gorm.DB) ([]Empresa, error)
	BuscarPorID(db *gorm.DB, id uint) (*Empresa, error)
	Actualizar(db *gorm.DB, e *Empresa) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Crear(db *gorm.DB, e *Empresa) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Empresa, error) {
	var list []Empresa
	err := db.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Empresa, error) {
	var e Empresa
	if err := db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NoEncontrado("empresa")
		}
		return nil, err
	}
	return &e, nil
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, e *Empresa) error {
	return db.Save(e).Error
}

// Eliminar borra la empresa con todo lo que le pertenece, hijos primero.
// El orden importa: componentes antes que presupuestos, mantenimientos y
// pendientes antes que instalaciones, instalaciones antes que clientes.
func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	presupuestos := db.Session(&gorm.Session{NewDB: true}).
		Table("presupuestos").Select("id").Where("empresa_id = ?", id)
	if err := db.Where("presupuesto_id IN (?)", presupuestos).Delete(&componente.Componente{}).Error; err != nil {
		return err
	}
	if err := db.Where("empresa_id = ?", id).Delete(&presupuesto.Presupuesto{}).Error; err != nil {
		return err
	}
	if err := db.Where("empresa_id = ?", id).Delete(&pendiente.Pendiente{}).Error; err != nil {
		return err
	}
	if err := db.Where("empresa_id = ?", id).Delete(&mantenimiento.Mantenimiento{}).Error; err != nil {
		return err
	}
	if err := db.Where("empresa_id = ?", id).Delete(&instalacion.Instalacion{}).Error; err != nil {
		return err
	}
	// usuarios se borra por tabla: el paquete usuario importa a empresa
	// (alta inicial en el setup) y un import acá cerraría el ciclo
	if err := db.Exec("DELETE FROM usuarios WHERE empresa_id = ?", id).Error; err != nil {
		return err
	}
	if err := db.Where("empresa_id = ?", id).Delete(&cliente.Cliente{}).Error; err != nil {
		return err
	}
	return db.Delete(&Empresa{}, id).Error
}
