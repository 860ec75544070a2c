package instalacion

import (
	"errors"

	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/agenda"
	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/mantenimiento"
	"github.com/segurtec/api-instalaciones/internal/pendiente"
	"github.com/segurtec/api-instalaciones/internal/tenancy"
)

type Repository interface {
	Crear(db *gorm.DB, i *Instalacion) error
	ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Instalacion, error)
	BuscarPorID(db *gorm.DB, id, empresaID uint) (*Instalacion, error)
	Actualizar(db *gorm.DB, i *Instalacion) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func verificarReferencias(db *gorm.DB, i *Instalacion) error {
	if err := tenancy.VerificarReferencia(db, "clientes", i.ClienteID, i.EmpresaID, "cliente"); err != nil {
		return err
	}
	if i.InstaladorID != nil {
		if err := tenancy.VerificarReferencia(db, "usuarios", *i.InstaladorID, i.EmpresaID, "instalador"); err != nil {
			return err
		}
	}
	return nil
}

// Crear da de alta la instalación. Si el cuerpo no fijó el próximo
// mantenimiento se calcula desde la fecha de instalación más la frecuencia.
func (r *repositoryImpl) Crear(db *gorm.DB, i *Instalacion) error {
	if err := verificarReferencias(db, i); err != nil {
		return err
	}
	if i.FrecuenciaMeses <= 0 {
		i.FrecuenciaMeses = FrecuenciaPorDefecto
	}
	if i.ProximoMantenimiento == nil {
		proxima := agenda.ProximaFecha(i.FechaInstalacion, i.FrecuenciaMeses)
		i.ProximoMantenimiento = &proxima
	}
	return db.Create(i).Error
}

// ListarPorEmpresa no trae las colecciones hijas: el listado plano no debe
// arrastrar mantenimientos ni pendientes.
func (r *repositoryImpl) ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Instalacion, error) {
	var list []Instalacion
	err := db.Where("empresa_id = ?", empresaID).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id, empresaID uint) (*Instalacion, error) {
	var i Instalacion
	err := db.Where("empresa_id = ?", empresaID).
		Preload("Mantenimientos").
		Preload("Pendientes").
		First(&i, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NoEncontrado("instalación")
		}
		return nil, err
	}
	return &i, nil
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, i *Instalacion) error {
	if err := verificarReferencias(db, i); err != nil {
		return err
	}
	return db.Omit("Mantenimientos", "Pendientes").Save(i).Error
}

// Eliminar borra la instalación con sus mantenimientos y pendientes, hijos
// primero, dentro de la transacción del caller.
func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	if err := db.Where("instalacion_id = ?", id).Delete(&mantenimiento.Mantenimiento{}).Error; err != nil {
		return err
	}
	if err := db.Where("instalacion_id = ?", id).Delete(&pendiente.Pendiente{}).Error; err != nil {
		return err
	}
	return db.Delete(&Instalacion{}, id).Error
}
