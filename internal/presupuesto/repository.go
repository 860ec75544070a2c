package presupuesto

import (
	"errors"

	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/componente"
	"github.com/segurtec/api-instalaciones/internal/tenancy"
)

type Repository interface {
	Crear(db *gorm.DB, p *Presupuesto) error
	ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Presupuesto, error)
	BuscarPorID(db *gorm.DB, id, empresaID uint) (*Presupuesto, error)
	Actualizar(db *gorm.DB, p *Presupuesto) error
	ReemplazarComponentes(db *gorm.DB, presupuestoID uint, comps []componente.Componente) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func verificarReferencias(db *gorm.DB, p *Presupuesto) error {
	if p.ClienteID != nil {
		if err := tenancy.VerificarReferencia(db, "clientes", *p.ClienteID, p.EmpresaID, "cliente"); err != nil {
			return err
		}
	}
	if p.CreadoPor != nil {
		if err := tenancy.VerificarReferencia(db, "usuarios", *p.CreadoPor, p.EmpresaID, "usuario"); err != nil {
			return err
		}
	}
	return nil
}

func (r *repositoryImpl) Crear(db *gorm.DB, p *Presupuesto) error {
	if err := verificarReferencias(db, p); err != nil {
		return err
	}
	return db.Create(p).Error
}

func (r *repositoryImpl) ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Presupuesto, error) {
	var list []Presupuesto
	err := db.Where("empresa_id = ?", empresaID).Preload("Componentes").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id, empresaID uint) (*Presupuesto, error) {
	var p Presupuesto
	if err := db.Where("empresa_id = ?", empresaID).Preload("Componentes").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NoEncontrado("presupuesto")
		}
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, p *Presupuesto) error {
	if err := verificarReferencias(db, p); err != nil {
		return err
	}
	return db.Omit("Componentes").Save(p).Error
}

// ReemplazarComponentes descarta los renglones actuales y escribe los nuevos.
func (r *repositoryImpl) ReemplazarComponentes(db *gorm.DB, presupuestoID uint, comps []componente.Componente) error {
	if err := db.Where("presupuesto_id = ?", presupuestoID).Delete(&componente.Componente{}).Error; err != nil {
		return err
	}
	for i := range comps {
		comps[i].ID = 0
		comps[i].PresupuestoID = presupuestoID
	}
	if len(comps) == 0 {
		return nil
	}
	return db.Create(&comps).Error
}

// Eliminar borra primero los componentes y después el presupuesto, dentro
// de la transacción del caller.
func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	if err := db.Where("presupuesto_id = ?", id).Delete(&componente.Componente{}).Error; err != nil {
		return err
	}
	return db.Delete(&Presupuesto{}, id).Error
}
