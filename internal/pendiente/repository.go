package pendiente

import (
	"errors"

	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/tenancy"
)

type Repository interface {
	Crear(db *gorm.DB, p *Pendiente) error
	ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Pendiente, error)
	BuscarPorID(db *gorm.DB, id, empresaID uint) (*Pendiente, error)
	Actualizar(db *gorm.DB, p *Pendiente) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// verificarReferencias exige que cliente e instalación pertenezcan a la
// empresa del pendiente, y que la instalación sea de ese cliente.
func verificarReferencias(db *gorm.DB, p *Pendiente) error {
	if err := tenancy.VerificarReferencia(db, "clientes", p.ClienteID, p.EmpresaID, "cliente"); err != nil {
		return err
	}
	if err := tenancy.VerificarReferencia(db, "instalaciones", p.InstalacionID, p.EmpresaID, "instalación"); err != nil {
		return err
	}
	var n int64
	if err := db.Table("instalaciones").
		Where("id = ? AND cliente_id = ?", p.InstalacionID, p.ClienteID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return apperrors.Validacion("la instalación no pertenece al cliente indicado")
	}
	return nil
}

func (r *repositoryImpl) Crear(db *gorm.DB, p *Pendiente) error {
	if err := verificarReferencias(db, p); err != nil {
		return err
	}
	return db.Create(p).Error
}

func (r *repositoryImpl) ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Pendiente, error) {
	var list []Pendiente
	err := db.Where("empresa_id = ?", empresaID).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id, empresaID uint) (*Pendiente, error) {
	var p Pendiente
	if err := db.Where("empresa_id = ?", empresaID).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NoEncontrado("pendiente")
		}
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, p *Pendiente) error {
	if err := verificarReferencias(db, p); err != nil {
		return err
	}
	return db.Save(p).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Pendiente{}, id).Error
}
