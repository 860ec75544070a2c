package usuario

import (
	"errors"

	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/tenancy"
)

type Repository interface {
	Crear(db *gorm.DB, u *Usuario) error
	ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Usuario, error)
	BuscarPorID(db *gorm.DB, id, empresaID uint) (*Usuario, error)
	BuscarPorEmailOUsername(db *gorm.DB, valor string) (*Usuario, error)
	Contar(db *gorm.DB) (int64, error)
	Actualizar(db *gorm.DB, u *Usuario) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// verificarUnicidad garantiza email único en toda la tabla y username único
// cuando está presente. Se excluye el propio id para las actualizaciones.
func verificarUnicidad(db *gorm.DB, u *Usuario) error {
	var n int64
	if err := db.Model(&Usuario{}).
		Where("email = ? AND id <> ?", u.Email, u.ID).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return apperrors.Duplicado("email")
	}
	if u.Username != nil && *u.Username != "" {
		if err := db.Model(&Usuario{}).
			Where("username = ? AND id <> ?", *u.Username, u.ID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperrors.Duplicado("username")
		}
	}
	return nil
}

// verificarCupo rechaza el alta cuando la empresa ya llegó al máximo de
// usuarios de su plan.
func verificarCupo(db *gorm.DB, empresaID uint) error {
	var maxUsuarios int
	if err := db.Table("empresas").
		Select("max_usuarios").
		Where("id = ?", empresaID).
		Scan(&maxUsuarios).Error; err != nil {
		return err
	}
	if maxUsuarios <= 0 {
		return nil
	}
	var actuales int64
	if err := db.Model(&Usuario{}).Where("empresa_id = ?", empresaID).Count(&actuales).Error; err != nil {
		return err
	}
	if actuales >= int64(maxUsuarios) {
		return apperrors.Prohibido("la empresa alcanzó el máximo de usuarios de su plan")
	}
	return nil
}

func (r *repositoryImpl) Crear(db *gorm.DB, u *Usuario) error {
	if err := tenancy.Existe(db, "empresas", u.EmpresaID, "empresa"); err != nil {
		return err
	}
	if err := verificarUnicidad(db, u); err != nil {
		return err
	}
	if err := verificarCupo(db, u.EmpresaID); err != nil {
		return err
	}
	return db.Create(u).Error
}

func (r *repositoryImpl) ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Usuario, error) {
	var list []Usuario
	err := db.Where("empresa_id = ?", empresaID).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id, empresaID uint) (*Usuario, error) {
	var u Usuario
	if err := db.Where("empresa_id = ?", empresaID).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NoEncontrado("usuario")
		}
		return nil, err
	}
	return &u, nil
}

// BuscarPorEmailOUsername resuelve el login: el valor puede ser el email o
// el username. No se acota por empresa porque el email es único global.
func (r *repositoryImpl) BuscarPorEmailOUsername(db *gorm.DB, valor string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("email = ? OR username = ?", valor, valor).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NoAutorizado("credenciales inválidas")
		}
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) Contar(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&Usuario{}).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, u *Usuario) error {
	if err := verificarUnicidad(db, u); err != nil {
		return err
	}
	return db.Save(u).Error
}

// Eliminar limpia las referencias que apuntan al usuario antes de borrarlo
// para no dejar ids colgando.
func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	if err := db.Table("instalaciones").
		Where("instalador_id = ?", id).
		Update("instalador_id", nil).Error; err != nil {
		return err
	}
	if err := db.Table("mantenimientos").
		Where("realizado_por = ?", id).
		Update("realizado_por", nil).Error; err != nil {
		return err
	}
	if err := db.Table("presupuestos").
		Where("creado_por = ?", id).
		Update("creado_por", nil).Error; err != nil {
		return err
	}
	return db.Delete(&Usuario{}, id).Error
}
