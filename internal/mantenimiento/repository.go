package mantenimiento

import (
	"errors"

	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/agenda"
	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/tenancy"
)

type Repository interface {
	Crear(db *gorm.DB, m *Mantenimiento) error
	ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Mantenimiento, error)
	ListarPorInstalacion(db *gorm.DB, instalacionID uint) ([]Mantenimiento, error)
	BuscarPorID(db *gorm.DB, id, empresaID uint) (*Mantenimiento, error)
	Actualizar(db *gorm.DB, m *Mantenimiento) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func verificarReferencias(db *gorm.DB, m *Mantenimiento) error {
	if err := tenancy.VerificarReferencia(db, "instalaciones", m.InstalacionID, m.EmpresaID, "instalación"); err != nil {
		return err
	}
	if m.RealizadoPor != nil {
		if err := tenancy.VerificarReferencia(db, "usuarios", *m.RealizadoPor, m.EmpresaID, "usuario"); err != nil {
			return err
		}
	}
	return nil
}

// Crear registra la visita y recalcula el próximo mantenimiento de la
// instalación: fecha de la visita más la frecuencia configurada.
func (r *repositoryImpl) Crear(db *gorm.DB, m *Mantenimiento) error {
	if err := verificarReferencias(db, m); err != nil {
		return err
	}
	if err := db.Create(m).Error; err != nil {
		return err
	}

	var frecuencia int
	if err := db.Table("instalaciones").
		Select("frecuencia_meses").
		Where("id = ?", m.InstalacionID).
		Scan(&frecuencia).Error; err != nil {
		return err
	}
	if frecuencia <= 0 {
		frecuencia = 6
	}
	proxima := agenda.ProximaFecha(m.Fecha, frecuencia)
	return db.Table("instalaciones").
		Where("id = ?", m.InstalacionID).
		Update("proximo_mantenimiento", proxima.Time).Error
}

func (r *repositoryImpl) ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Mantenimiento, error) {
	var list []Mantenimiento
	err := db.Where("empresa_id = ?", empresaID).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorInstalacion(db *gorm.DB, instalacionID uint) ([]Mantenimiento, error) {
	var list []Mantenimiento
	err := db.Where("instalacion_id = ?", instalacionID).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id, empresaID uint) (*Mantenimiento, error) {
	var m Mantenimiento
	if err := db.Where("empresa_id = ?", empresaID).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NoEncontrado("mantenimiento")
		}
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, m *Mantenimiento) error {
	if err := verificarReferencias(db, m); err != nil {
		return err
	}
	return db.Save(m).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Mantenimiento{}, id).Error
}
