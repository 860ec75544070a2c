// Package tenancy concentra las reglas de integridad entre tenants: toda
// referencia foránea de un registro debe resolver a un registro de la misma
// empresa. Se verifica en cada escritura, no se delega en claves foráneas.
package tenancy

import (
	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"gorm.io/gorm"
)

// Existe verifica que el id resuelva en la tabla indicada.
func Existe(db *gorm.DB, tabla string, id uint, recurso string) error {
	var n int64
	if err := db.Table(tabla).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NoEncontrado(recurso)
	}
	return nil
}

// VerificarReferencia verifica que el id exista y pertenezca a la empresa.
// Devuelve NoEncontrado si no resuelve y ReferenciaCruzada si pertenece a
// otra empresa.
func VerificarReferencia(db *gorm.DB, tabla string, id, empresaID uint, recurso string) error {
	if err := Existe(db, tabla, id, recurso); err != nil {
		return err
	}
	var n int64
	if err := db.Table(tabla).Where("id = ? AND empresa_id = ?", id, empresaID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ReferenciaCruzada(recurso)
	}
	return nil
}

// ResolverEmpresa concilia la empresa del cuerpo del request con la del
// token: si el cuerpo no trae empresa se usa la del token, y si trae una
// distinta se rechaza.
func ResolverEmpresa(db *gorm.DB, empresaCuerpo, empresaToken uint) (uint, error) {
	if empresaCuerpo == 0 {
		empresaCuerpo = empresaToken
	}
	if empresaCuerpo != empresaToken {
		return 0, apperrors.ReferenciaCruzada("empresa")
	}
	if err := Existe(db, "empresas", empresaCuerpo, "empresa"); err != nil {
		return 0, err
	}
	return empresaCuerpo, nil
}
