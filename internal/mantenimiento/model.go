package mantenimiento

import (
	"time"

	"github.com/segurtec/api-instalaciones/internal/tipos"
)

// Mantenimiento es una visita realizada sobre una instalación.
type Mantenimiento struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	EmpresaID     uint        `gorm:"not null;index:idx_mantenimiento_empresa" json:"empresa_id"`
	InstalacionID uint        `gorm:"not null;index:idx_mantenimiento_instalacion" json:"instalacion_id"`
	RealizadoPor  *uint       `json:"realizado_por"`
	Fecha         tipos.Fecha `gorm:"not null" json:"fecha"`
	Notas         string      `gorm:"type:text" json:"notas"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (Mantenimiento) TableName() string { return "mantenimientos" }
