package pendiente

import (
	"time"

	"github.com/segurtec/api-instalaciones/internal/tipos"
)

// Pendiente es un trabajo sin resolver sobre una instalación de un cliente.
type Pendiente struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	EmpresaID     uint        `gorm:"not null;index:idx_pendiente_empresa" json:"empresa_id"`
	ClienteID     uint        `gorm:"not null;index:idx_pendiente_cliente" json:"cliente_id"`
	InstalacionID uint        `gorm:"not null;index:idx_pendiente_instalacion" json:"instalacion_id"`
	Fecha         tipos.Fecha `gorm:"not null" json:"fecha"`
	Notas         string      `gorm:"type:text" json:"notas"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (Pendiente) TableName() string { return "pendientes" }
