package instalacion

import (
	"time"

	"github.com/segurtec/api-instalaciones/internal/mantenimiento"
	"github.com/segurtec/api-instalaciones/internal/pendiente"
	"github.com/segurtec/api-instalaciones/internal/tipos"
)

// Tipos de sistema instalado.
const (
	TipoCamaras = "CAMARAS"
	TipoAlarmas = "ALARMAS"
	TipoAmbos   = "AMBOS"
)

// FrecuenciaPorDefecto es la frecuencia de mantenimiento en meses cuando el
// alta no indica otra.
const FrecuenciaPorDefecto = 6

// Instalacion es un sistema montado en el domicilio de un cliente.
type Instalacion struct {
	ID           uint  `gorm:"primaryKey" json:"id"`
	EmpresaID    uint  `gorm:"not null;index:idx_instalacion_empresa" json:"empresa_id"`
	ClienteID    uint  `gorm:"not null;index:idx_instalacion_cliente" json:"cliente_id"`
	InstaladorID *uint `json:"instalador_id"`

	TipoSistema string `gorm:"size:50" json:"tipo_sistema"`

	FechaInstalacion     tipos.Fecha  `gorm:"not null" json:"fecha_instalacion"`
	FrecuenciaMeses      int          `gorm:"default:6" json:"frecuencia_meses"`
	ProximoMantenimiento *tipos.Fecha `json:"proximo_mantenimiento"`

	Activa    bool      `gorm:"default:true" json:"activa"`
	CreatedAt time.Time `json:"created_at"`

	Mantenimientos []mantenimiento.Mantenimiento `gorm:"foreignKey:InstalacionID" json:"mantenimientos,omitempty"`
	Pendientes     []pendiente.Pendiente         `gorm:"foreignKey:InstalacionID" json:"pendientes,omitempty"`
}

func (Instalacion) TableName() string { return "instalaciones" }

func tipoSistemaValido(t string) bool {
	switch t {
	case "", TipoCamaras, TipoAlarmas, TipoAmbos:
		return true
	}
	return false
}
