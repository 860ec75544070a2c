package cliente

import (
	"time"

	"github.com/segurtec/api-instalaciones/internal/instalacion"
	"github.com/segurtec/api-instalaciones/internal/pendiente"
	"github.com/segurtec/api-instalaciones/internal/presupuesto"
)

// Cliente es el titular de las instalaciones de una empresa.
type Cliente struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	EmpresaID uint   `gorm:"not null;index:idx_cliente_empresa" json:"empresa_id"`
	Nombre    string `gorm:"size:120;not null" json:"nombre"`

	Telefono  string `gorm:"size:50" json:"telefono"`
	Email     string `gorm:"size:120" json:"email"`
	Direccion string `gorm:"size:255" json:"direccion"`

	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`

	Observaciones string `gorm:"type:text" json:"observaciones"`
	Activo        bool   `gorm:"default:true" json:"activo"`

	CreatedAt time.Time `json:"created_at"`

	Instalaciones []instalacion.Instalacion `gorm:"foreignKey:ClienteID" json:"instalaciones"`
	Pendientes    []pendiente.Pendiente     `gorm:"foreignKey:ClienteID" json:"pendientes"`
	Presupuestos  []presupuesto.Presupuesto `gorm:"foreignKey:ClienteID" json:"presupuestos"`
}

func (Cliente) TableName() string { return "clientes" }
