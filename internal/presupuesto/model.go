package presupuesto

import (
	"time"

	"github.com/segurtec/api-instalaciones/internal/componente"
)

// Presupuesto es una cotización. Guarda una copia de los datos de contacto
// del cliente: el documento entregado no cambia aunque el cliente se edite
// o se borre.
type Presupuesto struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	EmpresaID uint  `gorm:"not null;index:idx_presupuesto_empresa" json:"empresa_id"`
	ClienteID *uint `gorm:"index:idx_presupuesto_cliente" json:"cliente_id"`

	ClienteNombre    string `gorm:"size:120" json:"cliente_nombre"`
	ClienteTelefono  string `gorm:"size:50" json:"cliente_telefono"`
	ClienteDireccion string `gorm:"size:255" json:"cliente_direccion"`
	ClienteEmail     string `gorm:"size:120" json:"cliente_email"`

	TipoSistema string  `gorm:"size:50" json:"tipo_sistema"`
	Descripcion string  `gorm:"type:text" json:"descripcion"`
	Total       float64 `json:"total"`

	Estado    string `gorm:"size:50;default:'pendiente'" json:"estado"`
	CreadoPor *uint  `json:"creado_por"`

	Componentes []componente.Componente `gorm:"foreignKey:PresupuestoID" json:"componentes"`

	CreatedAt time.Time `json:"created_at"`
}

func (Presupuesto) TableName() string { return "presupuestos" }
