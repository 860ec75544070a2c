package empresa

import "time"

// Empresa es el tenant: dueña de todos los demás registros del sistema.
type Empresa struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nombre      string    `gorm:"size:120;not null" json:"nombre"`
	Plan        string    `gorm:"size:50;default:'FREE'" json:"plan"`
	MaxUsuarios int       `gorm:"default:1" json:"max_usuarios"`
	Activa      bool      `gorm:"default:true" json:"activa"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Empresa) TableName() string { return "empresas" }
