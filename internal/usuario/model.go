package usuario

import "time"

// Roles de usuario dentro de una empresa.
const (
	RolAdmin      = "ADMIN"
	RolSupervisor = "SUPERVISOR"
	RolInstalador = "INSTALADOR"
)

// Usuario es una cuenta de acceso. El email es único en toda la tabla, no
// por empresa; el username también, cuando existe.
type Usuario struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	EmpresaID uint `gorm:"not null;index:idx_usuario_empresa" json:"empresa_id"`

	Nombre   string  `gorm:"size:120;not null" json:"nombre"`
	Username *string `gorm:"size:120;uniqueIndex" json:"username"`
	Email    string  `gorm:"size:120;not null;uniqueIndex" json:"email"`
	Password string  `gorm:"size:255;not null" json:"-"`

	Rol    string `gorm:"size:30;not null" json:"rol"`
	Activo bool   `gorm:"default:true" json:"activo"`

	CreatedAt time.Time `json:"created_at"`
}

func (Usuario) TableName() string { return "usuarios" }

func RolValido(rol string) bool {
	switch rol {
	case RolAdmin, RolSupervisor, RolInstalador:
		return true
	}
	return false
}
