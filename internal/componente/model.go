package componente

// Componente es un renglón de un presupuesto. Vive y muere con él.
type Componente struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	PresupuestoID uint    `gorm:"not null;index:idx_componente_presupuesto" json:"presupuesto_id"`
	Nombre        string  `gorm:"size:120;not null" json:"nombre"`
	Cantidad      int     `gorm:"not null" json:"cantidad"`
	Precio        float64 `gorm:"not null" json:"precio"`
}

func (Componente) TableName() string { return "componentes" }
