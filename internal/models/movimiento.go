package models

import "time"

// Movimiento is an append-only log entry describing container activity
type Movimiento struct {
	ID              uint      `gorm:"column:id_movimiento;primaryKey" json:"id_movimiento"`
	IDContenedor    uint      `gorm:"column:id_contenedor;not null" json:"id_contenedor"`
	TipoMovimiento  string    `gorm:"column:tipo_movimiento;not null" json:"tipo_movimiento"`
	FechaMovimiento time.Time `gorm:"column:fecha_movimiento" json:"fecha_movimiento"`
	Observaciones   string    `gorm:"column:observaciones" json:"observaciones,omitempty"`

	CodigoContenedor string `gorm:"->;-:migration" json:"codigo_contenedor,omitempty"`
}

// TableName specifies the table name for Movimiento model
func (Movimiento) TableName() string {
	return "movimientos"
}
