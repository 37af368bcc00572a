package models

import "time"

// Embarcacion represents a vessel carrying containers through the port
type Embarcacion struct {
	ID          uint       `gorm:"column:id_embarcacion;primaryKey" json:"id_embarcacion"`
	Nombre      string     `gorm:"column:nombre;not null" json:"nombre"`
	Bandera     string     `gorm:"column:bandera" json:"bandera,omitempty"`
	FechaArribo *time.Time `gorm:"column:fecha_arribo" json:"fecha_arribo,omitempty"`
	FechaSalida *time.Time `gorm:"column:fecha_salida" json:"fecha_salida,omitempty"`
}

// TableName specifies the table name for Embarcacion model
func (Embarcacion) TableName() string {
	return "embarcaciones"
}
