package models

import "time"

// EstadosAlertaActiva is the subset of alert states shown in the "active
// alerts" view. Status labels are free-form in the schema; these are the
// operational conventions, compared case-insensitively.
var EstadosAlertaActiva = []string{"dañado", "con fallas", "fuera de servicio"}

// Alerta is a flagged condition on a container
type Alerta struct {
	ID           uint      `gorm:"column:id_alerta;primaryKey" json:"id_alerta"`
	IDContenedor uint      `gorm:"column:id_contenedor;not null" json:"id_contenedor"`
	Estado       string    `gorm:"column:estado;not null" json:"estado"`
	FechaAlerta  time.Time `gorm:"column:fecha_alerta" json:"fecha_alerta"`

	CodigoContenedor  string `gorm:"->;-:migration" json:"codigo_contenedor,omitempty"`
	TipoContenedor    string `gorm:"->;-:migration" json:"tipo_contenedor,omitempty"`
	ClienteNombre     string `gorm:"->;-:migration" json:"cliente,omitempty"`
	EmbarcacionNombre string `gorm:"->;-:migration" json:"embarcacion,omitempty"`
}

// TableName specifies the table name for Alerta model
func (Alerta) TableName() string {
	return "alertas_contenedores"
}
