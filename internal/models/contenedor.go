package models

// EstadoDisponible is the state a container starts in when none is supplied.
const EstadoDisponible = "disponible"

// Contenedor represents a shipping container tracked through the port
type Contenedor struct {
	ID            uint     `gorm:"column:id_contenedor;primaryKey" json:"id_contenedor"`
	Codigo        string   `gorm:"column:codigo_contenedor;not null" json:"codigo_contenedor"`
	Tipo          string   `gorm:"column:tipo" json:"tipo,omitempty"`
	Estado        string   `gorm:"column:estado;default:disponible" json:"estado"`
	Peso          *float64 `gorm:"column:peso" json:"peso,omitempty"`
	IDCliente     uint     `gorm:"column:id_cliente;not null" json:"id_cliente"`
	IDEmbarcacion *uint    `gorm:"column:id_embarcacion" json:"id_embarcacion,omitempty"`

	// Joined display fields, never written
	ClienteNombre     string `gorm:"->;-:migration" json:"cliente_nombre,omitempty"`
	EmbarcacionNombre string `gorm:"->;-:migration" json:"embarcacion_nombre,omitempty"`
}

// TableName specifies the table name for Contenedor model
func (Contenedor) TableName() string {
	return "contenedores"
}
