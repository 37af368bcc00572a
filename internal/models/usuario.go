package models

import "time"

// User account states. Deleting a user toggles between the two instead of
// removing the row.
const (
	UsuarioActivo   = "ACTIVO"
	UsuarioInactivo = "INACTIVO"
)

// Usuario represents a port staff account
type Usuario struct {
	ID         uint       `gorm:"column:id_usuario;primaryKey" json:"id_usuario"`
	Nombre     string     `gorm:"column:nombre_usuario;unique;not null" json:"nombre_usuario"`
	Rol        string     `gorm:"column:rol;default:operador" json:"rol"`
	Contrasena string     `gorm:"column:contrasena;not null" json:"-"`
	Estado     string     `gorm:"column:estado;default:ACTIVO" json:"estado"`
	FechaBaja  *time.Time `gorm:"column:fecha_baja" json:"fecha_baja,omitempty"`
}

// TableName specifies the table name for Usuario model
func (Usuario) TableName() string {
	return "usuarios"
}
