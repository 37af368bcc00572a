package models

import (
	"time"

	"gorm.io/datatypes"
)

// HistorialEstado is the audit record of a container state transition.
// Timestamps are server-assigned at creation, never client-supplied. The
// modifying user is NULL for transitions recorded without a session, so the
// column never holds an unresolvable user id.
type HistorialEstado struct {
	ID                  uint      `gorm:"column:id_historial;primaryKey" json:"id_historial"`
	IDContenedor        uint      `gorm:"column:id_contenedor;not null" json:"id_contenedor"`
	EstadoAnterior      string    `gorm:"column:estado_anterior;not null" json:"estado_anterior"`
	EstadoNuevo         string    `gorm:"column:estado_nuevo;not null" json:"estado_nuevo"`
	FechaCambio         time.Time `gorm:"column:fecha_cambio" json:"fecha_cambio"`
	UsuarioModificador  *uint     `gorm:"column:usuario_modificador" json:"usuario_modificador"`

	CodigoContenedor string `gorm:"->;-:migration" json:"codigo_contenedor,omitempty"`
	NombreUsuario    string `gorm:"->;-:migration" json:"nombre_usuario,omitempty"`
}

// TableName specifies the table name for HistorialEstado model
func (HistorialEstado) TableName() string {
	return "historial_estado"
}

// LogUsuario is the append-only audit of administrative user actions
type LogUsuario struct {
	ID              uint           `gorm:"column:id_log;primaryKey" json:"id_log"`
	UsuarioAfectado uint           `gorm:"column:usuario_afectado;not null" json:"usuario_afectado"`
	UsuarioAccion   uint           `gorm:"column:usuario_accion;not null" json:"usuario_accion"`
	Accion          string         `gorm:"column:accion;not null" json:"accion"`
	FechaAccion     time.Time      `gorm:"column:fecha_accion" json:"fecha_accion"`
	Detalles        datatypes.JSON `gorm:"column:detalles" json:"detalles,omitempty"`

	NombreUsuarioAfectado string `gorm:"->;-:migration" json:"nombre_usuario_afectado,omitempty"`
	NombreUsuarioAccion   string `gorm:"->;-:migration" json:"nombre_usuario_accion,omitempty"`
}

// TableName specifies the table name for LogUsuario model
func (LogUsuario) TableName() string {
	return "log_usuarios"
}
