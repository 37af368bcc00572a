package models

// Cliente represents a client company that owns containers
type Cliente struct {
	ID            uint   `gorm:"column:id_cliente;primaryKey" json:"id_cliente"`
	NombreEmpresa string `gorm:"column:nombre_empresa;not null" json:"nombre_empresa"`
	Representante string `gorm:"column:representante" json:"representante,omitempty"`
	Contacto      string `gorm:"column:contacto" json:"contacto,omitempty"`
}

// TableName specifies the table name for Cliente model
func (Cliente) TableName() string {
	return "clientes"
}
