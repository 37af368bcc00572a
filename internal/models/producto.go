package models

// Producto represents a type of goods carried in containers
type Producto struct {
	ID            uint     `gorm:"column:id_producto;primaryKey" json:"id_producto"`
	Nombre        string   `gorm:"column:nombre;not null" json:"nombre"`
	Descripcion   string   `gorm:"column:descripcion" json:"descripcion,omitempty"`
	Tipo          string   `gorm:"column:tipo" json:"tipo,omitempty"`
	ValorEstimado *float64 `gorm:"column:valor_estimado" json:"valor_estimado,omitempty"`
}

// TableName specifies the table name for Producto model
func (Producto) TableName() string {
	return "productos"
}

// Lote links a quantity of one product to one container
type Lote struct {
	ID           uint `gorm:"column:id_lote;primaryKey" json:"id_lote"`
	IDContenedor uint `gorm:"column:id_contenedor;not null" json:"id_contenedor"`
	IDProducto   uint `gorm:"column:id_producto;not null" json:"id_producto"`
	Cantidad     int  `gorm:"column:cantidad;default:1" json:"cantidad"`

	// Joined display fields, never written
	CodigoContenedor string `gorm:"->;-:migration" json:"codigo_contenedor,omitempty"`
	ProductoNombre   string `gorm:"->;-:migration" json:"producto_nombre,omitempty"`
}

// TableName specifies the table name for Lote model
func (Lote) TableName() string {
	return "lotes"
}
