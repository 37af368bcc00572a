package repos

import (
	"context"

	"github.com/xelth-com/eckportgo/internal/apperr"
	"github.com/xelth-com/eckportgo/internal/models"
	"gorm.io/gorm"
)

// Entidad names a referenced entity kind for the referential validator.
type Entidad string

const (
	EntidadCliente     Entidad = "cliente"
	EntidadEmbarcacion Entidad = "embarcación"
	EntidadContenedor  Entidad = "contenedor"
	EntidadProducto    Entidad = "producto"
	EntidadUsuario     Entidad = "usuario"
)

type refTarget struct {
	modelo interface{}
	idCol  string
}

var entidadRef = map[Entidad]refTarget{
	EntidadCliente:     {&models.Cliente{}, "id_cliente"},
	EntidadEmbarcacion: {&models.Embarcacion{}, "id_embarcacion"},
	EntidadContenedor:  {&models.Contenedor{}, "id_contenedor"},
	EntidadProducto:    {&models.Producto{}, "id_producto"},
	EntidadUsuario:     {&models.Usuario{}, "id_usuario"},
}

// Existe reports whether the referenced row exists. It runs on the same
// tx/connection as the write that follows it.
func Existe(ctx context.Context, tx *gorm.DB, e Entidad, id uint) (bool, error) {
	ref := entidadRef[e]
	var count int64
	if err := tx.WithContext(ctx).Model(ref.modelo).
		Where(ref.idCol+" = ?", id).
		Count(&count).Error; err != nil {
		return false, apperr.Internal(err)
	}
	return count > 0, nil
}

// requireRef fails with a NotFound naming the missing referenced entity.
// Invoked by every mutating write that carries a foreign key, before any row
// is written, so an orphaned reference can never be created.
func requireRef(ctx context.Context, tx *gorm.DB, e Entidad, id uint) error {
	ok, err := Existe(ctx, tx, e, id)
	if err != nil {
		return err
	}
	if !ok {
		switch e {
		case EntidadEmbarcacion:
			return apperr.NotFound("La embarcación especificada no existe")
		default:
			return apperr.NotFound("El %s especificado no existe", e)
		}
	}
	return nil
}
