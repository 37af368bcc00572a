package repos

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/xelth-com/eckportgo/internal/apperr"
	"github.com/xelth-com/eckportgo/internal/models"
	"gorm.io/gorm"
)

// ContenedorRepo provides access to containers. State changes through Update
// append the corresponding history row in the same transaction.
type ContenedorRepo interface {
	List(ctx context.Context) ([]models.Contenedor, error)
	GetByID(ctx context.Context, id uint) (*models.Contenedor, error)
	Create(ctx context.Context, c *models.Contenedor) (*models.Contenedor, error)
	Update(ctx context.Context, id uint, c *models.Contenedor, actorID uint) (*models.Contenedor, error)
	Delete(ctx context.Context, id uint) error
	BuscarPorCodigo(ctx context.Context, codigo string) ([]models.Contenedor, error)
	PorEstado(ctx context.Context, estado string) ([]models.Contenedor, error)
}

type contenedorRepo struct {
	db *gorm.DB
}

func NewContenedorRepo(db *gorm.DB) ContenedorRepo {
	return &contenedorRepo{db: db}
}

const contenedorJoins = "contenedores.*, cl.nombre_empresa AS cliente_nombre, e.nombre AS embarcacion_nombre"

func (r *contenedorRepo) consulta(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Contenedor{}).
		Select(contenedorJoins).
		Joins("LEFT JOIN clientes cl ON contenedores.id_cliente = cl.id_cliente").
		Joins("LEFT JOIN embarcaciones e ON contenedores.id_embarcacion = e.id_embarcacion")
}

func (r *contenedorRepo) List(ctx context.Context) ([]models.Contenedor, error) {
	var contenedores []models.Contenedor
	if err := r.consulta(ctx).Order("contenedores.id_contenedor DESC").Find(&contenedores).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return contenedores, nil
}

func (r *contenedorRepo) GetByID(ctx context.Context, id uint) (*models.Contenedor, error) {
	var c models.Contenedor
	if err := r.consulta(ctx).Where("contenedores.id_contenedor = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Contenedor no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return &c, nil
}

func (r *contenedorRepo) Create(ctx context.Context, c *models.Contenedor) (*models.Contenedor, error) {
	if strings.TrimSpace(c.Codigo) == "" || c.IDCliente == 0 {
		return nil, apperr.Validation("Código de contenedor e ID de cliente son requeridos")
	}
	if c.Estado == "" {
		c.Estado = models.EstadoDisponible
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(ctx, tx, EntidadCliente, c.IDCliente); err != nil {
			return err
		}
		if c.IDEmbarcacion != nil {
			if err := requireRef(ctx, tx, EntidadEmbarcacion, *c.IDEmbarcacion); err != nil {
				return err
			}
		}
		if err := tx.Create(c).Error; err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Re-read so the response carries server defaults and joined names
	return r.GetByID(ctx, c.ID)
}

func (r *contenedorRepo) Update(ctx context.Context, id uint, c *models.Contenedor, actorID uint) (*models.Contenedor, error) {
	if strings.TrimSpace(c.Codigo) == "" || c.IDCliente == 0 {
		return nil, apperr.Validation("Código de contenedor e ID de cliente son requeridos")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prev models.Contenedor
		if err := tx.First(&prev, "id_contenedor = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Contenedor no encontrado")
			}
			return apperr.Internal(err)
		}

		if err := requireRef(ctx, tx, EntidadCliente, c.IDCliente); err != nil {
			return err
		}
		if c.IDEmbarcacion != nil {
			if err := requireRef(ctx, tx, EntidadEmbarcacion, *c.IDEmbarcacion); err != nil {
				return err
			}
		}

		res := tx.Model(&models.Contenedor{}).Where("id_contenedor = ?", id).
			Updates(map[string]interface{}{
				"codigo_contenedor": c.Codigo,
				"tipo":              c.Tipo,
				"estado":            c.Estado,
				"peso":              c.Peso,
				"id_cliente":        c.IDCliente,
				"id_embarcacion":    c.IDEmbarcacion,
			})
		if res.Error != nil {
			return apperr.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("Contenedor no encontrado")
		}

		// A state transition and its audit row commit together. Without a
		// session the modifier stays NULL instead of pointing at a user id
		// that resolves to nobody.
		if c.Estado != "" && c.Estado != prev.Estado {
			hist := models.HistorialEstado{
				IDContenedor:   id,
				EstadoAnterior: prev.Estado,
				EstadoNuevo:    c.Estado,
				FechaCambio:    time.Now().UTC(),
			}
			if actorID != 0 {
				hist.UsuarioModificador = &actorID
			}
			if err := tx.Create(&hist).Error; err != nil {
				return apperr.Internal(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *contenedorRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Contenedor{}, "id_contenedor = ?", id)
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Contenedor no encontrado")
	}
	return nil
}

func (r *contenedorRepo) BuscarPorCodigo(ctx context.Context, codigo string) ([]models.Contenedor, error) {
	var contenedores []models.Contenedor
	if err := r.consulta(ctx).
		Where("LOWER(contenedores.codigo_contenedor) LIKE ?", "%"+strings.ToLower(codigo)+"%").
		Order("contenedores.codigo_contenedor").
		Find(&contenedores).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return contenedores, nil
}

func (r *contenedorRepo) PorEstado(ctx context.Context, estado string) ([]models.Contenedor, error) {
	var contenedores []models.Contenedor
	if err := r.consulta(ctx).
		Where("LOWER(contenedores.estado) = ?", strings.ToLower(estado)).
		Order("contenedores.id_contenedor DESC").
		Find(&contenedores).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return contenedores, nil
}
