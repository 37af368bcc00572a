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

// HistorialRepo reads the container state audit trail. Rows are only ever
// written by ContenedorRepo inside the state-change transaction; the single
// mutating operation here is the administrative correction path.
type HistorialRepo interface {
	List(ctx context.Context) ([]models.HistorialEstado, error)
	GetByID(ctx context.Context, id uint) (*models.HistorialEstado, error)
	Corregir(ctx context.Context, id uint, h *models.HistorialEstado) (*models.HistorialEstado, error)
	PorContenedor(ctx context.Context, idContenedor uint) ([]models.HistorialEstado, error)
	PorUsuario(ctx context.Context, idUsuario uint) ([]models.HistorialEstado, error)
	PorFechas(ctx context.Context, desde, hasta time.Time) ([]models.HistorialEstado, error)
}

type historialRepo struct {
	db *gorm.DB
}

func NewHistorialRepo(db *gorm.DB) HistorialRepo {
	return &historialRepo{db: db}
}

func (r *historialRepo) consulta(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.HistorialEstado{}).
		Select("historial_estado.*, c.codigo_contenedor AS codigo_contenedor, u.nombre_usuario AS nombre_usuario").
		Joins("LEFT JOIN contenedores c ON historial_estado.id_contenedor = c.id_contenedor").
		Joins("LEFT JOIN usuarios u ON historial_estado.usuario_modificador = u.id_usuario")
}

func (r *historialRepo) List(ctx context.Context) ([]models.HistorialEstado, error) {
	var historial []models.HistorialEstado
	if err := r.consulta(ctx).Order("historial_estado.fecha_cambio DESC").Find(&historial).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return historial, nil
}

func (r *historialRepo) GetByID(ctx context.Context, id uint) (*models.HistorialEstado, error) {
	var h models.HistorialEstado
	if err := r.consulta(ctx).Where("historial_estado.id_historial = ?", id).First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Registro de historial no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return &h, nil
}

// Corregir is the administrative "correct an audit record" path. All three
// audit fields must be present and the acting user must resolve; fecha_cambio
// is never client-supplied.
func (r *historialRepo) Corregir(ctx context.Context, id uint, h *models.HistorialEstado) (*models.HistorialEstado, error) {
	if strings.TrimSpace(h.EstadoAnterior) == "" || strings.TrimSpace(h.EstadoNuevo) == "" ||
		h.UsuarioModificador == nil || *h.UsuarioModificador == 0 {
		return nil, apperr.Validation("Estado anterior, estado nuevo y usuario modificador son requeridos")
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(ctx, tx, EntidadUsuario, *h.UsuarioModificador); err != nil {
			return err
		}
		res := tx.Model(&models.HistorialEstado{}).Where("id_historial = ?", id).
			Updates(map[string]interface{}{
				"estado_anterior":     h.EstadoAnterior,
				"estado_nuevo":        h.EstadoNuevo,
				"usuario_modificador": h.UsuarioModificador,
			})
		if res.Error != nil {
			return apperr.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("Registro de historial no encontrado")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *historialRepo) PorContenedor(ctx context.Context, idContenedor uint) ([]models.HistorialEstado, error) {
	var historial []models.HistorialEstado
	if err := r.consulta(ctx).
		Where("historial_estado.id_contenedor = ?", idContenedor).
		Order("historial_estado.fecha_cambio DESC").
		Find(&historial).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return historial, nil
}

func (r *historialRepo) PorUsuario(ctx context.Context, idUsuario uint) ([]models.HistorialEstado, error) {
	var historial []models.HistorialEstado
	if err := r.consulta(ctx).
		Where("historial_estado.usuario_modificador = ?", idUsuario).
		Order("historial_estado.fecha_cambio DESC").
		Find(&historial).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return historial, nil
}

func (r *historialRepo) PorFechas(ctx context.Context, desde, hasta time.Time) ([]models.HistorialEstado, error) {
	var historial []models.HistorialEstado
	if err := r.consulta(ctx).
		Where("historial_estado.fecha_cambio >= ? AND historial_estado.fecha_cambio < ?", desde, hasta).
		Order("historial_estado.fecha_cambio DESC").
		Find(&historial).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return historial, nil
}
