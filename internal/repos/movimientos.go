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

// MovimientoRepo provides access to the append-only movement log.
type MovimientoRepo interface {
	List(ctx context.Context) ([]models.Movimiento, error)
	GetByID(ctx context.Context, id uint) (*models.Movimiento, error)
	Create(ctx context.Context, m *models.Movimiento) (*models.Movimiento, error)
	Update(ctx context.Context, id uint, m *models.Movimiento) (*models.Movimiento, error)
	Delete(ctx context.Context, id uint) error
	PorContenedor(ctx context.Context, idContenedor uint) ([]models.Movimiento, error)
	PorTipo(ctx context.Context, tipo string) ([]models.Movimiento, error)
	Recientes(ctx context.Context, dias int) ([]models.Movimiento, error)
}

type movimientoRepo struct {
	db *gorm.DB
}

func NewMovimientoRepo(db *gorm.DB) MovimientoRepo {
	return &movimientoRepo{db: db}
}

func (r *movimientoRepo) consulta(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Movimiento{}).
		Select("movimientos.*, c.codigo_contenedor AS codigo_contenedor").
		Joins("LEFT JOIN contenedores c ON movimientos.id_contenedor = c.id_contenedor")
}

func (r *movimientoRepo) List(ctx context.Context) ([]models.Movimiento, error) {
	var movimientos []models.Movimiento
	if err := r.consulta(ctx).Order("movimientos.fecha_movimiento DESC").Find(&movimientos).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return movimientos, nil
}

func (r *movimientoRepo) GetByID(ctx context.Context, id uint) (*models.Movimiento, error) {
	var m models.Movimiento
	if err := r.consulta(ctx).Where("movimientos.id_movimiento = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Movimiento no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return &m, nil
}

func validarMovimiento(m *models.Movimiento) error {
	if m.IDContenedor == 0 || strings.TrimSpace(m.TipoMovimiento) == "" {
		return apperr.Validation("ID de contenedor y tipo de movimiento son requeridos")
	}
	return nil
}

func (r *movimientoRepo) Create(ctx context.Context, m *models.Movimiento) (*models.Movimiento, error) {
	if err := validarMovimiento(m); err != nil {
		return nil, err
	}
	// Timestamp defaults to now when the caller omits it
	if m.FechaMovimiento.IsZero() {
		m.FechaMovimiento = time.Now().UTC()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(ctx, tx, EntidadContenedor, m.IDContenedor); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, m.ID)
}

func (r *movimientoRepo) Update(ctx context.Context, id uint, m *models.Movimiento) (*models.Movimiento, error) {
	if err := validarMovimiento(m); err != nil {
		return nil, err
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(ctx, tx, EntidadContenedor, m.IDContenedor); err != nil {
			return err
		}
		res := tx.Model(&models.Movimiento{}).Where("id_movimiento = ?", id).
			Updates(map[string]interface{}{
				"id_contenedor":    m.IDContenedor,
				"tipo_movimiento":  m.TipoMovimiento,
				"fecha_movimiento": m.FechaMovimiento,
				"observaciones":    m.Observaciones,
			})
		if res.Error != nil {
			return apperr.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("Movimiento no encontrado")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *movimientoRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Movimiento{}, "id_movimiento = ?", id)
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Movimiento no encontrado")
	}
	return nil
}

func (r *movimientoRepo) PorContenedor(ctx context.Context, idContenedor uint) ([]models.Movimiento, error) {
	var movimientos []models.Movimiento
	if err := r.consulta(ctx).
		Where("movimientos.id_contenedor = ?", idContenedor).
		Order("movimientos.fecha_movimiento DESC").
		Find(&movimientos).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return movimientos, nil
}

func (r *movimientoRepo) PorTipo(ctx context.Context, tipo string) ([]models.Movimiento, error) {
	var movimientos []models.Movimiento
	if err := r.consulta(ctx).
		Where("LOWER(movimientos.tipo_movimiento) = ?", strings.ToLower(tipo)).
		Order("movimientos.fecha_movimiento DESC").
		Find(&movimientos).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return movimientos, nil
}

func (r *movimientoRepo) Recientes(ctx context.Context, dias int) ([]models.Movimiento, error) {
	limite := time.Now().UTC().AddDate(0, 0, -dias)
	var movimientos []models.Movimiento
	if err := r.consulta(ctx).
		Where("movimientos.fecha_movimiento >= ?", limite).
		Order("movimientos.fecha_movimiento DESC").
		Find(&movimientos).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return movimientos, nil
}
