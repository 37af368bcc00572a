package repos

import (
	"context"
	"errors"

	"github.com/xelth-com/eckportgo/internal/apperr"
	"github.com/xelth-com/eckportgo/internal/models"
	"gorm.io/gorm"
)

// LoteRepo provides access to batches linking containers and products.
type LoteRepo interface {
	List(ctx context.Context) ([]models.Lote, error)
	GetByID(ctx context.Context, id uint) (*models.Lote, error)
	Create(ctx context.Context, l *models.Lote) (*models.Lote, error)
	Update(ctx context.Context, id uint, l *models.Lote) (*models.Lote, error)
	Delete(ctx context.Context, id uint) error
	PorContenedor(ctx context.Context, idContenedor uint) ([]models.Lote, error)
	PorProducto(ctx context.Context, idProducto uint) ([]models.Lote, error)
}

type loteRepo struct {
	db *gorm.DB
}

func NewLoteRepo(db *gorm.DB) LoteRepo {
	return &loteRepo{db: db}
}

func (r *loteRepo) consulta(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Lote{}).
		Select("lotes.*, c.codigo_contenedor AS codigo_contenedor, p.nombre AS producto_nombre").
		Joins("LEFT JOIN contenedores c ON lotes.id_contenedor = c.id_contenedor").
		Joins("LEFT JOIN productos p ON lotes.id_producto = p.id_producto")
}

func (r *loteRepo) List(ctx context.Context) ([]models.Lote, error) {
	var lotes []models.Lote
	if err := r.consulta(ctx).Order("lotes.id_lote DESC").Find(&lotes).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return lotes, nil
}

func (r *loteRepo) GetByID(ctx context.Context, id uint) (*models.Lote, error) {
	var l models.Lote
	if err := r.consulta(ctx).Where("lotes.id_lote = ?", id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Lote no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return &l, nil
}

func validarLote(l *models.Lote) error {
	if l.IDContenedor == 0 || l.IDProducto == 0 {
		return apperr.Validation("ID de contenedor e ID de producto son requeridos")
	}
	return nil
}

func (r *loteRepo) Create(ctx context.Context, l *models.Lote) (*models.Lote, error) {
	if err := validarLote(l); err != nil {
		return nil, err
	}
	if l.Cantidad <= 0 {
		l.Cantidad = 1
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(ctx, tx, EntidadContenedor, l.IDContenedor); err != nil {
			return err
		}
		if err := requireRef(ctx, tx, EntidadProducto, l.IDProducto); err != nil {
			return err
		}
		if err := tx.Create(l).Error; err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, l.ID)
}

func (r *loteRepo) Update(ctx context.Context, id uint, l *models.Lote) (*models.Lote, error) {
	if err := validarLote(l); err != nil {
		return nil, err
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(ctx, tx, EntidadContenedor, l.IDContenedor); err != nil {
			return err
		}
		if err := requireRef(ctx, tx, EntidadProducto, l.IDProducto); err != nil {
			return err
		}
		res := tx.Model(&models.Lote{}).Where("id_lote = ?", id).
			Updates(map[string]interface{}{
				"id_contenedor": l.IDContenedor,
				"id_producto":   l.IDProducto,
				"cantidad":      l.Cantidad,
			})
		if res.Error != nil {
			return apperr.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("Lote no encontrado")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *loteRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Lote{}, "id_lote = ?", id)
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Lote no encontrado")
	}
	return nil
}

func (r *loteRepo) PorContenedor(ctx context.Context, idContenedor uint) ([]models.Lote, error) {
	var lotes []models.Lote
	if err := r.consulta(ctx).
		Where("lotes.id_contenedor = ?", idContenedor).
		Order("lotes.id_lote DESC").
		Find(&lotes).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return lotes, nil
}

func (r *loteRepo) PorProducto(ctx context.Context, idProducto uint) ([]models.Lote, error) {
	var lotes []models.Lote
	if err := r.consulta(ctx).
		Where("lotes.id_producto = ?", idProducto).
		Order("lotes.id_lote DESC").
		Find(&lotes).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return lotes, nil
}
