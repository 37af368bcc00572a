package repos

import (
	"context"
	"errors"
	"strings"

	"github.com/xelth-com/eckportgo/internal/apperr"
	"github.com/xelth-com/eckportgo/internal/models"
	"gorm.io/gorm"
)

// ProductoRepo provides access to product definitions.
type ProductoRepo interface {
	List(ctx context.Context) ([]models.Producto, error)
	GetByID(ctx context.Context, id uint) (*models.Producto, error)
	Create(ctx context.Context, p *models.Producto) (*models.Producto, error)
	Update(ctx context.Context, id uint, p *models.Producto) (*models.Producto, error)
	Delete(ctx context.Context, id uint) error
	BuscarPorNombre(ctx context.Context, nombre string) ([]models.Producto, error)
	PorTipo(ctx context.Context, tipo string) ([]models.Producto, error)
}

type productoRepo struct {
	db *gorm.DB
}

func NewProductoRepo(db *gorm.DB) ProductoRepo {
	return &productoRepo{db: db}
}

func (r *productoRepo) List(ctx context.Context) ([]models.Producto, error) {
	var productos []models.Producto
	if err := r.db.WithContext(ctx).Order("id_producto DESC").Find(&productos).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return productos, nil
}

func (r *productoRepo) GetByID(ctx context.Context, id uint) (*models.Producto, error) {
	var p models.Producto
	if err := r.db.WithContext(ctx).First(&p, "id_producto = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Producto no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return &p, nil
}

func (r *productoRepo) Create(ctx context.Context, p *models.Producto) (*models.Producto, error) {
	if strings.TrimSpace(p.Nombre) == "" {
		return nil, apperr.Validation("El nombre del producto es requerido")
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return r.GetByID(ctx, p.ID)
}

func (r *productoRepo) Update(ctx context.Context, id uint, p *models.Producto) (*models.Producto, error) {
	if strings.TrimSpace(p.Nombre) == "" {
		return nil, apperr.Validation("El nombre del producto es requerido")
	}
	res := r.db.WithContext(ctx).Model(&models.Producto{}).Where("id_producto = ?", id).
		Updates(map[string]interface{}{
			"nombre":         p.Nombre,
			"descripcion":    p.Descripcion,
			"tipo":           p.Tipo,
			"valor_estimado": p.ValorEstimado,
		})
	if res.Error != nil {
		return nil, apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Producto no encontrado")
	}
	return r.GetByID(ctx, id)
}

func (r *productoRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Producto{}, "id_producto = ?", id)
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Producto no encontrado")
	}
	return nil
}

func (r *productoRepo) BuscarPorNombre(ctx context.Context, nombre string) ([]models.Producto, error) {
	var productos []models.Producto
	if err := r.db.WithContext(ctx).
		Where("LOWER(nombre) LIKE ?", "%"+strings.ToLower(nombre)+"%").
		Order("nombre").
		Find(&productos).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return productos, nil
}

func (r *productoRepo) PorTipo(ctx context.Context, tipo string) ([]models.Producto, error) {
	var productos []models.Producto
	if err := r.db.WithContext(ctx).
		Where("LOWER(tipo) = ?", strings.ToLower(tipo)).
		Order("nombre").
		Find(&productos).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return productos, nil
}
