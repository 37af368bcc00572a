package repos

import (
	"context"
	"errors"
	"strings"

	"github.com/xelth-com/eckportgo/internal/apperr"
	"github.com/xelth-com/eckportgo/internal/models"
	"gorm.io/gorm"
)

// ClienteRepo provides access to client companies.
type ClienteRepo interface {
	List(ctx context.Context) ([]models.Cliente, error)
	GetByID(ctx context.Context, id uint) (*models.Cliente, error)
	Create(ctx context.Context, c *models.Cliente) (*models.Cliente, error)
	Update(ctx context.Context, id uint, c *models.Cliente) (*models.Cliente, error)
	Delete(ctx context.Context, id uint) error
	BuscarPorNombre(ctx context.Context, nombre string) ([]models.Cliente, error)
	Contenedores(ctx context.Context, id uint) ([]models.Contenedor, error)
}

type clienteRepo struct {
	db *gorm.DB
}

// NewClienteRepo builds a stateless repository over the injected pool.
func NewClienteRepo(db *gorm.DB) ClienteRepo {
	return &clienteRepo{db: db}
}

func (r *clienteRepo) List(ctx context.Context) ([]models.Cliente, error) {
	var clientes []models.Cliente
	if err := r.db.WithContext(ctx).Order("id_cliente DESC").Find(&clientes).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return clientes, nil
}

func (r *clienteRepo) GetByID(ctx context.Context, id uint) (*models.Cliente, error) {
	var c models.Cliente
	if err := r.db.WithContext(ctx).First(&c, "id_cliente = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Cliente no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return &c, nil
}

func (r *clienteRepo) Create(ctx context.Context, c *models.Cliente) (*models.Cliente, error) {
	if strings.TrimSpace(c.NombreEmpresa) == "" {
		return nil, apperr.Validation("El nombre de empresa es requerido")
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	// Re-read by generated id so the response reflects server defaults
	return r.GetByID(ctx, c.ID)
}

func (r *clienteRepo) Update(ctx context.Context, id uint, c *models.Cliente) (*models.Cliente, error) {
	if strings.TrimSpace(c.NombreEmpresa) == "" {
		return nil, apperr.Validation("El nombre de empresa es requerido")
	}
	res := r.db.WithContext(ctx).Model(&models.Cliente{}).Where("id_cliente = ?", id).
		Updates(map[string]interface{}{
			"nombre_empresa": c.NombreEmpresa,
			"representante":  c.Representante,
			"contacto":       c.Contacto,
		})
	if res.Error != nil {
		return nil, apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Cliente no encontrado")
	}
	return r.GetByID(ctx, id)
}

func (r *clienteRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Cliente{}, "id_cliente = ?", id)
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Cliente no encontrado")
	}
	return nil
}

func (r *clienteRepo) BuscarPorNombre(ctx context.Context, nombre string) ([]models.Cliente, error) {
	var clientes []models.Cliente
	if err := r.db.WithContext(ctx).
		Where("LOWER(nombre_empresa) LIKE ?", "%"+strings.ToLower(nombre)+"%").
		Order("nombre_empresa").
		Find(&clientes).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return clientes, nil
}

func (r *clienteRepo) Contenedores(ctx context.Context, id uint) ([]models.Contenedor, error) {
	if err := requireRef(ctx, r.db, EntidadCliente, id); err != nil {
		return nil, err
	}
	var contenedores []models.Contenedor
	if err := r.db.WithContext(ctx).Model(&models.Contenedor{}).
		Select("contenedores.*, e.nombre AS embarcacion_nombre").
		Joins("LEFT JOIN embarcaciones e ON contenedores.id_embarcacion = e.id_embarcacion").
		Where("contenedores.id_cliente = ?", id).
		Order("contenedores.id_contenedor DESC").
		Find(&contenedores).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return contenedores, nil
}
