package repos

import (
	"context"
	"errors"
	"strings"

	"github.com/xelth-com/eckportgo/internal/apperr"
	"github.com/xelth-com/eckportgo/internal/models"
	"gorm.io/gorm"
)

// EmbarcacionRepo provides access to vessels.
type EmbarcacionRepo interface {
	List(ctx context.Context) ([]models.Embarcacion, error)
	GetByID(ctx context.Context, id uint) (*models.Embarcacion, error)
	Create(ctx context.Context, e *models.Embarcacion) (*models.Embarcacion, error)
	Update(ctx context.Context, id uint, e *models.Embarcacion) (*models.Embarcacion, error)
	Delete(ctx context.Context, id uint) error
	BuscarPorNombre(ctx context.Context, nombre string) ([]models.Embarcacion, error)
	EnPuerto(ctx context.Context) ([]models.Embarcacion, error)
	Contenedores(ctx context.Context, id uint) ([]models.Contenedor, error)
}

type embarcacionRepo struct {
	db *gorm.DB
}

func NewEmbarcacionRepo(db *gorm.DB) EmbarcacionRepo {
	return &embarcacionRepo{db: db}
}

// validarFechas enforces: departure date, if set, must not precede arrival.
func validarFechas(e *models.Embarcacion) error {
	if strings.TrimSpace(e.Nombre) == "" {
		return apperr.Validation("El nombre de la embarcación es requerido")
	}
	if e.FechaSalida != nil && e.FechaArribo != nil && e.FechaSalida.Before(*e.FechaArribo) {
		return apperr.Validation("La fecha de salida no puede ser anterior a la fecha de arribo")
	}
	return nil
}

func (r *embarcacionRepo) List(ctx context.Context) ([]models.Embarcacion, error) {
	var embarcaciones []models.Embarcacion
	if err := r.db.WithContext(ctx).Order("id_embarcacion DESC").Find(&embarcaciones).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return embarcaciones, nil
}

func (r *embarcacionRepo) GetByID(ctx context.Context, id uint) (*models.Embarcacion, error) {
	var e models.Embarcacion
	if err := r.db.WithContext(ctx).First(&e, "id_embarcacion = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Embarcación no encontrada")
		}
		return nil, apperr.Internal(err)
	}
	return &e, nil
}

func (r *embarcacionRepo) Create(ctx context.Context, e *models.Embarcacion) (*models.Embarcacion, error) {
	if err := validarFechas(e); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return r.GetByID(ctx, e.ID)
}

func (r *embarcacionRepo) Update(ctx context.Context, id uint, e *models.Embarcacion) (*models.Embarcacion, error) {
	if err := validarFechas(e); err != nil {
		return nil, err
	}
	res := r.db.WithContext(ctx).Model(&models.Embarcacion{}).Where("id_embarcacion = ?", id).
		Updates(map[string]interface{}{
			"nombre":       e.Nombre,
			"bandera":      e.Bandera,
			"fecha_arribo": e.FechaArribo,
			"fecha_salida": e.FechaSalida,
		})
	if res.Error != nil {
		return nil, apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Embarcación no encontrada")
	}
	return r.GetByID(ctx, id)
}

func (r *embarcacionRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Embarcacion{}, "id_embarcacion = ?", id)
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Embarcación no encontrada")
	}
	return nil
}

func (r *embarcacionRepo) BuscarPorNombre(ctx context.Context, nombre string) ([]models.Embarcacion, error) {
	var embarcaciones []models.Embarcacion
	if err := r.db.WithContext(ctx).
		Where("LOWER(nombre) LIKE ?", "%"+strings.ToLower(nombre)+"%").
		Order("nombre").
		Find(&embarcaciones).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return embarcaciones, nil
}

// EnPuerto lists vessels that have arrived and not yet departed.
func (r *embarcacionRepo) EnPuerto(ctx context.Context) ([]models.Embarcacion, error) {
	var embarcaciones []models.Embarcacion
	if err := r.db.WithContext(ctx).
		Where("fecha_salida IS NULL").
		Order("fecha_arribo DESC").
		Find(&embarcaciones).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return embarcaciones, nil
}

func (r *embarcacionRepo) Contenedores(ctx context.Context, id uint) ([]models.Contenedor, error) {
	if err := requireRef(ctx, r.db, EntidadEmbarcacion, id); err != nil {
		return nil, err
	}
	var contenedores []models.Contenedor
	if err := r.db.WithContext(ctx).Model(&models.Contenedor{}).
		Select("contenedores.*, cl.nombre_empresa AS cliente_nombre").
		Joins("LEFT JOIN clientes cl ON contenedores.id_cliente = cl.id_cliente").
		Where("contenedores.id_embarcacion = ?", id).
		Order("contenedores.id_contenedor DESC").
		Find(&contenedores).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return contenedores, nil
}
