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

// AlertaNotifier receives alert status changes (websocket hub in production).
type AlertaNotifier interface {
	AlertaActualizada(a *models.Alerta)
}

// AlertaRepo provides read access to container alerts plus the status update.
type AlertaRepo interface {
	List(ctx context.Context) ([]models.Alerta, error)
	GetByID(ctx context.Context, id uint) (*models.Alerta, error)
	ActualizarEstado(ctx context.Context, id uint, estado string) (*models.Alerta, error)
	PorContenedor(ctx context.Context, idContenedor uint) ([]models.Alerta, error)
	PorEstado(ctx context.Context, estado string) ([]models.Alerta, error)
	Recientes(ctx context.Context, dias int) ([]models.Alerta, error)
	Activas(ctx context.Context) ([]models.Alerta, error)
	PorFechas(ctx context.Context, desde, hasta time.Time) ([]models.Alerta, error)
}

type alertaRepo struct {
	db       *gorm.DB
	notifier AlertaNotifier
}

// NewAlertaRepo builds the alert repository. notifier may be nil.
func NewAlertaRepo(db *gorm.DB, notifier AlertaNotifier) AlertaRepo {
	return &alertaRepo{db: db, notifier: notifier}
}

func (r *alertaRepo) consulta(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Alerta{}).
		Select("alertas_contenedores.*, c.codigo_contenedor AS codigo_contenedor, c.tipo AS tipo_contenedor, cl.nombre_empresa AS cliente_nombre, e.nombre AS embarcacion_nombre").
		Joins("LEFT JOIN contenedores c ON alertas_contenedores.id_contenedor = c.id_contenedor").
		Joins("LEFT JOIN clientes cl ON c.id_cliente = cl.id_cliente").
		Joins("LEFT JOIN embarcaciones e ON c.id_embarcacion = e.id_embarcacion")
}

func (r *alertaRepo) List(ctx context.Context) ([]models.Alerta, error) {
	var alertas []models.Alerta
	if err := r.consulta(ctx).Order("alertas_contenedores.fecha_alerta DESC").Find(&alertas).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return alertas, nil
}

func (r *alertaRepo) GetByID(ctx context.Context, id uint) (*models.Alerta, error) {
	var a models.Alerta
	if err := r.consulta(ctx).Where("alertas_contenedores.id_alerta = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Alerta no encontrada")
		}
		return nil, apperr.Internal(err)
	}
	return &a, nil
}

// ActualizarEstado changes the status label of an alert (e.g. to mark it
// resolved) and pushes the updated row to the notifier.
func (r *alertaRepo) ActualizarEstado(ctx context.Context, id uint, estado string) (*models.Alerta, error) {
	if strings.TrimSpace(estado) == "" {
		return nil, apperr.Validation("El estado es requerido")
	}
	res := r.db.WithContext(ctx).Model(&models.Alerta{}).Where("id_alerta = ?", id).
		Update("estado", estado)
	if res.Error != nil {
		return nil, apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Alerta no encontrada")
	}
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.notifier != nil {
		r.notifier.AlertaActualizada(a)
	}
	return a, nil
}

func (r *alertaRepo) PorContenedor(ctx context.Context, idContenedor uint) ([]models.Alerta, error) {
	var alertas []models.Alerta
	if err := r.consulta(ctx).
		Where("alertas_contenedores.id_contenedor = ?", idContenedor).
		Order("alertas_contenedores.fecha_alerta DESC").
		Find(&alertas).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return alertas, nil
}

func (r *alertaRepo) PorEstado(ctx context.Context, estado string) ([]models.Alerta, error) {
	var alertas []models.Alerta
	if err := r.consulta(ctx).
		Where("LOWER(alertas_contenedores.estado) = ?", strings.ToLower(estado)).
		Order("alertas_contenedores.fecha_alerta DESC").
		Find(&alertas).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return alertas, nil
}

func (r *alertaRepo) Recientes(ctx context.Context, dias int) ([]models.Alerta, error) {
	limite := time.Now().UTC().AddDate(0, 0, -dias)
	var alertas []models.Alerta
	if err := r.consulta(ctx).
		Where("alertas_contenedores.fecha_alerta >= ?", limite).
		Order("alertas_contenedores.fecha_alerta DESC").
		Find(&alertas).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return alertas, nil
}

// Activas lists alerts whose status is in the operational "active" subset.
func (r *alertaRepo) Activas(ctx context.Context) ([]models.Alerta, error) {
	var alertas []models.Alerta
	if err := r.consulta(ctx).
		Where("LOWER(alertas_contenedores.estado) IN ?", models.EstadosAlertaActiva).
		Order("alertas_contenedores.fecha_alerta DESC").
		Find(&alertas).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return alertas, nil
}

func (r *alertaRepo) PorFechas(ctx context.Context, desde, hasta time.Time) ([]models.Alerta, error) {
	var alertas []models.Alerta
	if err := r.consulta(ctx).
		Where("alertas_contenedores.fecha_alerta >= ? AND alertas_contenedores.fecha_alerta < ?", desde, hasta).
		Order("alertas_contenedores.fecha_alerta DESC").
		Find(&alertas).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return alertas, nil
}
