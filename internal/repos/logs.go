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

// LogUsuarioRepo reads the append-only administrative action log. Entries are
// written by UsuarioRepo inside its transactions; the only mutation exposed
// here is the administrative correction of an existing entry.
type LogUsuarioRepo interface {
	List(ctx context.Context) ([]models.LogUsuario, error)
	GetByID(ctx context.Context, id uint) (*models.LogUsuario, error)
	Corregir(ctx context.Context, id uint, l *models.LogUsuario) (*models.LogUsuario, error)
	PorUsuarioAfectado(ctx context.Context, idUsuario uint) ([]models.LogUsuario, error)
	PorUsuarioAccion(ctx context.Context, idUsuario uint) ([]models.LogUsuario, error)
	PorAccion(ctx context.Context, accion string) ([]models.LogUsuario, error)
	PorFechas(ctx context.Context, desde, hasta time.Time) ([]models.LogUsuario, error)
	Recientes(ctx context.Context, dias int) ([]models.LogUsuario, error)
}

type logUsuarioRepo struct {
	db *gorm.DB
}

func NewLogUsuarioRepo(db *gorm.DB) LogUsuarioRepo {
	return &logUsuarioRepo{db: db}
}

func (r *logUsuarioRepo) consulta(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.LogUsuario{}).
		Select("log_usuarios.*, ua.nombre_usuario AS nombre_usuario_afectado, uc.nombre_usuario AS nombre_usuario_accion").
		Joins("LEFT JOIN usuarios ua ON log_usuarios.usuario_afectado = ua.id_usuario").
		Joins("LEFT JOIN usuarios uc ON log_usuarios.usuario_accion = uc.id_usuario")
}

func (r *logUsuarioRepo) List(ctx context.Context) ([]models.LogUsuario, error) {
	var logs []models.LogUsuario
	if err := r.consulta(ctx).Order("log_usuarios.fecha_accion DESC").Find(&logs).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return logs, nil
}

func (r *logUsuarioRepo) GetByID(ctx context.Context, id uint) (*models.LogUsuario, error) {
	var l models.LogUsuario
	if err := r.consulta(ctx).Where("log_usuarios.id_log = ?", id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Registro de log no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return &l, nil
}

// Corregir adjusts an existing entry. Both user references must resolve;
// fecha_accion stays server-assigned.
func (r *logUsuarioRepo) Corregir(ctx context.Context, id uint, l *models.LogUsuario) (*models.LogUsuario, error) {
	if l.UsuarioAfectado == 0 || l.UsuarioAccion == 0 || strings.TrimSpace(l.Accion) == "" {
		return nil, apperr.Validation("Usuario afectado, usuario de acción y acción son requeridos")
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(ctx, tx, EntidadUsuario, l.UsuarioAfectado); err != nil {
			return err
		}
		if err := requireRef(ctx, tx, EntidadUsuario, l.UsuarioAccion); err != nil {
			return err
		}
		res := tx.Model(&models.LogUsuario{}).Where("id_log = ?", id).
			Updates(map[string]interface{}{
				"usuario_afectado": l.UsuarioAfectado,
				"usuario_accion":   l.UsuarioAccion,
				"accion":           l.Accion,
			})
		if res.Error != nil {
			return apperr.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("Registro de log no encontrado")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *logUsuarioRepo) PorUsuarioAfectado(ctx context.Context, idUsuario uint) ([]models.LogUsuario, error) {
	var logs []models.LogUsuario
	if err := r.consulta(ctx).
		Where("log_usuarios.usuario_afectado = ?", idUsuario).
		Order("log_usuarios.fecha_accion DESC").
		Find(&logs).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return logs, nil
}

func (r *logUsuarioRepo) PorUsuarioAccion(ctx context.Context, idUsuario uint) ([]models.LogUsuario, error) {
	var logs []models.LogUsuario
	if err := r.consulta(ctx).
		Where("log_usuarios.usuario_accion = ?", idUsuario).
		Order("log_usuarios.fecha_accion DESC").
		Find(&logs).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return logs, nil
}

func (r *logUsuarioRepo) PorAccion(ctx context.Context, accion string) ([]models.LogUsuario, error) {
	var logs []models.LogUsuario
	if err := r.consulta(ctx).
		Where("LOWER(log_usuarios.accion) = ?", strings.ToLower(accion)).
		Order("log_usuarios.fecha_accion DESC").
		Find(&logs).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return logs, nil
}

func (r *logUsuarioRepo) PorFechas(ctx context.Context, desde, hasta time.Time) ([]models.LogUsuario, error) {
	var logs []models.LogUsuario
	if err := r.consulta(ctx).
		Where("log_usuarios.fecha_accion >= ? AND log_usuarios.fecha_accion < ?", desde, hasta).
		Order("log_usuarios.fecha_accion DESC").
		Find(&logs).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return logs, nil
}

func (r *logUsuarioRepo) Recientes(ctx context.Context, dias int) ([]models.LogUsuario, error) {
	limite := time.Now().UTC().AddDate(0, 0, -dias)
	var logs []models.LogUsuario
	if err := r.consulta(ctx).
		Where("log_usuarios.fecha_accion >= ?", limite).
		Order("log_usuarios.fecha_accion DESC").
		Find(&logs).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return logs, nil
}
