package repos

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/xelth-com/eckportgo/internal/apperr"
	"github.com/xelth-com/eckportgo/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Action labels recorded in log_usuarios.
const (
	AccionCrearUsuario      = "CREAR_USUARIO"
	AccionActualizarUsuario = "ACTUALIZAR_USUARIO"
	AccionBajaUsuario       = "BAJA_USUARIO"
	AccionReactivarUsuario  = "REACTIVAR_USUARIO"
	AccionCambiarContrasena = "CAMBIAR_CONTRASENA"
)

// UsuarioRepo provides access to staff accounts. Administrative mutations
// append their log_usuarios row in the same transaction; actorID identifies
// the authenticated user performing the action (0 = unauthenticated bootstrap,
// which skips the log to keep both user refs resolvable).
type UsuarioRepo interface {
	List(ctx context.Context) ([]models.Usuario, error)
	GetByID(ctx context.Context, id uint) (*models.Usuario, error)
	GetByNombre(ctx context.Context, nombre string) (*models.Usuario, error)
	Create(ctx context.Context, u *models.Usuario, actorID uint) (*models.Usuario, error)
	Update(ctx context.Context, id uint, u *models.Usuario, actorID uint) (*models.Usuario, error)
	ToggleBaja(ctx context.Context, id uint, actorID uint) (*models.Usuario, error)
	SetContrasena(ctx context.Context, id uint, hash string, actorID uint) error
	BuscarPorNombre(ctx context.Context, nombre string) ([]models.Usuario, error)
	PorRol(ctx context.Context, rol string) ([]models.Usuario, error)
}

type usuarioRepo struct {
	db *gorm.DB
}

func NewUsuarioRepo(db *gorm.DB) UsuarioRepo {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) List(ctx context.Context) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := r.db.WithContext(ctx).Order("id_usuario DESC").Find(&usuarios).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return usuarios, nil
}

func (r *usuarioRepo) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.db.WithContext(ctx).First(&u, "id_usuario = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Usuario no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return &u, nil
}

// GetByNombre returns the account including the credential hash; used by the
// login path only. Missing user is reported as nil, nil so login can answer
// a uniform 401.
func (r *usuarioRepo) GetByNombre(ctx context.Context, nombre string) (*models.Usuario, error) {
	var u models.Usuario
	err := r.db.WithContext(ctx).First(&u, "nombre_usuario = ?", nombre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &u, nil
}

func registrarAccion(tx *gorm.DB, afectado, actor uint, accion string, detalles interface{}) error {
	if actor == 0 {
		return nil
	}
	entry := models.LogUsuario{
		UsuarioAfectado: afectado,
		UsuarioAccion:   actor,
		Accion:          accion,
		FechaAccion:     time.Now().UTC(),
	}
	if detalles != nil {
		raw, err := json.Marshal(detalles)
		if err == nil {
			entry.Detalles = datatypes.JSON(raw)
		}
	}
	if err := tx.Create(&entry).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (r *usuarioRepo) Create(ctx context.Context, u *models.Usuario, actorID uint) (*models.Usuario, error) {
	if strings.TrimSpace(u.Nombre) == "" || u.Contrasena == "" {
		return nil, apperr.Validation("Nombre de usuario y contraseña son requeridos")
	}
	if u.Rol == "" {
		u.Rol = "operador"
	}
	u.Estado = models.UsuarioActivo

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Usuario{}).Where("nombre_usuario = ?", u.Nombre).Count(&count).Error; err != nil {
			return apperr.Internal(err)
		}
		if count > 0 {
			return apperr.Conflict("El nombre de usuario ya existe")
		}
		if err := tx.Create(u).Error; err != nil {
			return apperr.Internal(err)
		}
		if actorID != 0 {
			if err := requireRef(ctx, tx, EntidadUsuario, actorID); err != nil {
				return err
			}
		}
		return registrarAccion(tx, u.ID, actorID, AccionCrearUsuario,
			map[string]string{"nombre_usuario": u.Nombre, "rol": u.Rol})
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, u.ID)
}

func (r *usuarioRepo) Update(ctx context.Context, id uint, u *models.Usuario, actorID uint) (*models.Usuario, error) {
	if strings.TrimSpace(u.Nombre) == "" {
		return nil, apperr.Validation("El nombre de usuario es requerido")
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cambios := map[string]interface{}{
			"nombre_usuario": u.Nombre,
			"rol":            u.Rol,
		}
		// Credential only changes when a new one is supplied
		if u.Contrasena != "" {
			cambios["contrasena"] = u.Contrasena
		}
		res := tx.Model(&models.Usuario{}).Where("id_usuario = ?", id).Updates(cambios)
		if res.Error != nil {
			return apperr.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("Usuario no encontrado")
		}
		return registrarAccion(tx, id, actorID, AccionActualizarUsuario,
			map[string]string{"nombre_usuario": u.Nombre, "rol": u.Rol})
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// ToggleBaja implements delete-as-toggle: an active user becomes inactive with
// fecha_baja stamped; calling it again reactivates and clears the stamp.
func (r *usuarioRepo) ToggleBaja(ctx context.Context, id uint, actorID uint) (*models.Usuario, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.Usuario
		if err := tx.First(&u, "id_usuario = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Usuario no encontrado")
			}
			return apperr.Internal(err)
		}

		var cambios map[string]interface{}
		accion := AccionBajaUsuario
		if u.Estado == models.UsuarioActivo {
			ahora := time.Now().UTC()
			cambios = map[string]interface{}{
				"estado":     models.UsuarioInactivo,
				"fecha_baja": &ahora,
			}
		} else {
			accion = AccionReactivarUsuario
			cambios = map[string]interface{}{
				"estado":     models.UsuarioActivo,
				"fecha_baja": nil,
			}
		}
		if err := tx.Model(&models.Usuario{}).Where("id_usuario = ?", id).Updates(cambios).Error; err != nil {
			return apperr.Internal(err)
		}
		return registrarAccion(tx, id, actorID, accion, nil)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *usuarioRepo) SetContrasena(ctx context.Context, id uint, hash string, actorID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Usuario{}).Where("id_usuario = ?", id).Update("contrasena", hash)
		if res.Error != nil {
			return apperr.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("Usuario no encontrado")
		}
		return registrarAccion(tx, id, actorID, AccionCambiarContrasena, nil)
	})
}

func (r *usuarioRepo) BuscarPorNombre(ctx context.Context, nombre string) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := r.db.WithContext(ctx).
		Where("LOWER(nombre_usuario) LIKE ?", "%"+strings.ToLower(nombre)+"%").
		Order("nombre_usuario").
		Find(&usuarios).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return usuarios, nil
}

func (r *usuarioRepo) PorRol(ctx context.Context, rol string) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := r.db.WithContext(ctx).
		Where("LOWER(rol) = ?", strings.ToLower(rol)).
		Order("nombre_usuario").
		Find(&usuarios).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return usuarios, nil
}
