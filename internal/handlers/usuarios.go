package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/eckportgo/internal/apperr"
	"github.com/xelth-com/eckportgo/internal/middleware"
	"github.com/xelth-com/eckportgo/internal/models"
	"github.com/xelth-com/eckportgo/internal/utils"
)

// usuarioRequest is the account payload. The credential never travels on the
// model itself so it gets its own request shape.
type usuarioRequest struct {
	Nombre     string `json:"nombre_usuario"`
	Contrasena string `json:"contrasena"`
	Rol        string `json:"rol"`
}

// login answers a uniform 401 for unknown user, inactive account and wrong
// password alike, so the response never reveals which one failed.
func (r *Router) login(w http.ResponseWriter, req *http.Request) {
	var creds usuarioRequest
	if err := decodeBody(req, &creds); err != nil {
		respondError(w, err)
		return
	}
	if creds.Nombre == "" || creds.Contrasena == "" {
		respondError(w, apperr.Validation("Nombre de usuario y contraseña son requeridos"))
		return
	}

	usuario, err := r.store.Usuarios.GetByNombre(req.Context(), creds.Nombre)
	if err != nil {
		respondError(w, err)
		return
	}
	if usuario == nil || usuario.Estado != models.UsuarioActivo ||
		!utils.CheckPasswordHash(creds.Contrasena, usuario.Contrasena) {
		respondError(w, apperr.Auth("Credenciales inválidas"))
		return
	}

	token, err := utils.GenerateToken(usuario, r.cfg.JWTSecret)
	if err != nil {
		respondError(w, apperr.Internal(err))
		return
	}
	respondData(w, http.StatusOK, map[string]interface{}{
		"token":   token,
		"usuario": usuario,
	}, "Inicio de sesión exitoso")
}

func (r *Router) listUsuarios(w http.ResponseWriter, req *http.Request) {
	usuarios, err := r.store.Usuarios.List(req.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, usuarios, "")
}

func (r *Router) getUsuario(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	usuario, err := r.store.Usuarios.GetByID(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, usuario, "")
}

func (r *Router) buscarUsuarios(w http.ResponseWriter, req *http.Request) {
	usuarios, err := r.store.Usuarios.BuscarPorNombre(req.Context(), mux.Vars(req)["nombre"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, usuarios, "")
}

func (r *Router) usuariosPorRol(w http.ResponseWriter, req *http.Request) {
	usuarios, err := r.store.Usuarios.PorRol(req.Context(), mux.Vars(req)["rol"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, usuarios, "")
}

func (r *Router) createUsuario(w http.ResponseWriter, req *http.Request) {
	var body usuarioRequest
	if err := decodeBody(req, &body); err != nil {
		respondError(w, err)
		return
	}
	if body.Contrasena == "" {
		respondError(w, apperr.Validation("Nombre de usuario y contraseña son requeridos"))
		return
	}
	hash, err := utils.HashPassword(body.Contrasena)
	if err != nil {
		respondError(w, apperr.Internal(err))
		return
	}

	actorID := utils.ActorID(middleware.Claims(req))
	creado, err := r.store.Usuarios.Create(req.Context(), &models.Usuario{
		Nombre:     body.Nombre,
		Contrasena: hash,
		Rol:        body.Rol,
	}, actorID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, creado, "Usuario creado exitosamente")
}

func (r *Router) updateUsuario(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	var body usuarioRequest
	if err := decodeBody(req, &body); err != nil {
		respondError(w, err)
		return
	}

	cambio := models.Usuario{Nombre: body.Nombre, Rol: body.Rol}
	if body.Contrasena != "" {
		hash, err := utils.HashPassword(body.Contrasena)
		if err != nil {
			respondError(w, apperr.Internal(err))
			return
		}
		cambio.Contrasena = hash
	}

	actorID := utils.ActorID(middleware.Claims(req))
	actualizado, err := r.store.Usuarios.Update(req.Context(), id, &cambio, actorID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, actualizado, "Usuario actualizado exitosamente")
}

// toggleUsuario deactivates an active account or reactivates an inactive one
func (r *Router) toggleUsuario(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	actorID := utils.ActorID(middleware.Claims(req))
	usuario, err := r.store.Usuarios.ToggleBaja(req.Context(), id, actorID)
	if err != nil {
		respondError(w, err)
		return
	}
	mensaje := "Usuario dado de baja exitosamente"
	if usuario.Estado == models.UsuarioActivo {
		mensaje = "Usuario reactivado exitosamente"
	}
	respondData(w, http.StatusOK, usuario, mensaje)
}

// cambiarContrasena verifies the current credential before accepting the new
// one, so a stolen session alone cannot rotate a password unnoticed.
func (r *Router) cambiarContrasena(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		respondError(w, err)
		return
	}
	var body struct {
		Antigua string `json:"contrasena_antigua"`
		Nueva   string `json:"contrasena_nueva"`
	}
	if err := decodeBody(req, &body); err != nil {
		respondError(w, err)
		return
	}
	if body.Antigua == "" || body.Nueva == "" {
		respondError(w, apperr.Validation("Contraseña antigua y nueva son requeridas"))
		return
	}

	usuario, err := r.store.Usuarios.GetByID(req.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !utils.CheckPasswordHash(body.Antigua, usuario.Contrasena) {
		respondError(w, apperr.Auth("La contraseña antigua es incorrecta"))
		return
	}

	hash, err := utils.HashPassword(body.Nueva)
	if err != nil {
		respondError(w, apperr.Internal(err))
		return
	}
	actorID := utils.ActorID(middleware.Claims(req))
	if err := r.store.Usuarios.SetContrasena(req.Context(), id, hash, actorID); err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, nil, "Contraseña actualizada exitosamente")
}
