package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/xelth-com/eckportgo/internal/apperr"
	"github.com/xelth-com/eckportgo/internal/config"
	"github.com/xelth-com/eckportgo/internal/models"
	"github.com/xelth-com/eckportgo/internal/repos"
	"github.com/xelth-com/eckportgo/internal/utils"
	ws "github.com/xelth-com/eckportgo/internal/websocket"
)

// contenedoresFalso stubs the container repository for routing tests.
type contenedoresFalso struct {
	repos.ContenedorRepo
	createFn func(ctx context.Context, c *models.Contenedor) (*models.Contenedor, error)
	getFn    func(ctx context.Context, id uint) (*models.Contenedor, error)
}

func (f *contenedoresFalso) Create(ctx context.Context, c *models.Contenedor) (*models.Contenedor, error) {
	return f.createFn(ctx, c)
}

func (f *contenedoresFalso) GetByID(ctx context.Context, id uint) (*models.Contenedor, error) {
	return f.getFn(ctx, id)
}

// usuariosFalso stubs the account repository for the login tests.
type usuariosFalso struct {
	repos.UsuarioRepo
	porNombre map[string]*models.Usuario
}

func (f *usuariosFalso) GetByNombre(ctx context.Context, nombre string) (*models.Usuario, error) {
	return f.porNombre[nombre], nil
}

func testRouter(store *repos.Store) *Router {
	cfg := &config.Config{Port: "4000", JWTSecret: "test-secret", NodeEnv: "test"}
	return NewRouter(nil, store, nil, ws.NewHub(), cfg)
}

type respuesta struct {
	Ok      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Mensaje string          `json:"mensaje"`
	Message string          `json:"message"`
}

func doJSON(t *testing.T, router *Router, method, path, body string) (int, respuesta) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp respuesta
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
	}
	return rec.Code, resp
}

func TestCreateContenedorMissingClient(t *testing.T) {
	router := testRouter(&repos.Store{
		Contenedores: &contenedoresFalso{
			createFn: func(_ context.Context, _ *models.Contenedor) (*models.Contenedor, error) {
				return nil, apperr.NotFound("El cliente especificado no existe")
			},
		},
	})

	code, resp := doJSON(t, router, "POST", "/api/contenedores",
		`{"codigo_contenedor":"CONT-001","id_cliente":999}`)
	if code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
	if resp.Ok {
		t.Error("ok should be false on error")
	}
	if resp.Message != "El cliente especificado no existe" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestCreateContenedorSuccess(t *testing.T) {
	router := testRouter(&repos.Store{
		Contenedores: &contenedoresFalso{
			createFn: func(_ context.Context, c *models.Contenedor) (*models.Contenedor, error) {
				out := *c
				out.ID = 7
				out.Estado = models.EstadoDisponible
				out.ClienteNombre = "Naviera del Sur"
				return &out, nil
			},
		},
	})

	code, resp := doJSON(t, router, "POST", "/api/contenedores",
		`{"codigo_contenedor":"CONT-001","id_cliente":1}`)
	if code != http.StatusCreated {
		t.Errorf("status = %d, want 201", code)
	}
	if !resp.Ok {
		t.Error("ok should be true")
	}
	if resp.Mensaje != "Contenedor creado exitosamente" {
		t.Errorf("mensaje = %q", resp.Mensaje)
	}
	var creado models.Contenedor
	if err := json.Unmarshal(resp.Data, &creado); err != nil {
		t.Fatalf("data: %v", err)
	}
	if creado.Estado != models.EstadoDisponible {
		t.Errorf("estado = %q, want %q", creado.Estado, models.EstadoDisponible)
	}
}

func TestGetContenedorBadID(t *testing.T) {
	router := testRouter(&repos.Store{Contenedores: &contenedoresFalso{
		getFn: func(_ context.Context, _ uint) (*models.Contenedor, error) {
			t.Fatal("repository should not be reached with a non-numeric id")
			return nil, nil
		},
	}})

	code, resp := doJSON(t, router, "GET", "/api/contenedores/abc", "")
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
	if resp.Ok {
		t.Error("ok should be false")
	}
}

func TestReporteProximaSalidaRequiresDias(t *testing.T) {
	router := testRouter(&repos.Store{})

	code, resp := doJSON(t, router, "GET", "/api/reportes/contenedores-proxima-salida", "")
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
	want := `El parámetro "dias" es requerido y debe ser un número válido`
	if resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}
}

func TestReporteDesconocido(t *testing.T) {
	router := testRouter(&repos.Store{})

	code, resp := doJSON(t, router, "GET", "/api/reportes/no-existe", "")
	if code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
	if resp.Ok {
		t.Error("ok should be false")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correcta")
	if err != nil {
		t.Fatal(err)
	}
	router := testRouter(&repos.Store{Usuarios: &usuariosFalso{
		porNombre: map[string]*models.Usuario{
			"admin": {ID: 1, Nombre: "admin", Contrasena: hash, Rol: "admin", Estado: models.UsuarioActivo},
		},
	}})

	// Wrong password, unknown user and inactive account all answer the same.
	code, resp := doJSON(t, router, "POST", "/api/usuarios/login",
		`{"nombre_usuario":"admin","contrasena":"incorrecta"}`)
	if code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", code)
	}
	if resp.Message != "Credenciales inválidas" {
		t.Errorf("message = %q", resp.Message)
	}

	code, resp = doJSON(t, router, "POST", "/api/usuarios/login",
		`{"nombre_usuario":"fantasma","contrasena":"lo-que-sea"}`)
	if code != http.StatusUnauthorized || resp.Message != "Credenciales inválidas" {
		t.Errorf("unknown user: status = %d, message = %q", code, resp.Message)
	}
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	hash, err := utils.HashPassword("correcta")
	if err != nil {
		t.Fatal(err)
	}
	inactivo := time.Now().UTC()
	router := testRouter(&repos.Store{Usuarios: &usuariosFalso{
		porNombre: map[string]*models.Usuario{
			"admin": {ID: 1, Nombre: "admin", Contrasena: hash, Rol: "admin", Estado: models.UsuarioActivo},
			"baja":  {ID: 2, Nombre: "baja", Contrasena: hash, Estado: models.UsuarioInactivo, FechaBaja: &inactivo},
		},
	}})

	code, resp := doJSON(t, router, "POST", "/api/usuarios/login",
		`{"nombre_usuario":"admin","contrasena":"correcta"}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	var data struct {
		Token   string         `json:"token"`
		Usuario models.Usuario `json:"usuario"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("data: %v", err)
	}
	if data.Token == "" {
		t.Error("token should be issued")
	}
	claims, err := utils.ValidateToken(data.Token, "test-secret")
	if err != nil {
		t.Fatalf("issued token should validate: %v", err)
	}
	if utils.ActorID(claims) != 1 {
		t.Errorf("actor id = %d, want 1", utils.ActorID(claims))
	}

	// The credential hash never appears in the response body.
	if strings.Contains(string(resp.Data), hash) {
		t.Error("response leaks the credential hash")
	}

	// Deactivated accounts cannot log in.
	code, _ = doJSON(t, router, "POST", "/api/usuarios/login",
		`{"nombre_usuario":"baja","contrasena":"correcta"}`)
	if code != http.StatusUnauthorized {
		t.Errorf("inactive account: status = %d, want 401", code)
	}
}

func TestUsuariosRequireToken(t *testing.T) {
	router := testRouter(&repos.Store{})

	req := httptest.NewRequest("GET", "/api/usuarios", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest("GET", "/api/usuarios", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	router := testRouter(&repos.Store{})

	code, resp := doJSON(t, router, "GET", "/api/health", "")
	if code != http.StatusOK {
		t.Errorf("status = %d, want 200", code)
	}
	if !resp.Ok {
		t.Error("ok should be true")
	}
}
