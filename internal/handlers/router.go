package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xelth-com/eckportgo/internal/buildinfo"
	"github.com/xelth-com/eckportgo/internal/config"
	"github.com/xelth-com/eckportgo/internal/database"
	"github.com/xelth-com/eckportgo/internal/middleware"
	"github.com/xelth-com/eckportgo/internal/reports"
	"github.com/xelth-com/eckportgo/internal/repos"
	ws "github.com/xelth-com/eckportgo/internal/websocket"
)

// Router wraps the mux router with the application dependencies
type Router struct {
	*mux.Router
	store   *repos.Store
	invoker *reports.Invoker
	hub     *ws.Hub
	cfg     *config.Config
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, store *repos.Store, invoker *reports.Invoker, hub *ws.Hub, cfg *config.Config) *Router {
	r := &Router{
		Router:  mux.NewRouter(),
		store:   store,
		invoker: invoker,
		hub:     hub,
		cfg:     cfg,
	}

	r.Use(middleware.RequestLog)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Clientes
	clientes := api.PathPrefix("/clientes").Subrouter()
	clientes.HandleFunc("", r.listClientes).Methods("GET")
	clientes.HandleFunc("/buscar/{nombre}", r.buscarClientes).Methods("GET")
	clientes.HandleFunc("/{id}/contenedores", r.contenedoresDeCliente).Methods("GET")
	clientes.HandleFunc("/{id}", r.getCliente).Methods("GET")
	clientes.HandleFunc("", r.createCliente).Methods("POST")
	clientes.HandleFunc("/{id}", r.updateCliente).Methods("PUT")
	clientes.HandleFunc("/{id}", r.deleteCliente).Methods("DELETE")

	// Embarcaciones
	embarcaciones := api.PathPrefix("/embarcaciones").Subrouter()
	embarcaciones.HandleFunc("", r.listEmbarcaciones).Methods("GET")
	embarcaciones.HandleFunc("/en-puerto", r.embarcacionesEnPuerto).Methods("GET")
	embarcaciones.HandleFunc("/buscar/{nombre}", r.buscarEmbarcaciones).Methods("GET")
	embarcaciones.HandleFunc("/{id}/contenedores", r.contenedoresDeEmbarcacion).Methods("GET")
	embarcaciones.HandleFunc("/{id}", r.getEmbarcacion).Methods("GET")
	embarcaciones.HandleFunc("", r.createEmbarcacion).Methods("POST")
	embarcaciones.HandleFunc("/{id}", r.updateEmbarcacion).Methods("PUT")
	embarcaciones.HandleFunc("/{id}", r.deleteEmbarcacion).Methods("DELETE")

	// Contenedores
	contenedores := api.PathPrefix("/contenedores").Subrouter()
	contenedores.HandleFunc("", r.listContenedores).Methods("GET")
	contenedores.HandleFunc("/buscar/{codigo}", r.buscarContenedores).Methods("GET")
	contenedores.HandleFunc("/estado/{estado}", r.contenedoresPorEstado).Methods("GET")
	contenedores.HandleFunc("/{id}/etiqueta", r.etiquetaContenedor).Methods("GET")
	contenedores.HandleFunc("/{id}", r.getContenedor).Methods("GET")
	contenedores.HandleFunc("", r.createContenedor).Methods("POST")
	contenedores.HandleFunc("/{id}", r.updateContenedor).Methods("PUT")
	contenedores.HandleFunc("/{id}", r.deleteContenedor).Methods("DELETE")

	// Productos
	productos := api.PathPrefix("/productos").Subrouter()
	productos.HandleFunc("", r.listProductos).Methods("GET")
	productos.HandleFunc("/buscar/{nombre}", r.buscarProductos).Methods("GET")
	productos.HandleFunc("/tipo/{tipo}", r.productosPorTipo).Methods("GET")
	productos.HandleFunc("/{id}", r.getProducto).Methods("GET")
	productos.HandleFunc("", r.createProducto).Methods("POST")
	productos.HandleFunc("/{id}", r.updateProducto).Methods("PUT")
	productos.HandleFunc("/{id}", r.deleteProducto).Methods("DELETE")

	// Lotes
	lotes := api.PathPrefix("/lotes").Subrouter()
	lotes.HandleFunc("", r.listLotes).Methods("GET")
	lotes.HandleFunc("/contenedor/{id}", r.lotesPorContenedor).Methods("GET")
	lotes.HandleFunc("/producto/{id}", r.lotesPorProducto).Methods("GET")
	lotes.HandleFunc("/{id}", r.getLote).Methods("GET")
	lotes.HandleFunc("", r.createLote).Methods("POST")
	lotes.HandleFunc("/{id}", r.updateLote).Methods("PUT")
	lotes.HandleFunc("/{id}", r.deleteLote).Methods("DELETE")

	// Movimientos
	movimientos := api.PathPrefix("/movimientos").Subrouter()
	movimientos.HandleFunc("", r.listMovimientos).Methods("GET")
	movimientos.HandleFunc("/recientes", r.movimientosRecientes).Methods("GET")
	movimientos.HandleFunc("/contenedor/{id}", r.movimientosPorContenedor).Methods("GET")
	movimientos.HandleFunc("/tipo/{tipo}", r.movimientosPorTipo).Methods("GET")
	movimientos.HandleFunc("/{id}", r.getMovimiento).Methods("GET")
	movimientos.HandleFunc("", r.createMovimiento).Methods("POST")
	movimientos.HandleFunc("/{id}", r.updateMovimiento).Methods("PUT")
	movimientos.HandleFunc("/{id}", r.deleteMovimiento).Methods("DELETE")

	// Historial de estados
	historial := api.PathPrefix("/historial").Subrouter()
	historial.HandleFunc("", r.listHistorial).Methods("GET")
	historial.HandleFunc("/fechas", r.historialPorFechas).Methods("GET")
	historial.HandleFunc("/contenedor/{id}", r.historialPorContenedor).Methods("GET")
	historial.HandleFunc("/usuario/{id}", r.historialPorUsuario).Methods("GET")
	historial.HandleFunc("/{id}", r.getHistorial).Methods("GET")
	historial.Handle("/{id}", middleware.Auth(cfg.JWTSecret)(http.HandlerFunc(r.corregirHistorial))).Methods("PUT")

	// Alertas
	alertas := api.PathPrefix("/alertas").Subrouter()
	alertas.HandleFunc("", r.listAlertas).Methods("GET")
	alertas.HandleFunc("/activas", r.alertasActivas).Methods("GET")
	alertas.HandleFunc("/recientes", r.alertasRecientes).Methods("GET")
	alertas.HandleFunc("/fechas", r.alertasPorFechas).Methods("GET")
	alertas.HandleFunc("/estado/{estado}", r.alertasPorEstado).Methods("GET")
	alertas.HandleFunc("/contenedor/{id}", r.alertasPorContenedor).Methods("GET")
	alertas.HandleFunc("/{id}", r.getAlerta).Methods("GET")
	alertas.HandleFunc("/{id}", r.updateAlerta).Methods("PUT")

	// Usuarios: login stays open, account administration requires a token
	api.HandleFunc("/usuarios/login", r.login).Methods("POST")

	usuarios := api.PathPrefix("/usuarios").Subrouter()
	usuarios.Use(middleware.Auth(cfg.JWTSecret))
	usuarios.HandleFunc("", r.listUsuarios).Methods("GET")
	usuarios.HandleFunc("/buscar/{nombre}", r.buscarUsuarios).Methods("GET")
	usuarios.HandleFunc("/rol/{rol}", r.usuariosPorRol).Methods("GET")
	usuarios.HandleFunc("/{id}/cambiar-contrasena", r.cambiarContrasena).Methods("PUT")
	usuarios.HandleFunc("/{id}", r.getUsuario).Methods("GET")
	usuarios.HandleFunc("", r.createUsuario).Methods("POST")
	usuarios.HandleFunc("/{id}", r.updateUsuario).Methods("PUT")
	usuarios.HandleFunc("/{id}", r.toggleUsuario).Methods("DELETE")

	// Log de acciones administrativas, tambien protegido
	logs := api.PathPrefix("/log-usuarios").Subrouter()
	logs.Use(middleware.Auth(cfg.JWTSecret))
	logs.HandleFunc("", r.listLogs).Methods("GET")
	logs.HandleFunc("/recientes", r.logsRecientes).Methods("GET")
	logs.HandleFunc("/fechas", r.logsPorFechas).Methods("GET")
	logs.HandleFunc("/accion/{accion}", r.logsPorAccion).Methods("GET")
	logs.HandleFunc("/usuario-afectado/{id}", r.logsPorUsuarioAfectado).Methods("GET")
	logs.HandleFunc("/usuario-accion/{id}", r.logsPorUsuarioAccion).Methods("GET")
	logs.HandleFunc("/{id}", r.getLog).Methods("GET")
	logs.HandleFunc("/{id}", r.corregirLog).Methods("PUT")

	// Reportes
	reportes := api.PathPrefix("/reportes").Subrouter()
	reportes.HandleFunc("/historial-contenedor/{codigo}", r.ejecutarReporte("historial-contenedor")).Methods("GET")
	reportes.HandleFunc("/{nombre}", r.reporteDinamico).Methods("GET")

	// Live alert feed
	r.HandleFunc("/ws/alertas", func(w http.ResponseWriter, req *http.Request) {
		ws.ServeWs(hub, w, req)
	})

	return r
}

// healthCheck reports liveness plus build identity for deploy verification
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondData(w, http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"inicio":       buildinfo.StartTime,
		"compilado":    buildinfo.BuildTime,
		"commit":       buildinfo.CommitHash,
		"suscriptores": r.hub.Count(),
	}, "")
}
