package repos

import "gorm.io/gorm"

// Store bundles all entity repositories over one injected database handle.
type Store struct {
	Clientes      ClienteRepo
	Embarcaciones EmbarcacionRepo
	Contenedores  ContenedorRepo
	Productos     ProductoRepo
	Lotes         LoteRepo
	Movimientos   MovimientoRepo
	Historial     HistorialRepo
	Alertas       AlertaRepo
	Usuarios      UsuarioRepo
	Logs          LogUsuarioRepo
}

// NewStore wires the repositories. notifier may be nil when no live alert
// feed is attached.
func NewStore(db *gorm.DB, notifier AlertaNotifier) *Store {
	return &Store{
		Clientes:      NewClienteRepo(db),
		Embarcaciones: NewEmbarcacionRepo(db),
		Contenedores:  NewContenedorRepo(db),
		Productos:     NewProductoRepo(db),
		Lotes:         NewLoteRepo(db),
		Movimientos:   NewMovimientoRepo(db),
		Historial:     NewHistorialRepo(db),
		Alertas:       NewAlertaRepo(db, notifier),
		Usuarios:      NewUsuarioRepo(db),
		Logs:          NewLogUsuarioRepo(db),
	}
}
