package repos

import (
	"context"
	"net/http"
	"testing"

	"github.com/xelth-com/eckportgo/internal/apperr"
	"github.com/xelth-com/eckportgo/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.Cliente{},
		&models.Embarcacion{},
		&models.Contenedor{},
		&models.Producto{},
		&models.Lote{},
		&models.Movimiento{},
		&models.HistorialEstado{},
		&models.Alerta{},
		&models.Usuario{},
		&models.LogUsuario{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCliente(t *testing.T, db *gorm.DB) *models.Cliente {
	t.Helper()
	cl := &models.Cliente{NombreEmpresa: "Naviera del Sur", Representante: "M. Robles"}
	if err := db.Create(cl).Error; err != nil {
		t.Fatalf("seed cliente: %v", err)
	}
	return cl
}

func TestContenedorCreateDefaultsEstado(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewContenedorRepo(db)
	cl := seedCliente(t, db)

	creado, err := repo.Create(ctx, &models.Contenedor{Codigo: "CONT-001", IDCliente: cl.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if creado.Estado != models.EstadoDisponible {
		t.Errorf("estado = %q, want %q", creado.Estado, models.EstadoDisponible)
	}
	if creado.ClienteNombre != "Naviera del Sur" {
		t.Errorf("cliente_nombre = %q", creado.ClienteNombre)
	}

	// The returned record must match a subsequent read.
	leido, err := repo.GetByID(ctx, creado.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if *leido != *creado {
		t.Errorf("created %+v != read %+v", creado, leido)
	}
}

func TestContenedorCreateRejectsOrphanRefs(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewContenedorRepo(db)

	// Unknown client: rejected before anything is written.
	_, err := repo.Create(ctx, &models.Contenedor{Codigo: "CONT-002", IDCliente: 999})
	if apperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("orphan cliente: status = %d, want 404", apperr.StatusOf(err))
	}
	if err.Error() != "El cliente especificado no existe" {
		t.Errorf("message = %q", err.Error())
	}

	var count int64
	db.Model(&models.Contenedor{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected create left %d rows", count)
	}

	// Known client but unknown vessel.
	cl := seedCliente(t, db)
	emb := uint(999)
	_, err = repo.Create(ctx, &models.Contenedor{Codigo: "CONT-003", IDCliente: cl.ID, IDEmbarcacion: &emb})
	if apperr.StatusOf(err) != http.StatusNotFound {
		t.Errorf("orphan embarcacion: status = %d, want 404", apperr.StatusOf(err))
	}
	if err.Error() != "La embarcación especificada no existe" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestContenedorCreateRequiresFields(t *testing.T) {
	db := testDB(t)
	repo := NewContenedorRepo(db)

	_, err := repo.Create(context.Background(), &models.Contenedor{Codigo: "   "})
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apperr.StatusOf(err))
	}
}

func TestContenedorUpdateWritesHistorial(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewContenedorRepo(db)
	cl := seedCliente(t, db)

	actor := models.Usuario{Nombre: "operador1", Contrasena: "hash", Rol: "operador"}
	if err := db.Create(&actor).Error; err != nil {
		t.Fatalf("seed usuario: %v", err)
	}

	creado, err := repo.Create(ctx, &models.Contenedor{Codigo: "CONT-010", IDCliente: cl.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	cambio := *creado
	cambio.Estado = "dañado"
	if _, err := repo.Update(ctx, creado.ID, &cambio, actor.ID); err != nil {
		t.Fatalf("Update: %v", err)
	}

	var hist []models.HistorialEstado
	if err := db.Find(&hist).Error; err != nil {
		t.Fatalf("load historial: %v", err)
	}
	if len(hist) != 1 {
		t.Fatalf("got %d history rows, want 1", len(hist))
	}
	h := hist[0]
	if h.EstadoAnterior != models.EstadoDisponible || h.EstadoNuevo != "dañado" {
		t.Errorf("transition = %q -> %q", h.EstadoAnterior, h.EstadoNuevo)
	}
	if h.UsuarioModificador == nil || *h.UsuarioModificador != actor.ID {
		t.Errorf("usuario_modificador = %v, want %d", h.UsuarioModificador, actor.ID)
	}
	if h.FechaCambio.IsZero() {
		t.Error("fecha_cambio should be server-assigned")
	}

	// Same state again: no second history row.
	if _, err := repo.Update(ctx, creado.ID, &cambio, actor.ID); err != nil {
		t.Fatalf("Update (no-op state): %v", err)
	}
	var count int64
	db.Model(&models.HistorialEstado{}).Count(&count)
	if count != 1 {
		t.Errorf("history rows = %d, want still 1", count)
	}
}

func TestContenedorUpdateWithoutActorWritesNullModificador(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewContenedorRepo(db)
	cl := seedCliente(t, db)

	creado, err := repo.Create(ctx, &models.Contenedor{Codigo: "CONT-011", IDCliente: cl.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// State change over the open route carries no session at all.
	cambio := *creado
	cambio.Estado = "con fallas"
	if _, err := repo.Update(ctx, creado.ID, &cambio, 0); err != nil {
		t.Fatalf("Update: %v", err)
	}

	var hist []models.HistorialEstado
	if err := db.Find(&hist).Error; err != nil {
		t.Fatalf("load historial: %v", err)
	}
	if len(hist) != 1 {
		t.Fatalf("got %d history rows, want 1", len(hist))
	}
	if hist[0].UsuarioModificador != nil {
		t.Errorf("usuario_modificador = %d, want NULL", *hist[0].UsuarioModificador)
	}
}

func TestClienteDeleteMissing(t *testing.T) {
	db := testDB(t)
	repo := NewClienteRepo(db)

	err := repo.Delete(context.Background(), 42)
	if apperr.StatusOf(err) != http.StatusNotFound {
		t.Errorf("status = %d, want 404", apperr.StatusOf(err))
	}
}

func TestUsuarioCreateConflict(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewUsuarioRepo(db)

	if _, err := repo.Create(ctx, &models.Usuario{Nombre: "admin", Contrasena: "hash1"}, 0); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := repo.Create(ctx, &models.Usuario{Nombre: "admin", Contrasena: "hash2"}, 0)
	if apperr.StatusOf(err) != http.StatusConflict {
		t.Errorf("status = %d, want 409", apperr.StatusOf(err))
	}
}

func TestUsuarioToggleBaja(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewUsuarioRepo(db)

	admin, err := repo.Create(ctx, &models.Usuario{Nombre: "admin", Contrasena: "hash"}, 0)
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	u, err := repo.Create(ctx, &models.Usuario{Nombre: "operador1", Contrasena: "hash"}, admin.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// First toggle deactivates and stamps fecha_baja.
	bajado, err := repo.ToggleBaja(ctx, u.ID, admin.ID)
	if err != nil {
		t.Fatalf("ToggleBaja: %v", err)
	}
	if bajado.Estado != models.UsuarioInactivo {
		t.Errorf("estado = %q, want %q", bajado.Estado, models.UsuarioInactivo)
	}
	if bajado.FechaBaja == nil {
		t.Error("fecha_baja should be stamped on deactivation")
	}

	// Second toggle reactivates and clears the stamp.
	reactivado, err := repo.ToggleBaja(ctx, u.ID, admin.ID)
	if err != nil {
		t.Fatalf("ToggleBaja (reactivate): %v", err)
	}
	if reactivado.Estado != models.UsuarioActivo {
		t.Errorf("estado = %q, want %q", reactivado.Estado, models.UsuarioActivo)
	}
	if reactivado.FechaBaja != nil {
		t.Error("fecha_baja should be cleared on reactivation")
	}

	// Both actions landed in the audit log.
	var acciones []models.LogUsuario
	if err := db.Where("usuario_afectado = ?", u.ID).Order("id_log").Find(&acciones).Error; err != nil {
		t.Fatalf("load log: %v", err)
	}
	labels := make([]string, len(acciones))
	for i, a := range acciones {
		labels[i] = a.Accion
	}
	want := []string{AccionCrearUsuario, AccionBajaUsuario, AccionReactivarUsuario}
	if len(labels) != len(want) {
		t.Fatalf("log actions = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestAlertasActivas(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	cl := seedCliente(t, db)

	cont := models.Contenedor{Codigo: "CONT-020", IDCliente: cl.ID, Estado: "dañado"}
	if err := db.Create(&cont).Error; err != nil {
		t.Fatalf("seed contenedor: %v", err)
	}
	estados := []string{"Dañado", "con fallas", "FUERA DE SERVICIO", "resuelto", "en revisión"}
	for _, e := range estados {
		if err := db.Create(&models.Alerta{IDContenedor: cont.ID, Estado: e}).Error; err != nil {
			t.Fatalf("seed alerta: %v", err)
		}
	}

	repo := NewAlertaRepo(db, nil)
	activas, err := repo.Activas(ctx)
	if err != nil {
		t.Fatalf("Activas: %v", err)
	}
	// Matching is case-insensitive over the three attention states.
	if len(activas) != 3 {
		t.Errorf("got %d active alerts, want 3", len(activas))
	}
}

type notifierEspia struct {
	alertas []*models.Alerta
}

func (n *notifierEspia) AlertaActualizada(a *models.Alerta) {
	n.alertas = append(n.alertas, a)
}

func TestAlertaActualizarEstadoNotifies(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	cl := seedCliente(t, db)

	cont := models.Contenedor{Codigo: "CONT-021", IDCliente: cl.ID, Estado: "dañado"}
	if err := db.Create(&cont).Error; err != nil {
		t.Fatalf("seed contenedor: %v", err)
	}
	alerta := models.Alerta{IDContenedor: cont.ID, Estado: "dañado"}
	if err := db.Create(&alerta).Error; err != nil {
		t.Fatalf("seed alerta: %v", err)
	}

	espia := &notifierEspia{}
	repo := NewAlertaRepo(db, espia)

	actualizada, err := repo.ActualizarEstado(ctx, alerta.ID, "resuelto")
	if err != nil {
		t.Fatalf("ActualizarEstado: %v", err)
	}
	if actualizada.Estado != "resuelto" {
		t.Errorf("estado = %q", actualizada.Estado)
	}
	if len(espia.alertas) != 1 || espia.alertas[0].ID != alerta.ID {
		t.Errorf("notifier calls = %d", len(espia.alertas))
	}

	_, err = repo.ActualizarEstado(ctx, alerta.ID, "")
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Errorf("empty estado: status = %d, want 400", apperr.StatusOf(err))
	}
}

func TestLoteCreateValidatesRefs(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	cl := seedCliente(t, db)

	cont := models.Contenedor{Codigo: "CONT-030", IDCliente: cl.ID, Estado: "disponible"}
	if err := db.Create(&cont).Error; err != nil {
		t.Fatalf("seed contenedor: %v", err)
	}

	repo := NewLoteRepo(db)
	_, err := repo.Create(ctx, &models.Lote{IDContenedor: cont.ID, IDProducto: 999})
	if apperr.StatusOf(err) != http.StatusNotFound {
		t.Errorf("orphan producto: status = %d, want 404", apperr.StatusOf(err))
	}

	prod := models.Producto{Nombre: "Café en grano", Tipo: "alimentos"}
	if err := db.Create(&prod).Error; err != nil {
		t.Fatalf("seed producto: %v", err)
	}

	// Quantity defaults to 1 when absent or non-positive.
	lote, err := repo.Create(ctx, &models.Lote{IDContenedor: cont.ID, IDProducto: prod.ID, Cantidad: -5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if lote.Cantidad != 1 {
		t.Errorf("cantidad = %d, want 1", lote.Cantidad)
	}
}
