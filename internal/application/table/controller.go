package table

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/almacen-admin/internal/domain"
	"github.com/jhoicas/almacen-admin/internal/domain/rbac"
)

// Config parámetros de construcción de la tabla de una sección.
type Config[T Row] struct {
	Section     domain.Section
	Actor       domain.Actor
	Gateway     Gateway[T]
	Policy      rbac.Policy
	Coordinator *Coordinator
	PageSize    int // 0 → DefaultPageSize

	// Defaults registro vacío para el modal de alta.
	Defaults func() T
	// Validate campos requeridos antes de enviar (mínimo: nombre no vacío).
	Validate func(T) error
	// BeforeSubmit regla de dominio previa al despacho (movimientos: guardia
	// de stock). Puede normalizar el registro in place.
	BeforeSubmit func(context.Context, *T) error
	// Deactivate hook de borrado lógico: si no es nil, "eliminar" despacha un
	// update con el registro desactivado en lugar de un delete físico.
	Deactivate func(T) T

	Logger zerolog.Logger
}

// Table controlador de tabla de una sección: dueño exclusivo de los
// criterios, la última colección obtenida, la página actual y el modal.
// Ningún otro componente muta su colección; todo cambio fluye por
// onMutationSuccess → refetch. Una instancia por tipo de entidad.
type Table[T Row] struct {
	cfg      Config[T]
	modal    Modal[T]
	criteria Criteria
	rows     []T // última colección filtrada aplicada
	page     int
	lastErr  error
	lastSeen uint64 // versión del coordinador ya reflejada
	refresh  <-chan struct{}
	log      zerolog.Logger
}

// New construye la tabla y la suscribe al coordinador de refresco.
func New[T Row](cfg Config[T]) *Table[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	t := &Table[T]{
		cfg:      cfg,
		criteria: Criteria{},
		page:     1,
		log:      cfg.Logger.With().Str("seccion", string(cfg.Section)).Logger(),
	}
	if cfg.Coordinator != nil {
		t.lastSeen = cfg.Coordinator.Version(cfg.Section)
		t.refresh = cfg.Coordinator.Subscribe(cfg.Section)
	}
	t.modal = Modal[T]{
		gateway:      cfg.Gateway,
		validate:     cfg.Validate,
		beforeSubmit: cfg.BeforeSubmit,
		onSuccess:    t.onMutationSuccess,
	}
	return t
}

// Section devuelve la sección administrada.
func (t *Table[T]) Section() domain.Section { return t.cfg.Section }

// Actor devuelve el operador para el que se construyó la tabla.
func (t *Table[T]) Actor() domain.Actor { return t.cfg.Actor }

// SetCriteria reemplaza los criterios de filtrado y reinicia a la página 1.
// Los criterios se aplican en la siguiente búsqueda.
func (t *Table[T]) SetCriteria(c Criteria) {
	if c == nil {
		c = Criteria{}
	}
	t.criteria = c
	t.page = 1
}

// Criteria devuelve los criterios vigentes.
func (t *Table[T]) Criteria() Criteria { return t.criteria }

// Search obtiene la colección completa del servicio, aplica el filtro y
// vuelve a la página 1. Un fallo deja la colección previa intacta, registra
// el error (no bloqueante) y no mueve la paginación. Idempotente: con filtro
// y datos remotos sin cambios, dos búsquedas seguidas muestran lo mismo.
func (t *Table[T]) Search(ctx context.Context) error {
	if t.cfg.Coordinator != nil {
		// Cualquier refetch satisface las señales pendientes hasta aquí.
		t.lastSeen = t.cfg.Coordinator.Version(t.cfg.Section)
	}
	items, err := t.cfg.Gateway.List(ctx)
	if err != nil {
		t.lastErr = err
		t.log.Warn().Err(err).Msg("búsqueda fallida; se conserva la colección previa")
		return err
	}
	t.rows = Filter(items, t.criteria)
	t.page = 1
	t.lastErr = nil
	return nil
}

// ChangePage navega a la página n. Peticiones fuera de [1, totalPages] se
// ignoran (no son errores).
func (t *Table[T]) ChangePage(n int) {
	total := Paginate(t.rows, 1, t.cfg.PageSize).TotalPages
	if n < 1 || n > total {
		return
	}
	t.page = n
}

// Rows devuelve la página actual lista para renderizar. Con colección vacía,
// TotalPages es 0: la vista muestra la fila de "sin resultados".
func (t *Table[T]) Rows() Page[T] {
	return Paginate(t.rows, t.page, t.cfg.PageSize)
}

// LastError error no bloqueante de la última operación fallida (nil si la
// última búsqueda fue bien).
func (t *Table[T]) LastError() error { return t.lastErr }

// CanView, CanCreate, CanEdit, CanDelete evalúan la política para el actor.
// La vista no renderiza la acción cuando el permiso es falso; no es un error
// en tiempo de ejecución.
func (t *Table[T]) CanView() bool {
	return t.cfg.Policy.CanPerform(t.cfg.Actor.Role, rbac.ActionView, t.cfg.Section)
}
func (t *Table[T]) CanCreate() bool {
	return t.cfg.Policy.CanPerform(t.cfg.Actor.Role, rbac.ActionCreate, t.cfg.Section)
}
func (t *Table[T]) CanEdit() bool {
	return t.cfg.Policy.CanPerform(t.cfg.Actor.Role, rbac.ActionEdit, t.cfg.Section)
}
func (t *Table[T]) CanDelete() bool {
	return t.cfg.Policy.CanPerform(t.cfg.Actor.Role, rbac.ActionDelete, t.cfg.Section)
}

// Modal acceso al formulario modal de la sección.
func (t *Table[T]) Modal() *Modal[T] { return &t.modal }

// OpenCreate abre el modal de alta con el registro por defecto.
func (t *Table[T]) OpenCreate() error {
	if !t.CanCreate() {
		return domain.ErrForbidden
	}
	var def T
	if t.cfg.Defaults != nil {
		def = t.cfg.Defaults()
	}
	t.modal.OpenCreate(def)
	return nil
}

// OpenEdit abre el modal de edición poblado desde la fila seleccionada.
func (t *Table[T]) OpenEdit(rec T) error {
	if !t.CanEdit() {
		return domain.ErrForbidden
	}
	t.modal.OpenEdit(rec)
	return nil
}

// RequestDelete elimina el registro id, con la política como guardia. En
// secciones con borrado lógico despacha un update a estado Inactivo en lugar
// de un delete físico; el registro permanece en la colección del servicio.
func (t *Table[T]) RequestDelete(ctx context.Context, id int) error {
	if !t.CanDelete() {
		return domain.ErrForbidden
	}
	var err error
	if t.cfg.Deactivate != nil {
		rec, found := t.find(id)
		if !found {
			return domain.ErrNotFound
		}
		_, err = t.cfg.Gateway.Update(ctx, id, t.cfg.Deactivate(rec))
	} else {
		err = t.cfg.Gateway.Delete(ctx, id)
	}
	if err != nil {
		t.lastErr = err
		t.log.Warn().Err(err).Int("id", id).Msg("eliminación fallida")
		return err
	}
	t.onMutationSuccess(ctx)
	return nil
}

// MaybeRefresh refetchea si otra mutación dejó obsoleta la colección de esta
// sección desde la última búsqueda. Señales coalescidas producen un único
// refetch.
func (t *Table[T]) MaybeRefresh(ctx context.Context) error {
	if t.cfg.Coordinator == nil {
		return nil
	}
	if t.cfg.Coordinator.Version(t.cfg.Section) == t.lastSeen {
		return nil
	}
	return t.Search(ctx)
}

// RefreshSignal canal de obsolescencia para bucles de eventos que prefieren
// select a muestreo.
func (t *Table[T]) RefreshSignal() <-chan struct{} { return t.refresh }

// onMutationSuccess corre tras cada create/update/delete exitoso: notifica a
// las tablas hermanas y refetchea la propia colección. Un fallo del refetch
// no revierte la mutación; queda como error no bloqueante.
func (t *Table[T]) onMutationSuccess(ctx context.Context) {
	if t.cfg.Coordinator != nil {
		t.cfg.Coordinator.Notify(t.cfg.Section)
	}
	if err := t.Search(ctx); err != nil {
		t.log.Warn().Err(err).Msg("refetch tras mutación fallido")
	}
}

func (t *Table[T]) find(id int) (T, bool) {
	for _, r := range t.rows {
		if r.RowID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}
