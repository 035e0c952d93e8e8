package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/almacen-admin/internal/application/dto"
	"github.com/jhoicas/almacen-admin/internal/application/table"
	"github.com/jhoicas/almacen-admin/internal/domain"
)

// sectionRoutes expone el controlador de tabla de una sección como rutas
// REST. La fachada es fina: cada petición construye el controlador para el
// actor autenticado y delega en él búsqueda, paginación, política y modal.
type sectionRoutes[T table.Row] struct {
	name  string
	build func(actor domain.Actor) *table.Table[T]
	// withID fija el id de ruta en el cuerpo recibido (el RowID del registro
	// es de solo lectura para esta capa).
	withID func(rec T, id int) T
	log    zerolog.Logger
}

func (s *sectionRoutes[T]) register(r fiber.Router) {
	grp := r.Group("/" + s.name)
	grp.Get("/", s.list)
	grp.Post("/", s.create)
	grp.Put("/:id", s.update)
	grp.Delete("/:id", s.remove)
}

// list GET /api/<seccion>?pagina=N&<campo>=<consulta>...
// Todos los query params salvo "pagina" son criterios de filtrado.
func (s *sectionRoutes[T]) list(c *fiber.Ctx) error {
	tbl := s.build(GetActor(c))
	if !tbl.CanView() {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sección no visible para el rol"})
	}

	criteria := table.Criteria{}
	for k, v := range c.Queries() {
		if k == "pagina" {
			continue
		}
		criteria[k] = v
	}
	tbl.SetCriteria(criteria)

	if err := tbl.Search(c.Context()); err != nil {
		return s.fail(c, err)
	}
	tbl.ChangePage(c.QueryInt("pagina", 1))

	page := tbl.Rows()
	filas := page.Items
	if filas == nil {
		filas = []T{}
	}
	return c.JSON(dto.TableResponse[T]{
		Seccion:        s.name,
		Filas:          filas,
		Pagina:         page.Index,
		TotalPaginas:   page.TotalPages,
		TotalRegistros: page.TotalItems,
		Permisos: dto.Permissions{
			Crear:    tbl.CanCreate(),
			Editar:   tbl.CanEdit(),
			Eliminar: tbl.CanDelete(),
		},
	})
}

// create POST /api/<seccion> — abre el modal de alta, carga el cuerpo y lo
// envía a través del ciclo de vida del formulario.
func (s *sectionRoutes[T]) create(c *fiber.Ctx) error {
	tbl := s.build(GetActor(c))
	if err := tbl.OpenCreate(); err != nil {
		return s.fail(c, err)
	}
	var rec T
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tbl.Modal().SetRecord(rec)
	if err := tbl.Modal().Submit(c.Context()); err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MutationResponse{OK: true})
}

// update PUT /api/<seccion>/:id — modal de edición poblado con el cuerpo.
func (s *sectionRoutes[T]) update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var rec T
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec = s.withID(rec, id)

	tbl := s.build(GetActor(c))
	if err := tbl.OpenEdit(rec); err != nil {
		return s.fail(c, err)
	}
	if err := tbl.Modal().Submit(c.Context()); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(dto.MutationResponse{OK: true})
}

// remove DELETE /api/<seccion>/:id — en marcas despacha el borrado lógico
// (estado Inactivo); en el resto, delete físico. Se refetchea antes para que
// el controlador tenga el registro a desactivar.
func (s *sectionRoutes[T]) remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	tbl := s.build(GetActor(c))
	if !tbl.CanDelete() {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol no puede eliminar en esta sección"})
	}
	if err := tbl.Search(c.Context()); err != nil {
		return s.fail(c, err)
	}
	if err := tbl.RequestDelete(c.Context(), id); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(dto.MutationResponse{OK: true})
}

// fail mapea la taxonomía de errores de dominio a HTTP.
func (s *sectionRoutes[T]) fail(c *fiber.Ctx, err error) error {
	reqID := GetRequestID(c)
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrStockInsuficiente):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrSubmitInProgress):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMIT_IN_PROGRESS", Message: "envío en curso"})
	case domain.IsTransport(err):
		s.log.Warn().Err(err).Str("request_id", reqID).Str("seccion", s.name).Msg("servicio de persistencia inalcanzable")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "TRANSPORT", Message: "servicio de persistencia no disponible; reintente"})
	}
	s.log.Error().Err(err).Str("request_id", reqID).Str("seccion", s.name).Msg("error no clasificado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
