package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/almacen-admin/internal/application/dto"
	"github.com/jhoicas/almacen-admin/internal/application/table"
	"github.com/jhoicas/almacen-admin/internal/domain"
	"github.com/jhoicas/almacen-admin/internal/domain/entity"
)

// LowStockGateway puerto del reporte de bajo stock del servicio remoto.
type LowStockGateway interface {
	LowStock(ctx context.Context) ([]entity.LowStockProduct, error)
}

// ReportsHandler reporte de productos bajo stock mínimo: solo lectura,
// visible para cualquier rol autenticado, con el mismo filtrado y paginación
// que las tablas.
type ReportsHandler struct {
	gw       LowStockGateway
	pageSize int
	log      zerolog.Logger
}

// NewReportsHandler construye el handler del reporte.
func NewReportsHandler(gw LowStockGateway, pageSize int, log zerolog.Logger) *ReportsHandler {
	if pageSize <= 0 {
		pageSize = table.DefaultPageSize
	}
	return &ReportsHandler{gw: gw, pageSize: pageSize, log: log}
}

// LowStock GET /api/reportes/bajo-stock?pagina=N&producto=...&categoria=...
func (h *ReportsHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.gw.LowStock(c.Context())
	if err != nil {
		if domain.IsTransport(err) {
			h.log.Warn().Err(err).Msg("reporte de bajo stock no disponible")
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "TRANSPORT", Message: "servicio de persistencia no disponible; reintente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	criteria := table.Criteria{}
	for k, v := range c.Queries() {
		if k == "pagina" {
			continue
		}
		criteria[k] = v
	}
	filtered := table.Filter(items, criteria)
	page := table.Paginate(filtered, c.QueryInt("pagina", 1), h.pageSize)

	filas := page.Items
	if filas == nil {
		filas = []entity.LowStockProduct{}
	}
	return c.JSON(dto.TableResponse[entity.LowStockProduct]{
		Seccion:        string(domain.SectionReportes),
		Filas:          filas,
		Pagina:         page.Index,
		TotalPaginas:   page.TotalPages,
		TotalRegistros: page.TotalItems,
	})
}
