package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/almacen-admin/internal/application/sections"
	"github.com/jhoicas/almacen-admin/internal/application/table"
	"github.com/jhoicas/almacen-admin/internal/domain"
	"github.com/jhoicas/almacen-admin/internal/domain/entity"
	"github.com/jhoicas/almacen-admin/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Gateways    sections.Gateways
	LowStock    LowStockGateway
	Policy      rbac.Policy
	Coordinator *table.Coordinator
	PageSize    int
	JWTSecret   string
	Logger      zerolog.Logger
}

// Router registra las rutas de la fachada de administración. Todas las
// secciones van detrás del token de sesión.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api",
		RequestID(),
		SessionMiddleware(deps.JWTSecret, deps.Logger),
	)

	secDeps := sections.Deps{
		Gateways:    deps.Gateways,
		Policy:      deps.Policy,
		Coordinator: deps.Coordinator,
		PageSize:    deps.PageSize,
		Logger:      deps.Logger,
	}

	products := &sectionRoutes[entity.Product]{
		name:   string(domain.SectionProductos),
		build:  func(a domain.Actor) *table.Table[entity.Product] { return sections.NewProductTable(a, secDeps) },
		withID: func(r entity.Product, id int) entity.Product { r.ID = id; return r },
		log:    deps.Logger,
	}
	users := &sectionRoutes[entity.User]{
		name:   string(domain.SectionUsuarios),
		build:  func(a domain.Actor) *table.Table[entity.User] { return sections.NewUserTable(a, secDeps) },
		withID: func(r entity.User, id int) entity.User { r.ID = id; return r },
		log:    deps.Logger,
	}
	suppliers := &sectionRoutes[entity.Supplier]{
		name:   string(domain.SectionProveedores),
		build:  func(a domain.Actor) *table.Table[entity.Supplier] { return sections.NewSupplierTable(a, secDeps) },
		withID: func(r entity.Supplier, id int) entity.Supplier { r.ID = id; return r },
		log:    deps.Logger,
	}
	categories := &sectionRoutes[entity.Category]{
		name:   string(domain.SectionCategorias),
		build:  func(a domain.Actor) *table.Table[entity.Category] { return sections.NewCategoryTable(a, secDeps) },
		withID: func(r entity.Category, id int) entity.Category { r.ID = id; return r },
		log:    deps.Logger,
	}
	brands := &sectionRoutes[entity.Brand]{
		name:   string(domain.SectionMarcas),
		build:  func(a domain.Actor) *table.Table[entity.Brand] { return sections.NewBrandTable(a, secDeps) },
		withID: func(r entity.Brand, id int) entity.Brand { r.ID = id; return r },
		log:    deps.Logger,
	}
	movements := &sectionRoutes[entity.Movement]{
		name:   string(domain.SectionMovimientos),
		build:  func(a domain.Actor) *table.Table[entity.Movement] { return sections.NewMovementTable(a, secDeps) },
		withID: func(r entity.Movement, id int) entity.Movement { r.ID = id; return r },
		log:    deps.Logger,
	}
	orders := &sectionRoutes[entity.Order]{
		name:   string(domain.SectionPedidos),
		build:  func(a domain.Actor) *table.Table[entity.Order] { return sections.NewOrderTable(a, secDeps) },
		withID: func(r entity.Order, id int) entity.Order { r.ID = id; return r },
		log:    deps.Logger,
	}

	products.register(api)
	users.register(api)
	suppliers.register(api)
	categories.register(api)
	brands.register(api)
	movements.register(api)
	orders.register(api)

	reports := NewReportsHandler(deps.LowStock, deps.PageSize, deps.Logger)
	api.Get("/reportes/bajo-stock", reports.LowStock)
}
