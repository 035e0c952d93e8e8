// Package sections instancia un controlador de tabla por tipo de entidad,
// con sus reglas de campos requeridos, el borrado lógico de marcas y la
// guardia de stock de los movimientos.
package sections

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/almacen-admin/internal/application/table"
	"github.com/jhoicas/almacen-admin/internal/domain"
	"github.com/jhoicas/almacen-admin/internal/domain/entity"
	"github.com/jhoicas/almacen-admin/internal/domain/rbac"
	"github.com/jhoicas/almacen-admin/internal/domain/stock"
)

// Gateways puertos hacia el servicio remoto, uno por sección.
type Gateways struct {
	Products   table.Gateway[entity.Product]
	Users      table.Gateway[entity.User]
	Suppliers  table.Gateway[entity.Supplier]
	Categories table.Gateway[entity.Category]
	Brands     table.Gateway[entity.Brand]
	Movements  table.Gateway[entity.Movement]
	Orders     table.Gateway[entity.Order]
}

// Deps dependencias compartidas por todas las secciones.
type Deps struct {
	Gateways    Gateways
	Policy      rbac.Policy
	Coordinator *table.Coordinator
	PageSize    int
	Logger      zerolog.Logger
}

// Registry las siete tablas de administración construidas para un operador.
type Registry struct {
	Products   *table.Table[entity.Product]
	Users      *table.Table[entity.User]
	Suppliers  *table.Table[entity.Supplier]
	Categories *table.Table[entity.Category]
	Brands     *table.Table[entity.Brand]
	Movements  *table.Table[entity.Movement]
	Orders     *table.Table[entity.Order]
}

// New construye el registro completo de secciones para el actor autenticado.
func New(actor domain.Actor, d Deps) *Registry {
	return &Registry{
		Products:   NewProductTable(actor, d),
		Users:      NewUserTable(actor, d),
		Suppliers:  NewSupplierTable(actor, d),
		Categories: NewCategoryTable(actor, d),
		Brands:     NewBrandTable(actor, d),
		Movements:  NewMovementTable(actor, d),
		Orders:     NewOrderTable(actor, d),
	}
}

// NewProductTable tabla de productos.
func NewProductTable(actor domain.Actor, d Deps) *table.Table[entity.Product] {
	return table.New(table.Config[entity.Product]{
		Section:     domain.SectionProductos,
		Actor:       actor,
		Gateway:     d.Gateways.Products,
		Policy:      d.Policy,
		Coordinator: d.Coordinator,
		PageSize:    d.PageSize,
		Logger:      d.Logger,
		Defaults: func() entity.Product {
			return entity.Product{Status: entity.StatusActivo}
		},
		Validate: func(p entity.Product) error {
			if p.Name == "" {
				return fmt.Errorf("%w: nombreProducto es requerido", domain.ErrInvalidInput)
			}
			if p.Status != entity.StatusActivo && p.Status != entity.StatusInactivo {
				return fmt.Errorf("%w: estado debe ser Activo o Inactivo", domain.ErrInvalidInput)
			}
			if p.CurrentStock < 0 || p.MinimumStock < 0 {
				return fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
			}
			return nil
		},
	})
}

// NewUserTable tabla de usuarios. La contraseña solo es requerida en el alta;
// en edición el servicio conserva la existente si viene vacía.
func NewUserTable(actor domain.Actor, d Deps) *table.Table[entity.User] {
	return table.New(table.Config[entity.User]{
		Section:     domain.SectionUsuarios,
		Actor:       actor,
		Gateway:     d.Gateways.Users,
		Policy:      d.Policy,
		Coordinator: d.Coordinator,
		PageSize:    d.PageSize,
		Logger:      d.Logger,
		Defaults: func() entity.User {
			return entity.User{Active: true}
		},
		Validate: func(u entity.User) error {
			if u.Name == "" || u.Email == "" || u.Role == "" {
				return fmt.Errorf("%w: nombreUsuario, correo y rol son requeridos", domain.ErrInvalidInput)
			}
			if u.ID == 0 && u.Password == "" {
				return fmt.Errorf("%w: contrasenia es requerida al crear", domain.ErrInvalidInput)
			}
			return nil
		},
	})
}

// NewSupplierTable tabla de proveedores.
func NewSupplierTable(actor domain.Actor, d Deps) *table.Table[entity.Supplier] {
	return table.New(table.Config[entity.Supplier]{
		Section:     domain.SectionProveedores,
		Actor:       actor,
		Gateway:     d.Gateways.Suppliers,
		Policy:      d.Policy,
		Coordinator: d.Coordinator,
		PageSize:    d.PageSize,
		Logger:      d.Logger,
		Defaults:    func() entity.Supplier { return entity.Supplier{} },
		Validate: func(s entity.Supplier) error {
			if s.Name == "" {
				return fmt.Errorf("%w: nombreProveedor es requerido", domain.ErrInvalidInput)
			}
			return nil
		},
	})
}

// NewCategoryTable tabla de categorías.
func NewCategoryTable(actor domain.Actor, d Deps) *table.Table[entity.Category] {
	return table.New(table.Config[entity.Category]{
		Section:     domain.SectionCategorias,
		Actor:       actor,
		Gateway:     d.Gateways.Categories,
		Policy:      d.Policy,
		Coordinator: d.Coordinator,
		PageSize:    d.PageSize,
		Logger:      d.Logger,
		Defaults: func() entity.Category {
			return entity.Category{Status: entity.StatusActivo}
		},
		Validate: func(c entity.Category) error {
			if c.Name == "" {
				return fmt.Errorf("%w: nombreCategoria es requerido", domain.ErrInvalidInput)
			}
			return nil
		},
	})
}

// NewBrandTable tabla de marcas. Única sección con borrado lógico: eliminar
// despacha un update con estado Inactivo y el registro nunca desaparece del
// servicio.
func NewBrandTable(actor domain.Actor, d Deps) *table.Table[entity.Brand] {
	return table.New(table.Config[entity.Brand]{
		Section:     domain.SectionMarcas,
		Actor:       actor,
		Gateway:     d.Gateways.Brands,
		Policy:      d.Policy,
		Coordinator: d.Coordinator,
		PageSize:    d.PageSize,
		Logger:      d.Logger,
		Defaults: func() entity.Brand {
			return entity.Brand{Status: entity.StatusActivo}
		},
		Validate: func(b entity.Brand) error {
			if b.Name == "" {
				return fmt.Errorf("%w: nombreMarca es requerido", domain.ErrInvalidInput)
			}
			return nil
		},
		Deactivate: entity.Brand.Deactivated,
	})
}

// NewMovementTable tabla de movimientos de stock. BeforeSubmit normaliza la
// dirección (ENTRADA → INGRESO), consulta el stock actual del producto y
// rechaza del lado cliente cualquier SALIDA que dejaría stock negativo,
// antes de tocar la red.
func NewMovementTable(actor domain.Actor, d Deps) *table.Table[entity.Movement] {
	products := d.Gateways.Products
	return table.New(table.Config[entity.Movement]{
		Section:     domain.SectionMovimientos,
		Actor:       actor,
		Gateway:     d.Gateways.Movements,
		Policy:      d.Policy,
		Coordinator: d.Coordinator,
		PageSize:    d.PageSize,
		Logger:      d.Logger,
		Defaults: func() entity.Movement {
			return entity.Movement{
				Type:   entity.MovementIngreso,
				UserID: actor.ID,
				Date:   time.Now().Format("2006-01-02"),
			}
		},
		Validate: func(m entity.Movement) error {
			if m.ProductID <= 0 {
				return fmt.Errorf("%w: productoId es requerido", domain.ErrInvalidInput)
			}
			if m.UserID <= 0 {
				return fmt.Errorf("%w: usuarioId es requerido", domain.ErrInvalidInput)
			}
			if m.Quantity <= 0 {
				return fmt.Errorf("%w: cantidad debe ser un entero positivo", domain.ErrInvalidInput)
			}
			return nil
		},
		BeforeSubmit: func(ctx context.Context, m *entity.Movement) error {
			dir, err := stock.NormalizeDirection(m.Type)
			if err != nil {
				return fmt.Errorf("%w: tipoMovimiento debe ser INGRESO o SALIDA", domain.ErrInvalidInput)
			}
			m.Type = dir
			current, err := currentStock(ctx, products, m.ProductID)
			if err != nil {
				return err
			}
			return stock.Validate(current, m.Type, m.Quantity)
		},
	})
}

// NewOrderTable tabla de pedidos de compra.
func NewOrderTable(actor domain.Actor, d Deps) *table.Table[entity.Order] {
	return table.New(table.Config[entity.Order]{
		Section:     domain.SectionPedidos,
		Actor:       actor,
		Gateway:     d.Gateways.Orders,
		Policy:      d.Policy,
		Coordinator: d.Coordinator,
		PageSize:    d.PageSize,
		Logger:      d.Logger,
		Defaults: func() entity.Order {
			return entity.Order{UserID: actor.ID, Status: "Pendiente"}
		},
		Validate: func(o entity.Order) error {
			if o.SupplierID <= 0 {
				return fmt.Errorf("%w: idProveedor es requerido", domain.ErrInvalidInput)
			}
			if o.ReceivedAt == "" {
				return fmt.Errorf("%w: fechaRecepcion es requerida", domain.ErrInvalidInput)
			}
			return nil
		},
	})
}

// currentStock obtiene el stockActual del producto objetivo desde el listado
// remoto. El contrato del servicio no expone un GET por id de producto.
func currentStock(ctx context.Context, gw table.Gateway[entity.Product], productID int) (int, error) {
	items, err := gw.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, p := range items {
		if p.ID == productID {
			return p.CurrentStock, nil
		}
	}
	return 0, domain.ErrNotFound
}
