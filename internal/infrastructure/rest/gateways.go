package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/almacen-admin/internal/application/sections"
	"github.com/jhoicas/almacen-admin/internal/domain/entity"
)

// NewGateways construye los gateways de todas las secciones contra el
// servicio remoto, con las rutas que este expone.
func NewGateways(c *Client) sections.Gateways {
	return sections.Gateways{
		Products:   NewResource[entity.Product](c, "/productos"),
		Users:      NewResource[entity.User](c, "/usuarios"),
		Suppliers:  NewResource[entity.Supplier](c, "/proveedores"),
		Categories: NewResource[entity.Category](c, "/categorias"),
		Brands:     NewResource[entity.Brand](c, "/marcas"),
		Movements:  NewMovementResource(c),
		Orders:     NewOrderResource(c),
	}
}

// MovementResource gateway de movimientos: el servicio lista MovimientoStock
// pero espera el payload MovimientoStockCrear al escribir, así que Create y
// Update proyectan el registro antes de enviarlo.
type MovementResource struct {
	inner *Resource[entity.Movement]
}

// NewMovementResource construye el gateway de movimientos.
func NewMovementResource(c *Client) *MovementResource {
	return &MovementResource{inner: NewResource[entity.Movement](c, "/movimientos")}
}

func (r *MovementResource) List(ctx context.Context) ([]entity.Movement, error) {
	return r.inner.List(ctx)
}

func (r *MovementResource) Create(ctx context.Context, rec entity.Movement) (entity.Movement, error) {
	var out entity.Movement
	if err := r.inner.c.do(ctx, http.MethodPost, r.inner.path, rec.CreatePayload(), &out); err != nil {
		return out, err
	}
	return out, nil
}

func (r *MovementResource) Update(ctx context.Context, id int, rec entity.Movement) (entity.Movement, error) {
	var out entity.Movement
	path := fmt.Sprintf("%s/%d", r.inner.path, id)
	if err := r.inner.c.do(ctx, http.MethodPut, path, rec.CreatePayload(), &out); err != nil {
		return out, err
	}
	return out, nil
}

func (r *MovementResource) Delete(ctx context.Context, id int) error {
	return r.inner.Delete(ctx, id)
}

// OrderResource gateway de pedidos: escribe con el payload PedidoCrear
// (idPedido en lugar de id, sin nombres denormalizados).
type OrderResource struct {
	inner *Resource[entity.Order]
}

// NewOrderResource construye el gateway de pedidos.
func NewOrderResource(c *Client) *OrderResource {
	return &OrderResource{inner: NewResource[entity.Order](c, "/pedidos")}
}

func (r *OrderResource) List(ctx context.Context) ([]entity.Order, error) {
	return r.inner.List(ctx)
}

func (r *OrderResource) Create(ctx context.Context, rec entity.Order) (entity.Order, error) {
	var out entity.Order
	if err := r.inner.c.do(ctx, http.MethodPost, r.inner.path, rec.CreatePayload(), &out); err != nil {
		return out, err
	}
	return out, nil
}

func (r *OrderResource) Update(ctx context.Context, id int, rec entity.Order) (entity.Order, error) {
	var out entity.Order
	path := fmt.Sprintf("%s/%d", r.inner.path, id)
	if err := r.inner.c.do(ctx, http.MethodPut, path, rec.CreatePayload(), &out); err != nil {
		return out, err
	}
	return out, nil
}

func (r *OrderResource) Delete(ctx context.Context, id int) error {
	return r.inner.Delete(ctx, id)
}

// LowStock obtiene el reporte de productos en o por debajo del stock mínimo.
func (c *Client) LowStock(ctx context.Context) ([]entity.LowStockProduct, error) {
	var out []entity.LowStockProduct
	if err := c.do(ctx, http.MethodGet, "/productos/bajo-stock", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
