package entity

import "strconv"

// Product producto del catálogo. Esquema canónico: la variante histórica con
// codigoPedido y marca opcional no se conserva; stock se refleja desde los
// movimientos aplicados por el servicio remoto.
type Product struct {
	ID           int    `json:"idProducto,omitempty"`
	Name         string `json:"nombreProducto"`
	Description  string `json:"descripcion"`
	BrandName    string `json:"nombreMarca"`
	CategoryName string `json:"nombreCategoria"`
	Status       string `json:"estado"` // Activo | Inactivo
	CurrentStock int    `json:"stockActual"`
	MinimumStock int    `json:"stockMinimo"`
	BrandID      int    `json:"idMarca"`
	CategoryID   int    `json:"idCategoria"`
}

func (p Product) RowID() int { return p.ID }

// LowStock indica si el producto está en o por debajo de su stock mínimo.
func (p Product) LowStock() bool { return p.CurrentStock <= p.MinimumStock }

func (p Product) FilterFields() FieldSet {
	return FieldSet{
		"id":          {Value: strconv.Itoa(p.ID)},
		"nombre":      {Value: p.Name},
		"descripcion": {Value: p.Description},
		"marca":       {Value: p.BrandName},
		"categoria":   {Value: p.CategoryName},
		"estado":      {Value: p.Status, Exact: true},
		"stockActual": {Value: strconv.Itoa(p.CurrentStock)},
		"stockMinimo": {Value: strconv.Itoa(p.MinimumStock)},
	}
}

// LowStockProduct fila del reporte de productos bajo stock mínimo
// (GET /productos/bajo-stock del servicio remoto).
type LowStockProduct struct {
	ID           int    `json:"idProducto"`
	Name         string `json:"nombreProducto"`
	CategoryName string `json:"nombreCategoria"`
	BrandName    string `json:"nombreMarca"`
	CurrentStock int    `json:"stockActual"`
	MinimumStock int    `json:"stockMinimo"`
}

func (p LowStockProduct) RowID() int { return p.ID }

func (p LowStockProduct) FilterFields() FieldSet {
	return FieldSet{
		"id":        {Value: strconv.Itoa(p.ID)},
		"producto":  {Value: p.Name},
		"categoria": {Value: p.CategoryName},
		"marca":     {Value: p.BrandName},
	}
}
