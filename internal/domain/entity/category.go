package entity

import "strconv"

// Category categoría de productos.
type Category struct {
	ID          int    `json:"idCategoria,omitempty"`
	Name        string `json:"nombreCategoria"`
	Description string `json:"descripcion"`
	Status      string `json:"estado,omitempty"` // Activo | Inactivo
}

func (c Category) RowID() int { return c.ID }

func (c Category) FilterFields() FieldSet {
	return FieldSet{
		"id":          {Value: strconv.Itoa(c.ID)},
		"nombre":      {Value: c.Name},
		"descripcion": {Value: c.Description},
		"estado":      {Value: c.Status, Exact: true},
	}
}
