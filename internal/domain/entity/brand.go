package entity

import "strconv"

// Brand marca comercial. Su borrado es lógico: el registro pasa a estado
// Inactivo y nunca se elimina del servicio.
type Brand struct {
	ID            int    `json:"idMarca,omitempty"`
	Name          string `json:"nombreMarca"`
	CountryOrigin string `json:"paisOrigen,omitempty"`
	Status        string `json:"estado,omitempty"` // Activo | Inactivo
}

func (b Brand) RowID() int { return b.ID }

// Deactivated devuelve la copia de la marca con estado Inactivo (soft delete).
func (b Brand) Deactivated() Brand {
	b.Status = StatusInactivo
	return b
}

func (b Brand) FilterFields() FieldSet {
	return FieldSet{
		"id":     {Value: strconv.Itoa(b.ID)},
		"nombre": {Value: b.Name},
		"pais":   {Value: b.CountryOrigin},
		"estado": {Value: b.Status, Exact: true},
	}
}
