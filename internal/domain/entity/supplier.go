package entity

import "strconv"

// Supplier proveedor de mercancía.
type Supplier struct {
	ID      int    `json:"idProveedor,omitempty"`
	Name    string `json:"nombreProveedor"`
	Contact string `json:"contacto"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`
}

func (s Supplier) RowID() int { return s.ID }

func (s Supplier) FilterFields() FieldSet {
	return FieldSet{
		"id":        {Value: strconv.Itoa(s.ID)},
		"nombre":    {Value: s.Name},
		"contacto":  {Value: s.Contact},
		"telefono":  {Value: s.Phone},
		"direccion": {Value: s.Address},
	}
}
