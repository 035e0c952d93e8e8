package entity

import "strconv"

// Order pedido de compra a un proveedor.
type Order struct {
	ID           int    `json:"id,omitempty"`
	SupplierID   int    `json:"idProveedor"`
	SupplierName string `json:"nombreProveedor,omitempty"`
	ReceivedAt   string `json:"fechaRecepcion"`
	Status       string `json:"estado"`
	Observation  string `json:"observacion"`
	UserID       int    `json:"idUsuario"`
	UserName     string `json:"nombreUsuario,omitempty"`
}

func (o Order) RowID() int { return o.ID }

func (o Order) FilterFields() FieldSet {
	return FieldSet{
		"id":        {Value: strconv.Itoa(o.ID)},
		"proveedor": {Value: o.SupplierName},
		"estado":    {Value: o.Status, Exact: true},
		"usuario":   {Value: o.UserName},
		"fecha":     {Value: o.ReceivedAt},
	}
}

// OrderCreate payload de creación/actualización de pedidos (el servicio usa
// idPedido en lugar de id y omite los nombres denormalizados).
type OrderCreate struct {
	ID          int    `json:"idPedido"`
	SupplierID  int    `json:"idProveedor"`
	ReceivedAt  string `json:"fechaRecepcion"`
	Status      string `json:"estado"`
	Observation string `json:"observacion"`
	UserID      int    `json:"idUsuario"`
}

// CreatePayload proyecta el pedido a la forma de creación del servicio.
func (o Order) CreatePayload() OrderCreate {
	return OrderCreate{
		ID:          o.ID,
		SupplierID:  o.SupplierID,
		ReceivedAt:  o.ReceivedAt,
		Status:      o.Status,
		Observation: o.Observation,
		UserID:      o.UserID,
	}
}
