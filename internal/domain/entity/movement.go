package entity

import "strconv"

// Direcciones de movimiento de stock. INGRESO es la forma canónica de la
// entrada; ENTRADA sobrevive solo como alias deprecado que se normaliza
// antes de validar o despachar.
const (
	MovementIngreso       = "INGRESO"
	MovementSalida        = "SALIDA"
	MovementEntradaLegacy = "ENTRADA"
)

// Movement asiento del libro de movimientos de stock: un INGRESO suma al
// stock del producto, una SALIDA resta. Esquema canónico MovimientoStock;
// los nombres antiguos (tipo, productoId sin nombreProducto) no se conservan.
type Movement struct {
	ID          int    `json:"idMovimiento,omitempty"`
	ProductName string `json:"nombreProducto,omitempty"`
	Type        string `json:"tipoMovimiento"` // INGRESO | SALIDA
	Quantity    int    `json:"cantidad"`
	Date        string `json:"fechaMovimiento,omitempty"`
	PerformedBy string `json:"realizadoPor,omitempty"`
	Observation string `json:"observacion"`
	ProductID   int    `json:"productoId"`
	UserID      int    `json:"usuarioId"`
}

func (m Movement) RowID() int { return m.ID }

func (m Movement) FilterFields() FieldSet {
	return FieldSet{
		"id":       {Value: strconv.Itoa(m.ID)},
		"producto": {Value: m.ProductName},
		"tipo":     {Value: m.Type, Exact: true},
		"cantidad": {Value: strconv.Itoa(m.Quantity)},
		"usuario":  {Value: m.PerformedBy},
	}
}

// MovementCreate payload que espera el servicio al registrar un movimiento
// (nombres de campo distintos a los del listado).
type MovementCreate struct {
	ProductID   int    `json:"idProducto"`
	Type        string `json:"tipoMovimiento"`
	Quantity    int    `json:"cantidad"`
	UserID      int    `json:"idUsuario"`
	Observation string `json:"observacion"`
}

// CreatePayload proyecta el movimiento a la forma de creación del servicio.
func (m Movement) CreatePayload() MovementCreate {
	return MovementCreate{
		ProductID:   m.ProductID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		UserID:      m.UserID,
		Observation: m.Observation,
	}
}
