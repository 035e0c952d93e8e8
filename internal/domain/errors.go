package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrStockInsuficiente = errors.New("stock insuficiente")
	ErrSubmitInProgress  = errors.New("envío en curso")
)

// TransportError falla de red o del servicio remoto de persistencia.
// Es reintentable: el operador puede volver a lanzar la acción; la última
// colección buena permanece visible mientras tanto.
type TransportError struct {
	Op     string // operación lógica: "list productos", "create marcas", ...
	URL    string
	Status int   // 0 si la petición no llegó a obtener respuesta
	Err    error // causa subyacente (puede ser nil si solo hay status)
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transporte: %s %s: HTTP %d", e.Op, e.URL, e.Status)
	}
	return fmt.Sprintf("transporte: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport indica si err es (o envuelve) un TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
