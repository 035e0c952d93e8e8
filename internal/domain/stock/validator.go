// Package stock valida movimientos de inventario antes de despacharlos al
// servicio remoto: es la única regla de corrección de dominio de esta capa.
package stock

import (
	"strings"

	"github.com/jhoicas/almacen-admin/internal/domain"
	"github.com/jhoicas/almacen-admin/internal/domain/entity"
)

// NormalizeDirection canoniza la dirección de un movimiento. ENTRADA se
// acepta como alias deprecado de INGRESO. Devuelve ErrInvalidInput para
// cualquier otro valor.
func NormalizeDirection(tipo string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(tipo)) {
	case entity.MovementIngreso, entity.MovementEntradaLegacy:
		return entity.MovementIngreso, nil
	case entity.MovementSalida:
		return entity.MovementSalida, nil
	}
	return "", domain.ErrInvalidInput
}

// Prospective calcula el stock resultante de aplicar el movimiento al stock
// actual: current+qty para INGRESO, current-qty para SALIDA.
func Prospective(current int, tipo string, qty int) (int, error) {
	dir, err := NormalizeDirection(tipo)
	if err != nil {
		return 0, err
	}
	if qty <= 0 {
		return 0, domain.ErrInvalidInput
	}
	if dir == entity.MovementSalida {
		return current - qty, nil
	}
	return current + qty, nil
}

// Validate rechaza, antes de cualquier llamada de red, un movimiento con
// cantidad no positiva, dirección desconocida, o una SALIDA que dejaría el
// stock del producto en negativo.
func Validate(current int, tipo string, qty int) error {
	next, err := Prospective(current, tipo, qty)
	if err != nil {
		return err
	}
	if next < 0 {
		return domain.ErrStockInsuficiente
	}
	return nil
}

// IsLow indica stock bajo: stock actual en o por debajo del mínimo configurado.
func IsLow(current, minimum int) bool { return current <= minimum }
