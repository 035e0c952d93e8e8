package table

import (
	"context"

	"github.com/jhoicas/almacen-admin/internal/domain/entity"
)

// Row registro mostrable en una tabla de sección. El ID es 0 mientras el
// servicio remoto no haya persistido el registro; una vez asignado es
// inmutable del lado cliente.
type Row interface {
	RowID() int
	FilterFields() entity.FieldSet
}

// Gateway puerto hacia el servicio remoto de persistencia para una sección.
// Todas las operaciones son asíncronas y falibles; la capa no asume
// atomicidad entre llamadas a secciones distintas.
type Gateway[T Row] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id int, rec T) (T, error)
	Delete(ctx context.Context, id int) error
}
