package entity

// Field valor de un campo tal como lo ve el filtrado de tablas.
// Exact marca los campos enumerados (estado, tipo de movimiento, rol):
// coinciden solo por igualdad, no por subcadena.
type Field struct {
	Value string
	Exact bool
}

// FieldSet mapa nombre de campo → valor filtrable de un registro.
type FieldSet map[string]Field

// Estados válidos para Marca, Categoría y Producto. El "borrado" de una marca
// es la transición a Inactivo, nunca una eliminación física.
const (
	StatusActivo   = "Activo"
	StatusInactivo = "Inactivo"
)
