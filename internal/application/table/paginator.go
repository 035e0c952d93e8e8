package table

// DefaultPageSize filas por página en todas las tablas del sistema original.
const DefaultPageSize = 10

// Page ventana ordenada sobre una colección filtrada. Siempre recomputada,
// nunca persistida. Con colección vacía TotalPages es 0 y la vista muestra
// la fila de "sin resultados" (que no es un estado de carga).
type Page[T any] struct {
	Items      []T
	Index      int // 1-based; clavado a [1, TotalPages] (1 si TotalPages es 0)
	TotalPages int
	TotalItems int
}

// Paginate corta items en la página index de tamaño size. index fuera de
// rango se clava al límite más cercano; size no positivo usa
// DefaultPageSize.
func Paginate[T any](items []T, index, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	n := len(items)
	if n == 0 {
		return Page[T]{Index: 1, TotalPages: 0, TotalItems: 0}
	}
	total := (n + size - 1) / size
	if index < 1 {
		index = 1
	}
	if index > total {
		index = total
	}
	start := (index - 1) * size
	end := start + size
	if end > n {
		end = n
	}
	return Page[T]{
		Items:      items[start:end],
		Index:      index,
		TotalPages: total,
		TotalItems: n,
	}
}
