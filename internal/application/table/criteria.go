package table

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/almacen-admin/internal/domain/entity"
)

// Criteria criterios de filtrado de una sección: campo → consulta.
// Cadena vacía o campo ausente significa "sin restricción". El filtrado
// nunca muta la colección subyacente; solo computa una vista derivada.
type Criteria map[string]string

// fold normaliza para comparación: minúsculas y sin diacríticos, de modo que
// "categoria" encuentre "Categoría".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Matches evalúa el AND de todos los criterios activos sobre los campos del
// registro. Texto: contención de subcadena insensible a mayúsculas y tildes.
// Campos enumerados (Exact): igualdad insensible a mayúsculas. Los ids
// numéricos se comparan como subcadena de su representación decimal.
func (c Criteria) Matches(fields entity.FieldSet) bool {
	for name, query := range c {
		q := strings.TrimSpace(query)
		if q == "" {
			continue
		}
		f, ok := fields[name]
		if !ok {
			// Criterio sobre un campo que el registro no expone: sin efecto.
			continue
		}
		if f.Exact {
			if !strings.EqualFold(strings.TrimSpace(f.Value), q) {
				return false
			}
			continue
		}
		if !strings.Contains(fold(f.Value), fold(q)) {
			return false
		}
	}
	return true
}

// Active indica si hay al menos un criterio con valor.
func (c Criteria) Active() bool {
	for _, q := range c {
		if strings.TrimSpace(q) != "" {
			return true
		}
	}
	return false
}

// Filter devuelve la vista filtrada de items según los criterios, en el
// orden original.
func Filter[T Row](items []T, c Criteria) []T {
	if !c.Active() {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if c.Matches(it.FilterFields()) {
			out = append(out, it)
		}
	}
	return out
}
