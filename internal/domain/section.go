package domain

// Section identifica una pantalla de administración (una por tipo de entidad).
type Section string

const (
	SectionUsuarios    Section = "usuarios"
	SectionProductos   Section = "productos"
	SectionProveedores Section = "proveedores"
	SectionCategorias  Section = "categorias"
	SectionMarcas      Section = "marcas"
	SectionMovimientos Section = "movimientos"
	SectionPedidos     Section = "pedidos"
	SectionReportes    Section = "reportes"
)

// Sections todas las secciones administrables (excluye reportes, que es solo lectura).
var Sections = []Section{
	SectionUsuarios,
	SectionProductos,
	SectionProveedores,
	SectionCategorias,
	SectionMarcas,
	SectionMovimientos,
	SectionPedidos,
}

// ParseSection valida un nombre de sección recibido por la ruta.
func ParseSection(s string) (Section, bool) {
	sec := Section(s)
	if sec == SectionReportes {
		return sec, true
	}
	for _, known := range Sections {
		if sec == known {
			return sec, true
		}
	}
	return "", false
}
