package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-admin/internal/domain"
	"github.com/jhoicas/almacen-admin/internal/domain/rbac"
)

// ──────────────────────────────────────────────────────────────────────────────
// Conjuntos de roles por sección
// ──────────────────────────────────────────────────────────────────────────────

func TestCanPerform_RolesPorSeccion(t *testing.T) {
	p := rbac.NewPolicy()

	cases := []struct {
		name    string
		role    string
		action  rbac.Action
		section domain.Section
		want    bool
	}{
		{"almacenero no elimina usuarios", "almacenero", rbac.ActionDelete, domain.SectionUsuarios, false},
		{"almacenero no edita usuarios", "almacenero", rbac.ActionEdit, domain.SectionUsuarios, false},
		{"administrador elimina usuarios", "administrador", rbac.ActionDelete, domain.SectionUsuarios, true},
		{"gerente_almacen edita usuarios", "gerente_almacen", rbac.ActionEdit, domain.SectionUsuarios, true},

		{"almacenero crea productos", "almacenero", rbac.ActionCreate, domain.SectionProductos, true},
		{"control_calidad edita productos", "control_calidad", rbac.ActionEdit, domain.SectionProductos, true},
		{"control_calidad no elimina productos", "control_calidad", rbac.ActionDelete, domain.SectionProductos, false},

		{"supervisor elimina marcas", "supervisor", rbac.ActionDelete, domain.SectionMarcas, true},
		{"almacenero no edita marcas", "almacenero", rbac.ActionEdit, domain.SectionMarcas, false},

		{"almacenero registra movimientos", "almacenero", rbac.ActionCreate, domain.SectionMovimientos, true},
		{"almacenero no elimina movimientos", "almacenero", rbac.ActionDelete, domain.SectionMovimientos, false},

		{"control_calidad edita proveedores", "control_calidad", rbac.ActionEdit, domain.SectionProveedores, true},
		{"supervisor no elimina proveedores", "supervisor", rbac.ActionDelete, domain.SectionProveedores, false},

		{"almacenero no elimina pedidos", "almacenero", rbac.ActionDelete, domain.SectionPedidos, false},
		{"gerente_almacen elimina pedidos", "gerente_almacen", rbac.ActionDelete, domain.SectionPedidos, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.CanPerform(tc.role, tc.action, tc.section))
		})
	}
}

// La comparación de rol es insensible a mayúsculas y espacios, como en las
// pantallas originales (rol.toLowerCase()).
func TestCanPerform_RolEnMayusculas(t *testing.T) {
	p := rbac.NewPolicy()
	assert.True(t, p.CanPerform("ADMINISTRADOR", rbac.ActionDelete, domain.SectionUsuarios))
	assert.True(t, p.CanPerform("  Supervisor ", rbac.ActionEdit, domain.SectionMarcas))
}

// ──────────────────────────────────────────────────────────────────────────────
// Roles desconocidos: lectura permitida, mutación denegada
// ──────────────────────────────────────────────────────────────────────────────

func TestCanPerform_RolDesconocido(t *testing.T) {
	p := rbac.NewPolicy()

	assert.True(t, p.CanPerform("practicante", rbac.ActionView, domain.SectionProductos),
		"un rol desconocido puede ver listados")
	assert.False(t, p.CanPerform("practicante", rbac.ActionCreate, domain.SectionProductos),
		"un rol desconocido no puede mutar")
	assert.False(t, p.CanPerform("practicante", rbac.ActionDelete, domain.SectionMarcas))
	assert.False(t, p.CanPerform("", rbac.ActionEdit, domain.SectionPedidos))
}

// Proveedores es la única sección con lectura restringida.
func TestCanPerform_VistaProveedores(t *testing.T) {
	p := rbac.NewPolicy()

	assert.True(t, p.CanPerform("supervisor", rbac.ActionView, domain.SectionProveedores))
	assert.True(t, p.CanPerform("gerente_almacen", rbac.ActionView, domain.SectionProveedores))
	assert.False(t, p.CanPerform("almacenero", rbac.ActionView, domain.SectionProveedores),
		"almacenero no ve la sección de proveedores")
	assert.False(t, p.CanPerform("control_calidad", rbac.ActionView, domain.SectionProveedores))

	// El resto de secciones es visible para cualquier rol autenticado.
	assert.True(t, p.CanPerform("almacenero", rbac.ActionView, domain.SectionUsuarios))
	assert.True(t, p.CanPerform("control_calidad", rbac.ActionView, domain.SectionMovimientos))
}

// Acción desconocida: denegada, nunca pánico.
func TestCanPerform_AccionDesconocida(t *testing.T) {
	p := rbac.NewPolicy()
	assert.False(t, p.CanPerform("administrador", rbac.Action("export"), domain.SectionProductos))
}
