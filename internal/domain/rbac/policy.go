// Package rbac centraliza la comparación rol → acción → sección que el
// sistema original repetía inline en cada tabla.
package rbac

import (
	"strings"

	"github.com/jhoicas/almacen-admin/internal/domain"
)

// Action acción que un operador intenta sobre una sección.
type Action string

const (
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionView   Action = "viewSection"
)

// Policy decide si un rol puede ejecutar una acción sobre una sección.
// Total: nunca lanza; un rol desconocido queda denegado para acciones
// mutantes y permitido para lectura.
type Policy interface {
	CanPerform(role string, action Action, section domain.Section) bool
}

type roleSet map[string]struct{}

func set(roles ...string) roleSet {
	s := make(roleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

func (s roleSet) has(role string) bool {
	_, ok := s[role]
	return ok
}

// Conjuntos de roles por sección, tal como los exponen las pantallas:
// crear y editar comparten conjunto (puedeModificar); eliminar tiene el suyo.
var (
	modifyBySection = map[domain.Section]roleSet{
		domain.SectionProductos:   set("control_calidad", "supervisor", "almacenero", "administrador", "gerente_almacen"),
		domain.SectionUsuarios:    set("administrador", "gerente_almacen"),
		domain.SectionProveedores: set("control_calidad", "supervisor", "administrador", "gerente_almacen"),
		domain.SectionCategorias:  set("administrador", "supervisor"),
		domain.SectionMarcas:      set("supervisor", "administrador"),
		domain.SectionMovimientos: set("almacenero", "administrador", "supervisor"),
		domain.SectionPedidos:     set("control_calidad", "supervisor", "almacenero", "administrador", "gerente_almacen"),
	}

	deleteBySection = map[domain.Section]roleSet{
		domain.SectionProductos:   set("supervisor", "almacenero", "administrador", "gerente_almacen"),
		domain.SectionUsuarios:    set("administrador", "gerente_almacen"),
		domain.SectionProveedores: set("administrador", "gerente_almacen"),
		domain.SectionCategorias:  set("administrador", "supervisor"),
		domain.SectionMarcas:      set("supervisor", "administrador"),
		domain.SectionMovimientos: set("administrador", "supervisor"),
		domain.SectionPedidos:     set("administrador", "gerente_almacen"),
	}

	// Solo las secciones listadas restringen la lectura; el resto es visible
	// para cualquier rol autenticado.
	viewBySection = map[domain.Section]roleSet{
		domain.SectionProveedores: set("supervisor", "administrador", "gerente_almacen"),
	}
)

// DefaultPolicy implementación estática de Policy.
type DefaultPolicy struct{}

// NewPolicy construye la política por defecto.
func NewPolicy() DefaultPolicy { return DefaultPolicy{} }

// CanPerform evalúa (rol, acción, sección). La comparación de rol es en
// minúsculas y sin espacios sobrantes.
func (DefaultPolicy) CanPerform(role string, action Action, section domain.Section) bool {
	r := strings.ToLower(strings.TrimSpace(role))
	switch action {
	case ActionView:
		allowed, restricted := viewBySection[section]
		if !restricted {
			return true
		}
		return allowed.has(r)
	case ActionCreate, ActionEdit:
		return modifyBySection[section].has(r)
	case ActionDelete:
		return deleteBySection[section].has(r)
	}
	return false
}
