package entity

import "strconv"

// Roles conocidos del sistema. La política de permisos compara siempre en
// minúsculas; un rol desconocido puede ver listados pero no mutar.
const (
	RoleAdministrador  = "administrador"
	RoleSupervisor     = "supervisor"
	RoleAlmacenero     = "almacenero"
	RoleGerenteAlmacen = "gerente_almacen"
	RoleControlCalidad = "control_calidad"
)

// User operador del sistema. Estado es booleano en el contrato del servicio
// (a diferencia del estado Activo/Inactivo de marcas y categorías).
type User struct {
	ID       int    `json:"idUsuario,omitempty"`
	Name     string `json:"nombreUsuario"`
	Email    string `json:"correo"`
	Password string `json:"contrasenia,omitempty"`
	Role     string `json:"rol"`
	Active   bool   `json:"estado"`
}

func (u User) RowID() int { return u.ID }

func (u User) FilterFields() FieldSet {
	return FieldSet{
		"id":     {Value: strconv.Itoa(u.ID)},
		"nombre": {Value: u.Name},
		"correo": {Value: u.Email},
		"rol":    {Value: u.Role, Exact: true},
	}
}
