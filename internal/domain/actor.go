package domain

// Actor es el operador autenticado. Lo entrega el componente de login externo
// (vía token de sesión) en el momento de construir los controladores; esta
// capa nunca obtiene ni cachea credenciales por sí misma.
type Actor struct {
	ID   int
	Name string
	Role string // administrador, supervisor, almacenero, gerente_almacen, control_calidad, ...
}
