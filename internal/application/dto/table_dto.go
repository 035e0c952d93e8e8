package dto

// Permissions qué acciones puede ofrecer la vista al operador sobre la
// sección. Cuando un permiso es falso la UI simplemente no renderiza el
// botón; no es un error.
type Permissions struct {
	Crear    bool `json:"crear"`
	Editar   bool `json:"editar"`
	Eliminar bool `json:"eliminar"`
}

// TableResponse página lista para renderizar de una sección.
// TotalPaginas 0 con Filas vacías significa "sin resultados" (la fila de
// placeholder), no un estado de carga.
type TableResponse[T any] struct {
	Seccion        string      `json:"seccion"`
	Filas          []T         `json:"filas"`
	Pagina         int         `json:"pagina"`
	TotalPaginas   int         `json:"totalPaginas"`
	TotalRegistros int         `json:"totalRegistros"`
	Permisos       Permissions `json:"permisos"`
}

// MutationResponse confirmación de un alta/edición/borrado exitoso.
type MutationResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
