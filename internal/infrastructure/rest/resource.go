package rest

import (
	"context"
	"fmt"
	"net/http"
)

// Resource gateway genérico de una colección REST: list/create/update/delete
// sobre /<path> y /<path>/<id>. Satisface el puerto table.Gateway para las
// secciones cuyo payload de escritura coincide con el de lectura.
type Resource[T any] struct {
	c    *Client
	path string // ej. "/productos"
}

// NewResource construye el gateway de una colección.
func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path}
}

// List obtiene la colección completa.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create persiste un registro nuevo y devuelve la versión con id asignado.
func (r *Resource[T]) Create(ctx context.Context, rec T) (T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.path, rec, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Update reemplaza el registro id.
func (r *Resource[T]) Update(ctx context.Context, id int, rec T) (T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.path, id), rec, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Delete elimina físicamente el registro id.
func (r *Resource[T]) Delete(ctx context.Context, id int) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), nil, nil)
}
