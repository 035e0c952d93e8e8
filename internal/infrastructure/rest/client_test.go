package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-admin/internal/domain"
	"github.com/jhoicas/almacen-admin/internal/domain/entity"
	"github.com/jhoicas/almacen-admin/internal/infrastructure/rest"
)

func nuevoCliente(t *testing.T, h http.HandlerFunc) (*rest.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return rest.NewClient(srv.URL, "token-servicio", 5*time.Second, zerolog.Nop()), srv
}

// ─────────────────────────────────────────────────────────────────────────────
// Operaciones CRUD contra el servicio
// ─────────────────────────────────────────────────────────────────────────────

func TestResource_ListDecodificaColeccion(t *testing.T) {
	c, _ := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/marcas", r.URL.Path)
		assert.Equal(t, "Bearer token-servicio", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]entity.Brand{
			{ID: 1, Name: "Gloria", CountryOrigin: "Perú", Status: entity.StatusActivo},
			{ID: 2, Name: "Lenovo", CountryOrigin: "China", Status: entity.StatusActivo},
		})
	})

	gw := rest.NewResource[entity.Brand](c, "/marcas")
	items, err := gw.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Gloria", items[0].Name)
}

func TestResource_CreateDevuelveRegistroConID(t *testing.T) {
	c, _ := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in entity.Brand
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 7
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	})

	gw := rest.NewResource[entity.Brand](c, "/marcas")
	out, err := gw.Create(context.Background(), entity.Brand{Name: "Ariel", Status: entity.StatusActivo})
	require.NoError(t, err)
	assert.Equal(t, 7, out.ID)
	assert.Equal(t, "Ariel", out.Name)
}

func TestResource_DeleteGolpeaRutaConID(t *testing.T) {
	var ruta string
	c, _ := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		ruta = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	gw := rest.NewResource[entity.Brand](c, "/marcas")
	require.NoError(t, gw.Delete(context.Background(), 7))
	assert.Equal(t, "DELETE /marcas/7", ruta)
}

// El movimiento se escribe con el payload de creación del servicio
// (idProducto/idUsuario), no con la forma del listado.
func TestMovementResource_CreateProyectaPayload(t *testing.T) {
	var body map[string]any
	c, _ := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(entity.Movement{ID: 1})
	})

	gw := rest.NewMovementResource(c)
	_, err := gw.Create(context.Background(), entity.Movement{
		ProductID:   3,
		Type:        entity.MovementIngreso,
		Quantity:    5,
		UserID:      6,
		Observation: "reposición",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "idProducto")
	assert.Contains(t, body, "idUsuario")
	assert.NotContains(t, body, "productoId", "la forma del listado no viaja en la escritura")
	assert.EqualValues(t, 3, body["idProducto"])
	assert.Equal(t, entity.MovementIngreso, body["tipoMovimiento"])
}

func TestClient_LowStock(t *testing.T) {
	c, _ := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/productos/bajo-stock", r.URL.Path)
		json.NewEncoder(w).Encode([]entity.LowStockProduct{
			{ID: 2, Name: "Café Orgánico", CategoryName: "Alimentos", BrandName: "Juan Valdez", CurrentStock: 3, MinimumStock: 10},
		})
	})

	items, err := c.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Café Orgánico", items[0].Name)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mapeo de fallos a la taxonomía de dominio
// ─────────────────────────────────────────────────────────────────────────────

func TestClient_MapeoDeEstados(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusBadRequest, domain.ErrInvalidInput},
		{http.StatusUnprocessableEntity, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		c, _ := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		gw := rest.NewResource[entity.Brand](c, "/marcas")
		_, err := gw.List(context.Background())
		assert.ErrorIs(t, err, tc.want, "estado %d", tc.status)
	}
}

// Un 5xx es un fallo de transporte reintentable, con el estado a mano para el
// log.
func TestClient_ErrorDeServidorEsTransporte(t *testing.T) {
	c, _ := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	gw := rest.NewResource[entity.Brand](c, "/marcas")

	_, err := gw.List(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsTransport(err))

	var terr *domain.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusInternalServerError, terr.Status)
}

// Servicio caído (conexión rechazada) → fallo de transporte, nunca un pánico
// ni un error crudo de net/http sin envolver.
func TestClient_ServicioCaidoEsTransporte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := rest.NewClient(url, "", time.Second, zerolog.Nop())
	gw := rest.NewResource[entity.Brand](c, "/marcas")

	_, err := gw.List(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsTransport(err))
}

// Sin token de servicio no se emite cabecera Authorization.
func TestClient_SinTokenSinAuthorization(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]entity.Brand{})
	}))
	t.Cleanup(srv.Close)

	c := rest.NewClient(srv.URL, "", time.Second, zerolog.Nop())
	gw := rest.NewResource[entity.Brand](c, "/marcas")
	_, err := gw.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, auth)
}
