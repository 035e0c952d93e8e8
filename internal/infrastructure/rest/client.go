// Package rest implementa los puertos de tabla contra el servicio remoto de
// persistencia (REST/JSON). Usa net/http de la stdlib; no requiere librerías
// de terceros para el cliente saliente.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/almacen-admin/internal/domain"
)

// Client cliente HTTP hacia el servicio de persistencia.
type Client struct {
	baseURL string
	token   string // bearer de servicio; vacío = sin Authorization
	http    *http.Client
	log     zerolog.Logger
}

// NewClient construye el cliente. baseURL sin barra final
// (ej. http://localhost:8080/api).
func NewClient(baseURL, token string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
		log:     log.With().Str("componente", "rest").Logger(),
	}
}

// do ejecuta una petición JSON y decodifica la respuesta en out (si out no es
// nil). Mapea los fallos a la taxonomía de dominio: errores de red →
// TransportError (reintentable); 4xx conocidos → centinelas de dominio.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL + path
	op := fmt.Sprintf("%s %s", method, path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo de %s: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return &domain.TransportError{Op: op, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("fallo de red contra el servicio")
		return &domain.TransportError{Op: op, URL: url, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// sigue abajo
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return domain.ErrForbidden
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	default:
		return &domain.TransportError{Op: op, URL: url, Status: resp.StatusCode}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.TransportError{Op: op, URL: url, Err: fmt.Errorf("decodificar respuesta: %w", err)}
	}
	return nil
}
