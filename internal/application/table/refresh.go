package table

import (
	"sync"

	"github.com/jhoicas/almacen-admin/internal/domain"
)

// Coordinator señal de refresco entre componentes hermanos: cada mutación
// exitosa sobre una sección incrementa su versión, y cualquier tabla de esa
// sección debe refetchear al observar una versión mayor a la última vista.
// Los canales de suscripción tienen capacidad 1 y envío no bloqueante, así
// que ráfagas de notificaciones se coalescen en un único refetch (aceptable:
// el refetch es idempotente).
type Coordinator struct {
	mu       sync.Mutex
	versions map[domain.Section]uint64
	subs     map[domain.Section][]chan struct{}
}

// NewCoordinator construye el coordinador.
func NewCoordinator() *Coordinator {
	return &Coordinator{
		versions: make(map[domain.Section]uint64),
		subs:     make(map[domain.Section][]chan struct{}),
	}
}

// Notify marca la colección de la sección como obsoleta tras una mutación
// exitosa en cualquier componente.
func (c *Coordinator) Notify(section domain.Section) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[section]++
	for _, ch := range c.subs[section] {
		select {
		case ch <- struct{}{}:
		default: // ya hay una señal pendiente; se coalesce
		}
	}
}

// Version devuelve la versión monótona actual de la sección.
func (c *Coordinator) Version(section domain.Section) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[section]
}

// Subscribe devuelve un canal que recibe una señal cuando la sección queda
// obsoleta. El consumidor que solo muestrea la última señal se pierde como
// mucho la coalescencia, nunca la obsolescencia.
func (c *Coordinator) Subscribe(section domain.Section) <-chan struct{} {
	ch := make(chan struct{}, 1)
	c.mu.Lock()
	c.subs[section] = append(c.subs[section], ch)
	c.mu.Unlock()
	return ch
}
