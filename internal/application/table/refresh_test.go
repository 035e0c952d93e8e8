package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-admin/internal/application/table"
	"github.com/jhoicas/almacen-admin/internal/domain"
)

func TestCoordinator_VersionMonotonaPorSeccion(t *testing.T) {
	c := table.NewCoordinator()

	assert.EqualValues(t, 0, c.Version(domain.SectionMarcas))

	c.Notify(domain.SectionMarcas)
	c.Notify(domain.SectionMarcas)
	assert.EqualValues(t, 2, c.Version(domain.SectionMarcas))

	// Las secciones son independientes.
	assert.EqualValues(t, 0, c.Version(domain.SectionProductos))
}

func TestCoordinator_SuscripcionRecibeSenal(t *testing.T) {
	c := table.NewCoordinator()
	ch := c.Subscribe(domain.SectionProductos)

	select {
	case <-ch:
		t.Fatal("no debe haber señal antes de Notify")
	default:
	}

	c.Notify(domain.SectionProductos)

	select {
	case <-ch:
	default:
		t.Fatal("la suscripción debe recibir la señal de obsolescencia")
	}
}

// Ráfagas de notificaciones se coalescen: el consumidor que muestrea la
// última señal hace un único refetch, que es idempotente.
func TestCoordinator_RafagaSeCoalesce(t *testing.T) {
	c := table.NewCoordinator()
	ch := c.Subscribe(domain.SectionMovimientos)

	for i := 0; i < 5; i++ {
		c.Notify(domain.SectionMovimientos)
	}
	assert.EqualValues(t, 5, c.Version(domain.SectionMovimientos))

	count := 0
	for {
		select {
		case <-ch:
			count++
			continue
		default:
		}
		break
	}
	assert.Equal(t, 1, count, "cinco notificaciones seguidas producen una sola señal pendiente")
}

func TestCoordinator_NoNotificaAOtraSeccion(t *testing.T) {
	c := table.NewCoordinator()
	ch := c.Subscribe(domain.SectionUsuarios)

	c.Notify(domain.SectionPedidos)

	select {
	case <-ch:
		t.Fatal("una mutación en pedidos no debe despertar a usuarios")
	default:
	}
}
