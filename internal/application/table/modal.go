package table

import (
	"context"

	"github.com/jhoicas/almacen-admin/internal/domain"
)

// ModalState estado del formulario modal de alta/edición.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
	ModalSubmitting
)

// ModalMode modo del formulario abierto.
type ModalMode int

const (
	ModeCreate ModalMode = iota
	ModeEdit
)

// Modal controla el ciclo de vida del formulario de una sección:
// Closed → Open(create|edit) → Submitting → Closed. El registro en edición
// vive solo mientras el modal está abierto; Close lo descarta siempre.
type Modal[T Row] struct {
	state  ModalState
	mode   ModalMode
	record T
	err    error

	gateway      Gateway[T]
	validate     func(T) error                          // campos requeridos
	beforeSubmit func(context.Context, *T) error        // regla de dominio previa al envío (opcional)
	onSuccess    func(context.Context)                  // lo cablea el controlador de tabla
}

// OpenCreate abre el modal en modo alta con el registro por defecto.
func (m *Modal[T]) OpenCreate(def T) {
	m.state = ModalOpen
	m.mode = ModeCreate
	m.record = def
	m.err = nil
}

// OpenEdit abre el modal en modo edición poblado desde la fila seleccionada.
func (m *Modal[T]) OpenEdit(rec T) {
	m.state = ModalOpen
	m.mode = ModeEdit
	m.record = rec
	m.err = nil
}

// State devuelve el estado actual.
func (m *Modal[T]) State() ModalState { return m.state }

// Mode devuelve el modo del formulario abierto.
func (m *Modal[T]) Mode() ModalMode { return m.mode }

// Record devuelve el registro en edición.
func (m *Modal[T]) Record() T { return m.record }

// SetRecord reemplaza el registro en edición (el operador modifica campos).
// Sin efecto si el modal no está abierto.
func (m *Modal[T]) SetRecord(rec T) {
	if m.state != ModalOpen {
		return
	}
	m.record = rec
}

// Err devuelve el error del último envío fallido, visible inline en el
// formulario abierto.
func (m *Modal[T]) Err() error { return m.err }

// Submit valida y despacha el registro. Con el modal ya en Submitting
// devuelve ErrSubmitInProgress (guardia contra doble envío). Si la
// validación o el envío fallan, el modal permanece abierto con el registro
// intacto para que el operador corrija y reenvíe. En éxito cierra y notifica.
func (m *Modal[T]) Submit(ctx context.Context) error {
	switch m.state {
	case ModalClosed:
		return domain.ErrInvalidInput
	case ModalSubmitting:
		return domain.ErrSubmitInProgress
	}

	if m.validate != nil {
		if err := m.validate(m.record); err != nil {
			m.err = err
			return err
		}
	}
	if m.beforeSubmit != nil {
		if err := m.beforeSubmit(ctx, &m.record); err != nil {
			m.err = err
			return err
		}
	}

	m.state = ModalSubmitting
	var err error
	if m.mode == ModeCreate {
		_, err = m.gateway.Create(ctx, m.record)
	} else {
		_, err = m.gateway.Update(ctx, m.record.RowID(), m.record)
	}
	if err != nil {
		// El envío falló: de vuelta a Open con los datos ingresados intactos.
		m.state = ModalOpen
		m.err = err
		return err
	}

	m.close()
	if m.onSuccess != nil {
		m.onSuccess(ctx)
	}
	return nil
}

// Close descarta incondicionalmente el registro en curso y cierra el modal.
// Disponible desde cualquier estado abierto.
func (m *Modal[T]) Close() { m.close() }

func (m *Modal[T]) close() {
	var zero T
	m.state = ModalClosed
	m.record = zero
	m.err = nil
}
