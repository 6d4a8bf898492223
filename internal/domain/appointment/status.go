package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Estado de la cita
// ===============================

type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmada"
	StatusFinalized Status = "finalizada"
	StatusCancelled Status = "cancelada"
)

// IsActive reports whether a cita still occupies its time range.
func IsActive(s Status) bool {
	return s != StatusCancelled
}

func errInvalidState(message string) error {
	return httperr.ErrValidation("invalid_state", message)
}

// ===============================
// Validaciones
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return errInvalidState("Solo se pueden confirmar citas pendientes.")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return errInvalidState("La cita no puede ser cancelada.")
	}
	return nil
}

func CanFinalize(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return errInvalidState("La cita no puede ser finalizada.")
	}
	return nil
}

func CanRegisterPayment(current Status) error {
	if current == StatusCancelled {
		return errInvalidState("No se registran pagos sobre citas canceladas.")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
