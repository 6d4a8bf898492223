package appointment

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Acciones de dominio
// ===============================

func Confirm(ap *models.Cita, now time.Time) error {
	if err := CanConfirm(Status(ap.Estado)); err != nil {
		return err
	}

	ap.Estado = string(StatusConfirmed)
	ap.ConfirmadaEn = &now
	return nil
}

func Cancel(ap *models.Cita, now time.Time) error {
	if err := CanCancel(Status(ap.Estado)); err != nil {
		return err
	}

	ap.Estado = string(StatusCancelled)
	ap.CanceladaEn = &now
	return nil
}

func Finalize(ap *models.Cita, now time.Time) error {
	if err := CanFinalize(Status(ap.Estado)); err != nil {
		return err
	}

	ap.Estado = string(StatusFinalized)
	ap.FinalizadaEn = &now
	return nil
}

var paymentMethods = map[string]bool{
	"efectivo":      true,
	"tarjeta":       true,
	"transferencia": true,
}

// RegisterPayment adds amount to the abono and recomputes the pending
// balance. The accumulated abono can never exceed valor_total.
func RegisterPayment(ap *models.Cita, amount decimal.Decimal, method string) error {
	if err := CanRegisterPayment(Status(ap.Estado)); err != nil {
		return err
	}

	method = strings.ToLower(strings.TrimSpace(method))
	if !paymentMethods[method] {
		return httperr.ErrValidation("invalid_payment_method", "Método de pago inválido.")
	}
	if !amount.IsPositive() {
		return httperr.ErrValidation("invalid_amount", "El abono debe ser mayor que cero.")
	}

	abono := ap.Abono.Add(amount)
	if abono.GreaterThan(ap.ValorTotal) {
		return httperr.ErrValidation("amount_exceeds_total", "El abono supera el valor total de la cita.")
	}

	ap.Abono = abono
	ap.SaldoPendiente = ap.ValorTotal.Sub(abono)
	ap.MetodoPago = method
	return nil
}
