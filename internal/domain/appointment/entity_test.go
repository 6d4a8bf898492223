package appointment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestStateTransitions(t *testing.T) {
	now := time.Now()

	ap := &models.Cita{Estado: string(StatusPending)}
	require.NoError(t, Confirm(ap, now))
	assert.Equal(t, string(StatusConfirmed), ap.Estado)
	assert.NotNil(t, ap.ConfirmadaEn)

	assert.Error(t, Confirm(ap, now))

	require.NoError(t, Finalize(ap, now))
	assert.Equal(t, string(StatusFinalized), ap.Estado)

	err := Cancel(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	pending := &models.Cita{Estado: string(StatusPending)}
	require.NoError(t, Cancel(pending, now))
	assert.False(t, IsActive(Status(pending.Estado)))
	assert.Error(t, Finalize(pending, now))
}

func TestRegisterPayment(t *testing.T) {
	ap := &models.Cita{
		Estado:         string(StatusConfirmed),
		ValorTotal:     decimal.NewFromInt(100000),
		SaldoPendiente: decimal.NewFromInt(100000),
	}

	require.NoError(t, RegisterPayment(ap, decimal.NewFromInt(30000), "Efectivo"))
	assert.True(t, ap.Abono.Equal(decimal.NewFromInt(30000)))
	assert.True(t, ap.SaldoPendiente.Equal(decimal.NewFromInt(70000)))
	assert.Equal(t, "efectivo", ap.MetodoPago)

	err := RegisterPayment(ap, decimal.NewFromInt(80000), "tarjeta")
	assert.True(t, httperr.IsBusiness(err, "amount_exceeds_total"))

	err = RegisterPayment(ap, decimal.Zero, "tarjeta")
	assert.True(t, httperr.IsBusiness(err, "invalid_amount"))

	err = RegisterPayment(ap, decimal.NewFromInt(10), "bitcoin")
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"))

	require.NoError(t, RegisterPayment(ap, decimal.NewFromInt(70000), "transferencia"))
	assert.True(t, ap.SaldoPendiente.IsZero())

	cancelled := &models.Cita{Estado: string(StatusCancelled), ValorTotal: decimal.NewFromInt(10)}
	assert.Error(t, RegisterPayment(cancelled, decimal.NewFromInt(1), "efectivo"))
}
