package appointment

import (
	"context"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type RegisterPayment struct {
	Deps
}

func NewRegisterPayment(deps Deps) *RegisterPayment {
	return &RegisterPayment{Deps: deps}
}

func (uc *RegisterPayment) Execute(
	ctx context.Context,
	caller scope.Identity,
	citaID string,
	amount decimal.Decimal,
	method string,
) (*models.Cita, error) {

	ap, err := uc.mutateCita(ctx, caller, citaID, func(c *models.Cita) error {
		return domain.RegisterPayment(c, amount, method)
	})
	if err != nil {
		return nil, err
	}

	metrics.CitaTransitions.WithLabelValues("paid").Inc()
	uc.emit(caller, ap, "cita_payment", map[string]any{
		"monto":  amount.StringFixed(2),
		"metodo": ap.MetodoPago,
		"saldo":  ap.SaldoPendiente.StringFixed(2),
	})

	return ap, nil
}
