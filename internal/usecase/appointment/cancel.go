package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CancelAppointment struct {
	Deps
}

func NewCancelAppointment(deps Deps) *CancelAppointment {
	return &CancelAppointment{Deps: deps}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	caller scope.Identity,
	citaID string,
	motivo string,
) (*models.Cita, error) {

	now := uc.now()
	ap, err := uc.mutateCita(ctx, caller, citaID, func(c *models.Cita) error {
		return domain.Cancel(c, now)
	})
	if err != nil {
		return nil, err
	}

	metrics.CitaTransitions.WithLabelValues("cancelled").Inc()
	uc.emit(caller, ap, "cita_cancelled", map[string]any{"motivo": motivo})

	return ap, nil
}
