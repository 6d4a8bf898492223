package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ConfirmAppointment struct {
	Deps
}

func NewConfirmAppointment(deps Deps) *ConfirmAppointment {
	return &ConfirmAppointment{Deps: deps}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	caller scope.Identity,
	citaID string,
) (*models.Cita, error) {

	now := uc.now()
	ap, err := uc.mutateCita(ctx, caller, citaID, func(c *models.Cita) error {
		return domain.Confirm(c, now)
	})
	if err != nil {
		return nil, err
	}

	metrics.CitaTransitions.WithLabelValues("confirmed").Inc()
	uc.emit(caller, ap, "cita_confirmed", nil)

	return ap, nil
}
