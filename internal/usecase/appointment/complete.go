package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ReceiptQueue hands finalized citas to the receipt collaborator.
type ReceiptQueue interface {
	Enqueue(citaID string)
}

type CompleteAppointment struct {
	Deps
	receipts ReceiptQueue
}

func NewCompleteAppointment(deps Deps, receipts ReceiptQueue) *CompleteAppointment {
	return &CompleteAppointment{Deps: deps, receipts: receipts}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	caller scope.Identity,
	citaID string,
) (*models.Cita, error) {

	now := uc.now()
	ap, err := uc.mutateCita(ctx, caller, citaID, func(c *models.Cita) error {
		return domain.Finalize(c, now)
	})
	if err != nil {
		return nil, err
	}

	metrics.CitaTransitions.WithLabelValues("finalized").Inc()
	uc.emit(caller, ap, "cita_finalized", nil)

	if uc.receipts != nil {
		uc.receipts.Enqueue(ap.ID)
	}

	return ap, nil
}
