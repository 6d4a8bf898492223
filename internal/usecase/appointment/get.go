package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/receipt"
)

type GetAppointment struct {
	Deps
}

func NewGetAppointment(deps Deps) *GetAppointment {
	return &GetAppointment{Deps: deps}
}

func (uc *GetAppointment) Execute(ctx context.Context, caller scope.Identity, citaID string) (*models.Cita, error) {
	return uc.loadCita(ctx, caller, citaID)
}

// GetReceipt renders the receipt of a finalized cita on demand.
type GetReceipt struct {
	Deps
	source receipt.Source
}

func NewGetReceipt(deps Deps, source receipt.Source) *GetReceipt {
	return &GetReceipt{Deps: deps, source: source}
}

func (uc *GetReceipt) Execute(ctx context.Context, caller scope.Identity, citaID string) ([]byte, error) {
	ap, err := uc.loadCita(ctx, caller, citaID)
	if err != nil {
		return nil, err
	}
	if domain.Status(ap.Estado) != domain.StatusFinalized {
		return nil, httperr.ErrValidation("cita_not_finalized", "El comprobante solo existe para citas finalizadas.")
	}

	data, err := uc.source.ReceiptData(ctx, ap.ID)
	if err != nil {
		return nil, err
	}
	return receipt.Render(data)
}
