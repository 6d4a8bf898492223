package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type ListAppointmentsByMonth struct {
	Deps
}

func NewListAppointmentsByMonth(deps Deps) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{Deps: deps}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	caller scope.Identity,
	estilistaID string,
	year int,
	month int,
) ([]dto.CitaListDTO, error) {

	if month < 1 || month > 12 || year < 2000 {
		return nil, httperr.ErrValidation("invalid_month", "Mes o año inválido.")
	}

	return listForEstilista(ctx, uc.Deps, caller, estilistaID, "", func(loc *time.Location) (time.Time, time.Time, error) {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0), nil
	})
}
