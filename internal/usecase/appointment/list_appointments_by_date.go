package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListAppointmentsByDate struct {
	Deps
}

func NewListAppointmentsByDate(deps Deps) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{Deps: deps}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	caller scope.Identity,
	estilistaID string,
	date string,
	estado string,
) ([]dto.CitaListDTO, error) {

	return listForEstilista(ctx, uc.Deps, caller, estilistaID, estado, func(loc *time.Location) (time.Time, time.Time, error) {
		day, err := time.ParseInLocation(domain.DateLayout, date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, errInvalidDate
		}
		b := domain.DayBounds(day)
		return b.Start, b.End, nil
	})
}

// listForEstilista resolves the estilista's sede scope and time zone, then
// lists its citas in the range produced by bounds.
func listForEstilista(
	ctx context.Context,
	d Deps,
	caller scope.Identity,
	estilistaID string,
	estado string,
	bounds func(*time.Location) (time.Time, time.Time, error),
) ([]dto.CitaListDTO, error) {

	estilista, err := d.Repo.GetEstilista(ctx, estilistaID)
	if err != nil {
		return nil, err
	}

	filter, err := scope.ForOperations(ctx, caller, estilista.SedeID, d.Repo)
	if err != nil {
		return nil, err
	}

	loc, err := d.sedeLocation(ctx, estilista.SedeID)
	if err != nil {
		return nil, err
	}

	from, to, err := bounds(loc)
	if err != nil {
		return nil, err
	}

	citas, err := d.Repo.ListCitas(ctx, domain.CitaQuery{
		Scope:       filter,
		EstilistaID: estilista.ID,
		Estado:      estado,
		From:        from,
		To:          to,
	})
	if err != nil {
		return nil, err
	}

	return toListDTO(citas, loc), nil
}

func toListDTO(citas []models.Cita, loc *time.Location) []dto.CitaListDTO {
	out := make([]dto.CitaListDTO, 0, len(citas))
	for _, ap := range citas {
		out = append(out, dto.CitaListDTO{
			ID:              ap.ID,
			EstilistaID:     ap.EstilistaID,
			FechaHoraInicio: ap.FechaHoraInicio.In(loc),
			FechaHoraFin:    ap.FechaHoraFin.In(loc),
			Estado:          ap.Estado,
			ClienteNombre:   ap.Cliente.Nombre,
			ServicioNombre:  ap.Servicio.Nombre,
			SaldoPendiente:  ap.SaldoPendiente.StringFixed(2),
		})
	}
	return out
}
