package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var errInvalidDate = httperr.ErrValidation("invalid_date", "Fecha inválida, use YYYY-MM-DD.")

type GetAvailability struct {
	Deps
}

func NewGetAvailability(deps Deps) *GetAvailability {
	return &GetAvailability{Deps: deps}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	caller scope.Identity,
	in domain.AvailabilityInput,
) ([]domain.Interval, error) {

	estilista, err := uc.Repo.GetEstilista(ctx, in.EstilistaID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorize(ctx, caller, estilista.SedeID); err != nil {
		return nil, err
	}

	servicio, err := uc.Repo.GetServicio(ctx, in.ServicioID)
	if err != nil {
		return nil, err
	}

	loc, err := uc.sedeLocation(ctx, estilista.SedeID)
	if err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation(domain.DateLayout, in.Date, loc)
	if err != nil {
		return nil, errInvalidDate
	}

	return freeSlots(ctx, uc.Repo, estilista.ID, day, serviceDuration(servicio))
}

func serviceDuration(s *models.Servicio) time.Duration {
	return time.Duration(s.DuracionMinutos) * time.Minute
}

// freeSlots runs the availability computation for one estilista and day.
// day must be midnight in the sede location.
func freeSlots(
	ctx context.Context,
	repo domain.Repository,
	estilistaID string,
	day time.Time,
	duration time.Duration,
) ([]domain.Interval, error) {

	horario, err := repo.GetHorario(ctx, estilistaID, int(day.Weekday()))
	if err != nil {
		if httperr.KindOf(err) == httperr.KindNotFound {
			return []domain.Interval{}, nil
		}
		return nil, err
	}

	window, err := domain.ScheduleWindow(*horario, day)
	if err != nil {
		return nil, err
	}

	bounds := domain.DayBounds(day)

	bloqueos, err := repo.ListBloqueos(ctx, estilistaID, bounds.Start, bounds.End)
	if err != nil {
		return nil, err
	}
	blocks := make([]domain.Interval, 0, len(bloqueos))
	for _, b := range bloqueos {
		iv, applies, err := domain.BlockInterval(b, day)
		if err != nil {
			return nil, err
		}
		if applies {
			blocks = append(blocks, iv)
		}
	}

	citas, err := repo.ListActiveCitas(ctx, estilistaID, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	busy := make([]domain.Interval, 0, len(citas))
	for _, c := range citas {
		busy = append(busy, domain.Interval{Start: c.FechaHoraInicio, End: c.FechaHoraFin})
	}

	return domain.FreeSlots(window, blocks, busy, duration)
}
