package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Deps are the collaborators shared by every agenda use case.
type Deps struct {
	Repo  domain.Repository
	Audit *audit.Dispatcher
	TZ    *timezone.Resolver
	Now   func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// authorize fails unless the caller's operational scope includes sedeID.
func (d Deps) authorize(ctx context.Context, caller scope.Identity, sedeID string) error {
	_, err := scope.ForOperations(ctx, caller, sedeID, d.Repo)
	return err
}

// loadCita fetches a cita the caller is allowed to operate on.
func (d Deps) loadCita(ctx context.Context, caller scope.Identity, id string) (*models.Cita, error) {
	ap, err := d.Repo.GetCita(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.authorize(ctx, caller, ap.SedeID); err != nil {
		return nil, err
	}
	return ap, nil
}

// mutateCita authorizes the caller against the stored cita and then applies
// change to a freshly locked copy of the row. sede_id never changes, so the
// first read is enough for the scope check.
func (d Deps) mutateCita(
	ctx context.Context,
	caller scope.Identity,
	id string,
	change func(*models.Cita) error,
) (*models.Cita, error) {
	if _, err := d.loadCita(ctx, caller, id); err != nil {
		return nil, err
	}
	return d.Repo.MutateCita(ctx, id, change)
}

// sedeLocation is the time zone agenda days are computed in.
func (d Deps) sedeLocation(ctx context.Context, sedeID string) (*time.Location, error) {
	sede, err := d.Repo.GetSede(ctx, sedeID)
	if err != nil {
		return nil, err
	}
	return d.TZ.Location(sede.ZonaHoraria), nil
}

func (d Deps) emit(caller scope.Identity, ap *models.Cita, action string, meta any) {
	if d.Audit == nil {
		return
	}
	d.Audit.Dispatch(audit.Event{
		SedeID:   ap.SedeID,
		UserID:   caller.UserID,
		UserRole: string(caller.Role),
		Action:   action,
		Entity:   "cita",
		EntityID: ap.ID,
		Metadata: meta,
	})
}
