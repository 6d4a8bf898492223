package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// CitaQuery selects citas whose start falls in [From, To).
type CitaQuery struct {
	Scope       scope.Filter
	EstilistaID string
	Estado      string
	From        time.Time
	To          time.Time
}

// Repository is the store surface the agenda use cases need. Lookups of
// missing rows fail with a NotFound business error; store timeouts with
// ServiceUnavailable.
type Repository interface {
	scope.SedeResolver

	// -------- Sede / catálogo --------
	GetSede(ctx context.Context, id string) (*models.Sede, error)
	GetEstilista(ctx context.Context, id string) (*models.Estilista, error)
	GetServicio(ctx context.Context, id string) (*models.Servicio, error)
	GetCliente(ctx context.Context, id string) (*models.Cliente, error)

	// -------- Disponibilidad --------
	GetHorario(ctx context.Context, estilistaID string, weekday int) (*models.Horario, error)

	// ListBloqueos returns one-off blocks intersecting [dayStart, dayEnd)
	// plus every recurring block of the estilista.
	ListBloqueos(ctx context.Context, estilistaID string, dayStart, dayEnd time.Time) ([]models.Bloqueo, error)

	// ListActiveCitas returns non-cancelled citas overlapping [start, end).
	ListActiveCitas(ctx context.Context, estilistaID string, start, end time.Time) ([]models.Cita, error)

	// -------- Cita (creación / conflicto) --------

	// CreateCitaExclusive inserts ap only if no active cita of the same
	// estilista overlaps it; otherwise it fails with Conflict.
	CreateCitaExclusive(ctx context.Context, ap *models.Cita) error

	// -------- Cita (cambios de estado) --------
	GetCita(ctx context.Context, id string) (*models.Cita, error)

	// MutateCita re-reads the cita under a row lock, applies change and saves
	// the result in the same transaction. An error from change aborts the
	// write and is returned as is.
	MutateCita(ctx context.Context, id string, change func(*models.Cita) error) (*models.Cita, error)

	ListCitas(ctx context.Context, q CitaQuery) ([]models.Cita, error)
}
