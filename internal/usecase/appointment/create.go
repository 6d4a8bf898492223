package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	EstilistaID     string
	ClienteID       string
	ServicioID      string
	FechaHoraInicio time.Time
	Notas           string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	Deps
}

func NewCreateAppointment(deps Deps) *CreateAppointment {
	return &CreateAppointment{Deps: deps}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	caller scope.Identity,
	in CreateAppointmentInput,
) (*models.Cita, error) {

	// --------------------------------------------------
	// Estilista y alcance
	// --------------------------------------------------
	estilista, err := uc.Repo.GetEstilista(ctx, in.EstilistaID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorize(ctx, caller, estilista.SedeID); err != nil {
		return nil, err
	}
	if !estilista.Activo {
		return nil, httperr.ErrValidation("estilista_inactive", "El estilista no está activo.")
	}

	// --------------------------------------------------
	// Servicio y cliente
	// --------------------------------------------------
	servicio, err := uc.Repo.GetServicio(ctx, in.ServicioID)
	if err != nil {
		return nil, err
	}
	if servicio.SedeID != estilista.SedeID {
		return nil, httperr.ErrValidation("servicio_other_sede", "El servicio no pertenece a la sede del estilista.")
	}
	if !servicio.Activo {
		return nil, httperr.ErrValidation("servicio_inactive", "El servicio no está activo.")
	}

	cliente, err := uc.Repo.GetCliente(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente.SedeID != estilista.SedeID {
		return nil, httperr.ErrValidation("cliente_other_sede", "El cliente no pertenece a la sede del estilista.")
	}

	// --------------------------------------------------
	// Horario en la zona de la sede
	// --------------------------------------------------
	loc, err := uc.sedeLocation(ctx, estilista.SedeID)
	if err != nil {
		return nil, err
	}

	start := in.FechaHoraInicio.In(loc)
	if start.Before(uc.now()) {
		return nil, httperr.ErrValidation("start_in_past", "La cita no puede iniciar en el pasado.")
	}
	candidate := domain.Interval{Start: start, End: start.Add(serviceDuration(servicio))}

	free, err := freeSlots(ctx, uc.Repo, estilista.ID, domain.DayBounds(start).Start, serviceDuration(servicio))
	if err != nil {
		return nil, err
	}
	if !domain.Fits(free, candidate) {
		metrics.BookingConflicts.Inc()
		return nil, httperr.ErrConflict("slot_unavailable", "El horario solicitado no está disponible.")
	}

	// --------------------------------------------------
	// Inserción exclusiva
	// --------------------------------------------------
	ap := &models.Cita{
		SedeID:          estilista.SedeID,
		EstilistaID:     estilista.ID,
		ClienteID:       in.ClienteID,
		ServicioID:      servicio.ID,
		FechaHoraInicio: candidate.Start,
		FechaHoraFin:    candidate.End,
		Estado:          string(domain.InitialStatus()),
		ValorTotal:      servicio.Precio,
		Abono:           decimal.Zero,
		SaldoPendiente:  servicio.Precio,
		Notas:           strings.TrimSpace(in.Notas),
	}

	if err := uc.Repo.CreateCitaExclusive(ctx, ap); err != nil {
		if httperr.KindOf(err) == httperr.KindConflict {
			metrics.BookingConflicts.Inc()
		}
		return nil, err
	}

	metrics.CitaTransitions.WithLabelValues("created").Inc()
	uc.emit(caller, ap, "cita_created", map[string]any{
		"servicio_id": servicio.ID,
		"inicio":      ap.FechaHoraInicio,
	})

	return ap, nil
}
