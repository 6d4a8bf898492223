package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type fakeRepo struct {
	mu sync.Mutex

	sedes      map[string]models.Sede
	estilistas map[string]models.Estilista
	servicios  map[string]models.Servicio
	clientes   map[string]models.Cliente
	horarios   []models.Horario
	bloqueos   []models.Bloqueo
	citas      map[string]*models.Cita
}

func newFakeRepo() *fakeRepo {
	franq := "F1"
	return &fakeRepo{
		sedes: map[string]models.Sede{
			"S1": {ID: "S1", Nombre: "Centro", FranquiciaID: &franq, ZonaHoraria: "UTC"},
			"S2": {ID: "S2", Nombre: "Norte", ZonaHoraria: "UTC"},
		},
		estilistas: map[string]models.Estilista{
			"E1": {ID: "E1", SedeID: "S1", Nombre: "Ana", Activo: true},
			"E2": {ID: "E2", SedeID: "S1", Nombre: "Luis", Activo: false},
		},
		servicios: map[string]models.Servicio{
			"SV1": {ID: "SV1", SedeID: "S1", Nombre: "Corte", DuracionMinutos: 30, Precio: price(50000), Activo: true},
			"SV2": {ID: "SV2", SedeID: "S2", Nombre: "Tinte", DuracionMinutos: 60, Precio: price(90000), Activo: true},
		},
		clientes: map[string]models.Cliente{
			"C1": {ID: "C1", SedeID: "S1", Nombre: "María"},
			"C2": {ID: "C2", SedeID: "S2", Nombre: "Pedro"},
		},
		horarios: []models.Horario{
			{ID: "H1", EstilistaID: "E1", DiaSemana: int(time.Tuesday), HoraInicio: "09:00", HoraFin: "17:00"},
		},
		citas: map[string]*models.Cita{},
	}
}

func notFound(code string) error { return httperr.ErrNotFound(code, code) }

func (f *fakeRepo) FranquiciaOf(_ context.Context, sedeID string) (string, error) {
	s, ok := f.sedes[sedeID]
	if !ok {
		return "", notFound("sede_not_found")
	}
	return s.Franquicia(), nil
}

func (f *fakeRepo) GetSede(_ context.Context, id string) (*models.Sede, error) {
	s, ok := f.sedes[id]
	if !ok {
		return nil, notFound("sede_not_found")
	}
	return &s, nil
}

func (f *fakeRepo) GetEstilista(_ context.Context, id string) (*models.Estilista, error) {
	e, ok := f.estilistas[id]
	if !ok {
		return nil, notFound("estilista_not_found")
	}
	return &e, nil
}

func (f *fakeRepo) GetServicio(_ context.Context, id string) (*models.Servicio, error) {
	s, ok := f.servicios[id]
	if !ok {
		return nil, notFound("servicio_not_found")
	}
	return &s, nil
}

func (f *fakeRepo) GetCliente(_ context.Context, id string) (*models.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, notFound("cliente_not_found")
	}
	return &c, nil
}

func (f *fakeRepo) GetHorario(_ context.Context, estilistaID string, weekday int) (*models.Horario, error) {
	for _, h := range f.horarios {
		if h.EstilistaID == estilistaID && h.DiaSemana == weekday {
			h := h
			return &h, nil
		}
	}
	return nil, notFound("horario_not_found")
}

func (f *fakeRepo) ListBloqueos(_ context.Context, estilistaID string, dayStart, dayEnd time.Time) ([]models.Bloqueo, error) {
	var out []models.Bloqueo
	for _, b := range f.bloqueos {
		if b.EstilistaID != estilistaID {
			continue
		}
		if b.EsRecurrente || (b.FechaInicio.Before(dayEnd) && b.FechaFin.After(dayStart)) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) overlapping(estilistaID string, start, end time.Time) []models.Cita {
	var out []models.Cita
	for _, c := range f.citas {
		if c.EstilistaID == estilistaID &&
			domain.IsActive(domain.Status(c.Estado)) &&
			c.FechaHoraInicio.Before(end) && c.FechaHoraFin.After(start) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].FechaHoraInicio.Before(out[b].FechaHoraInicio) })
	return out
}

func (f *fakeRepo) ListActiveCitas(_ context.Context, estilistaID string, start, end time.Time) ([]models.Cita, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.overlapping(estilistaID, start, end), nil
}

func (f *fakeRepo) CreateCitaExclusive(_ context.Context, ap *models.Cita) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.overlapping(ap.EstilistaID, ap.FechaHoraInicio, ap.FechaHoraFin)) > 0 {
		return httperr.ErrConflict("time_conflict", "ocupado")
	}
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	c := *ap
	f.citas[ap.ID] = &c
	return nil
}

func (f *fakeRepo) GetCita(_ context.Context, id string) (*models.Cita, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.citas[id]
	if !ok {
		return nil, notFound("cita_not_found")
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) MutateCita(_ context.Context, id string, change func(*models.Cita) error) (*models.Cita, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.citas[id]
	if !ok {
		return nil, notFound("cita_not_found")
	}
	cp := *c
	if err := change(&cp); err != nil {
		return nil, err
	}
	f.citas[id] = &cp
	out := cp
	return &out, nil
}

func (f *fakeRepo) ListCitas(_ context.Context, q domain.CitaQuery) ([]models.Cita, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Cita
	for _, c := range f.citas {
		sede := f.sedes[c.SedeID]
		if !q.Scope.Covers(c.SedeID, sede.Franquicia()) {
			continue
		}
		if q.EstilistaID != "" && c.EstilistaID != q.EstilistaID {
			continue
		}
		if q.Estado != "" && c.Estado != q.Estado {
			continue
		}
		if c.FechaHoraInicio.Before(q.From) || !c.FechaHoraInicio.Before(q.To) {
			continue
		}
		cp := *c
		cp.Cliente = f.clientes[c.ClienteID]
		cp.Servicio = f.servicios[c.ServicioID]
		out = append(out, cp)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].FechaHoraInicio.Before(out[b].FechaHoraInicio) })
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
