package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-scheduler/internal/db"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/receipt"
)

var (
	errEstilistaNotFound = httperr.ErrNotFound("estilista_not_found", "El estilista no existe.")
	errServicioNotFound  = httperr.ErrNotFound("servicio_not_found", "El servicio no existe.")
	errClienteNotFound   = httperr.ErrNotFound("cliente_not_found", "El cliente no existe.")
	errHorarioNotFound   = httperr.ErrNotFound("horario_not_found", "El estilista no trabaja ese día.")
	errCitaNotFound      = httperr.ErrNotFound("cita_not_found", "La cita no existe.")
	errTimeConflict      = httperr.ErrConflict("time_conflict", "El estilista ya tiene una cita en ese horario.")
)

type AppointmentGormRepository struct {
	store *db.Store
	sedes *SedeGormRepository
}

func NewAppointmentGormRepository(store *db.Store) *AppointmentGormRepository {
	return &AppointmentGormRepository{
		store: store,
		sedes: NewSedeGormRepository(store),
	}
}

// first loads one row by id with the store timeout applied.
func (r *AppointmentGormRepository) first(ctx context.Context, dst any, id string, notFound error) error {
	ctx, cancel := r.store.Ctx(ctx)
	defer cancel()
	return mapErr(r.store.DB.WithContext(ctx).First(dst, "id = ?", id).Error, notFound)
}

// --------------------------------------------------
// Sede / catálogo
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSede(ctx context.Context, id string) (*models.Sede, error) {
	return r.sedes.GetSede(ctx, id)
}

func (r *AppointmentGormRepository) FranquiciaOf(ctx context.Context, sedeID string) (string, error) {
	return r.sedes.FranquiciaOf(ctx, sedeID)
}

func (r *AppointmentGormRepository) GetEstilista(ctx context.Context, id string) (*models.Estilista, error) {
	var e models.Estilista
	if err := r.first(ctx, &e, id, errEstilistaNotFound); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *AppointmentGormRepository) GetServicio(ctx context.Context, id string) (*models.Servicio, error) {
	var s models.Servicio
	if err := r.first(ctx, &s, id, errServicioNotFound); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AppointmentGormRepository) GetCliente(ctx context.Context, id string) (*models.Cliente, error) {
	var c models.Cliente
	if err := r.first(ctx, &c, id, errClienteNotFound); err != nil {
		return nil, err
	}
	return &c, nil
}

// --------------------------------------------------
// Disponibilidad
// --------------------------------------------------

func (r *AppointmentGormRepository) GetHorario(ctx context.Context, estilistaID string, weekday int) (*models.Horario, error) {
	ctx, cancel := r.store.Ctx(ctx)
	defer cancel()

	var h models.Horario
	if err := r.store.DB.WithContext(ctx).
		Where("estilista_id = ? AND dia_semana = ?", estilistaID, weekday).
		First(&h).Error; err != nil {
		return nil, mapErr(err, errHorarioNotFound)
	}
	return &h, nil
}

func (r *AppointmentGormRepository) ListBloqueos(ctx context.Context, estilistaID string, dayStart, dayEnd time.Time) ([]models.Bloqueo, error) {
	ctx, cancel := r.store.Ctx(ctx)
	defer cancel()

	var out []models.Bloqueo
	if err := r.store.DB.WithContext(ctx).
		Where("estilista_id = ?", estilistaID).
		Where("es_recurrente = ? OR (fecha_inicio < ? AND fecha_fin > ?)", true, dayEnd, dayStart).
		Find(&out).Error; err != nil {
		return nil, mapErr(err, nil)
	}
	return out, nil
}

func (r *AppointmentGormRepository) ListActiveCitas(ctx context.Context, estilistaID string, start, end time.Time) ([]models.Cita, error) {
	ctx, cancel := r.store.Ctx(ctx)
	defer cancel()

	var out []models.Cita
	if err := activeOverlap(r.store.DB.WithContext(ctx), estilistaID, start, end).
		Select("id", "fecha_hora_inicio", "fecha_hora_fin", "estado").
		Order("fecha_hora_inicio ASC").
		Find(&out).Error; err != nil {
		return nil, mapErr(err, nil)
	}
	return out, nil
}

func activeOverlap(q *gorm.DB, estilistaID string, start, end time.Time) *gorm.DB {
	return q.Model(&models.Cita{}).
		Where(
			"estilista_id = ? AND estado <> ? AND fecha_hora_inicio < ? AND fecha_hora_fin > ?",
			estilistaID, string(domain.StatusCancelled), end, start,
		)
}

// --------------------------------------------------
// Cita (creación / conflicto)
// --------------------------------------------------

// CreateCitaExclusive serializes writers per estilista with a transaction
// scoped advisory lock, re-counts overlaps and inserts. The exclusion
// constraint on citas rejects anything that still slips through.
func (r *AppointmentGormRepository) CreateCitaExclusive(ctx context.Context, ap *models.Cita) error {
	ctx, cancel := r.store.Ctx(ctx)
	defer cancel()

	err := r.store.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := advisoryLock(tx, ap.EstilistaID).Error; err != nil {
			return err
		}

		var count int64
		if err := activeOverlap(tx, ap.EstilistaID, ap.FechaHoraInicio, ap.FechaHoraFin).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errTimeConflict
		}

		return tx.Create(ap).Error
	})

	return mapErr(err, nil)
}

// advisoryLock takes a transaction scoped lock keyed by the estilista, so
// bookings for the same professional are inserted one at a time.
func advisoryLock(tx *gorm.DB, estilistaID string) *gorm.DB {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", estilistaID)
}

// --------------------------------------------------
// Cita (cambios de estado)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCita(ctx context.Context, id string) (*models.Cita, error) {
	var ap models.Cita
	if err := r.first(ctx, &ap, id, errCitaNotFound); err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) MutateCita(
	ctx context.Context,
	id string,
	change func(*models.Cita) error,
) (*models.Cita, error) {
	ctx, cancel := r.store.Ctx(ctx)
	defer cancel()

	var ap models.Cita
	err := r.store.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockCita(tx, id).First(&ap).Error; err != nil {
			return err
		}
		if err := change(&ap); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&ap).Error
	})
	if err != nil {
		return nil, mapErr(err, errCitaNotFound)
	}
	return &ap, nil
}

// lockCita selects one cita with FOR UPDATE so concurrent state changes and
// payments on it run one after another.
func lockCita(tx *gorm.DB, id string) *gorm.DB {
	return tx.Model(&models.Cita{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id)
}

func (r *AppointmentGormRepository) ListCitas(ctx context.Context, q domain.CitaQuery) ([]models.Cita, error) {
	ctx, cancel := r.store.Ctx(ctx)
	defer cancel()

	tx := ApplyScope(r.store.DB.WithContext(ctx).Model(&models.Cita{}), q.Scope, "sede_id").
		Preload("Cliente").
		Preload("Servicio")

	if q.EstilistaID != "" {
		tx = tx.Where("estilista_id = ?", q.EstilistaID)
	}
	if q.Estado != "" {
		tx = tx.Where("estado = ?", q.Estado)
	}
	if !q.From.IsZero() {
		tx = tx.Where("fecha_hora_inicio >= ?", q.From)
	}
	if !q.To.IsZero() {
		tx = tx.Where("fecha_hora_inicio < ?", q.To)
	}

	var out []models.Cita
	if err := tx.Order("fecha_hora_inicio ASC").Find(&out).Error; err != nil {
		return nil, mapErr(err, nil)
	}
	return out, nil
}

// --------------------------------------------------
// Comprobante
// --------------------------------------------------

func (r *AppointmentGormRepository) ReceiptData(ctx context.Context, citaID string) (receipt.Data, error) {
	ctx, cancel := r.store.Ctx(ctx)
	defer cancel()

	var ap models.Cita
	if err := r.store.DB.WithContext(ctx).
		Preload("Estilista.Sede").
		Preload("Cliente").
		Preload("Servicio").
		First(&ap, "id = ?", citaID).Error; err != nil {
		return receipt.Data{}, mapErr(err, errCitaNotFound)
	}

	loc := time.UTC
	if l, err := time.LoadLocation(ap.Estilista.Sede.ZonaHoraria); err == nil {
		loc = l
	}

	return receipt.Data{
		CitaID:     ap.ID,
		SedeID:     ap.SedeID,
		Sede:       ap.Estilista.Sede.Nombre,
		Cliente:    ap.Cliente.Nombre,
		Estilista:  ap.Estilista.Nombre,
		Servicio:   ap.Servicio.Nombre,
		Inicio:     ap.FechaHoraInicio.In(loc),
		Fin:        ap.FechaHoraFin.In(loc),
		ValorTotal: ap.ValorTotal,
		Abono:      ap.Abono,
		Saldo:      ap.SaldoPendiente,
		MetodoPago: ap.MetodoPago,
	}, nil
}

func (r *AppointmentGormRepository) SaveReceiptKey(ctx context.Context, citaID, key string) error {
	ctx, cancel := r.store.Ctx(ctx)
	defer cancel()
	return mapErr(r.store.DB.WithContext(ctx).
		Model(&models.Cita{}).
		Where("id = ?", citaID).
		Update("comprobante_key", key).Error, nil)
}

// Compile-time checks
var (
	_ domain.Repository = (*AppointmentGormRepository)(nil)
	_ receipt.Source    = (*AppointmentGormRepository)(nil)
)
