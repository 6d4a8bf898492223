package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/analytics"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AnalyticsGormRepository struct {
	store *db.Store
}

func NewAnalyticsGormRepository(store *db.Store) *AnalyticsGormRepository {
	return &AnalyticsGormRepository{store: store}
}

func (r *AnalyticsGormRepository) RawCounts(
	ctx context.Context,
	f scope.Filter,
	from, to, churnBefore time.Time,
) (analytics.RawCounts, error) {

	ctx, cancel := r.store.Ctx(ctx)
	defer cancel()

	gdb := r.store.DB.WithContext(ctx)
	cancelled := string(domain.StatusCancelled)
	finalized := string(domain.StatusFinalized)

	citas := func() *gorm.DB { return periodCitas(gdb, f, from, to) }

	var out analytics.RawCounts

	if err := ApplyScope(gdb.Model(&models.Cliente{}), f, "sede_id").
		Where("fecha_creacion >= ? AND fecha_creacion < ?", from, to).
		Count(&out.NewClients).Error; err != nil {
		return out, mapErr(err, nil)
	}

	if err := citas().Count(&out.TotalAppointments).Error; err != nil {
		return out, mapErr(err, nil)
	}
	if out.TotalAppointments == 0 {
		// Nothing else in the period can be non-zero; churn still is.
		return out, r.churn(gdb, f, churnBefore, &out)
	}

	if err := citas().Where("estado = ?", cancelled).
		Count(&out.CancelledAppointments).Error; err != nil {
		return out, mapErr(err, nil)
	}

	if err := citas().Distinct("cliente_id").
		Count(&out.TotalClients).Error; err != nil {
		return out, mapErr(err, nil)
	}

	if err := gdb.Table("(?) AS recurrentes", recurringClients(citas())).
		Count(&out.RecurringClients).Error; err != nil {
		return out, mapErr(err, nil)
	}

	var revenue struct {
		Finalizadas int64
		Total       decimal.NullDecimal
	}
	if err := citas().
		Select("COUNT(*) AS finalizadas, SUM(valor_total) AS total").
		Where("estado = ?", finalized).
		Scan(&revenue).Error; err != nil {
		return out, mapErr(err, nil)
	}
	out.FinalizedAppointments = revenue.Finalizadas
	out.Revenue = decimal.Zero
	if revenue.Total.Valid {
		out.Revenue = revenue.Total.Decimal
	}

	return out, r.churn(gdb, f, churnBefore, &out)
}

func (r *AnalyticsGormRepository) churn(gdb *gorm.DB, f scope.Filter, before time.Time, out *analytics.RawCounts) error {
	return mapErr(gdb.Table("(?) AS inactivos", inactiveClients(gdb, f, before)).Count(&out.ChurnCount).Error, nil)
}

// periodCitas are the scoped citas starting in [from, to).
func periodCitas(gdb *gorm.DB, f scope.Filter, from, to time.Time) *gorm.DB {
	return ApplyScope(gdb.Model(&models.Cita{}), f, "sede_id").
		Where("fecha_hora_inicio >= ? AND fecha_hora_inicio < ?", from, to)
}

// recurringClients groups the non-cancelled citas of q by cliente and keeps
// those with more than one.
func recurringClients(q *gorm.DB) *gorm.DB {
	return q.
		Select("cliente_id").
		Where("estado <> ?", string(domain.StatusCancelled)).
		Group("cliente_id").
		Having("COUNT(*) > 1")
}

// inactiveClients are clientes whose latest active cita, over all history,
// started before the churn cutoff.
func inactiveClients(gdb *gorm.DB, f scope.Filter, before time.Time) *gorm.DB {
	return ApplyScope(gdb.Model(&models.Cita{}), f, "sede_id").
		Select("cliente_id").
		Where("estado <> ?", string(domain.StatusCancelled)).
		Group("cliente_id").
		Having("MAX(fecha_hora_inicio) < ?", before)
}

var _ analytics.Repository = (*AnalyticsGormRepository)(nil)
