package analytics

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const dateLayout = "2006-01-02"

const (
	PeriodToday        = "today"
	PeriodLast7Days    = "last_7_days"
	PeriodLast30Days   = "last_30_days"
	PeriodLast90Days   = "last_90_days"
	PeriodCurrentMonth = "current_month"
	PeriodCustom       = "custom"
)

// Period is an inclusive range of calendar days.
type Period struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Days is the inclusive number of calendar days, independent of DST.
func (p Period) Days() int {
	a := time.Date(p.StartDate.Year(), p.StartDate.Month(), p.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(p.EndDate.Year(), p.EndDate.Month(), p.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours()/24) + 1
}

// Bounds returns the half-open instant range [first day 00:00, day after last 00:00).
func (p Period) Bounds() (time.Time, time.Time) {
	return midnight(p.StartDate), midnight(p.EndDate).AddDate(0, 0, 1)
}

// ResolvePeriod turns a named period (or custom dates) into calendar days
// relative to now. An empty name means the last 30 days.
func ResolvePeriod(name, start, end string, now time.Time) (Period, error) {
	today := midnight(now)

	var from time.Time
	switch name {
	case PeriodToday:
		from = today
	case PeriodLast7Days:
		from = today.AddDate(0, 0, -6)
	case "", PeriodLast30Days:
		name = PeriodLast30Days
		from = today.AddDate(0, 0, -29)
	case PeriodLast90Days:
		from = today.AddDate(0, 0, -89)
	case PeriodCurrentMonth:
		from = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	case PeriodCustom:
		return customPeriod(start, end, now.Location())
	default:
		return Period{}, httperr.ErrValidation("invalid_period", "Periodo no soportado.")
	}

	return Period{Name: name, StartDate: from, EndDate: today}, nil
}

func customPeriod(start, end string, loc *time.Location) (Period, error) {
	if start == "" || end == "" {
		return Period{}, httperr.ErrValidation("missing_dates", "start_date y end_date son obligatorios.")
	}
	from, err := time.ParseInLocation(dateLayout, start, loc)
	if err != nil {
		return Period{}, httperr.ErrValidation("invalid_date", "Fecha inválida, use YYYY-MM-DD.")
	}
	to, err := time.ParseInLocation(dateLayout, end, loc)
	if err != nil {
		return Period{}, httperr.ErrValidation("invalid_date", "Fecha inválida, use YYYY-MM-DD.")
	}
	if to.Before(from) {
		return Period{}, httperr.ErrValidation("invalid_period", "La fecha final es anterior a la inicial.")
	}
	return Period{Name: PeriodCustom, StartDate: from, EndDate: to}, nil
}
