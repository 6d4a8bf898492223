package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	DateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// DayBounds returns [00:00, next 00:00) of day in its location.
func DayBounds(day time.Time) Interval {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return Interval{Start: start, End: start.AddDate(0, 0, 1)}
}

func atClock(day time.Time, hm string) (time.Time, error) {
	t, err := time.Parse(clockLayout, hm)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_clock", "Hora inválida, use HH:MM.")
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), nil
}

// ClockRange builds the interval between two "HH:MM" values on day.
func ClockRange(day time.Time, from, to string) (Interval, error) {
	start, err := atClock(day, from)
	if err != nil {
		return Interval{}, err
	}
	end, err := atClock(day, to)
	if err != nil {
		return Interval{}, err
	}
	iv := Interval{Start: start, End: end}
	if !iv.Valid() {
		return Interval{}, errInvalidRange
	}
	return iv, nil
}

// ScheduleWindow is the working interval a horario yields on day.
func ScheduleWindow(h models.Horario, day time.Time) (Interval, error) {
	return ClockRange(day, h.HoraInicio, h.HoraFin)
}

// BlockInterval returns the part of time a bloqueo takes on day and whether
// it applies at all. One-off blocks apply when they intersect the day;
// recurring ones when their weekday matches.
func BlockInterval(b models.Bloqueo, day time.Time) (Interval, bool, error) {
	bounds := DayBounds(day)

	if b.EsRecurrente {
		if b.DiaSemana == nil || *b.DiaSemana != int(day.Weekday()) {
			return Interval{}, false, nil
		}
		if b.HoraInicio == "" && b.HoraFin == "" {
			return bounds, true, nil
		}
		iv, err := ClockRange(day, b.HoraInicio, b.HoraFin)
		if err != nil {
			return Interval{}, false, err
		}
		return iv, true, nil
	}

	if b.FechaInicio == nil || b.FechaFin == nil {
		return Interval{}, false, errInvalidRange
	}
	iv := Interval{Start: *b.FechaInicio, End: *b.FechaFin}
	if !iv.Valid() {
		return Interval{}, false, errInvalidRange
	}
	if !iv.Overlaps(bounds) {
		return Interval{}, false, nil
	}
	return iv, true, nil
}
