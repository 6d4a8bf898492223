package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type AvailabilityInput struct {
	EstilistaID string
	ServicioID  string
	Date        string // YYYY-MM-DD in the sede time zone
}

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Contains reports whether o lies entirely inside i.
func (i Interval) Contains(o Interval) bool {
	return !o.Start.Before(i.Start) && !o.End.After(i.End)
}

var errInvalidRange = httperr.ErrValidation("invalid_time_range", "Rango de tiempo vacío o invertido.")

// subtract removes cut from every interval of free. Each interval yields zero,
// one or two pieces, so overlapping cuts are harmless.
func subtract(free []Interval, cut Interval) []Interval {
	out := make([]Interval, 0, len(free)+1)
	for _, f := range free {
		if !f.Overlaps(cut) {
			out = append(out, f)
			continue
		}
		if f.Start.Before(cut.Start) {
			out = append(out, Interval{Start: f.Start, End: cut.Start})
		}
		if cut.End.Before(f.End) {
			out = append(out, Interval{Start: cut.End, End: f.End})
		}
	}
	return out
}

// FreeSlots returns the parts of window not covered by blocks or busy, keeping
// only intervals at least minDuration long, in chronological order.
func FreeSlots(window Interval, blocks, busy []Interval, minDuration time.Duration) ([]Interval, error) {
	if minDuration <= 0 {
		return nil, httperr.ErrValidation("invalid_duration", "La duración del servicio debe ser positiva.")
	}
	if !window.Valid() {
		return nil, errInvalidRange
	}
	for _, b := range blocks {
		if !b.Valid() {
			return nil, errInvalidRange
		}
	}
	for _, b := range busy {
		if !b.Valid() {
			return nil, errInvalidRange
		}
	}

	free := []Interval{window}
	for _, b := range blocks {
		free = subtract(free, b)
	}
	for _, b := range busy {
		free = subtract(free, b)
	}

	out := make([]Interval, 0, len(free))
	for _, f := range free {
		if f.Duration() >= minDuration {
			out = append(out, f)
		}
	}

	sort.Slice(out, func(a, b int) bool { return out[a].Start.Before(out[b].Start) })
	return out, nil
}

// Fits reports whether candidate is fully inside one of the free intervals.
func Fits(free []Interval, candidate Interval) bool {
	for _, f := range free {
		if f.Contains(candidate) {
			return true
		}
	}
	return false
}
