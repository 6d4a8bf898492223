package appointment

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

var day = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func iv(h1, m1, h2, m2 int) Interval {
	return Interval{Start: at(h1, m1), End: at(h2, m2)}
}

func TestFreeSlotsScenario(t *testing.T) {
	window := iv(9, 0, 17, 0)
	blocks := []Interval{iv(12, 0, 13, 0)}
	busy := []Interval{iv(10, 0, 10, 30)}

	got, err := FreeSlots(window, blocks, busy, 30*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, []Interval{
		iv(9, 0, 10, 0),
		iv(10, 30, 12, 0),
		iv(13, 0, 17, 0),
	}, got)
}

func TestFreeSlotsDropsShortGaps(t *testing.T) {
	window := iv(9, 0, 12, 0)
	busy := []Interval{iv(9, 20, 10, 0), iv(10, 45, 11, 30)}

	got, err := FreeSlots(window, nil, busy, 45*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []Interval{iv(10, 0, 10, 45)}, got)
}

func TestFreeSlotsToleratesOverlappingCuts(t *testing.T) {
	window := iv(9, 0, 13, 0)
	blocks := []Interval{iv(10, 0, 11, 0), iv(10, 30, 11, 30)}
	busy := []Interval{iv(10, 15, 11, 15), iv(8, 0, 9, 30)}

	got, err := FreeSlots(window, blocks, busy, 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []Interval{iv(9, 30, 10, 0), iv(11, 30, 13, 0)}, got)
}

func TestFreeSlotsFullyBlocked(t *testing.T) {
	got, err := FreeSlots(iv(9, 0, 17, 0), []Interval{iv(0, 0, 23, 59)}, nil, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFreeSlotsRejectsInvalidRanges(t *testing.T) {
	_, err := FreeSlots(iv(17, 0, 9, 0), nil, nil, time.Minute)
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))

	_, err = FreeSlots(iv(9, 0, 17, 0), []Interval{iv(10, 0, 10, 0)}, nil, time.Minute)
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))

	_, err = FreeSlots(iv(9, 0, 17, 0), nil, []Interval{iv(11, 0, 10, 0)}, time.Minute)
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))

	_, err = FreeSlots(iv(9, 0, 17, 0), nil, nil, 0)
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
}

func randomInterval(r *rand.Rand) Interval {
	start := r.Intn(24 * 60)
	length := 1 + r.Intn(180)
	return Interval{
		Start: day.Add(time.Duration(start) * time.Minute),
		End:   day.Add(time.Duration(start+length) * time.Minute),
	}
}

func TestFreeSlotsProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for n := 0; n < 500; n++ {
		window := iv(8, 0, 20, 0)
		var blocks, busy []Interval
		for i := r.Intn(4); i > 0; i-- {
			blocks = append(blocks, randomInterval(r))
		}
		for i := r.Intn(6); i > 0; i-- {
			busy = append(busy, randomInterval(r))
		}
		minDur := time.Duration(5+r.Intn(90)) * time.Minute

		got, err := FreeSlots(window, blocks, busy, minDur)
		require.NoError(t, err)

		again, err := FreeSlots(window, blocks, busy, minDur)
		require.NoError(t, err)
		require.Equal(t, got, again, "same inputs must give the same output")

		for i, s := range got {
			require.GreaterOrEqual(t, s.Duration(), minDur)
			require.True(t, window.Contains(s))
			for _, b := range append(append([]Interval{}, blocks...), busy...) {
				require.False(t, s.Overlaps(b), "slot %v overlaps %v", s, b)
			}
			if i > 0 {
				require.False(t, got[i-1].End.After(s.Start), "slots out of order")
			}
		}
	}
}

func TestFits(t *testing.T) {
	free := []Interval{iv(9, 0, 10, 0), iv(13, 0, 17, 0)}

	assert.True(t, Fits(free, iv(9, 0, 9, 30)))
	assert.True(t, Fits(free, iv(16, 30, 17, 0)))
	assert.False(t, Fits(free, iv(9, 45, 10, 15)))
	assert.False(t, Fits(free, iv(11, 0, 11, 30)))
}
