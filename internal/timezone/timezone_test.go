package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverFallsBack(t *testing.T) {
	r, err := NewResolver("America/Bogota")
	require.NoError(t, err)

	assert.Equal(t, "America/Bogota", r.Location("").String())
	assert.Equal(t, "America/Bogota", r.Location("Mars/Olympus").String())
	assert.Equal(t, "Europe/Madrid", r.Location("Europe/Madrid").String())
	assert.Equal(t, "Europe/Madrid", r.Location("Europe/Madrid").String())
}

func TestNewResolverRejectsUnknownZone(t *testing.T) {
	_, err := NewResolver("Nowhere/City")
	assert.Error(t, err)
}

func TestNowIn(t *testing.T) {
	r, err := NewResolver("UTC")
	require.NoError(t, err)

	now := time.Date(2026, 1, 1, 15, 0, 0, 0, time.UTC)
	got := r.NowIn(now, "America/Bogota")
	assert.Equal(t, 10, got.Hour())
	assert.True(t, got.Equal(now))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Bad/Zone"))
}
