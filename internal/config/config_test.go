package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_TIMEOUT", "3")
	t.Setenv("KPI_CACHE_TTL", "90s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("CHURN_DAYS", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 90*time.Second, cfg.KPICacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 60, cfg.ChurnDays)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadRejectsNonPositiveChurnDays(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CHURN_DAYS", "0")

	_, err := Load()
	require.Error(t, err)
}
