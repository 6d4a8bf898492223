package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
)

func TestNewWithoutBucketIsDisabled(t *testing.T) {
	u := New(&config.Config{})
	assert.ErrorIs(t, u.Put(context.Background(), "k", "text/plain", nil), ErrDisabled)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "comprobantes/s1/c1.pdf", ReceiptKey("s1", "c1"))

	k1 := ProductImageKey("s1", "p1")
	k2 := ProductImageKey("s1", "p1")
	assert.True(t, strings.HasPrefix(k1, "productos/s1/p1-"))
	assert.True(t, strings.HasSuffix(k1, ".webp"))
	assert.NotEqual(t, k1, k2)
}
