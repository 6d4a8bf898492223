package httperr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func respond(err error) (*httptest.ResponseRecorder, HTTPError) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Respond(c, zap.NewNop(), err)

	var body HTTPError
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRespondMapsKinds(t *testing.T) {
	cases := []struct {
		err    error
		status int
		kind   Kind
	}{
		{ErrValidation("invalid_date", "x"), http.StatusBadRequest, KindValidation},
		{ErrPermission("forbidden", "x"), http.StatusForbidden, KindPermission},
		{ErrConfiguration("identity_without_sede", "x"), http.StatusUnprocessableEntity, KindConfiguration},
		{ErrConflict("slot_unavailable", "x"), http.StatusConflict, KindConflict},
		{ErrNotFound("cita_not_found", "x"), http.StatusNotFound, KindNotFound},
		{ErrUnavailable("store_timeout", "x"), http.StatusServiceUnavailable, KindUnavailable},
	}
	for _, tc := range cases {
		w, body := respond(tc.err)
		assert.Equal(t, tc.status, w.Code)
		assert.Equal(t, tc.kind, body.Kind)
		assert.Equal(t, "x", body.Message)
	}
}

func TestRespondHidesInternalFaults(t *testing.T) {
	w, body := respond(errors.New("pq: relation citas does not exist"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", body.Code)
	assert.NotContains(t, w.Body.String(), "relation")
}

func TestRespondTreatsDeadlineAsUnavailable(t *testing.T) {
	w, body := respond(fmt.Errorf("query: %w", context.DeadlineExceeded))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, KindUnavailable, body.Kind)
}

func TestIsBusinessAndKindOfSeeWrappedErrors(t *testing.T) {
	err := fmt.Errorf("create: %w", ErrConflict("slot_unavailable", ""))
	assert.True(t, IsBusiness(err, "slot_unavailable"))
	assert.False(t, IsBusiness(err, "other"))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestPostgresCodes(t *testing.T) {
	excl := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})
	uniq := &pgconn.PgError{Code: "23505"}

	assert.True(t, IsExclusionConflict(excl))
	assert.False(t, IsUniqueViolation(excl))
	assert.True(t, IsUniqueViolation(uniq))
	assert.False(t, IsExclusionConflict(errors.New("x")))
}

func TestWriteUsesStatusKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Unauthorized(c, "missing_token", "Credencial inválida o ausente.")

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, KindUnauthorized, body.Kind)
	assert.Equal(t, "missing_token", body.Code)
}
