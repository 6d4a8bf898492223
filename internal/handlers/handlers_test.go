package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/analytics"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAnalytics "github.com/BruksfildServices01/salon-scheduler/internal/usecase/analytics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func asCaller(id scope.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextIdentity, id)
		c.Next()
	}
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func intp(v int) *int { return &v }

func TestValidateWeek(t *testing.T) {
	ok := []HorarioDTO{
		{DiaSemana: 0, HoraInicio: "10:00", HoraFin: "14:00"},
		{DiaSemana: 2, HoraInicio: "09:00", HoraFin: "17:00"},
	}
	assert.NoError(t, validateWeek(ok))
	assert.NoError(t, validateWeek(nil))

	cases := map[string]struct {
		dias []HorarioDTO
		code string
	}{
		"weekday out of range": {[]HorarioDTO{{DiaSemana: 7, HoraInicio: "09:00", HoraFin: "10:00"}}, "invalid_weekday"},
		"negative weekday":     {[]HorarioDTO{{DiaSemana: -1, HoraInicio: "09:00", HoraFin: "10:00"}}, "invalid_weekday"},
		"repeated weekday": {[]HorarioDTO{
			{DiaSemana: 1, HoraInicio: "09:00", HoraFin: "10:00"},
			{DiaSemana: 1, HoraInicio: "11:00", HoraFin: "12:00"},
		}, "duplicate_weekday"},
		"bad clock": {[]HorarioDTO{{DiaSemana: 1, HoraInicio: "9h", HoraFin: "10:00"}}, "invalid_clock"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := validateWeek(tc.dias)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}

	err := validateWeek([]HorarioDTO{{DiaSemana: 1, HoraInicio: "12:00", HoraFin: "09:00"}})
	require.Error(t, err)
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
}

func TestBloqueoRequestToModel(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	b, err := CreateBloqueoRequest{Motivo: " almuerzo ", FechaInicio: &start, FechaFin: &end}.toModel("E1")
	require.NoError(t, err)
	assert.Equal(t, "E1", b.EstilistaID)
	assert.Equal(t, "almuerzo", b.Motivo)
	assert.False(t, b.EsRecurrente)
	assert.Equal(t, start, *b.FechaInicio)

	b, err = CreateBloqueoRequest{EsRecurrente: true, DiaSemana: intp(3), HoraInicio: "13:00", HoraFin: "14:00"}.toModel("E1")
	require.NoError(t, err)
	assert.True(t, b.EsRecurrente)
	assert.Equal(t, 3, *b.DiaSemana)
	assert.Nil(t, b.FechaInicio)

	b, err = CreateBloqueoRequest{EsRecurrente: true, DiaSemana: intp(0)}.toModel("E1")
	require.NoError(t, err)
	assert.Empty(t, b.HoraInicio)

	cases := map[string]struct {
		req  CreateBloqueoRequest
		code string
	}{
		"one-off without dates":    {CreateBloqueoRequest{FechaInicio: &start}, "missing_dates"},
		"one-off inverted":         {CreateBloqueoRequest{FechaInicio: &end, FechaFin: &start}, "invalid_range"},
		"one-off zero length":      {CreateBloqueoRequest{FechaInicio: &start, FechaFin: &start}, "invalid_range"},
		"recurring without day":    {CreateBloqueoRequest{EsRecurrente: true}, "invalid_weekday"},
		"recurring day too large":  {CreateBloqueoRequest{EsRecurrente: true, DiaSemana: intp(9)}, "invalid_weekday"},
		"recurring only one hour":  {CreateBloqueoRequest{EsRecurrente: true, DiaSemana: intp(1), HoraInicio: "10:00"}, "invalid_hours"},
		"recurring malformed hour": {CreateBloqueoRequest{EsRecurrente: true, DiaSemana: intp(1), HoraInicio: "25:00", HoraFin: "26:00"}, "invalid_clock"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tc.req.toModel("E1")
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestCleanList(t *testing.T) {
	assert.Equal(t, []string{"color", "corte"}, cleanList([]string{" Color", "corte", "", "COLOR"}))
	assert.Empty(t, cleanList(nil))
}

func TestNormalizeContact(t *testing.T) {
	email, phone, err := normalizeContact(" Ana@Mail.COM ", "+57 300 123 4567")
	require.NoError(t, err)
	assert.Equal(t, "ana@mail.com", email)
	assert.Equal(t, "+573001234567", phone)

	_, _, err = normalizeContact("no-es-correo", "")
	assert.True(t, httperr.IsBusiness(err, "invalid_email"))

	_, _, err = normalizeContact("", "12")
	assert.True(t, httperr.IsBusiness(err, "invalid_phone"))
}

func TestCatalogWritesRejectNonAdminRoles(t *testing.T) {
	env := Env{Log: zap.NewNop()}
	estilista := scope.Identity{UserID: "u1", Role: scope.RoleEstilista, SedeID: "S1"}
	recepcion := scope.Identity{UserID: "u2", Role: scope.RoleRecepcionista, SedeID: "S1"}

	cases := []struct {
		name   string
		caller scope.Identity
		method string
		path   string
		h      gin.HandlerFunc
	}{
		{"estilista creates servicio", estilista, http.MethodPost, "/servicios", NewServicioHandler(env).Create},
		{"recepcionista creates servicio", recepcion, http.MethodPost, "/servicios", NewServicioHandler(env).Create},
		{"estilista creates estilista", estilista, http.MethodPost, "/estilistas", NewEstilistaHandler(env).Create},
		{"recepcionista replaces horarios", recepcion, http.MethodPut, "/horarios", NewHorarioHandler(env).Replace},
		{"estilista creates cliente", estilista, http.MethodPost, "/clientes", NewClienteHandler(env).Create},
		{"estilista creates bloqueo", estilista, http.MethodPost, "/bloqueos", NewBloqueoHandler(env).Create},
		{"recepcionista updates producto", recepcion, http.MethodPatch, "/productos", NewProductoHandler(env, nil).Update},
		{"recepcionista reads audit logs", recepcion, http.MethodGet, "/audit-logs", NewAuditLogsHandler(env).List},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(asCaller(tc.caller))
			r.Handle(tc.method, tc.path, tc.h)

			w := serve(r, tc.method, tc.path, `{}`)
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Equal(t, "forbidden_role", errorCode(t, w))
		})
	}
}

// ------------------------------------------------------
// analytics
// ------------------------------------------------------

type stubCounts struct {
	raw    domain.RawCounts
	filter scope.Filter
}

func (s *stubCounts) RawCounts(_ context.Context, f scope.Filter, _, _, _ time.Time) (domain.RawCounts, error) {
	s.filter = f
	return s.raw, nil
}

type stubSedes map[string]string

func (s stubSedes) FranquiciaOf(_ context.Context, id string) (string, error) {
	f, ok := s[id]
	if !ok {
		return "", httperr.ErrNotFound("sede_not_found", "La sede no existe.")
	}
	return f, nil
}

func analyticsRouter(t *testing.T, caller scope.Identity, repo *stubCounts) *gin.Engine {
	t.Helper()
	tz, err := timezone.NewResolver("UTC")
	require.NoError(t, err)

	uc := ucAnalytics.NewDashboard(repo, stubSedes{"S1": "F1", "S2": ""}, nil, time.Minute, 60, tz, zap.NewNop())
	uc.Now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }

	h := NewAnalyticsHandler(uc, zap.NewNop())
	r := gin.New()
	r.Use(asCaller(caller))
	r.GET("/analytics/dashboard", h.Dashboard)
	r.GET("/analytics/dashboard/export", h.Export)
	return r
}

func TestDashboardEndpoint(t *testing.T) {
	repo := &stubCounts{raw: domain.RawCounts{
		NewClients:            4,
		TotalAppointments:     10,
		CancelledAppointments: 1,
		TotalClients:          5,
		RecurringClients:      2,
		FinalizedAppointments: 4,
		Revenue:               decimal.NewFromInt(200000),
	}}
	r := analyticsRouter(t, scope.Identity{Role: scope.RoleAdminSede, SedeID: "S1"}, repo)

	w := serve(r, http.MethodGet, "/analytics/dashboard?period=last_7_days", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, scope.Filter{SedeID: "S1"}, repo.filter)

	var ov domain.Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ov))
	assert.Equal(t, "last_7_days", ov.Period.Name)
	assert.Equal(t, 7, ov.Period.Days)
	assert.Equal(t, int64(4), ov.NewClients)
	assert.InDelta(t, 40.0, ov.RecurrenceRate, 0.001)
	assert.True(t, ov.AverageTicket.Equal(decimal.NewFromInt(50000)))
}

func TestDashboardEndpointErrors(t *testing.T) {
	cases := []struct {
		name   string
		caller scope.Identity
		query  string
		status int
	}{
		{"unknown period", scope.Identity{Role: scope.RoleSuperAdmin}, "period=forever", http.StatusBadRequest},
		{"other sede", scope.Identity{Role: scope.RoleAdminSede, SedeID: "S1"}, "period=today&sede_id=S2", http.StatusForbidden},
		{"franquicia admin without franquicia", scope.Identity{Role: scope.RoleAdminFranquicia}, "period=today", http.StatusUnprocessableEntity},
		{"estilista", scope.Identity{Role: scope.RoleEstilista, SedeID: "S1"}, "period=today", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := analyticsRouter(t, tc.caller, &stubCounts{})
			w := serve(r, http.MethodGet, "/analytics/dashboard?"+tc.query, "")
			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}
}

func TestDashboardExportEndpoint(t *testing.T) {
	repo := &stubCounts{raw: domain.RawCounts{TotalAppointments: 3, TotalClients: 2}}
	r := analyticsRouter(t, scope.Identity{Role: scope.RoleSuperAdmin}, repo)

	w := serve(r, http.MethodGet, "/analytics/dashboard/export?period=today", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="kpis_2026-03-15_2026-03-15.xlsx"`)
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
}
