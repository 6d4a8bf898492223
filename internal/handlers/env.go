package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
)

var (
	adminRoles     = []scope.Role{scope.RoleSuperAdmin, scope.RoleAdminFranquicia, scope.RoleAdminSede}
	frontDeskRoles = append([]scope.Role{scope.RoleRecepcionista}, adminRoles...)

	errRoleCannotWrite = httperr.ErrPermission("forbidden_role", "Su rol no puede modificar este recurso.")
	errMissingSedeID   = httperr.ErrValidation("missing_sede_id", "Indique sede_id.")
)

// Env bundles what the catalog handlers share.
type Env struct {
	Store *db.Store
	Sedes *repository.SedeGormRepository
	Audit *audit.Dispatcher
	Log   *zap.Logger
}

func (e Env) fail(c *gin.Context, err error) {
	httperr.Respond(c, e.Log, err)
}

// conn returns a handle bound to the request context and the store timeout.
func (e Env) conn(c *gin.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := e.Store.Ctx(c.Request.Context())
	return e.Store.DB.WithContext(ctx), cancel
}

// scope computes the operational filter for the caller, writing the error
// response when it fails.
func (e Env) scope(c *gin.Context, requested string) (scope.Filter, bool) {
	f, err := scope.ForOperations(c.Request.Context(), middleware.Identity(c), requested, e.Sedes)
	if err != nil {
		e.fail(c, err)
		return scope.Filter{}, false
	}
	return f, true
}

// authorizeSede checks that an existing record's sede is operable by the caller.
func (e Env) authorizeSede(c *gin.Context, sedeID string) bool {
	_, ok := e.scope(c, sedeID)
	return ok
}

// targetSede resolves the single sede a new record is created in.
func (e Env) targetSede(c *gin.Context, requested string) (string, bool) {
	f, ok := e.scope(c, requested)
	if !ok {
		return "", false
	}
	if f.SedeID == "" {
		e.fail(c, errMissingSedeID)
		return "", false
	}
	if _, err := e.Sedes.GetSede(c.Request.Context(), f.SedeID); err != nil {
		e.fail(c, err)
		return "", false
	}
	return f.SedeID, true
}

func (e Env) requireRole(c *gin.Context, allowed []scope.Role) bool {
	role := middleware.Identity(c).Role
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	e.fail(c, errRoleCannotWrite)
	return false
}

func (e Env) record(c *gin.Context, sedeID, action, entity, entityID string, meta any) {
	if e.Audit == nil {
		return
	}
	id := middleware.Identity(c)
	e.Audit.Dispatch(audit.Event{
		SedeID:   sedeID,
		UserID:   id.UserID,
		UserRole: string(id.Role),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: meta,
	})
}
