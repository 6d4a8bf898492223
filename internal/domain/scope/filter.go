package scope

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// Filter is the effective sede visibility of one request. Exactly one of
// All, SedeID or FranquiciaID is meaningful.
type Filter struct {
	All          bool
	SedeID       string
	FranquiciaID string
}

// Covers reports whether a sede (and the franquicia it belongs to) is
// visible under f.
func (f Filter) Covers(sedeID, franquiciaID string) bool {
	switch {
	case f.All:
		return true
	case f.SedeID != "":
		return f.SedeID == sedeID
	case f.FranquiciaID != "":
		return franquiciaID != "" && f.FranquiciaID == franquiciaID
	}
	return false
}

// Key identifies the filter in cache keys.
func (f Filter) Key() string {
	switch {
	case f.All:
		return "all"
	case f.SedeID != "":
		return "sede:" + f.SedeID
	default:
		return "franquicia:" + f.FranquiciaID
	}
}

// SedeResolver answers which franquicia a sede belongs to ("" when none).
type SedeResolver interface {
	FranquiciaOf(ctx context.Context, sedeID string) (string, error)
}

var (
	errForbiddenRole = httperr.ErrPermission("forbidden_role", "Su rol no tiene acceso a este recurso.")
	errForeignSede   = httperr.ErrPermission("sede_out_of_scope", "No tiene acceso a la sede solicitada.")
	errMissingSede   = httperr.ErrConfiguration("identity_without_sede", "El usuario no tiene una sede asignada.")
	errMissingFranq  = httperr.ErrConfiguration("identity_without_franquicia", "El usuario no tiene una franquicia asignada.")
)

// For computes the reporting scope of a caller. requested is the sede_id the
// caller asked for ("" for none). Rules are evaluated in order and the first
// match wins.
func For(ctx context.Context, id Identity, requested string, sedes SedeResolver) (Filter, error) {
	switch id.Role {
	case RoleSuperAdmin:
		if requested != "" {
			return Filter{SedeID: requested}, nil
		}
		return Filter{All: true}, nil

	case RoleAdminFranquicia:
		if id.FranquiciaID == "" {
			return Filter{}, errMissingFranq
		}
		if requested == "" {
			return Filter{FranquiciaID: id.FranquiciaID}, nil
		}
		franq, err := sedes.FranquiciaOf(ctx, requested)
		if err != nil {
			if httperr.KindOf(err) == httperr.KindNotFound {
				return Filter{}, errForeignSede
			}
			return Filter{}, err
		}
		if franq != id.FranquiciaID {
			return Filter{}, errForeignSede
		}
		return Filter{SedeID: requested}, nil

	case RoleAdminSede:
		if id.SedeID == "" {
			return Filter{}, errMissingSede
		}
		if requested != "" && requested != id.SedeID {
			return Filter{}, errForeignSede
		}
		return Filter{SedeID: id.SedeID}, nil
	}

	return Filter{}, errForbiddenRole
}

// ForOperations is the scope used by day-to-day endpoints (agenda, catalog).
// Admin roles get the reporting scope; front-desk and estilista callers are
// pinned to their own sede.
func ForOperations(ctx context.Context, id Identity, requested string, sedes SedeResolver) (Filter, error) {
	switch id.Role {
	case RoleRecepcionista, RoleEstilista:
		if id.SedeID == "" {
			return Filter{}, errMissingSede
		}
		if requested != "" && requested != id.SedeID {
			return Filter{}, errForeignSede
		}
		return Filter{SedeID: id.SedeID}, nil
	}
	return For(ctx, id, requested, sedes)
}
