package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

var errStoreTimeout = httperr.ErrUnavailable("store_timeout", "El almacenamiento no respondió a tiempo. Intente de nuevo.")

// mapErr translates store failures into business errors. notFound is
// returned for missing rows; it may be nil when absence is not an error.
func mapErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, context.DeadlineExceeded):
		return errStoreTimeout
	case httperr.IsExclusionConflict(err):
		return httperr.ErrConflict("time_conflict", "El estilista ya tiene una cita en ese horario.")
	case httperr.IsUniqueViolation(err):
		return httperr.ErrConflict("duplicate", "Ya existe un registro con esos datos.")
	}
	return err
}

// MapErr is the exported form used by handlers that query the store directly.
func MapErr(err error, notFound error) error {
	return mapErr(err, notFound)
}
