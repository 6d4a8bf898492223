package repository

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
)

// ApplyScope restricts q to the sedes visible under f. column is the
// sede_id column of the queried table.
func ApplyScope(q *gorm.DB, f scope.Filter, column string) *gorm.DB {
	switch {
	case f.All:
		return q
	case f.SedeID != "":
		return q.Where(column+" = ?", f.SedeID)
	case f.FranquiciaID != "":
		return q.Where(column+" IN (SELECT id FROM sedes WHERE franquicia_id = ?)", f.FranquiciaID)
	}
	// An empty filter matches nothing.
	return q.Where("1 = 0")
}
