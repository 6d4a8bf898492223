package repository

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var errSedeNotFound = httperr.ErrNotFound("sede_not_found", "La sede no existe.")

type SedeGormRepository struct {
	store *db.Store
}

func NewSedeGormRepository(store *db.Store) *SedeGormRepository {
	return &SedeGormRepository{store: store}
}

func (r *SedeGormRepository) GetSede(ctx context.Context, id string) (*models.Sede, error) {
	ctx, cancel := r.store.Ctx(ctx)
	defer cancel()

	var sede models.Sede
	if err := r.store.DB.WithContext(ctx).First(&sede, "id = ?", id).Error; err != nil {
		return nil, mapErr(err, errSedeNotFound)
	}
	return &sede, nil
}

func (r *SedeGormRepository) FranquiciaOf(ctx context.Context, sedeID string) (string, error) {
	sede, err := r.GetSede(ctx, sedeID)
	if err != nil {
		return "", err
	}
	return sede.Franquicia(), nil
}

func (r *SedeGormRepository) ListSedes(ctx context.Context, f scope.Filter) ([]models.Sede, error) {
	ctx, cancel := r.store.Ctx(ctx)
	defer cancel()

	q := r.store.DB.WithContext(ctx).Model(&models.Sede{})
	switch {
	case f.All:
	case f.SedeID != "":
		q = q.Where("id = ?", f.SedeID)
	case f.FranquiciaID != "":
		q = q.Where("franquicia_id = ?", f.FranquiciaID)
	default:
		q = q.Where("1 = 0")
	}

	var sedes []models.Sede
	if err := q.Order("nombre ASC").Find(&sedes).Error; err != nil {
		return nil, mapErr(err, nil)
	}
	return sedes, nil
}

var _ scope.SedeResolver = (*SedeGormRepository)(nil)
