package analytics

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/analytics"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type DashboardInput struct {
	Period    string
	StartDate string
	EndDate   string
	SedeID    string
}

type Dashboard struct {
	repo      domain.Repository
	sedes     scope.SedeResolver
	cache     cache.Cache
	cacheTTL  time.Duration
	churnDays int
	tz        *timezone.Resolver
	log       *zap.Logger

	Now func() time.Time
}

func NewDashboard(
	repo domain.Repository,
	sedes scope.SedeResolver,
	kpiCache cache.Cache,
	cacheTTL time.Duration,
	churnDays int,
	tz *timezone.Resolver,
	log *zap.Logger,
) *Dashboard {
	if kpiCache == nil {
		kpiCache = cache.Noop{}
	}
	return &Dashboard{
		repo:      repo,
		sedes:     sedes,
		cache:     kpiCache,
		cacheTTL:  cacheTTL,
		churnDays: churnDays,
		tz:        tz,
		log:       log,
		Now:       time.Now,
	}
}

// Execute computes the scope once and runs every aggregate under it.
func (uc *Dashboard) Execute(ctx context.Context, caller scope.Identity, in DashboardInput) (domain.Overview, error) {
	filter, err := scope.For(ctx, caller, in.SedeID, uc.sedes)
	if err != nil {
		return domain.Overview{}, err
	}

	now := uc.Now().In(uc.tz.Default())

	period, err := domain.ResolvePeriod(in.Period, in.StartDate, in.EndDate, now)
	if err != nil {
		return domain.Overview{}, err
	}

	key := fmt.Sprintf("kpi:%s:%s:%s:%s",
		filter.Key(),
		period.Name,
		period.StartDate.Format("2006-01-02"),
		period.EndDate.Format("2006-01-02"),
	)

	var cached domain.Overview
	hit, err := uc.cache.Get(ctx, key, &cached)
	if err != nil {
		uc.log.Warn("kpi cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		metrics.KPICacheLookups.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.KPICacheLookups.WithLabelValues("miss").Inc()

	from, to := period.Bounds()
	raw, err := uc.repo.RawCounts(ctx, filter, from, to, now.AddDate(0, 0, -uc.churnDays))
	if err != nil {
		return domain.Overview{}, err
	}

	overview := domain.Compute(raw, period)

	if err := uc.cache.Set(ctx, key, overview, uc.cacheTTL); err != nil {
		uc.log.Warn("kpi cache write failed", zap.String("key", key), zap.Error(err))
	}

	return overview, nil
}
