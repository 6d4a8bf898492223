package analytics

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scope"
)

// Repository aggregates citas and clientes inside a scope. Period counts use
// [from, to); churn counts clients whose latest active cita started before
// churnBefore, ignoring the period.
type Repository interface {
	RawCounts(ctx context.Context, f scope.Filter, from, to, churnBefore time.Time) (RawCounts, error)
}
