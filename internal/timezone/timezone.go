package timezone

import (
	"fmt"
	"sync"
	"time"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Resolver maps sede time zones to locations. Sedes without a valid zone
// fall back to the configured default.
type Resolver struct {
	fallback *time.Location
	cache    sync.Map
}

func NewResolver(defaultTZ string) (*Resolver, error) {
	loc, err := time.LoadLocation(defaultTZ)
	if err != nil {
		return nil, fmt.Errorf("invalid default timezone %q: %w", defaultTZ, err)
	}
	return &Resolver{fallback: loc}, nil
}

func (r *Resolver) Default() *time.Location {
	return r.fallback
}

func (r *Resolver) Location(tz string) *time.Location {
	if tz == "" {
		return r.fallback
	}
	if loc, ok := r.cache.Load(tz); ok {
		return loc.(*time.Location)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return r.fallback
	}
	r.cache.Store(tz, loc)
	return loc
}

func (r *Resolver) NowIn(now time.Time, tz string) time.Time {
	return now.In(r.Location(tz))
}
