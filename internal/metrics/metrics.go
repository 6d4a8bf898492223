package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salon_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "salon_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	CitaTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salon_citas_transitions_total",
		Help: "Cita lifecycle events (created, confirmed, cancelled, finalized, paid).",
	}, []string{"event"})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_booking_conflicts_total",
		Help: "Bookings rejected because the slot was no longer free.",
	})

	KPICacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salon_kpi_cache_lookups_total",
		Help: "Dashboard cache lookups by result (hit, miss, error).",
	}, []string{"result"})

	BackgroundDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salon_background_dropped_total",
		Help: "Audit or receipt jobs dropped because the queue was full.",
	}, []string{"queue"})
)
