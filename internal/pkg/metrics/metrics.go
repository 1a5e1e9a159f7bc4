package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poolside",
			Name:      "reservation_transitions_total",
			Help:      "Count of reservation status transitions by target status.",
		},
		[]string{"status"},
	)

	sweepsRun = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "poolside",
			Name:      "payment_sweeps_total",
			Help:      "Count of expiration sweeps executed.",
		},
	)

	reservationsSwept = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "poolside",
			Name:      "reservations_swept_total",
			Help:      "Count of reservations refused by the expiration sweeper.",
		},
	)

	webhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poolside",
			Name:      "webhook_events_total",
			Help:      "Count of gateway webhook events by type and outcome.",
		},
		[]string{"type", "outcome"},
	)

	reconcileRuns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "poolside",
			Name:      "availability_reconcile_total",
			Help:      "Count of availability reconciliations.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			reservationTransitions,
			sweepsRun,
			reservationsSwept,
			webhookEvents,
			reconcileRuns,
		)
	})
}

func IncReservationTransition(status string) {
	reservationTransitions.WithLabelValues(status).Inc()
}

func IncSweepRun() {
	sweepsRun.Inc()
}

func AddReservationsSwept(n int) {
	reservationsSwept.Add(float64(n))
}

func IncWebhookEvent(eventType, outcome string) {
	webhookEvents.WithLabelValues(eventType, outcome).Inc()
}

func IncReconcileRun() {
	reconcileRuns.Inc()
}
