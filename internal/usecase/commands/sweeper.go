package commands

import (
	"context"
	"log/slog"
	"time"

	"poolside/internal/domain/reservation"
	"poolside/internal/pkg/clock"
	"poolside/internal/pkg/errs"
	"poolside/internal/pkg/metrics"

	"github.com/google/uuid"
)

// StatusTransitioner is the slice of ReservationCommands the sweeper needs;
// going through Transition keeps the reconcile and notification cascade on
// the sweeper's path too.
type StatusTransitioner interface {
	Transition(ctx context.Context, id uuid.UUID, target reservation.Status, actor Actor) error
}

// PaymentSweeper reclaims pools whose renter never paid: reservations still
// accepted past the payment deadline are forced to refused. Callers run it
// opportunistically before availability or revenue reads. Safe to run
// concurrently with itself and with ordinary transitions: the conditional
// status update makes the losing sweep a no-op.
type PaymentSweeper struct {
	reservations ReservationStore
	payments     PaymentStore
	transitioner StatusTransitioner
	clock        clock.Clock
	deadline     time.Duration
}

func NewPaymentSweeper(
	reservations ReservationStore,
	payments PaymentStore,
	transitioner StatusTransitioner,
	clk clock.Clock,
	deadline time.Duration,
) *PaymentSweeper {
	return &PaymentSweeper{
		reservations: reservations,
		payments:     payments,
		transitioner: transitioner,
		clock:        clk,
		deadline:     deadline,
	}
}

// SweepExpiredPayments refuses every reservation whose payment window,
// measured from acceptance, has lapsed. Each reservation is swept
// independently; one failure does not abort the batch. Returns the number of
// reservations swept.
func (s *PaymentSweeper) SweepExpiredPayments(ctx context.Context) (int, error) {
	cutoff := s.clock.Now().Add(-s.deadline)

	overdue, err := s.reservations.ListExpiredAccepted(ctx, cutoff)
	if err != nil {
		return 0, errs.Wrap(err, "failed to list overdue reservations")
	}

	metrics.IncSweepRun()
	if len(overdue) == 0 {
		return 0, nil
	}

	swept := 0
	for _, snap := range overdue {
		if err := s.transitioner.Transition(ctx, snap.ID, reservation.StatusRefused, SystemActor); err != nil {
			// lost a race with a payment or cancellation, or a transient
			// failure; either way the rest of the batch proceeds
			slog.Warn("sweep skipped reservation", "reservation_id", snap.ID, "error", err.Error())
			continue
		}

		if err := s.payments.RefuseByReservation(ctx, snap.ID); err != nil {
			slog.Warn("failed to refuse payment record", "reservation_id", snap.ID, "error", err.Error())
		}

		swept++
	}

	metrics.AddReservationsSwept(swept)
	if swept > 0 {
		slog.Info("expired reservations swept", "count", swept)
	}
	return swept, nil
}
