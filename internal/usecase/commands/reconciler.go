package commands

import (
	"context"
	"log/slog"

	"poolside/internal/pkg/clock"
	"poolside/internal/pkg/errs"
	"poolside/internal/pkg/metrics"

	"github.com/google/uuid"
)

// AvailabilityReconciler recomputes a pool's availability flag from ground
// truth: the pool is unavailable iff at least one accepted/paid reservation
// or one approved availability request still covers the current instant.
// It derives the flag from source tables rather than patching it
// incrementally, so redundant concurrent runs converge on the same value.
type AvailabilityReconciler struct {
	reservations ReservationStore
	requests     RequestStore
	pools        PoolStore
	clock        clock.Clock
}

func NewAvailabilityReconciler(
	reservations ReservationStore,
	requests RequestStore,
	pools PoolStore,
	clk clock.Clock,
) *AvailabilityReconciler {
	return &AvailabilityReconciler{
		reservations: reservations,
		requests:     requests,
		pools:        pools,
		clock:        clk,
	}
}

// ReconcileOne rewrites the availability flag for a single pool. Idempotent:
// a second run with no intervening change writes the same value.
func (r *AvailabilityReconciler) ReconcileOne(ctx context.Context, poolID uuid.UUID) error {
	now := r.clock.Now()

	hold := false

	holds, err := r.reservations.ListHoldCandidates(ctx, poolID)
	if err != nil {
		return errs.Wrap(err, "failed to load reservations for reconcile")
	}
	for _, snap := range holds {
		if snap.Status.Blocks() && !snap.EndTime.Before(now) {
			hold = true
			break
		}
	}

	if !hold {
		approved, err := r.requests.ListApproved(ctx, poolID)
		if err != nil {
			return errs.Wrap(err, "failed to load availability requests for reconcile")
		}
		for _, req := range approved {
			if req.HoldsPoolAt(now) {
				hold = true
				break
			}
		}
	}

	if err := r.pools.SetAvailability(ctx, poolID, !hold); err != nil {
		return errs.Wrap(err, "failed to write availability flag")
	}

	metrics.IncReconcileRun()
	return nil
}

// ReconcileAll re-derives availability for every pool currently flagged
// unavailable. Restricting to unavailable pools is an optimization: a pool
// flagged available can only lose that flag through a transition, and every
// transition already reconciles its own pool. Per-pool failures are logged
// and do not abort the batch.
func (r *AvailabilityReconciler) ReconcileAll(ctx context.Context) error {
	ids, err := r.pools.ListUnavailableIDs(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to list unavailable pools")
	}

	for _, id := range ids {
		if err := r.ReconcileOne(ctx, id); err != nil {
			slog.Warn("reconcile failed for pool", "pool_id", id, "error", err.Error())
		}
	}
	return nil
}
