//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"poolside/internal/domain/availability"
	"poolside/internal/domain/reservation"
	"poolside/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileOne(t *testing.T) {
	ctx := context.Background()

	t.Run("blocking reservation with a live window holds the pool", func(t *testing.T) {
		env := newCommandEnv()
		p := env.seedPool(uuid.New())
		env.seedReservation(builder.NewReservationBuilder().
			WithPoolID(p.ID()).
			AsAccepted().
			WithWindow(baseTime.Add(-time.Hour), baseTime.Add(time.Hour)))

		require.NoError(t, env.reconciler.ReconcileOne(ctx, p.ID()))
		assert.False(t, env.pools.Available(p.ID()))
	})

	t.Run("elapsed reservation window releases the pool", func(t *testing.T) {
		env := newCommandEnv()
		p := builder.NewPoolBuilder().AsUnavailable().BuildReconstructed()
		env.pools.Put(p)
		env.seedReservation(builder.NewReservationBuilder().
			WithPoolID(p.ID()).
			AsPaid().
			WithWindow(baseTime.Add(-3*time.Hour), baseTime.Add(-time.Hour)))

		require.NoError(t, env.reconciler.ReconcileOne(ctx, p.ID()))
		assert.True(t, env.pools.Available(p.ID()))
	})

	t.Run("non-blocking statuses never hold the pool", func(t *testing.T) {
		for _, status := range []reservation.Status{
			reservation.StatusPending,
			reservation.StatusRejected,
			reservation.StatusCancelled,
			reservation.StatusRefused,
		} {
			env := newCommandEnv()
			p := env.seedPool(uuid.New())
			env.seedReservation(builder.NewReservationBuilder().
				WithPoolID(p.ID()).
				WithStatus(status).
				WithWindow(baseTime.Add(-time.Hour), baseTime.Add(time.Hour)))

			require.NoError(t, env.reconciler.ReconcileOne(ctx, p.ID()))
			assert.True(t, env.pools.Available(p.ID()), "status %s", status)
		}
	})

	t.Run("approved availability request holds the pool", func(t *testing.T) {
		env := newCommandEnv()
		p := env.seedPool(uuid.New())

		req, err := availability.NewRequest(p.ID(), uuid.New(), baseTime, "10:00", "18:00")
		require.NoError(t, err)
		require.NoError(t, env.requests.Create(ctx, req))
		require.NoError(t, env.requests.SetStatus(ctx, req.ID(), availability.StatusApproved))

		require.NoError(t, env.reconciler.ReconcileOne(ctx, p.ID()))
		assert.False(t, env.pools.Available(p.ID()))
	})

	t.Run("approved request with an elapsed window does not hold", func(t *testing.T) {
		env := newCommandEnv()
		p := env.seedPool(uuid.New())

		req, err := availability.NewRequest(p.ID(), uuid.New(), baseTime, "08:00", "11:00")
		require.NoError(t, err)
		require.NoError(t, env.requests.Create(ctx, req))
		require.NoError(t, env.requests.SetStatus(ctx, req.ID(), availability.StatusApproved))

		require.NoError(t, env.reconciler.ReconcileOne(ctx, p.ID()))
		assert.True(t, env.pools.Available(p.ID()))
	})

	t.Run("pending request does not hold", func(t *testing.T) {
		env := newCommandEnv()
		p := env.seedPool(uuid.New())

		req, err := availability.NewRequest(p.ID(), uuid.New(), baseTime, "10:00", "18:00")
		require.NoError(t, err)
		require.NoError(t, env.requests.Create(ctx, req))

		require.NoError(t, env.reconciler.ReconcileOne(ctx, p.ID()))
		assert.True(t, env.pools.Available(p.ID()))
	})

	t.Run("matches a direct recomputation on randomized fixtures", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		statuses := []reservation.Status{
			reservation.StatusPending,
			reservation.StatusAccepted,
			reservation.StatusRejected,
			reservation.StatusPaid,
			reservation.StatusCancelled,
			reservation.StatusRefused,
		}

		for i := 0; i < 50; i++ {
			env := newCommandEnv()
			p := env.seedPool(uuid.New())
			wantAvailable := true

			for n := rng.Intn(5); n > 0; n-- {
				status := statuses[rng.Intn(len(statuses))]
				end := baseTime.Add(time.Duration(rng.Intn(13)-6) * time.Hour)
				env.seedReservation(builder.NewReservationBuilder().
					WithPoolID(p.ID()).
					WithStatus(status).
					WithWindow(end.Add(-2*time.Hour), end))

				blocking := status == reservation.StatusAccepted || status == reservation.StatusPaid
				if blocking && !end.Before(baseTime) {
					wantAvailable = false
				}
			}

			for n := rng.Intn(3); n > 0; n-- {
				startHour := rng.Intn(23)
				endHour := startHour + 1 + rng.Intn(23-startHour)
				req, err := availability.NewRequest(p.ID(), uuid.New(), baseTime,
					fmt.Sprintf("%02d:00", startHour), fmt.Sprintf("%02d:00", endHour))
				require.NoError(t, err)
				require.NoError(t, env.requests.Create(ctx, req))

				if rng.Intn(2) == 0 {
					require.NoError(t, env.requests.SetStatus(ctx, req.ID(), availability.StatusApproved))
					if endHour >= 12 {
						wantAvailable = false
					}
				}
			}

			require.NoError(t, env.reconciler.ReconcileOne(ctx, p.ID()))
			assert.Equal(t, wantAvailable, env.pools.Available(p.ID()), "iteration %d", i)
		}
	})

	t.Run("idempotent: repeated runs write the same value", func(t *testing.T) {
		env := newCommandEnv()
		p := env.seedPool(uuid.New())
		env.seedReservation(builder.NewReservationBuilder().
			WithPoolID(p.ID()).
			AsAccepted().
			WithWindow(baseTime.Add(-time.Hour), baseTime.Add(time.Hour)))

		require.NoError(t, env.reconciler.ReconcileOne(ctx, p.ID()))
		require.NoError(t, env.reconciler.ReconcileOne(ctx, p.ID()))
		assert.False(t, env.pools.Available(p.ID()))
	})
}

func TestReconcileAll(t *testing.T) {
	ctx := context.Background()

	t.Run("releases unavailable pools whose holds lapsed", func(t *testing.T) {
		env := newCommandEnv()

		stale := builder.NewPoolBuilder().AsUnavailable().BuildReconstructed()
		env.pools.Put(stale)
		env.seedReservation(builder.NewReservationBuilder().
			WithPoolID(stale.ID()).
			AsPaid().
			WithWindow(baseTime.Add(-4*time.Hour), baseTime.Add(-2*time.Hour)))

		held := builder.NewPoolBuilder().AsUnavailable().BuildReconstructed()
		env.pools.Put(held)
		env.seedReservation(builder.NewReservationBuilder().
			WithPoolID(held.ID()).
			AsAccepted().
			WithWindow(baseTime.Add(-time.Hour), baseTime.Add(time.Hour)))

		require.NoError(t, env.reconciler.ReconcileAll(ctx))

		assert.True(t, env.pools.Available(stale.ID()))
		assert.False(t, env.pools.Available(held.ID()))
	})

	t.Run("pools already available are left alone", func(t *testing.T) {
		env := newCommandEnv()
		p := env.seedPool(uuid.New())

		require.NoError(t, env.reconciler.ReconcileAll(ctx))
		assert.True(t, env.pools.Available(p.ID()))
	})
}
