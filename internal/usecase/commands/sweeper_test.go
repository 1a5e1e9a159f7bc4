//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"poolside/internal/domain/payment"
	"poolside/internal/domain/reservation"
	"poolside/internal/usecase/commands"
	"poolside/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepExpiredPayments(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	seedAccepted := func(env *commandEnv, acceptedAt time.Time) *commands.ReservationSnapshot {
		p := env.seedPool(ownerID)
		return env.seedReservation(builder.NewReservationBuilder().
			WithPoolID(p.ID()).
			WithPoolOwnerID(ownerID).
			AsAccepted().
			WithWindow(baseTime.Add(24*time.Hour), baseTime.Add(26*time.Hour)).
			WithUpdatedAt(acceptedAt))
	}

	t.Run("refuses reservations past the payment deadline", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env, baseTime.Add(-paymentDeadline-time.Hour))
		env.payments.Put(&payment.Record{
			ID:            uuid.New(),
			ReservationID: snap.ID,
			IntentID:      "pi_stale",
			Status:        payment.StatusPending,
		})

		swept, err := env.newSweeper().SweepExpiredPayments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, swept)

		assert.Equal(t, reservation.StatusRefused, env.reservations.Get(snap.ID).Status)
		assert.Equal(t, payment.StatusRefused, env.payments.Get(snap.ID).Status)
		assert.True(t, env.pools.Available(snap.PoolID))
	})

	t.Run("one second past the deadline counts as expired", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env, baseTime.Add(-paymentDeadline-time.Second))

		swept, err := env.newSweeper().SweepExpiredPayments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, swept)
		assert.Equal(t, reservation.StatusRefused, env.reservations.Get(snap.ID).Status)
	})

	t.Run("exactly at the deadline is not yet swept", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env, baseTime.Add(-paymentDeadline))

		swept, err := env.newSweeper().SweepExpiredPayments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, swept)
		assert.Equal(t, reservation.StatusAccepted, env.reservations.Get(snap.ID).Status)
	})

	t.Run("leaves reservations inside the window untouched", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env, baseTime.Add(-paymentDeadline+time.Hour))

		swept, err := env.newSweeper().SweepExpiredPayments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, swept)
		assert.Equal(t, reservation.StatusAccepted, env.reservations.Get(snap.ID).Status)
	})

	t.Run("only accepted reservations are swept", func(t *testing.T) {
		env := newCommandEnv()
		p := env.seedPool(ownerID)
		old := baseTime.Add(-48 * time.Hour)
		paid := env.seedReservation(builder.NewReservationBuilder().
			WithPoolID(p.ID()).WithPoolOwnerID(ownerID).AsPaid().WithUpdatedAt(old))
		pending := env.seedReservation(builder.NewReservationBuilder().
			WithPoolID(p.ID()).WithPoolOwnerID(ownerID).WithUpdatedAt(old))

		swept, err := env.newSweeper().SweepExpiredPayments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, swept)
		assert.Equal(t, reservation.StatusPaid, env.reservations.Get(paid.ID).Status)
		assert.Equal(t, reservation.StatusPending, env.reservations.Get(pending.ID).Status)
	})

	t.Run("mixed batch sweeps only the overdue", func(t *testing.T) {
		env := newCommandEnv()
		overdue := seedAccepted(env, baseTime.Add(-paymentDeadline-time.Minute))
		fresh := seedAccepted(env, baseTime.Add(-time.Hour))

		swept, err := env.newSweeper().SweepExpiredPayments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, swept)
		assert.Equal(t, reservation.StatusRefused, env.reservations.Get(overdue.ID).Status)
		assert.Equal(t, reservation.StatusAccepted, env.reservations.Get(fresh.ID).Status)
	})

	t.Run("losing a race with a payment skips the reservation", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env, baseTime.Add(-paymentDeadline-time.Hour))

		// the webhook lands between the overdue listing and the sweep's update
		env.reservations.BeforeUpdate = func() {
			rival := env.reservations.Get(snap.ID)
			rival.Status = reservation.StatusPaid
			env.reservations.Put(rival)
		}

		swept, err := env.newSweeper().SweepExpiredPayments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, swept)
		assert.Equal(t, reservation.StatusPaid, env.reservations.Get(snap.ID).Status)
		assert.Nil(t, env.payments.Get(snap.ID))
	})

	t.Run("sweeping twice is a no-op the second time", func(t *testing.T) {
		env := newCommandEnv()
		seedAccepted(env, baseTime.Add(-paymentDeadline-time.Hour))

		sweeper := env.newSweeper()
		first, err := sweeper.SweepExpiredPayments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, first)

		second, err := sweeper.SweepExpiredPayments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, second)
	})
}
