//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"poolside/internal/domain/reservation"
	"poolside/internal/usecase/commands"
	"poolside/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success: quotes the pool rate and starts pending", func(t *testing.T) {
		env := newCommandEnv()
		ownerID := uuid.New()
		renterID := uuid.New()
		p := env.seedPool(ownerID)

		view, err := env.reservationCommands.Create(ctx, commands.CreateReservationParams{
			PoolID:    p.ID(),
			StartTime: baseTime.Add(24 * time.Hour),
			EndTime:   baseTime.Add(26 * time.Hour),
		}, renterID)
		require.NoError(t, err)
		require.NotNil(t, view)

		assert.Equal(t, reservation.StatusPending.String(), view.Status)
		assert.Equal(t, 2*p.HourlyRateCents(), view.AmountCents)
		assert.Equal(t, renterID, view.RenterID)

		snap := env.reservations.Get(view.ID)
		require.NotNil(t, snap)
		assert.Equal(t, reservation.StatusPending, snap.Status)

		kinds := env.emitter.Kinds()
		require.Len(t, kinds, 1)
		assert.Equal(t, commands.NotifyReservationCreated, kinds[0])
	})

	t.Run("error: unknown pool", func(t *testing.T) {
		env := newCommandEnv()

		_, err := env.reservationCommands.Create(ctx, commands.CreateReservationParams{
			PoolID:    uuid.New(),
			StartTime: baseTime,
			EndTime:   baseTime.Add(time.Hour),
		}, uuid.New())
		require.ErrorIs(t, err, commands.ErrPoolNotFound)
	})

	t.Run("error: inverted rental window", func(t *testing.T) {
		env := newCommandEnv()
		p := env.seedPool(uuid.New())

		_, err := env.reservationCommands.Create(ctx, commands.CreateReservationParams{
			PoolID:    p.ID(),
			StartTime: baseTime.Add(2 * time.Hour),
			EndTime:   baseTime,
		}, uuid.New())
		require.ErrorIs(t, err, commands.ErrInvalidWindow)
	})
}

func TestTransitionAuthorization(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	renterID := uuid.New()
	strangerID := uuid.New()

	cases := []struct {
		name   string
		from   reservation.Status
		target reservation.Status
		actor  commands.Actor
		errIs  error
	}{
		{name: "owner accepts pending", from: reservation.StatusPending, target: reservation.StatusAccepted, actor: ownerActor(ownerID)},
		{name: "owner rejects pending", from: reservation.StatusPending, target: reservation.StatusRejected, actor: ownerActor(ownerID)},
		{name: "renter cannot accept", from: reservation.StatusPending, target: reservation.StatusAccepted, actor: renterActor(renterID), errIs: commands.ErrNotAuthorized},
		{name: "stranger cannot reject", from: reservation.StatusPending, target: reservation.StatusRejected, actor: renterActor(strangerID), errIs: commands.ErrNotAuthorized},
		{name: "renter cancels accepted", from: reservation.StatusAccepted, target: reservation.StatusCancelled, actor: renterActor(renterID)},
		{name: "owner cancels accepted", from: reservation.StatusAccepted, target: reservation.StatusCancelled, actor: ownerActor(ownerID)},
		{name: "stranger cannot cancel", from: reservation.StatusAccepted, target: reservation.StatusCancelled, actor: renterActor(strangerID), errIs: commands.ErrNotAuthorized},
		{name: "system marks paid", from: reservation.StatusAccepted, target: reservation.StatusPaid, actor: commands.SystemActor},
		{name: "system refuses", from: reservation.StatusAccepted, target: reservation.StatusRefused, actor: commands.SystemActor},
		{name: "renter cannot mark paid", from: reservation.StatusAccepted, target: reservation.StatusPaid, actor: renterActor(renterID), errIs: commands.ErrNotAuthorized},
		{name: "owner cannot refuse", from: reservation.StatusAccepted, target: reservation.StatusRefused, actor: ownerActor(ownerID), errIs: commands.ErrNotAuthorized},
		{name: "system cannot accept", from: reservation.StatusPending, target: reservation.StatusAccepted, actor: commands.SystemActor, errIs: commands.ErrNotAuthorized},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env := newCommandEnv()
			snap := env.seedReservation(builder.NewReservationBuilder().
				WithPoolOwnerID(ownerID).
				WithRenterID(renterID).
				WithStatus(c.from).
				WithWindow(baseTime.Add(24*time.Hour), baseTime.Add(26*time.Hour)).
				WithUpdatedAt(baseTime))

			err := env.reservationCommands.Transition(ctx, snap.ID, c.target, c.actor)

			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.target, env.reservations.Get(snap.ID).Status)
			} else {
				require.ErrorIs(t, err, c.errIs)
				assert.Equal(t, c.from, env.reservations.Get(snap.ID).Status)
			}
		})
	}
}

func TestTransitionLifecycleRules(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("error: step not in the transition table", func(t *testing.T) {
		env := newCommandEnv()
		snap := env.seedReservation(builder.NewReservationBuilder().
			WithPoolOwnerID(ownerID).
			WithStatus(reservation.StatusPending))

		err := env.reservationCommands.Transition(ctx, snap.ID, reservation.StatusPaid, commands.SystemActor)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("error: terminal statuses never move", func(t *testing.T) {
		for _, terminal := range []reservation.Status{
			reservation.StatusRejected,
			reservation.StatusPaid,
			reservation.StatusCancelled,
			reservation.StatusRefused,
		} {
			env := newCommandEnv()
			snap := env.seedReservation(builder.NewReservationBuilder().
				WithPoolOwnerID(ownerID).
				WithStatus(terminal))

			err := env.reservationCommands.Transition(ctx, snap.ID, reservation.StatusAccepted, ownerActor(ownerID))
			require.ErrorIs(t, err, commands.ErrInvalidTransition, "from %s", terminal)
		}
	})

	t.Run("error: unknown reservation", func(t *testing.T) {
		env := newCommandEnv()
		err := env.reservationCommands.Transition(ctx, uuid.New(), reservation.StatusAccepted, ownerActor(ownerID))
		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("error: losing a concurrent transition", func(t *testing.T) {
		env := newCommandEnv()
		snap := env.seedReservation(builder.NewReservationBuilder().
			WithPoolOwnerID(ownerID).
			WithStatus(reservation.StatusPending))

		// another caller rejects between the snapshot read and the update
		env.reservations.BeforeUpdate = func() {
			rival := env.reservations.Get(snap.ID)
			rival.Status = reservation.StatusRejected
			env.reservations.Put(rival)
		}

		err := env.reservationCommands.Transition(ctx, snap.ID, reservation.StatusAccepted, ownerActor(ownerID))
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
		assert.Equal(t, reservation.StatusRejected, env.reservations.Get(snap.ID).Status)
	})
}

func TestTransitionCascades(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	renterID := uuid.New()

	setup := func(t *testing.T) (*commandEnv, *commands.ReservationSnapshot) {
		t.Helper()
		env := newCommandEnv()
		p := env.seedPool(ownerID)
		snap := env.seedReservation(builder.NewReservationBuilder().
			WithPoolID(p.ID()).
			WithPoolOwnerID(ownerID).
			WithRenterID(renterID).
			WithStatus(reservation.StatusPending).
			WithWindow(baseTime.Add(24*time.Hour), baseTime.Add(26*time.Hour)).
			WithUpdatedAt(baseTime))
		return env, snap
	}

	t.Run("accepting flags the pool unavailable and notifies the renter", func(t *testing.T) {
		env, snap := setup(t)

		require.NoError(t, env.reservationCommands.Transition(ctx, snap.ID, reservation.StatusAccepted, ownerActor(ownerID)))

		assert.False(t, env.pools.Available(snap.PoolID))
		assert.Equal(t, baseTime, env.reservations.Get(snap.ID).UpdatedAt)

		events := env.emitter.Events()
		require.Len(t, events, 1)
		assert.Equal(t, commands.NotifyReservationAccepted, events[0].Kind)
		assert.Equal(t, reservation.StatusAccepted, events[0].Reservation.Status)
	})

	t.Run("rejecting leaves the pool available", func(t *testing.T) {
		env, snap := setup(t)

		require.NoError(t, env.reservationCommands.Transition(ctx, snap.ID, reservation.StatusRejected, ownerActor(ownerID)))

		assert.True(t, env.pools.Available(snap.PoolID))
		require.Len(t, env.emitter.Kinds(), 1)
		assert.Equal(t, commands.NotifyReservationRejected, env.emitter.Kinds()[0])
	})

	t.Run("refusing an accepted reservation frees the pool", func(t *testing.T) {
		env, snap := setup(t)

		require.NoError(t, env.reservationCommands.Transition(ctx, snap.ID, reservation.StatusAccepted, ownerActor(ownerID)))
		require.False(t, env.pools.Available(snap.PoolID))

		require.NoError(t, env.reservationCommands.Transition(ctx, snap.ID, reservation.StatusRefused, commands.SystemActor))
		assert.True(t, env.pools.Available(snap.PoolID))
	})

	t.Run("cancelling emits no notification", func(t *testing.T) {
		env, snap := setup(t)

		require.NoError(t, env.reservationCommands.Transition(ctx, snap.ID, reservation.StatusAccepted, ownerActor(ownerID)))
		require.NoError(t, env.reservationCommands.Transition(ctx, snap.ID, reservation.StatusCancelled, renterActor(renterID)))

		kinds := env.emitter.Kinds()
		require.Len(t, kinds, 1)
		assert.Equal(t, commands.NotifyReservationAccepted, kinds[0])
		assert.True(t, env.pools.Available(snap.PoolID))
	})

	t.Run("cancelling keeps the pool unavailable while another hold is live", func(t *testing.T) {
		env, snap := setup(t)
		env.seedReservation(builder.NewReservationBuilder().
			WithPoolID(snap.PoolID).
			WithPoolOwnerID(ownerID).
			WithStatus(reservation.StatusPaid).
			WithWindow(baseTime.Add(-time.Hour), baseTime.Add(3*time.Hour)).
			WithUpdatedAt(baseTime))

		require.NoError(t, env.reservationCommands.Transition(ctx, snap.ID, reservation.StatusAccepted, ownerActor(ownerID)))
		require.NoError(t, env.reservationCommands.Transition(ctx, snap.ID, reservation.StatusCancelled, renterActor(renterID)))

		assert.False(t, env.pools.Available(snap.PoolID))
	})
}
