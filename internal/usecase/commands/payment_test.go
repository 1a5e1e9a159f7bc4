//go:build unit

package commands_test

import (
	"context"
	"errors"
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

func TestGetOrCreateIntent(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	renterID := uuid.New()

	seedAccepted := func(env *commandEnv) *commands.ReservationSnapshot {
		p := env.seedPool(ownerID)
		return env.seedReservation(builder.NewReservationBuilder().
			WithPoolID(p.ID()).
			WithPoolOwnerID(ownerID).
			WithRenterID(renterID).
			AsAccepted().
			WithWindow(baseTime.Add(24*time.Hour), baseTime.Add(26*time.Hour)).
			WithUpdatedAt(baseTime).
			WithAmountCents(10000))
	}

	t.Run("success: first call creates and attaches an intent", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env)

		result, err := env.newPaymentCommands().GetOrCreateIntent(ctx, snap.ID, renterActor(renterID))
		require.NoError(t, err)

		assert.Equal(t, "pi_1", result.IntentID)
		assert.Equal(t, "pi_1_secret", result.ClientSecret)
		assert.Equal(t, int64(10000), result.AmountCents)

		rec := env.payments.Get(snap.ID)
		require.NotNil(t, rec)
		assert.Equal(t, "pi_1", rec.IntentID)
		assert.Equal(t, payment.StatusPending, rec.Status)
	})

	t.Run("success: repeated calls return the same intent", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env)
		pc := env.newPaymentCommands()

		first, err := pc.GetOrCreateIntent(ctx, snap.ID, renterActor(renterID))
		require.NoError(t, err)

		second, err := pc.GetOrCreateIntent(ctx, snap.ID, renterActor(renterID))
		require.NoError(t, err)

		assert.Equal(t, first.IntentID, second.IntentID)
		assert.Equal(t, 1, env.gateway.CreatedCount())
	})

	t.Run("success: a canceled gateway intent is replaced", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env)
		pc := env.newPaymentCommands()

		first, err := pc.GetOrCreateIntent(ctx, snap.ID, renterActor(renterID))
		require.NoError(t, err)

		env.gateway.SetIntentStatus(first.IntentID, commands.IntentStatusCanceled)

		second, err := pc.GetOrCreateIntent(ctx, snap.ID, renterActor(renterID))
		require.NoError(t, err)
		assert.NotEqual(t, first.IntentID, second.IntentID)
		assert.Equal(t, 2, env.gateway.CreatedCount())
	})

	t.Run("success: a failed attempt gets a fresh intent", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env)
		env.payments.Put(&payment.Record{
			ID:            uuid.New(),
			ReservationID: snap.ID,
			IntentID:      "pi_failed",
			Status:        payment.StatusFailed,
			AmountCents:   10000,
		})

		result, err := env.newPaymentCommands().GetOrCreateIntent(ctx, snap.ID, renterActor(renterID))
		require.NoError(t, err)
		assert.NotEqual(t, "pi_failed", result.IntentID)
		assert.Equal(t, payment.StatusPending, env.payments.Get(snap.ID).Status)
	})

	t.Run("success: losing the attach reuses the winner's intent", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env)

		env.payments.BeforeAttach = func() {
			rec := env.payments.Get(snap.ID)
			rec.IntentID = "pi_rival"
			rec.ClientSecret = "pi_rival_secret"
			rec.Status = payment.StatusPending
			env.payments.Put(rec)
		}

		result, err := env.newPaymentCommands().GetOrCreateIntent(ctx, snap.ID, renterActor(renterID))
		require.NoError(t, err)
		assert.Equal(t, "pi_rival", result.IntentID)
		assert.Equal(t, "pi_rival_secret", result.ClientSecret)
	})

	t.Run("error: only the renter may pay", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env)

		_, err := env.newPaymentCommands().GetOrCreateIntent(ctx, snap.ID, ownerActor(ownerID))
		require.ErrorIs(t, err, commands.ErrNotAuthorized)
	})

	t.Run("error: reservation not awaiting payment", func(t *testing.T) {
		for _, status := range []reservation.Status{
			reservation.StatusPending,
			reservation.StatusRejected,
			reservation.StatusCancelled,
			reservation.StatusRefused,
		} {
			env := newCommandEnv()
			snap := env.seedReservation(builder.NewReservationBuilder().
				WithRenterID(renterID).
				WithStatus(status).
				WithUpdatedAt(baseTime))

			_, err := env.newPaymentCommands().GetOrCreateIntent(ctx, snap.ID, renterActor(renterID))
			require.ErrorIs(t, err, commands.ErrInvalidState, "status %s", status)
		}
	})

	t.Run("error: payment window expired", func(t *testing.T) {
		env := newCommandEnv()
		p := env.seedPool(ownerID)
		snap := env.seedReservation(builder.NewReservationBuilder().
			WithPoolID(p.ID()).
			WithRenterID(renterID).
			AsAccepted().
			WithUpdatedAt(baseTime.Add(-paymentDeadline)))

		_, err := env.newPaymentCommands().GetOrCreateIntent(ctx, snap.ID, renterActor(renterID))
		require.ErrorIs(t, err, commands.ErrPaymentWindowExpired)
	})

	t.Run("error: already paid", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env)
		env.payments.Put(&payment.Record{
			ID:            uuid.New(),
			ReservationID: snap.ID,
			IntentID:      "pi_done",
			Status:        payment.StatusSucceeded,
			AmountCents:   10000,
		})

		_, err := env.newPaymentCommands().GetOrCreateIntent(ctx, snap.ID, renterActor(renterID))
		require.ErrorIs(t, err, commands.ErrAlreadyPaid)
	})

	t.Run("error: intent already succeeded at the gateway", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env)
		pc := env.newPaymentCommands()

		first, err := pc.GetOrCreateIntent(ctx, snap.ID, renterActor(renterID))
		require.NoError(t, err)

		env.gateway.SetIntentStatus(first.IntentID, commands.IntentStatusSucceeded)

		_, err = pc.GetOrCreateIntent(ctx, snap.ID, renterActor(renterID))
		require.ErrorIs(t, err, commands.ErrAlreadyPaid)
	})

	t.Run("error: gateway failure creating the intent", func(t *testing.T) {
		env := newCommandEnv()
		snap := seedAccepted(env)
		env.gateway.CreateErr = errors.New("stripe is down")

		_, err := env.newPaymentCommands().GetOrCreateIntent(ctx, snap.ID, renterActor(renterID))
		require.ErrorIs(t, err, commands.ErrGatewayFailure)
	})

	t.Run("error: unknown reservation", func(t *testing.T) {
		env := newCommandEnv()
		_, err := env.newPaymentCommands().GetOrCreateIntent(ctx, uuid.New(), renterActor(renterID))
		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

func TestApplyWebhookEvent(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	renterID := uuid.New()

	seedPaidSetup := func(env *commandEnv) (*commands.ReservationSnapshot, *payment.Record) {
		p := env.seedPool(ownerID)
		snap := env.seedReservation(builder.NewReservationBuilder().
			WithPoolID(p.ID()).
			WithPoolOwnerID(ownerID).
			WithRenterID(renterID).
			AsAccepted().
			WithWindow(baseTime.Add(24*time.Hour), baseTime.Add(26*time.Hour)).
			WithUpdatedAt(baseTime))
		rec := &payment.Record{
			ID:            uuid.New(),
			ReservationID: snap.ID,
			IntentID:      "pi_1",
			Status:        payment.StatusPending,
			AmountCents:   snap.AmountCents,
		}
		env.payments.Put(rec)
		return snap, rec
	}

	t.Run("success: succeeded event marks the reservation paid", func(t *testing.T) {
		env := newCommandEnv()
		snap, _ := seedPaidSetup(env)
		env.gateway.Event = &commands.WebhookEvent{
			Type:          commands.EventPaymentSucceeded,
			IntentID:      "pi_1",
			ReservationID: snap.ID,
		}

		require.NoError(t, env.newPaymentCommands().ApplyWebhookEvent(ctx, []byte(`{}`), "sig"))

		assert.Equal(t, payment.StatusSucceeded, env.payments.Get(snap.ID).Status)
		assert.Equal(t, reservation.StatusPaid, env.reservations.Get(snap.ID).Status)
		assert.False(t, env.pools.Available(snap.PoolID))

		kinds := env.emitter.Kinds()
		require.Len(t, kinds, 1)
		assert.Equal(t, commands.NotifyPaymentSucceeded, kinds[0])
	})

	t.Run("success: redelivered succeeded event is a no-op", func(t *testing.T) {
		env := newCommandEnv()
		snap, _ := seedPaidSetup(env)
		env.gateway.Event = &commands.WebhookEvent{
			Type:          commands.EventPaymentSucceeded,
			IntentID:      "pi_1",
			ReservationID: snap.ID,
		}
		pc := env.newPaymentCommands()

		require.NoError(t, pc.ApplyWebhookEvent(ctx, []byte(`{}`), "sig"))
		require.NoError(t, pc.ApplyWebhookEvent(ctx, []byte(`{}`), "sig"))

		assert.Equal(t, reservation.StatusPaid, env.reservations.Get(snap.ID).Status)
		assert.Len(t, env.emitter.Kinds(), 1)
	})

	t.Run("success: failed event keeps the reservation accepted", func(t *testing.T) {
		env := newCommandEnv()
		snap, _ := seedPaidSetup(env)
		env.gateway.Event = &commands.WebhookEvent{
			Type:          commands.EventPaymentFailed,
			IntentID:      "pi_1",
			ReservationID: snap.ID,
		}

		require.NoError(t, env.newPaymentCommands().ApplyWebhookEvent(ctx, []byte(`{}`), "sig"))

		assert.Equal(t, payment.StatusFailed, env.payments.Get(snap.ID).Status)
		assert.Equal(t, reservation.StatusAccepted, env.reservations.Get(snap.ID).Status)
	})

	t.Run("success: failed event after success is ignored", func(t *testing.T) {
		env := newCommandEnv()
		snap, rec := seedPaidSetup(env)
		rec.Status = payment.StatusSucceeded
		env.payments.Put(rec)
		env.gateway.Event = &commands.WebhookEvent{
			Type:          commands.EventPaymentFailed,
			IntentID:      "pi_1",
			ReservationID: snap.ID,
		}

		require.NoError(t, env.newPaymentCommands().ApplyWebhookEvent(ctx, []byte(`{}`), "sig"))
		assert.Equal(t, payment.StatusSucceeded, env.payments.Get(snap.ID).Status)
	})

	t.Run("success: event for an unknown intent is ignored", func(t *testing.T) {
		env := newCommandEnv()
		env.gateway.Event = &commands.WebhookEvent{
			Type:     commands.EventPaymentSucceeded,
			IntentID: "pi_never_seen",
		}

		require.NoError(t, env.newPaymentCommands().ApplyWebhookEvent(ctx, []byte(`{}`), "sig"))
	})

	t.Run("success: unknown event types are ignored", func(t *testing.T) {
		env := newCommandEnv()
		snap, _ := seedPaidSetup(env)
		env.gateway.Event = &commands.WebhookEvent{
			Type:     "payment_intent.created",
			IntentID: "pi_1",
		}

		require.NoError(t, env.newPaymentCommands().ApplyWebhookEvent(ctx, []byte(`{}`), "sig"))
		assert.Equal(t, reservation.StatusAccepted, env.reservations.Get(snap.ID).Status)
	})

	t.Run("error: signature verification failure", func(t *testing.T) {
		env := newCommandEnv()
		env.gateway.VerifyErr = errors.New("bad signature")

		err := env.newPaymentCommands().ApplyWebhookEvent(ctx, []byte(`{}`), "bad-sig")
		require.ErrorIs(t, err, commands.ErrWebhookVerification)
	})
}
