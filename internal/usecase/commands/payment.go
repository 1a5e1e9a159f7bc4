package commands

import (
	"context"
	"log/slog"
	"time"

	"poolside/internal/domain/payment"
	"poolside/internal/domain/reservation"
	"poolside/internal/infra"
	"poolside/internal/pkg/clock"
	"poolside/internal/pkg/errs"
	"poolside/internal/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrInvalidState         = errs.New("reservation is not awaiting payment")
	ErrPaymentWindowExpired = errs.New("payment window has expired")
	ErrAlreadyPaid          = errs.New("reservation is already paid")
	ErrGatewayFailure       = errs.New("payment gateway failure")
	ErrWebhookVerification  = errs.New("webhook signature verification failed")
)

type IntentResult struct {
	IntentID     string
	ClientSecret string
	Status       IntentStatus
	AmountCents  int64
}

type PaymentCommands interface {
	// GetOrCreateIntent returns the reservation's gateway intent, creating
	// it on first call. Repeated and concurrent calls converge on the same
	// intent: the payment row is unique per reservation, and a racer that
	// loses the attach falls back to the winner's intent.
	GetOrCreateIntent(ctx context.Context, reservationID uuid.UUID, actor Actor) (*IntentResult, error)
	// ApplyWebhookEvent verifies and applies an asynchronous gateway
	// callback. Redelivered events are no-ops; unknown event types are
	// ignored, not errors.
	ApplyWebhookEvent(ctx context.Context, payload []byte, signature string) error
}

type paymentCommandsImpl struct {
	reservations ReservationStore
	payments     PaymentStore
	gateway      PaymentGateway
	transitioner StatusTransitioner
	clock        clock.Clock
	deadline     time.Duration
}

func NewPaymentCommands(
	reservations ReservationStore,
	payments PaymentStore,
	gateway PaymentGateway,
	transitioner StatusTransitioner,
	clk clock.Clock,
	deadline time.Duration,
) PaymentCommands {
	return &paymentCommandsImpl{
		reservations: reservations,
		payments:     payments,
		gateway:      gateway,
		transitioner: transitioner,
		clock:        clk,
		deadline:     deadline,
	}
}

func (c *paymentCommandsImpl) GetOrCreateIntent(ctx context.Context, reservationID uuid.UUID, actor Actor) (*IntentResult, error) {
	snap, err := c.reservations.Snapshot(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	if !actor.System && actor.ID != snap.RenterID {
		return nil, ErrNotAuthorized
	}
	if snap.Status != reservation.StatusAccepted {
		return nil, ErrInvalidState
	}
	// mirrors the sweeper's deadline so a stale attempt is rejected even if
	// the sweep has not run yet
	if c.clock.Now().Sub(snap.UpdatedAt) >= c.deadline {
		return nil, ErrPaymentWindowExpired
	}

	rec, created, err := c.payments.Claim(ctx, reservationID, snap.AmountCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	if !created {
		if rec.Status == payment.StatusSucceeded {
			return nil, ErrAlreadyPaid
		}
		if rec.HasLiveIntent() {
			intent, err := c.gateway.RetrieveIntent(ctx, rec.IntentID)
			if err != nil {
				return nil, errs.Mark(err, ErrGatewayFailure)
			}
			if intent.Status == IntentStatusSucceeded {
				return nil, ErrAlreadyPaid
			}
			if intent.Status.Live() {
				return c.result(intent, snap.AmountCents), nil
			}
			// intent was canceled at the gateway; issue a fresh one
		}
	}

	intent, err := c.gateway.CreateIntent(ctx, snap.AmountCents, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayFailure)
	}

	attached, err := c.payments.AttachIntent(ctx, rec.ID, rec.IntentID, intent.ID, intent.ClientSecret)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if !attached {
		// a concurrent caller attached its intent first; reuse theirs so
		// both callers hand the renter the same intent
		existing, err := c.payments.FindByReservation(ctx, reservationID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperation)
		}
		if existing.Status == payment.StatusSucceeded {
			return nil, ErrAlreadyPaid
		}
		return &IntentResult{
			IntentID:     existing.IntentID,
			ClientSecret: existing.ClientSecret,
			Status:       IntentStatusPending,
			AmountCents:  existing.AmountCents,
		}, nil
	}

	return c.result(intent, snap.AmountCents), nil
}

func (c *paymentCommandsImpl) ApplyWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := c.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		metrics.IncWebhookEvent("unknown", "rejected")
		return errs.Mark(err, ErrWebhookVerification)
	}

	switch event.Type {
	case EventPaymentSucceeded:
		return c.applySucceeded(ctx, event)
	case EventPaymentFailed:
		return c.applyFailed(ctx, event)
	default:
		metrics.IncWebhookEvent(event.Type, "ignored")
		return nil
	}
}

func (c *paymentCommandsImpl) applySucceeded(ctx context.Context, event *WebhookEvent) error {
	rec, err := c.payments.FindByIntent(ctx, event.IntentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// an intent this service never recorded; nothing to apply
			slog.Warn("webhook for unknown intent", "intent_id", event.IntentID)
			metrics.IncWebhookEvent(event.Type, "ignored")
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}

	applied, err := c.payments.MarkSucceeded(ctx, rec.ID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	if !applied {
		// redelivery; the first delivery already completed the lifecycle
		metrics.IncWebhookEvent(event.Type, "replayed")
		return nil
	}

	if err := c.transitioner.Transition(ctx, rec.ReservationID, reservation.StatusPaid, SystemActor); err != nil {
		return errs.Wrap(err, "failed to mark reservation paid")
	}

	metrics.IncWebhookEvent(event.Type, "applied")
	return nil
}

func (c *paymentCommandsImpl) applyFailed(ctx context.Context, event *WebhookEvent) error {
	rec, err := c.payments.FindByIntent(ctx, event.IntentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			metrics.IncWebhookEvent(event.Type, "ignored")
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}

	if rec.Status == payment.StatusSucceeded {
		metrics.IncWebhookEvent(event.Type, "ignored")
		return nil
	}

	// the reservation stays accepted: the renter may retry until the
	// payment window lapses and the sweeper reclaims the pool
	if err := c.payments.MarkFailed(ctx, rec.ID); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}

	metrics.IncWebhookEvent(event.Type, "applied")
	return nil
}

func (c *paymentCommandsImpl) result(intent *Intent, amountCents int64) *IntentResult {
	return &IntentResult{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intent.Status,
		AmountCents:  amountCents,
	}
}
