package notify

import (
	"context"
	"fmt"

	"poolside/internal/pkg/config"
	"poolside/internal/usecase/commands"

	"github.com/google/uuid"

	"github.com/cockroachdb/errors"
)

// MessageStore persists a notification message between two users.
type MessageStore interface {
	Create(ctx context.Context, senderID, recipientID uuid.UUID, content string, reservationID uuid.UUID) error
}

// MessageEmitter turns lifecycle events into in-app messages between the
// reservation's renter and the pool owner.
type MessageEmitter struct {
	store MessageStore
	cfg   config.StripeConfig
}

func NewMessageEmitter(store MessageStore, cfg config.StripeConfig) *MessageEmitter {
	return &MessageEmitter{store: store, cfg: cfg}
}

func (e *MessageEmitter) Emit(ctx context.Context, event commands.NotificationEvent) error {
	res := event.Reservation

	var sender, recipient uuid.UUID
	var content string

	switch event.Kind {
	case commands.NotifyReservationCreated:
		sender, recipient = res.RenterID, res.PoolOwnerID
		content = fmt.Sprintf(
			"New reservation request for %s to %s.",
			res.StartTime.Format("Jan 2 15:04"), res.EndTime.Format("Jan 2 15:04"),
		)
	case commands.NotifyReservationAccepted:
		sender, recipient = res.PoolOwnerID, res.RenterID
		content = fmt.Sprintf(
			"Your reservation was accepted. Complete payment here: %s/%s",
			e.cfg.PaymentLinkBase, res.ID,
		)
	case commands.NotifyReservationRejected:
		sender, recipient = res.PoolOwnerID, res.RenterID
		content = "Your reservation was declined by the pool owner."
	case commands.NotifyPaymentSucceeded:
		sender, recipient = res.PoolOwnerID, res.RenterID
		content = "Payment received. Your reservation is confirmed."
	default:
		return errors.Newf("unknown notification kind: %s", event.Kind)
	}

	return e.store.Create(ctx, sender, recipient, content, res.ID)
}
