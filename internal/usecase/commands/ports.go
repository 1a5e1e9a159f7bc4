package commands

import (
	"context"
	"time"

	"poolside/internal/domain/availability"
	"poolside/internal/domain/payment"
	"poolside/internal/domain/pool"
	"poolside/internal/domain/reservation"
	"poolside/internal/domain/user"

	"github.com/google/uuid"
)

// Actor identifies who is driving a command. The system actor is used by the
// expiration sweeper and the gateway webhook path, which are the only callers
// allowed to move a reservation to refused or paid.
type Actor struct {
	ID     uuid.UUID
	Role   user.Role
	System bool
}

var SystemActor = Actor{System: true}

// ReservationSnapshot is the minimal read commands need to authorize and
// validate a mutation; PoolOwnerID is joined in so ownership checks do not
// require a second round trip.
type ReservationSnapshot struct {
	ID          uuid.UUID
	PoolID      uuid.UUID
	PoolOwnerID uuid.UUID
	RenterID    uuid.UUID
	Status      reservation.Status
	StartTime   time.Time
	EndTime     time.Time
	AmountCents int64
	UpdatedAt   time.Time
}

type RequestSnapshot struct {
	ID          uuid.UUID
	PoolID      uuid.UUID
	PoolOwnerID uuid.UUID
	RequesterID uuid.UUID
	Status      availability.Status
}

type ReservationStore interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	Snapshot(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// UpdateStatusIf applies the transition only when the row still carries
	// the expected status; false means a concurrent caller moved it first.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to reservation.Status, at time.Time) (bool, error)
	ListExpiredAccepted(ctx context.Context, cutoff time.Time) ([]ReservationSnapshot, error)
	// ListHoldCandidates returns the pool's reservations with a blocking
	// status (accepted or paid), regardless of whether their window elapsed.
	ListHoldCandidates(ctx context.Context, poolID uuid.UUID) ([]ReservationSnapshot, error)
}

type PoolStore interface {
	Create(ctx context.Context, p *pool.Pool) error
	Find(ctx context.Context, id uuid.UUID) (*pool.Pool, error)
	SetAvailability(ctx context.Context, poolID uuid.UUID, available bool) error
	ListUnavailableIDs(ctx context.Context) ([]uuid.UUID, error)
}

type RequestStore interface {
	Create(ctx context.Context, req *availability.Request) error
	Snapshot(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
	SetStatus(ctx context.Context, id uuid.UUID, status availability.Status) error
	ListApproved(ctx context.Context, poolID uuid.UUID) ([]*availability.Request, error)
}

type PaymentStore interface {
	FindByReservation(ctx context.Context, reservationID uuid.UUID) (*payment.Record, error)
	FindByIntent(ctx context.Context, intentID string) (*payment.Record, error)
	// Claim inserts the reservation's single payment row if absent and
	// returns it; created reports whether this call inserted it. Backed by
	// the unique reservation reference, so two racers share one row.
	Claim(ctx context.Context, reservationID uuid.UUID, amountCents int64) (rec *payment.Record, created bool, err error)
	// AttachIntent stores a freshly created gateway intent on the record and
	// resets it to pending. priorIntentID is the intent the caller observed
	// on the record (empty on a fresh claim): it also lands when the record
	// still holds that intent, so a canceled intent can be replaced. False
	// means another caller attached a different live intent first; the
	// caller should re-read and reuse that one.
	AttachIntent(ctx context.Context, recordID uuid.UUID, priorIntentID, intentID, clientSecret string) (bool, error)
	// MarkSucceeded is conditional on the record not already being
	// succeeded; false makes webhook redelivery a no-op.
	MarkSucceeded(ctx context.Context, recordID uuid.UUID) (bool, error)
	MarkFailed(ctx context.Context, recordID uuid.UUID) error
	// RefuseByReservation marks the reservation's record refused unless it
	// already succeeded; no-op when no record exists.
	RefuseByReservation(ctx context.Context, reservationID uuid.UUID) error
}

type UserStore interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type IntentStatus string

const (
	IntentStatusPending   IntentStatus = "pending"
	IntentStatusSucceeded IntentStatus = "succeeded"
	IntentStatusCanceled  IntentStatus = "canceled"
)

// Live reports whether the intent can still be completed by the renter.
func (s IntentStatus) Live() bool {
	return s != IntentStatusSucceeded && s != IntentStatusCanceled
}

type Intent struct {
	ID           string
	ClientSecret string
	Status       IntentStatus
}

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// WebhookEvent is a gateway callback after signature verification.
type WebhookEvent struct {
	Type          string
	IntentID      string
	ReservationID uuid.UUID
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, reservationID uuid.UUID) (*Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*Intent, error)
	// VerifyWebhook authenticates the raw event before any of its content is
	// trusted.
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

type NotificationKind string

const (
	NotifyReservationCreated  NotificationKind = "reservation_created"
	NotifyReservationAccepted NotificationKind = "reservation_accepted"
	NotifyReservationRejected NotificationKind = "reservation_rejected"
	NotifyPaymentSucceeded    NotificationKind = "payment_succeeded"
)

type NotificationEvent struct {
	Kind        NotificationKind
	Reservation ReservationSnapshot
}

// NotificationEmitter records a message to the transition's counterpart.
// Best effort: callers dispatch it asynchronously and log failures; it never
// blocks or rolls back the transition that triggered it.
type NotificationEmitter interface {
	Emit(ctx context.Context, event NotificationEvent) error
}
