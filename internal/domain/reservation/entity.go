package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow  = errors.New("end time must be after start time")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Reservation is one rental of one pool by one renter. The amount is fixed at
// creation and never changes; updatedAt tracks the last status change and is
// the clock the expiration sweeper measures the payment window against.
type Reservation struct {
	id          uuid.UUID
	poolID      uuid.UUID
	renterID    uuid.UUID
	startTime   time.Time
	endTime     time.Time
	amountCents int64
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(poolID, renterID uuid.UUID, startTime, endTime time.Time, amountCents int64) (*Reservation, error) {
	if !endTime.After(startTime) {
		return nil, ErrInvalidWindow
	}
	if amountCents < 0 {
		return nil, ErrNegativeAmount
	}

	return &Reservation{
		id:          uuid.New(),
		poolID:      poolID,
		renterID:    renterID,
		startTime:   startTime,
		endTime:     endTime,
		amountCents: amountCents,
		status:      StatusPending,
	}, nil
}

func ReconstructReservation(
	id, poolID, renterID uuid.UUID,
	startTime, endTime time.Time,
	amountCents int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		poolID:      poolID,
		renterID:    renterID,
		startTime:   startTime,
		endTime:     endTime,
		amountCents: amountCents,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// HoldsPoolAt reports whether this reservation blocks its pool at the given
// instant: status accepted or paid and the rental window not yet elapsed.
func (r *Reservation) HoldsPoolAt(now time.Time) bool {
	return r.status.Blocks() && !r.endTime.Before(now)
}

// PaymentWindowExpired reports whether the renter's window to pay, measured
// from acceptance, has lapsed.
func (r *Reservation) PaymentWindowExpired(now time.Time, deadline time.Duration) bool {
	return r.status == StatusAccepted && now.Sub(r.updatedAt) >= deadline
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) PoolID() uuid.UUID    { return r.poolID }
func (r *Reservation) RenterID() uuid.UUID  { return r.renterID }
func (r *Reservation) StartTime() time.Time { return r.startTime }
func (r *Reservation) EndTime() time.Time   { return r.endTime }
func (r *Reservation) AmountCents() int64   { return r.amountCents }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
