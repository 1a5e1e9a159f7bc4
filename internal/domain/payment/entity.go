package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid payment status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusRefused   Status = "refused"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSucceeded, StatusFailed, StatusRefused:
		return true
	default:
		return false
	}
}

// Record is the single payment row for a reservation; the reservation
// reference is unique so concurrent intent creation cannot duplicate it.
// IntentID is empty until the first gateway intent is created.
type Record struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	IntentID      string
	ClientSecret  string
	Status        Status
	AmountCents   int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasLiveIntent reports whether an intent exists that a retried payment
// attempt should reuse instead of creating a new one. Failed and refused
// records get a fresh intent on retry.
func (r *Record) HasLiveIntent() bool {
	return r.IntentID != "" && r.Status == StatusPending
}
