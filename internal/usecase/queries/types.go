package queries

import (
	"time"

	"github.com/google/uuid"
)

type ReservationView struct {
	ID          uuid.UUID
	PoolID      uuid.UUID
	PoolName    string
	RenterID    uuid.UUID
	RenterEmail string
	StartTime   time.Time
	EndTime     time.Time
	Status      string
	AmountCents int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ReservationListItem struct {
	ID          uuid.UUID
	PoolID      uuid.UUID
	PoolName    string
	StartTime   time.Time
	EndTime     time.Time
	Status      string
	AmountCents int64
	CreatedAt   time.Time
}

type PoolView struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	HourlyRateCents int64
	IsAvailable     bool
	CreatedAt       time.Time
}

// RevenueItem aggregates paid reservations for one pool.
type RevenueItem struct {
	PoolID     uuid.UUID
	PoolName   string
	PaidCount  int64
	TotalCents int64
}
