//go:build unit || e2e

package builder

import (
	"time"

	domreservation "poolside/internal/domain/reservation"
	reqdto "poolside/internal/handler/dto/request"
	"poolside/internal/usecase/commands"
	"poolside/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	PoolID      uuid.UUID
	PoolName    string
	PoolOwnerID uuid.UUID
	RenterID    uuid.UUID
	RenterEmail string
	StartTime   time.Time
	EndTime     time.Time
	AmountCents int64
	Status      domreservation.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	start := now.Add(24 * time.Hour)
	return &ReservationBuilder{
		ID:          uuid.New(),
		PoolID:      uuid.New(),
		PoolName:    "Test Pool",
		PoolOwnerID: uuid.New(),
		RenterID:    uuid.New(),
		RenterEmail: "renter@example.com",
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
		AmountCents: 10000,
		Status:      domreservation.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	return domreservation.NewReservation(r.PoolID, r.RenterID, r.StartTime, r.EndTime, r.AmountCents)
}

func (r *ReservationBuilder) BuildSnapshot() *commands.ReservationSnapshot {
	return &commands.ReservationSnapshot{
		ID:          r.ID,
		PoolID:      r.PoolID,
		PoolOwnerID: r.PoolOwnerID,
		RenterID:    r.RenterID,
		Status:      r.Status,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		AmountCents: r.AmountCents,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		PoolID:    r.PoolID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

func (r *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	return &queries.ReservationView{
		ID:          r.ID,
		PoolID:      r.PoolID,
		PoolName:    r.PoolName,
		RenterID:    r.RenterID,
		RenterEmail: r.RenterEmail,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Status:      r.Status.String(),
		AmountCents: r.AmountCents,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:          r.ID,
		PoolID:      r.PoolID,
		PoolName:    r.PoolName,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Status:      r.Status.String(),
		AmountCents: r.AmountCents,
		CreatedAt:   r.CreatedAt,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithPoolID(poolID uuid.UUID) *ReservationBuilder {
	r.PoolID = poolID
	return r
}

func (r *ReservationBuilder) WithPoolOwnerID(ownerID uuid.UUID) *ReservationBuilder {
	r.PoolOwnerID = ownerID
	return r
}

func (r *ReservationBuilder) WithRenterID(renterID uuid.UUID) *ReservationBuilder {
	r.RenterID = renterID
	return r
}

func (r *ReservationBuilder) WithStatus(status domreservation.Status) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	r.StartTime = start
	r.EndTime = end
	return r
}

func (r *ReservationBuilder) WithAmountCents(amount int64) *ReservationBuilder {
	r.AmountCents = amount
	return r
}

func (r *ReservationBuilder) WithUpdatedAt(updatedAt time.Time) *ReservationBuilder {
	r.UpdatedAt = updatedAt
	return r
}

func (r *ReservationBuilder) AsAccepted() *ReservationBuilder {
	r.Status = domreservation.StatusAccepted
	return r
}

func (r *ReservationBuilder) AsPaid() *ReservationBuilder {
	r.Status = domreservation.StatusPaid
	return r
}
