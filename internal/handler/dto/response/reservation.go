package response

import (
	"time"

	"poolside/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	PoolID      uuid.UUID `json:"poolId"`
	PoolName    string    `json:"poolName"`
	RenterID    uuid.UUID `json:"renterId"`
	RenterEmail string    `json:"renterEmail"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amountCents"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID          uuid.UUID `json:"id"`
	PoolID      uuid.UUID `json:"poolId"`
	PoolName    string    `json:"poolName"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amountCents"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:          rm.ID,
		PoolID:      rm.PoolID,
		PoolName:    rm.PoolName,
		RenterID:    rm.RenterID,
		RenterEmail: rm.RenterEmail,
		StartTime:   rm.StartTime,
		EndTime:     rm.EndTime,
		Status:      rm.Status,
		AmountCents: rm.AmountCents,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:          rm.ID,
		PoolID:      rm.PoolID,
		PoolName:    rm.PoolName,
		StartTime:   rm.StartTime,
		EndTime:     rm.EndTime,
		Status:      rm.Status,
		AmountCents: rm.AmountCents,
		CreatedAt:   rm.CreatedAt,
	}
}
