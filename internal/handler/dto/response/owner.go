package response

import (
	"poolside/internal/usecase/queries"

	"github.com/google/uuid"
)

type RevenueItemResponse struct {
	PoolID     uuid.UUID `json:"poolId"`
	PoolName   string    `json:"poolName"`
	PaidCount  int64     `json:"paidCount"`
	TotalCents int64     `json:"totalCents"`
}

func FromRevenueItem(rm *queries.RevenueItem) *RevenueItemResponse {
	return &RevenueItemResponse{
		PoolID:     rm.PoolID,
		PoolName:   rm.PoolName,
		PaidCount:  rm.PaidCount,
		TotalCents: rm.TotalCents,
	}
}
