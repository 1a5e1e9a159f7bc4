package response

import (
	"time"

	"poolside/internal/domain/pool"
	"poolside/internal/usecase/queries"

	"github.com/google/uuid"
)

type PoolResponse struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"ownerId"`
	Name            string    `json:"name"`
	HourlyRateCents int64     `json:"hourlyRateCents"`
	IsAvailable     bool      `json:"isAvailable"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromPoolView(rm *queries.PoolView) *PoolResponse {
	return &PoolResponse{
		ID:              rm.ID,
		OwnerID:         rm.OwnerID,
		Name:            rm.Name,
		HourlyRateCents: rm.HourlyRateCents,
		IsAvailable:     rm.IsAvailable,
		CreatedAt:       rm.CreatedAt,
	}
}

func FromPool(p *pool.Pool) *PoolResponse {
	return &PoolResponse{
		ID:              p.ID(),
		OwnerID:         p.OwnerID(),
		Name:            p.Name(),
		HourlyRateCents: p.HourlyRateCents(),
		IsAvailable:     p.IsAvailable(),
		CreatedAt:       p.CreatedAt(),
	}
}
