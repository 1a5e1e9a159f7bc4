//go:build unit || e2e

package builder

import (
	"time"

	dompool "poolside/internal/domain/pool"
	"poolside/internal/usecase/queries"

	"github.com/google/uuid"
)

type PoolBuilder struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	HourlyRateCents int64
	IsAvailable     bool
	CreatedAt       time.Time
}

func NewPoolBuilder() *PoolBuilder {
	return &PoolBuilder{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		Name:            "Backyard Oasis",
		HourlyRateCents: 5000,
		IsAvailable:     true,
		CreatedAt:       time.Now(),
	}
}

func (p *PoolBuilder) With(mutate func(*PoolBuilder)) *PoolBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PoolBuilder) BuildDomain() (*dompool.Pool, error) {
	return dompool.NewPool(p.OwnerID, p.Name, p.HourlyRateCents)
}

func (p *PoolBuilder) BuildReconstructed() *dompool.Pool {
	return dompool.ReconstructPool(p.ID, p.OwnerID, p.Name, p.HourlyRateCents, p.IsAvailable, p.CreatedAt, p.CreatedAt)
}

func (p *PoolBuilder) BuildViewQuery() *queries.PoolView {
	return &queries.PoolView{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		Name:            p.Name,
		HourlyRateCents: p.HourlyRateCents,
		IsAvailable:     p.IsAvailable,
		CreatedAt:       p.CreatedAt,
	}
}

// Fluent builder methods
func (p *PoolBuilder) WithID(id uuid.UUID) *PoolBuilder {
	p.ID = id
	return p
}

func (p *PoolBuilder) WithOwnerID(ownerID uuid.UUID) *PoolBuilder {
	p.OwnerID = ownerID
	return p
}

func (p *PoolBuilder) WithName(name string) *PoolBuilder {
	p.Name = name
	return p
}

func (p *PoolBuilder) WithHourlyRateCents(rate int64) *PoolBuilder {
	p.HourlyRateCents = rate
	return p
}

func (p *PoolBuilder) AsUnavailable() *PoolBuilder {
	p.IsAvailable = false
	return p
}
