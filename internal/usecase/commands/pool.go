package commands

import (
	"context"

	"poolside/internal/domain/pool"
	"poolside/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidPool = errs.New("invalid pool")

type CreatePoolParams struct {
	Name            string
	HourlyRateCents int64
}

type PoolCommands interface {
	Create(ctx context.Context, params CreatePoolParams, ownerID uuid.UUID) (*pool.Pool, error)
}

type poolCommandsImpl struct {
	pools PoolStore
}

func NewPoolCommands(pools PoolStore) PoolCommands {
	return &poolCommandsImpl{pools: pools}
}

func (c *poolCommandsImpl) Create(ctx context.Context, params CreatePoolParams, ownerID uuid.UUID) (*pool.Pool, error) {
	p, err := pool.NewPool(ownerID, params.Name, params.HourlyRateCents)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPool)
	}

	if err := c.pools.Create(ctx, p); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	return p, nil
}
