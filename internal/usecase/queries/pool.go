package queries

import (
	"context"

	"poolside/internal/infra"
	"poolside/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPoolNotFound = errs.New("pool not found")

type PoolReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PoolView, error)
	List(ctx context.Context) ([]*PoolView, error)
}

type PoolQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PoolView, error)
	List(ctx context.Context) ([]*PoolView, error)
}

type poolQueriesImpl struct {
	readStore PoolReadStore
}

func NewPoolQueries(readStore PoolReadStore) PoolQueries {
	return &poolQueriesImpl{readStore: readStore}
}

func (q *poolQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PoolView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, errs.Wrap(err, "failed to find pool")
	}
	return view, nil
}

func (q *poolQueriesImpl) List(ctx context.Context) ([]*PoolView, error) {
	return q.readStore.List(ctx)
}
