package readstore

import (
	"context"
	"errors"

	"poolside/internal/infra"
	"poolside/internal/infra/db"
	"poolside/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PoolReadStore struct {
	db db.DBTX
}

func NewPoolReadStore(dbtx db.DBTX) *PoolReadStore {
	return &PoolReadStore{db: dbtx}
}

const poolViewQuery = `
SELECT id, owner_id, name, hourly_rate_cents, is_available, created_at
FROM pools
`

func (s *PoolReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PoolView, error) {
	row := s.db.QueryRow(ctx, poolViewQuery+`WHERE id = $1`, id)

	var view queries.PoolView
	err := row.Scan(&view.ID, &view.OwnerID, &view.Name, &view.HourlyRateCents, &view.IsAvailable, &view.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("pool not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read pool", err)
	}
	return &view, nil
}

func (s *PoolReadStore) List(ctx context.Context) ([]*queries.PoolView, error) {
	rows, err := s.db.Query(ctx, poolViewQuery+`ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pools", err)
	}
	defer rows.Close()

	var views []*queries.PoolView
	for rows.Next() {
		var view queries.PoolView
		err := rows.Scan(&view.ID, &view.OwnerID, &view.Name, &view.HourlyRateCents, &view.IsAvailable, &view.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pool row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pool rows", err)
	}
	return views, nil
}
