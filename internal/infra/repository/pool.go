package repository

import (
	"context"
	"errors"
	"time"

	"poolside/internal/domain/pool"
	"poolside/internal/infra"
	"poolside/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PoolRepository struct {
	db db.DBTX
}

func NewPoolRepository(dbtx db.DBTX) *PoolRepository {
	return &PoolRepository{db: dbtx}
}

func (r *PoolRepository) Create(ctx context.Context, p *pool.Pool) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO pools (id, owner_id, name, hourly_rate_cents, is_available)
VALUES ($1, $2, $3, $4, $5)`,
		p.ID(), p.OwnerID(), p.Name(), p.HourlyRateCents(), p.IsAvailable(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert pool", err)
	}
	return nil
}

func (r *PoolRepository) Find(ctx context.Context, id uuid.UUID) (*pool.Pool, error) {
	row := r.db.QueryRow(ctx, `
SELECT id, owner_id, name, hourly_rate_cents, is_available, created_at, updated_at
FROM pools WHERE id = $1`, id)

	var (
		poolID, ownerID      uuid.UUID
		name                 string
		rate                 int64
		available            bool
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&poolID, &ownerID, &name, &rate, &available, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("pool not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pool", err)
	}

	return pool.ReconstructPool(poolID, ownerID, name, rate, available, createdAt, updatedAt), nil
}

func (r *PoolRepository) SetAvailability(ctx context.Context, poolID uuid.UUID, available bool) error {
	_, err := r.db.Exec(ctx, `
UPDATE pools SET is_available = $2, updated_at = now() WHERE id = $1`,
		poolID, available,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set pool availability", err)
	}
	return nil
}

func (r *PoolRepository) ListUnavailableIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM pools WHERE is_available = false`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unavailable pools", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pool id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pool ids", err)
	}
	return ids, nil
}

// OwnerOf resolves a pool's owner without loading the entity.
func (r *PoolRepository) OwnerOf(ctx context.Context, poolID uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT owner_id FROM pools WHERE id = $1`, poolID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, infra.WrapRepoErr("pool not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to resolve pool owner", err)
	}
	return ownerID, nil
}
