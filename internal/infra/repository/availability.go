package repository

import (
	"context"
	"errors"
	"time"

	"poolside/internal/domain/availability"
	"poolside/internal/infra"
	"poolside/internal/infra/db"
	"poolside/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AvailabilityRequestRepository struct {
	db db.DBTX
}

func NewAvailabilityRequestRepository(dbtx db.DBTX) *AvailabilityRequestRepository {
	return &AvailabilityRequestRepository{db: dbtx}
}

func (r *AvailabilityRequestRepository) Create(ctx context.Context, req *availability.Request) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO availability_requests (id, pool_id, requester_id, date, start_time, end_time, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		req.ID(), req.PoolID(), req.RequesterID(), req.Date(), req.StartTime(), req.EndTime(), req.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert availability request", err)
	}
	return nil
}

func (r *AvailabilityRequestRepository) Snapshot(ctx context.Context, id uuid.UUID) (*commands.RequestSnapshot, error) {
	row := r.db.QueryRow(ctx, `
SELECT a.id, a.pool_id, p.owner_id, a.requester_id, a.status
FROM availability_requests a
JOIN pools p ON p.id = a.pool_id
WHERE a.id = $1`, id)

	var snap commands.RequestSnapshot
	var status string
	err := row.Scan(&snap.ID, &snap.PoolID, &snap.PoolOwnerID, &snap.RequesterID, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("availability request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read availability request", err)
	}
	snap.Status = availability.Status(status)
	return &snap, nil
}

func (r *AvailabilityRequestRepository) SetStatus(ctx context.Context, id uuid.UUID, status availability.Status) error {
	_, err := r.db.Exec(ctx, `
UPDATE availability_requests SET status = $2 WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update availability request status", err)
	}
	return nil
}

func (r *AvailabilityRequestRepository) ListApproved(ctx context.Context, poolID uuid.UUID) ([]*availability.Request, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, pool_id, requester_id, date, start_time, end_time, status, created_at
FROM availability_requests
WHERE pool_id = $1 AND status = 'approved'`, poolID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved requests", err)
	}
	defer rows.Close()

	var reqs []*availability.Request
	for rows.Next() {
		var (
			id, pid, requesterID uuid.UUID
			date, createdAt      time.Time
			startTime, endTime   string
			status               string
		)
		if err := rows.Scan(&id, &pid, &requesterID, &date, &startTime, &endTime, &status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability request", err)
		}
		reqs = append(reqs, availability.ReconstructRequest(
			id, pid, requesterID, date, startTime, endTime, availability.Status(status), createdAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability requests", err)
	}
	return reqs, nil
}
