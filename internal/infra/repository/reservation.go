package repository

import (
	"context"
	"errors"
	"time"

	"poolside/internal/domain/reservation"
	"poolside/internal/infra"
	"poolside/internal/infra/db"
	"poolside/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

const snapshotQuery = `
SELECT r.id, r.pool_id, p.owner_id, r.renter_id, r.status,
       r.start_time, r.end_time, r.amount_cents, r.updated_at
FROM reservations r
JOIN pools p ON p.id = r.pool_id
`

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO reservations (id, pool_id, renter_id, start_time, end_time, amount_cents, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		res.ID(), res.PoolID(), res.RenterID(), res.StartTime(), res.EndTime(), res.AmountCents(), res.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Snapshot(ctx context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	row := r.db.QueryRow(ctx, snapshotQuery+`WHERE r.id = $1`, id)

	snap, err := scanSnapshot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read reservation snapshot", err)
	}
	return snap, nil
}

// UpdateStatusIf is the atomic transition step: the write lands only when the
// row still carries the status the caller observed.
func (r *ReservationRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to reservation.Status, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
UPDATE reservations SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2`,
		id, from.String(), to.String(), at,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update reservation status", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ReservationRepository) ListExpiredAccepted(ctx context.Context, cutoff time.Time) ([]commands.ReservationSnapshot, error) {
	rows, err := r.db.Query(ctx, snapshotQuery+`
WHERE r.status = 'accepted' AND r.updated_at < $1`, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue reservations", err)
	}
	defer rows.Close()

	return collectSnapshots(rows)
}

func (r *ReservationRepository) ListHoldCandidates(ctx context.Context, poolID uuid.UUID) ([]commands.ReservationSnapshot, error) {
	rows, err := r.db.Query(ctx, snapshotQuery+`
WHERE r.pool_id = $1 AND r.status IN ('accepted', 'paid')`, poolID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hold candidates", err)
	}
	defer rows.Close()

	return collectSnapshots(rows)
}

func collectSnapshots(rows pgx.Rows) ([]commands.ReservationSnapshot, error) {
	var snaps []commands.ReservationSnapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		snaps = append(snaps, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return snaps, nil
}

func scanSnapshot(row pgx.Row) (*commands.ReservationSnapshot, error) {
	var snap commands.ReservationSnapshot
	var status string
	err := row.Scan(
		&snap.ID, &snap.PoolID, &snap.PoolOwnerID, &snap.RenterID, &status,
		&snap.StartTime, &snap.EndTime, &snap.AmountCents, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	snap.Status = reservation.Status(status)
	return &snap, nil
}
