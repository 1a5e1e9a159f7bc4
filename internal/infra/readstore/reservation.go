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

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, `
SELECT r.id, r.pool_id, p.name, r.renter_id, u.email,
       r.start_time, r.end_time, r.status, r.amount_cents, r.created_at, r.updated_at
FROM reservations r
JOIN pools p ON p.id = r.pool_id
JOIN users u ON u.id = r.renter_id
WHERE r.id = $1`, id)

	var view queries.ReservationView
	err := row.Scan(
		&view.ID, &view.PoolID, &view.PoolName, &view.RenterID, &view.RenterEmail,
		&view.StartTime, &view.EndTime, &view.Status, &view.AmountCents,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read reservation", err)
	}
	return &view, nil
}

const listItemQuery = `
SELECT r.id, r.pool_id, p.name, r.start_time, r.end_time, r.status, r.amount_cents, r.created_at
FROM reservations r
JOIN pools p ON p.id = r.pool_id
`

func (s *ReservationReadStore) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*queries.ReservationListItem, error) {
	rows, err := s.db.Query(ctx, listItemQuery+`
WHERE r.renter_id = $1
ORDER BY r.created_at DESC`, renterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by renter", err)
	}
	defer rows.Close()

	return collectListItems(rows)
}

func (s *ReservationReadStore) ListByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status string) ([]*queries.ReservationListItem, error) {
	rows, err := s.db.Query(ctx, listItemQuery+`
WHERE p.owner_id = $1 AND r.status = $2
ORDER BY r.created_at DESC`, ownerID, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by owner", err)
	}
	defer rows.Close()

	return collectListItems(rows)
}

func (s *ReservationReadStore) RevenueByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.RevenueItem, error) {
	rows, err := s.db.Query(ctx, `
SELECT p.id, p.name, count(r.id), COALESCE(sum(r.amount_cents), 0)
FROM pools p
LEFT JOIN reservations r ON r.pool_id = p.id AND r.status = 'paid'
WHERE p.owner_id = $1
GROUP BY p.id, p.name
ORDER BY p.name`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate revenue", err)
	}
	defer rows.Close()

	var items []*queries.RevenueItem
	for rows.Next() {
		var item queries.RevenueItem
		if err := rows.Scan(&item.PoolID, &item.PoolName, &item.PaidCount, &item.TotalCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan revenue row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate revenue rows", err)
	}
	return items, nil
}

func collectListItems(rows pgx.Rows) ([]*queries.ReservationListItem, error) {
	var items []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		err := rows.Scan(
			&item.ID, &item.PoolID, &item.PoolName,
			&item.StartTime, &item.EndTime, &item.Status, &item.AmountCents, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return items, nil
}
