//go:build unit

package fake

import (
	"context"

	"poolside/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationQueries is a read model backed by a ReservationStore, just
// enough for the read-after-write paths command tests exercise.
type ReservationQueries struct {
	Store *ReservationStore
}

func (q *ReservationQueries) GetByID(ctx context.Context, id, _ uuid.UUID) (*queries.ReservationView, error) {
	return q.GetByIDSystem(ctx, id)
}

func (q *ReservationQueries) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	snap := q.Store.Get(id)
	if snap == nil {
		return nil, queries.ErrReservationNotFound
	}
	return &queries.ReservationView{
		ID:          snap.ID,
		PoolID:      snap.PoolID,
		RenterID:    snap.RenterID,
		StartTime:   snap.StartTime,
		EndTime:     snap.EndTime,
		Status:      snap.Status.String(),
		AmountCents: snap.AmountCents,
		UpdatedAt:   snap.UpdatedAt,
	}, nil
}

func (q *ReservationQueries) ListByRenter(_ context.Context, _ uuid.UUID) ([]*queries.ReservationListItem, error) {
	return nil, nil
}

func (q *ReservationQueries) ListByOwnerAndStatus(_ context.Context, _ uuid.UUID, _ string) ([]*queries.ReservationListItem, error) {
	return nil, nil
}

func (q *ReservationQueries) RevenueByOwner(_ context.Context, _ uuid.UUID) ([]*queries.RevenueItem, error) {
	return nil, nil
}

var _ queries.ReservationQueries = (*ReservationQueries)(nil)
