package queries

import (
	"context"

	"poolside/internal/infra"
	"poolside/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrNotAuthorized       = errs.New("not authorized to view reservation")
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*ReservationListItem, error)
	ListByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status string) ([]*ReservationListItem, error)
	RevenueByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RevenueItem, error)
}

type PoolOwnerResolver interface {
	OwnerOf(ctx context.Context, poolID uuid.UUID) (uuid.UUID, error)
}

type ReservationQueries interface {
	// GetByID enforces that the requester is the renter or the pool owner.
	GetByID(ctx context.Context, id, requesterID uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips the requester check; used for read-after-write and
	// webhook-driven flows.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*ReservationListItem, error)
	ListByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status string) ([]*ReservationListItem, error)
	RevenueByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RevenueItem, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
	owners    PoolOwnerResolver
}

func NewReservationQueries(readStore ReservationReadStore, owners PoolOwnerResolver) ReservationQueries {
	return &reservationQueriesImpl{
		readStore: readStore,
		owners:    owners,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id, requesterID uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	if view.RenterID == requesterID {
		return view, nil
	}

	ownerID, err := q.owners.OwnerOf(ctx, view.PoolID)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationNotFound)
	}
	if ownerID != requesterID {
		return nil, ErrNotAuthorized
	}

	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*ReservationListItem, error) {
	return q.readStore.ListByRenter(ctx, renterID)
}

func (q *reservationQueriesImpl) ListByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status string) ([]*ReservationListItem, error) {
	return q.readStore.ListByOwnerAndStatus(ctx, ownerID, status)
}

func (q *reservationQueriesImpl) RevenueByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RevenueItem, error) {
	return q.readStore.RevenueByOwner(ctx, ownerID)
}
