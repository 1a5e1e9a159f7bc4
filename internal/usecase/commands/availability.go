package commands

import (
	"context"
	"time"

	"poolside/internal/domain/availability"
	"poolside/internal/infra"
	"poolside/internal/pkg/dispatch"
	"poolside/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound = errs.New("availability request not found")
	ErrRequestDecided  = errs.New("availability request already decided")
	ErrInvalidRequest  = errs.New("invalid availability request")
)

type CreateRequestParams struct {
	PoolID    uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
}

type AvailabilityCommands interface {
	CreateRequest(ctx context.Context, params CreateRequestParams, requesterID uuid.UUID) (*availability.Request, error)
	// Decide approves or rejects a pending request. Approval places an
	// ad-hoc hold on the pool, so the pool is reconciled afterwards.
	Decide(ctx context.Context, requestID uuid.UUID, approve bool, actor Actor) error
}

type availabilityCommandsImpl struct {
	requests   RequestStore
	pools      PoolStore
	reconciler *AvailabilityReconciler
	dispatcher dispatch.Dispatcher
}

func NewAvailabilityCommands(
	requests RequestStore,
	pools PoolStore,
	reconciler *AvailabilityReconciler,
	dispatcher dispatch.Dispatcher,
) AvailabilityCommands {
	return &availabilityCommandsImpl{
		requests:   requests,
		pools:      pools,
		reconciler: reconciler,
		dispatcher: dispatcher,
	}
}

func (c *availabilityCommandsImpl) CreateRequest(ctx context.Context, params CreateRequestParams, requesterID uuid.UUID) (*availability.Request, error) {
	if _, err := c.pools.Find(ctx, params.PoolID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	req, err := availability.NewRequest(params.PoolID, requesterID, params.Date, params.StartTime, params.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	if err := c.requests.Create(ctx, req); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	return req, nil
}

func (c *availabilityCommandsImpl) Decide(ctx context.Context, requestID uuid.UUID, approve bool, actor Actor) error {
	snap, err := c.requests.Snapshot(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRequestNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}

	if !actor.System && actor.ID != snap.PoolOwnerID {
		return ErrNotAuthorized
	}
	if snap.Status != availability.StatusPending {
		return ErrRequestDecided
	}

	status := availability.StatusRejected
	if approve {
		status = availability.StatusApproved
	}

	if err := c.requests.SetStatus(ctx, requestID, status); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}

	poolID := snap.PoolID
	c.dispatcher.Dispatch("reconcile:"+poolID.String(), func(ctx context.Context) error {
		return c.reconciler.ReconcileOne(ctx, poolID)
	})

	return nil
}
