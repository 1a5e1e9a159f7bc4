package commands

import (
	"context"
	"time"

	"poolside/internal/domain/reservation"
	"poolside/internal/infra"
	"poolside/internal/pkg/clock"
	"poolside/internal/pkg/dispatch"
	"poolside/internal/pkg/errs"
	"poolside/internal/pkg/metrics"
	"poolside/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrPoolNotFound        = errs.New("pool not found")
	ErrInvalidTransition   = errs.New("transition not permitted from current status")
	ErrNotAuthorized       = errs.New("actor is not allowed to perform this transition")
	ErrInvalidWindow       = errs.New("invalid rental window")
	ErrDatabaseOperation   = errs.New("database operation failed")
)

type CreateReservationParams struct {
	PoolID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams, renterID uuid.UUID) (*queries.ReservationView, error)
	// Transition is the single path for every status change. It validates
	// the step against the transition table, applies it with a conditional
	// update, then cascades into the reconciler and the notification
	// emitter. No per-status code path exists outside this method.
	Transition(ctx context.Context, id uuid.UUID, target reservation.Status, actor Actor) error
}

type reservationCommandsImpl struct {
	reservations ReservationStore
	pools        PoolStore
	reconciler   *AvailabilityReconciler
	emitter      NotificationEmitter
	queries      queries.ReservationQueries
	dispatcher   dispatch.Dispatcher
	clock        clock.Clock
}

func NewReservationCommands(
	reservations ReservationStore,
	pools PoolStore,
	reconciler *AvailabilityReconciler,
	emitter NotificationEmitter,
	reservationQueries queries.ReservationQueries,
	dispatcher dispatch.Dispatcher,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservations: reservations,
		pools:        pools,
		reconciler:   reconciler,
		emitter:      emitter,
		queries:      reservationQueries,
		dispatcher:   dispatcher,
		clock:        clk,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, params CreateReservationParams, renterID uuid.UUID) (*queries.ReservationView, error) {
	p, err := c.pools.Find(ctx, params.PoolID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	amount := p.QuoteCents(params.StartTime, params.EndTime)
	res, err := reservation.NewReservation(params.PoolID, renterID, params.StartTime, params.EndTime, amount)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}

	if err := c.reservations.Create(ctx, res); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	metrics.IncReservationTransition(reservation.StatusPending.String())

	snap := ReservationSnapshot{
		ID:          res.ID(),
		PoolID:      res.PoolID(),
		PoolOwnerID: p.OwnerID(),
		RenterID:    renterID,
		Status:      res.Status(),
		StartTime:   res.StartTime(),
		EndTime:     res.EndTime(),
		AmountCents: res.AmountCents(),
	}
	c.notify(NotificationEvent{Kind: NotifyReservationCreated, Reservation: snap})

	return c.queries.GetByIDSystem(ctx, res.ID())
}

func (c *reservationCommandsImpl) Transition(ctx context.Context, id uuid.UUID, target reservation.Status, actor Actor) error {
	snap, err := c.reservations.Snapshot(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}

	if !reservation.CanTransition(snap.Status, target) {
		return ErrInvalidTransition
	}
	if !transitionAllowedFor(target, actor, snap) {
		return ErrNotAuthorized
	}

	applied, err := c.reservations.UpdateStatusIf(ctx, id, snap.Status, target, c.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	if !applied {
		// a concurrent caller moved the reservation first; treat the stale
		// expectation like any other impermissible step
		return ErrInvalidTransition
	}

	metrics.IncReservationTransition(target.String())

	poolID := snap.PoolID
	c.dispatcher.Dispatch("reconcile:"+poolID.String(), func(ctx context.Context) error {
		return c.reconciler.ReconcileOne(ctx, poolID)
	})

	if kind, ok := notificationFor(target); ok {
		event := NotificationEvent{Kind: kind, Reservation: *snap}
		event.Reservation.Status = target
		c.notify(event)
	}

	return nil
}

// transitionAllowedFor encodes who may request each target status: owners
// decide accept/reject, either party cancels, and only the system (sweeper,
// gateway webhook) refuses or marks paid.
func transitionAllowedFor(target reservation.Status, actor Actor, snap *ReservationSnapshot) bool {
	if actor.System {
		return target == reservation.StatusPaid || target == reservation.StatusRefused
	}

	switch target {
	case reservation.StatusAccepted, reservation.StatusRejected:
		return actor.ID == snap.PoolOwnerID
	case reservation.StatusCancelled:
		return actor.ID == snap.RenterID || actor.ID == snap.PoolOwnerID
	default:
		return false
	}
}

func notificationFor(target reservation.Status) (NotificationKind, bool) {
	switch target {
	case reservation.StatusAccepted:
		return NotifyReservationAccepted, true
	case reservation.StatusRejected:
		return NotifyReservationRejected, true
	case reservation.StatusPaid:
		return NotifyPaymentSucceeded, true
	default:
		return "", false
	}
}

func (c *reservationCommandsImpl) notify(event NotificationEvent) {
	c.dispatcher.Dispatch("notify:"+string(event.Kind), func(ctx context.Context) error {
		return c.emitter.Emit(ctx, event)
	})
}
