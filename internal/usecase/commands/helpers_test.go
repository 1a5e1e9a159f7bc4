//go:build unit

package commands_test

import (
	"time"

	"poolside/internal/domain/pool"
	"poolside/internal/domain/user"
	"poolside/internal/pkg/clock"
	"poolside/internal/pkg/dispatch"
	"poolside/internal/usecase/commands"
	"poolside/tests/common/builder"
	"poolside/tests/common/fake"

	"github.com/google/uuid"
)

var baseTime = time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)

const paymentDeadline = 24 * time.Hour

// commandEnv wires the command layer against in-memory stores with a fixed
// clock and a synchronous dispatcher, so reconcile and notification cascades
// are observable immediately after each call.
type commandEnv struct {
	reservations *fake.ReservationStore
	pools        *fake.PoolStore
	requests     *fake.RequestStore
	payments     *fake.PaymentStore
	gateway      *fake.Gateway
	emitter      *fake.Emitter
	clk          *clock.MockClock

	reconciler          *commands.AvailabilityReconciler
	reservationCommands commands.ReservationCommands
}

func newCommandEnv() *commandEnv {
	env := &commandEnv{
		reservations: fake.NewReservationStore(),
		pools:        fake.NewPoolStore(),
		requests:     fake.NewRequestStore(),
		payments:     fake.NewPaymentStore(),
		gateway:      fake.NewGateway(),
		emitter:      fake.NewEmitter(),
		clk:          clock.NewMockClock(baseTime),
	}
	env.reconciler = commands.NewAvailabilityReconciler(env.reservations, env.requests, env.pools, env.clk)
	env.reservationCommands = commands.NewReservationCommands(
		env.reservations,
		env.pools,
		env.reconciler,
		env.emitter,
		&fake.ReservationQueries{Store: env.reservations},
		dispatch.NewSyncDispatcher(),
		env.clk,
	)
	return env
}

func (e *commandEnv) newPaymentCommands() commands.PaymentCommands {
	return commands.NewPaymentCommands(
		e.reservations, e.payments, e.gateway,
		e.reservationCommands, e.clk, paymentDeadline,
	)
}

func (e *commandEnv) newSweeper() *commands.PaymentSweeper {
	return commands.NewPaymentSweeper(
		e.reservations, e.payments,
		e.reservationCommands, e.clk, paymentDeadline,
	)
}

func (e *commandEnv) seedPool(ownerID uuid.UUID) *pool.Pool {
	p := builder.NewPoolBuilder().WithOwnerID(ownerID).BuildReconstructed()
	e.pools.Put(p)
	return p
}

func (e *commandEnv) seedReservation(b *builder.ReservationBuilder) *commands.ReservationSnapshot {
	snap := b.BuildSnapshot()
	e.reservations.Put(snap)
	return snap
}

func ownerActor(id uuid.UUID) commands.Actor {
	return commands.Actor{ID: id, Role: user.RoleOwner}
}

func renterActor(id uuid.UUID) commands.Actor {
	return commands.Actor{ID: id, Role: user.RoleRenter}
}
