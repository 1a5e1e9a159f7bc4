//go:build unit

package commands_test

import (
	"context"
	"testing"

	"poolside/internal/domain/availability"
	"poolside/internal/pkg/dispatch"
	"poolside/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailabilityCommands(env *commandEnv) commands.AvailabilityCommands {
	return commands.NewAvailabilityCommands(env.requests, env.pools, env.reconciler, dispatch.NewSyncDispatcher())
}

func TestCreateAvailabilityRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("success: request starts pending", func(t *testing.T) {
		env := newCommandEnv()
		p := env.seedPool(uuid.New())
		requesterID := uuid.New()

		req, err := newAvailabilityCommands(env).CreateRequest(ctx, commands.CreateRequestParams{
			PoolID:    p.ID(),
			Date:      baseTime,
			StartTime: "10:00",
			EndTime:   "18:00",
		}, requesterID)
		require.NoError(t, err)

		assert.Equal(t, availability.StatusPending, req.Status())
		assert.Equal(t, requesterID, req.RequesterID())
		require.NotNil(t, env.requests.Get(req.ID()))

		// a pending request places no hold
		assert.True(t, env.pools.Available(p.ID()))
	})

	t.Run("error: unknown pool", func(t *testing.T) {
		env := newCommandEnv()

		_, err := newAvailabilityCommands(env).CreateRequest(ctx, commands.CreateRequestParams{
			PoolID:    uuid.New(),
			Date:      baseTime,
			StartTime: "10:00",
			EndTime:   "18:00",
		}, uuid.New())
		require.ErrorIs(t, err, commands.ErrPoolNotFound)
	})

	t.Run("error: malformed window", func(t *testing.T) {
		env := newCommandEnv()
		p := env.seedPool(uuid.New())

		_, err := newAvailabilityCommands(env).CreateRequest(ctx, commands.CreateRequestParams{
			PoolID:    p.ID(),
			Date:      baseTime,
			StartTime: "18:00",
			EndTime:   "10:00",
		}, uuid.New())
		require.ErrorIs(t, err, commands.ErrInvalidRequest)
	})
}

func TestDecideAvailabilityRequest(t *testing.T) {
	ctx := context.Background()

	seedPending := func(env *commandEnv, ownerID uuid.UUID) (*availability.Request, uuid.UUID) {
		p := env.seedPool(ownerID)
		env.requests.SetPoolOwner(p.ID(), ownerID)

		req, err := availability.NewRequest(p.ID(), uuid.New(), baseTime, "10:00", "18:00")
		if err != nil {
			panic(err)
		}
		if err := env.requests.Create(ctx, req); err != nil {
			panic(err)
		}
		return req, p.ID()
	}

	t.Run("success: approval places a hold on the pool", func(t *testing.T) {
		env := newCommandEnv()
		ownerID := uuid.New()
		req, poolID := seedPending(env, ownerID)

		require.NoError(t, newAvailabilityCommands(env).Decide(ctx, req.ID(), true, ownerActor(ownerID)))

		assert.Equal(t, availability.StatusApproved, env.requests.Get(req.ID()).Status())
		assert.False(t, env.pools.Available(poolID))
	})

	t.Run("success: rejection leaves the pool available", func(t *testing.T) {
		env := newCommandEnv()
		ownerID := uuid.New()
		req, poolID := seedPending(env, ownerID)

		require.NoError(t, newAvailabilityCommands(env).Decide(ctx, req.ID(), false, ownerActor(ownerID)))

		assert.Equal(t, availability.StatusRejected, env.requests.Get(req.ID()).Status())
		assert.True(t, env.pools.Available(poolID))
	})

	t.Run("error: only the pool owner decides", func(t *testing.T) {
		env := newCommandEnv()
		req, _ := seedPending(env, uuid.New())

		err := newAvailabilityCommands(env).Decide(ctx, req.ID(), true, ownerActor(uuid.New()))
		require.ErrorIs(t, err, commands.ErrNotAuthorized)
		assert.Equal(t, availability.StatusPending, env.requests.Get(req.ID()).Status())
	})

	t.Run("error: request already decided", func(t *testing.T) {
		env := newCommandEnv()
		ownerID := uuid.New()
		req, _ := seedPending(env, ownerID)
		ac := newAvailabilityCommands(env)

		require.NoError(t, ac.Decide(ctx, req.ID(), true, ownerActor(ownerID)))

		err := ac.Decide(ctx, req.ID(), false, ownerActor(ownerID))
		require.ErrorIs(t, err, commands.ErrRequestDecided)
		assert.Equal(t, availability.StatusApproved, env.requests.Get(req.ID()).Status())
	})

	t.Run("error: unknown request", func(t *testing.T) {
		env := newCommandEnv()
		err := newAvailabilityCommands(env).Decide(ctx, uuid.New(), true, ownerActor(uuid.New()))
		require.ErrorIs(t, err, commands.ErrRequestNotFound)
	})
}
