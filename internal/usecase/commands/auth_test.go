//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"poolside/internal/domain/user"
	"poolside/internal/pkg/jwt"
	"poolside/internal/usecase/commands"
	"poolside/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthCommands() (commands.AuthCommands, *fake.UserStore) {
	users := fake.NewUserStore()
	return commands.NewAuthCommands(users, jwt.NewService("test-secret", time.Hour)), users
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns a token and the new user", func(t *testing.T) {
		auth, _ := newAuthCommands()

		result, err := auth.Register(ctx, "owner@example.com", "secret-password", "owner")
		require.NoError(t, err)

		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "owner@example.com", result.Email)
		assert.Equal(t, user.RoleOwner, result.Role)
	})

	t.Run("error: duplicate email", func(t *testing.T) {
		auth, _ := newAuthCommands()

		_, err := auth.Register(ctx, "taken@example.com", "secret-password", "renter")
		require.NoError(t, err)

		_, err = auth.Register(ctx, "taken@example.com", "other-password", "renter")
		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("error: invalid input", func(t *testing.T) {
		auth, _ := newAuthCommands()

		_, err := auth.Register(ctx, "not-an-email", "secret-password", "renter")
		require.ErrorIs(t, err, commands.ErrInvalidUserInput)

		_, err = auth.Register(ctx, "valid@example.com", "secret-password", "admin")
		require.ErrorIs(t, err, commands.ErrInvalidUserInput)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success: valid credentials", func(t *testing.T) {
		auth, _ := newAuthCommands()

		registered, err := auth.Register(ctx, "renter@example.com", "secret-password", "renter")
		require.NoError(t, err)

		result, err := auth.Login(ctx, "renter@example.com", "secret-password")
		require.NoError(t, err)
		assert.Equal(t, registered.UserID, result.UserID)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		auth, _ := newAuthCommands()

		_, err := auth.Register(ctx, "renter@example.com", "secret-password", "renter")
		require.NoError(t, err)

		_, err = auth.Login(ctx, "renter@example.com", "wrong-password")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: unknown email", func(t *testing.T) {
		auth, _ := newAuthCommands()

		_, err := auth.Login(ctx, "nobody@example.com", "secret-password")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
