//go:build unit

package fake

import (
	"context"
	"sync"

	"poolside/internal/domain/user"
	"poolside/internal/infra"
	"poolside/internal/usecase/commands"
)

type UserStore struct {
	mu    sync.Mutex
	users map[string]*user.User // keyed by email
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*user.User)}
}

func (s *UserStore) Create(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := u.Email().String()
	if _, exists := s.users[email]; exists {
		return infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
	}
	s.users[email] = u
	return nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

var _ commands.UserStore = (*UserStore)(nil)
