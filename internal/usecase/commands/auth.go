package commands

import (
	"context"

	"poolside/internal/domain/user"
	"poolside/internal/infra"
	"poolside/internal/pkg/errs"
	"poolside/internal/pkg/jwt"
	"poolside/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrInvalidUserInput   = errs.New("invalid user input")
)

type AuthResult struct {
	Token  string
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

type AuthCommands interface {
	Register(ctx context.Context, email, plainPassword, role string) (*AuthResult, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
}

type authCommandsImpl struct {
	users      UserStore
	jwtService *jwt.Service
}

func NewAuthCommands(users UserStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		jwtService: jwtService,
	}
}

func (c *authCommandsImpl) Register(ctx context.Context, email, plainPassword, role string) (*AuthResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}
	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}
	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}

	u := user.NewUser(emailVO, hash, roleVO)
	if err := c.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	return c.issueToken(u)
}

func (c *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	u, err := c.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	if err := password.ComparePassword(u.PasswordHash(), plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	return c.issueToken(u)
}

func (c *authCommandsImpl) issueToken(u *user.User) (*AuthResult, error) {
	token, err := c.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &AuthResult{
		Token:  token,
		UserID: u.ID(),
		Email:  u.Email().String(),
		Role:   u.Role(),
	}, nil
}
