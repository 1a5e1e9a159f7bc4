package repository

import (
	"context"
	"errors"
	"time"

	"poolside/internal/domain/user"
	"poolside/internal/infra"
	"poolside/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/google/uuid"
)

const pgErrCodeUniqueViolation = "23505"

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO users (id, email, password_hash, role)
VALUES ($1, $2, $3, $4)`,
		u.ID(), u.Email().String(), u.PasswordHash(), u.Role().String(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRow(ctx, `
SELECT id, email, password_hash, role, created_at
FROM users WHERE email = $1`, email)

	var (
		id                   uuid.UUID
		emailStr, hash, role string
		createdAt            time.Time
	)
	err := row.Scan(&id, &emailStr, &hash, &role, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return user.ReconstructUser(id, user.Email(emailStr), hash, user.Role(role), createdAt), nil
}
