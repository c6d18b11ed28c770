package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements UserRepository over PostgreSQL.
type UserRepo struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, "username = $1", username)
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *UserRepo) getOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	query := `SELECT id, username, name, password_hash FROM users WHERE ` + where
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %v: %w", arg, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
