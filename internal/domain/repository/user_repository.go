package repository

import (
	"context"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// UserRepository is the persistence port for operator accounts.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
