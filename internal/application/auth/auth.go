package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/zamretail/smartinvoice/internal/application/dto"
	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/repository"
	"github.com/zamretail/smartinvoice/pkg/jwt"
)

// JWTConfig carries the token signing parameters.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authenticates operators and issues the tokens that identify the
// registrar on gateway payloads.
type AuthUseCase struct {
	users repository.UserRepository
	cfg   JWTConfig
}

func NewAuthUseCase(users repository.UserRepository, cfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, cfg: cfg}
}

// Login verifies the credentials and returns a signed token. Unknown users
// and bad passwords both map to ErrUnauthorized so the response does not leak
// which one failed.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Name, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		Name:      user.Name,
		ExpiresIn: uc.cfg.ExpMinutes * 60,
	}, nil
}
