package repository

import (
	"context"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/user"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}
