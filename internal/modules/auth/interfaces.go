package auth

import (
	"context"

	"familykitchen/internal/domain"
)

// UserRepository is the subset of the user store the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateDisplayName(ctx context.Context, id int64, displayName string) (*domain.User, error)
}
