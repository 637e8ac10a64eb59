package repository

import (
	"context"
	"time"

	"storefront-api/internal/domain"
)

// UserRepository defines persistence operations for User entities.
// It is the credential store behind login, token issuance and password change.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// UpdatePassword replaces only the stored hash and the modification
	// timestamp, leaving every other column untouched.
	UpdatePassword(ctx context.Context, id int64, passwordHash string, updatedAt time.Time) error
	Delete(ctx context.Context, id int64) error
}
