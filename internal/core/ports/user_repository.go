package ports

import (
	"context"

	"github.com/minikart/commerce-api/internal/core/domain"
)

// UserRepository defines persistence operations for the user directory.
// Email uniqueness is enforced at this boundary: Create fails with
// domain.ErrEmailTaken when the email is already present.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// DeleteByID removes the user and reports whether a record matched.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
