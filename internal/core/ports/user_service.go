package ports

import (
	"context"

	"github.com/minikart/commerce-api/internal/core/domain"
)

// UserService defines read and delete operations on the user directory.
type UserService interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
