package ports

import (
	"context"

	"github.com/minikart/commerce-api/internal/core/domain"
)

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name     string
	Quantity int
}

// ProductService defines catalog use cases. CreateProduct is gated on the
// acting user holding the admin role.
type ProductService interface {
	// CreateProduct loads the acting user by actorID and rejects with
	// domain.ErrUserNotFound or domain.ErrForbidden before persisting.
	CreateProduct(ctx context.Context, actorID string, input ProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	// UpdateProduct replaces the full document identified by id.
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
