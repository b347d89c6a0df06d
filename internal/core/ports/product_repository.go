package ports

import (
	"context"

	"github.com/minikart/commerce-api/internal/core/domain"
)

// ProductRepository defines persistence operations for the product catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	// ReplaceByID performs a full-document update. Fails with
	// domain.ErrProductNotFound when no document matches.
	ReplaceByID(ctx context.Context, id string, product *domain.Product) (*domain.Product, error)
	// DeleteByID removes the product and reports whether a record matched.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
