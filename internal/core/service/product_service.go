package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/minikart/commerce-api/internal/api/metrics"
	"github.com/minikart/commerce-api/internal/core/domain"
	"github.com/minikart/commerce-api/internal/core/ports"
)

// ProductService implements catalog use cases, gating creation on the
// admin role.
type ProductService struct {
	products ports.ProductRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewProductService(products ports.ProductRepository, users ports.UserRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, users: users, logger: logger}
}

// validateInput normalizes and checks the catalog invariants: non-empty
// trimmed name, non-negative quantity.
func validateInput(input ports.ProductInput) (ports.ProductInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, domain.ErrInvalidProduct
	}
	if input.Quantity < 0 {
		return input, domain.ErrInvalidProduct
	}
	return input, nil
}

// CreateProduct loads the acting user and rejects unless they hold the
// admin role, then persists the product.
func (s *ProductService) CreateProduct(ctx context.Context, actorID string, input ports.ProductInput) (*domain.Product, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin {
		metrics.ProductWritesTotal.WithLabelValues("create", "forbidden").Inc()
		return nil, domain.ErrForbidden
	}

	input, err = validateInput(input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:      input.Name,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductWritesTotal.WithLabelValues("create", "ok").Inc()
	s.logger.Info().Str("product_id", created.ID).Str("actor_id", actorID).Msg("product created")
	return created, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.FindAll(ctx)
}

// UpdateProduct replaces the full document identified by id, preserving the
// original creation timestamp.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	input, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	replacement := &domain.Product{
		ID:        id,
		Name:      input.Name,
		Quantity:  input.Quantity,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}

	updated, err := s.products.ReplaceByID(ctx, id, replacement)
	if err != nil {
		return nil, err
	}

	metrics.ProductWritesTotal.WithLabelValues("update", "ok").Inc()
	return updated, nil
}

// DeleteProduct removes the product by id, failing with
// domain.ErrProductNotFound when no record matched.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	removed, err := s.products.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrProductNotFound
	}

	metrics.ProductWritesTotal.WithLabelValues("delete", "ok").Inc()
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
