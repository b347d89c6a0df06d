package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/minikart/commerce-api/internal/api/middleware"
	"github.com/minikart/commerce-api/internal/core/domain"
	"github.com/minikart/commerce-api/internal/core/ports"
)

type stubProductService struct {
	createFn func(ctx context.Context, actorID string, input ports.ProductInput) (*domain.Product, error)
	listFn   func(ctx context.Context) ([]*domain.Product, error)
	updateFn func(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubProductService) CreateProduct(ctx context.Context, actorID string, input ports.ProductInput) (*domain.Product, error) {
	return s.createFn(ctx, actorID, input)
}

func (s *stubProductService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) UpdateProduct(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, actorID string, input ports.ProductInput) (*domain.Product, error) {
			if actorID != "admin_1" {
				t.Fatalf("unexpected actor: %s", actorID)
			}
			return &domain.Product{ID: "prod_1", Name: input.Name, Quantity: input.Quantity}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/", `{"name":"Widget","quantity":3}`)
	c.Set(middleware.ContextUserID, "admin_1")
	c.SetParamNames("id")
	c.SetParamValues("admin_1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
}

func TestProductHandler_Create_PathIdentityMismatch(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, actorID string, input ports.ProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/", `{"name":"Widget","quantity":3}`)
	c.Set(middleware.ContextUserID, "customer_1")
	c.SetParamNames("id")
	c.SetParamValues("admin_1")

	_ = h.Create(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestProductHandler_Create_NotAdmin(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, actorID string, input ports.ProductInput) (*domain.Product, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/", `{"name":"Widget","quantity":3}`)
	c.Set(middleware.ContextUserID, "customer_1")
	c.SetParamNames("id")
	c.SetParamValues("customer_1")

	_ = h.Create(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestProductHandler_Create_UserNotFound(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, actorID string, input ports.ProductInput) (*domain.Product, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/", `{"name":"Widget","quantity":3}`)
	c.Set(middleware.ContextUserID, "ghost")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	_ = h.Create(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProductHandler_Create_NegativeQuantity(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, actorID string, input ports.ProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/", `{"name":"Widget","quantity":-2}`)
	c.Set(middleware.ContextUserID, "admin_1")
	c.SetParamNames("id")
	c.SetParamValues("admin_1")

	_ = h.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProductHandler_Update_NotFound(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/", `{"name":"Widget","quantity":3}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = h.Update(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProductHandler_Update_Success(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
			if id != "prod_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Product{ID: id, Name: input.Name, Quantity: input.Quantity}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/", `{"name":"Widget v2","quantity":7}`)
	c.SetParamNames("id")
	c.SetParamValues("prod_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Delete_NotFound(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = h.Delete(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProductHandler_GetAll(t *testing.T) {
	stub := &stubProductService{
		listFn: func(ctx context.Context) ([]*domain.Product, error) {
			return []*domain.Product{{ID: "prod_1", Name: "Widget", Quantity: 3}}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/", "")
	if err := h.GetAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
