package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/minikart/commerce-api/internal/core/domain"
	"github.com/minikart/commerce-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.nextID++
	created := cloneProduct(product)
	created.ID = fmt.Sprintf("prod_%d", r.nextID)
	r.products[created.ID] = cloneProduct(created)
	return created, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *stubProductRepo) ReplaceByID(_ context.Context, id string, product *domain.Product) (*domain.Product, error) {
	if _, ok := r.products[id]; !ok {
		return nil, domain.ErrProductNotFound
	}
	replaced := cloneProduct(product)
	replaced.ID = id
	r.products[id] = cloneProduct(replaced)
	return replaced, nil
}

func (r *stubProductRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

func seedUser(repo *stubUserRepo, name, email, role string) *domain.User {
	created, _ := repo.Create(context.Background(), &domain.User{
		Name: name, Email: email, PasswordHash: "x", Role: role,
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	})
	return created
}

func TestProductService_Create_AdminOnly(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	svc := NewProductService(products, users, zerolog.Nop())

	admin := seedUser(users, "Root", "root@example.com", domain.RoleAdmin)
	customer := seedUser(users, "Cart", "cart@example.com", domain.RoleCustomer)

	created, err := svc.CreateProduct(context.Background(), admin.ID, ports.ProductInput{Name: "  Widget  ", Quantity: 3})
	if err != nil {
		t.Fatalf("admin create failed: %v", err)
	}
	if created.Name != "Widget" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Quantity != 3 {
		t.Fatalf("unexpected quantity: %d", created.Quantity)
	}

	if _, err := svc.CreateProduct(context.Background(), customer.ID, ports.ProductInput{Name: "Gadget", Quantity: 1}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.CreateProduct(context.Background(), "ghost", ports.ProductInput{Name: "Gadget", Quantity: 1}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(products.products) != 1 {
		t.Fatalf("rejected creations mutated the catalog: %d products", len(products.products))
	}
}

func TestProductService_Create_Validation(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	svc := NewProductService(products, users, zerolog.Nop())

	admin := seedUser(users, "Root", "root@example.com", domain.RoleAdmin)

	if _, err := svc.CreateProduct(context.Background(), admin.ID, ports.ProductInput{Name: "   ", Quantity: 1}); err != domain.ErrInvalidProduct {
		t.Fatalf("expected ErrInvalidProduct for blank name, got %v", err)
	}
	if _, err := svc.CreateProduct(context.Background(), admin.ID, ports.ProductInput{Name: "Widget", Quantity: -1}); err != domain.ErrInvalidProduct {
		t.Fatalf("expected ErrInvalidProduct for negative quantity, got %v", err)
	}
	if len(products.products) != 0 {
		t.Fatalf("invalid inputs mutated the catalog")
	}
}

func TestProductService_Update(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	svc := NewProductService(products, users, zerolog.Nop())

	admin := seedUser(users, "Root", "root@example.com", domain.RoleAdmin)
	created, err := svc.CreateProduct(context.Background(), admin.ID, ports.ProductInput{Name: "Widget", Quantity: 3})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateProduct(context.Background(), created.ID, ports.ProductInput{Name: "Widget v2", Quantity: 7})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Widget v2" || updated.Quantity != 7 {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("update must preserve creation timestamp")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("update must advance the updated timestamp")
	}

	if _, err := svc.UpdateProduct(context.Background(), "missing", ports.ProductInput{Name: "X", Quantity: 1}); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := svc.UpdateProduct(context.Background(), created.ID, ports.ProductInput{Name: "X", Quantity: -5}); err != domain.ErrInvalidProduct {
		t.Fatalf("expected ErrInvalidProduct, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	svc := NewProductService(products, users, zerolog.Nop())

	admin := seedUser(users, "Root", "root@example.com", domain.RoleAdmin)
	created, err := svc.CreateProduct(context.Background(), admin.ID, ports.ProductInput{Name: "Widget", Quantity: 3})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteProduct(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), created.ID); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound on second delete, got %v", err)
	}

	listed, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty catalog, got %d", len(listed))
	}
}
