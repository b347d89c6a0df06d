package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/minikart/commerce-api/internal/core/domain"
)

func TestUserService_GetAndList(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	alice := seedUser(repo, "Alice", "alice@example.com", domain.RoleCustomer)
	seedUser(repo, "Bob", "bob@example.com", domain.RoleAdmin)

	got, err := svc.GetUser(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := svc.GetUser(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	all, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	alice := seedUser(repo, "Alice", "alice@example.com", domain.RoleCustomer)

	if err := svc.DeleteUser(context.Background(), alice.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteUser(context.Background(), alice.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected empty directory")
	}
}
