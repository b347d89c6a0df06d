package ports

import (
	"context"

	"github.com/minikart/commerce-api/internal/core/domain"
)

// SignupInput carries the fields accepted at account creation.
// Role defaults to "customer" when empty.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService implements the authentication flow: signup and login.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Login verifies credentials and issues a fresh session token.
	// priorToken is the token already attached to the request, if any: a
	// valid token for the same user yields domain.ErrAlreadyLoggedIn, while
	// an invalid, expired, or third-party token is treated as absent.
	Login(ctx context.Context, email, password, priorToken string) (string, *domain.User, error)
}
