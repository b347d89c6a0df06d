package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/minikart/commerce-api/internal/api/metrics"
	"github.com/minikart/commerce-api/internal/core/domain"
	"github.com/minikart/commerce-api/internal/core/ports"
	"github.com/minikart/commerce-api/internal/pkg/token"
)

// AuthService implements signup and login over the user directory.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = token.DefaultTTL
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Signup validates the input, hashes the password, and stores the user.
// The plaintext password never leaves this function.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidUser
	}
	if !domain.ValidEmail(input.Email) {
		return nil, domain.ErrInvalidUser
	}

	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidUser
	}

	// Explicit uniqueness check; the unique index on email backstops the
	// race between the lookup and the insert.
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(role).Inc()
	return created, nil
}

// Login verifies credentials and issues a session token with a 24-hour
// expiry. See ports.AuthService for the priorToken contract.
func (s *AuthService) Login(ctx context.Context, email, password, priorToken string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	// Best-effort convenience check, not a security boundary: a token that
	// fails verification or names another user is treated as absent.
	if priorToken != "" {
		if claims, err := token.Verify(priorToken, s.jwtSecret); err == nil && claims.UserID == user.ID {
			return "", nil, domain.ErrAlreadyLoggedIn
		}
	}

	signed, err := token.Issue(user.ID, user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return signed, user, nil
}
