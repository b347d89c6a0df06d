package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/minikart/commerce-api/internal/core/domain"
	"github.com/minikart/commerce-api/internal/core/ports"
)

// UserService implements the read and delete directory operations.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// DeleteUser removes the user by id, failing with domain.ErrUserNotFound
// when no record matched.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrUserNotFound
	}

	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
