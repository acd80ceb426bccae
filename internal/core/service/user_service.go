package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aihub/usecase-hub/internal/core/domain"
	"github.com/aihub/usecase-hub/internal/core/ports"
)

// UserService implements admin account management.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, page, perPage int) ([]domain.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return s.repo.List(ctx, (page-1)*perPage, perPage)
}

// ChangeRole assigns a new role. Unlike the token path, an unknown label here
// is a caller error, not something to default.
func (s *UserService) ChangeRole(ctx context.Context, id uint, role string) (*domain.User, error) {
	if !domain.KnownRole(role) {
		return nil, domain.ErrUnknownRole
	}

	updated, err := s.repo.UpdateRole(ctx, id, domain.ParseRole(role))
	if err != nil {
		return nil, err
	}

	// Outstanding tokens keep the old role until they expire; the new role
	// only shows up after the next login.
	s.logger.Info().Uint("user_id", id).Str("role", string(updated.Role)).Msg("role changed")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id, actorID uint) error {
	if id == actorID {
		return domain.ErrSelfDeletion
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Uint("user_id", id).Msg("failed to delete user")
		return err
	}

	s.logger.Info().Uint("user_id", id).Uint("actor_id", actorID).Msg("user deleted")
	return nil
}
