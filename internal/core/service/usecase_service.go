package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aihub/usecase-hub/internal/api/metrics"
	"github.com/aihub/usecase-hub/internal/core/domain"
	"github.com/aihub/usecase-hub/internal/core/ports"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type UseCaseService struct {
	repo   ports.UseCaseRepository
	cache  ports.UseCaseCache
	logger zerolog.Logger
}

// NewUseCaseService creates the service. cache may be nil, in which case all
// reads go straight to the repository.
func NewUseCaseService(repo ports.UseCaseRepository, cache ports.UseCaseCache, logger zerolog.Logger) *UseCaseService {
	return &UseCaseService{repo: repo, cache: cache, logger: logger}
}

// Create registers a new use case. Status is forced to draft regardless of
// what the transport layer accepted.
func (s *UseCaseService) Create(ctx context.Context, in ports.CreateUseCaseInput) (*domain.UseCase, error) {
	now := time.Now().UTC()
	uc := &domain.UseCase{
		Title:        in.Title,
		Description:  in.Description,
		BusinessArea: in.BusinessArea,
		Status:       domain.StatusDraft,
		OwnerID:      in.OwnerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, uc)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create use case")
		return nil, err
	}

	metrics.UseCaseMutationsTotal.WithLabelValues("create", string(created.Status)).Inc()
	s.logger.Info().Uint("usecase_id", created.ID).Uint("owner_id", created.OwnerID).Msg("use case created")
	return created, nil
}

func (s *UseCaseService) Get(ctx context.Context, id uint) (*domain.UseCase, error) {
	if s.cache != nil {
		if uc, ok := s.cache.Get(ctx, id); ok {
			return uc, nil
		}
	}

	uc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, uc)
	}
	return uc, nil
}

func (s *UseCaseService) List(ctx context.Context, in ports.ListUseCasesInput) ([]domain.UseCase, int64, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	var statuses []domain.UseCaseStatus
	if !in.Authenticated {
		statuses = []domain.UseCaseStatus{domain.StatusApproved}
	}

	return s.repo.List(ctx, (page-1)*perPage, perPage, statuses)
}

// Update replaces the mutable fields. The status change must be a legal
// lifecycle transition; writing the current status back is a no-op allowed
// so full-replacement PUTs don't have to special-case it.
func (s *UseCaseService) Update(ctx context.Context, id uint, in ports.UpdateUseCaseInput) (*domain.UseCase, error) {
	uc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(uc.Status, in.Status) {
		s.logger.Warn().
			Uint("usecase_id", id).
			Str("from", string(uc.Status)).
			Str("to", string(in.Status)).
			Msg("rejected status transition")
		return nil, domain.ErrInvalidTransition
	}

	uc.Title = in.Title
	uc.Description = in.Description
	uc.BusinessArea = in.BusinessArea
	uc.Status = in.Status
	uc.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, uc)
	if err != nil {
		s.logger.Error().Err(err).Uint("usecase_id", id).Msg("failed to update use case")
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	metrics.UseCaseMutationsTotal.WithLabelValues("update", string(updated.Status)).Inc()
	return updated, nil
}

func (s *UseCaseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Uint("usecase_id", id).Msg("failed to delete use case")
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	metrics.UseCaseMutationsTotal.WithLabelValues("delete", "").Inc()
	s.logger.Info().Uint("usecase_id", id).Msg("use case deleted")
	return nil
}
