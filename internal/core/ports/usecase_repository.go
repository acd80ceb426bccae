package ports

import (
	"context"

	"github.com/aihub/usecase-hub/internal/core/domain"
)

// UseCaseRepository defines the interface for use case persistence.
type UseCaseRepository interface {
	Create(ctx context.Context, uc *domain.UseCase) (*domain.UseCase, error)
	FindByID(ctx context.Context, id uint) (*domain.UseCase, error)
	// List returns a page ordered newest first. An empty statuses slice means
	// no status filter.
	List(ctx context.Context, offset, limit int, statuses []domain.UseCaseStatus) ([]domain.UseCase, int64, error)
	Update(ctx context.Context, uc *domain.UseCase) (*domain.UseCase, error)
	Delete(ctx context.Context, id uint) error
}

// UseCaseCache is a read-through cache for single-record lookups. A nil
// implementation is valid; callers must treat it as optional.
type UseCaseCache interface {
	Get(ctx context.Context, id uint) (*domain.UseCase, bool)
	Set(ctx context.Context, uc *domain.UseCase)
	Invalidate(ctx context.Context, id uint)
}
