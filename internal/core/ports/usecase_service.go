package ports

import (
	"context"

	"github.com/aihub/usecase-hub/internal/core/domain"
)

// CreateUseCaseInput carries all data needed to register a new use case.
// Status is not part of the input: every record starts life as a draft.
type CreateUseCaseInput struct {
	Title        string
	Description  string
	BusinessArea string
	OwnerID      uint
}

// UpdateUseCaseInput carries a full replacement of the mutable fields.
type UpdateUseCaseInput struct {
	Title        string
	Description  string
	BusinessArea string
	Status       domain.UseCaseStatus
}

// ListUseCasesInput carries pagination plus the caller's visibility.
// Anonymous callers only see approved records.
type ListUseCasesInput struct {
	Page          int
	PerPage       int
	Authenticated bool
}

type UseCaseService interface {
	Create(ctx context.Context, in CreateUseCaseInput) (*domain.UseCase, error)
	Get(ctx context.Context, id uint) (*domain.UseCase, error)
	List(ctx context.Context, in ListUseCasesInput) ([]domain.UseCase, int64, error)
	Update(ctx context.Context, id uint, in UpdateUseCaseInput) (*domain.UseCase, error)
	Delete(ctx context.Context, id uint) error
}
