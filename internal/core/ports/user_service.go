package ports

import (
	"context"

	"github.com/aihub/usecase-hub/internal/core/domain"
)

// UserService exposes the administrative operations over accounts plus the
// self-lookup used by /me.
type UserService interface {
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	List(ctx context.Context, page, perPage int) ([]domain.User, int64, error)
	// ChangeRole rejects labels outside the closed role set.
	ChangeRole(ctx context.Context, id uint, role string) (*domain.User, error)
	// Delete refuses to remove the acting admin's own account.
	Delete(ctx context.Context, id, actorID uint) error
}
