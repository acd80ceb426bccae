package ports

import (
	"context"

	"github.com/aihub/usecase-hub/internal/core/domain"
)

// AuthRepository is the slice of user persistence the login/registration flow
// needs.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserRepository covers the administrative user operations.
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
	UpdateRole(ctx context.Context, id uint, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id uint) error
}
