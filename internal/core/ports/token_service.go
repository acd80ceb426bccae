package ports

import (
	"github.com/aihub/usecase-hub/internal/core/domain"
)

// TokenService issues and verifies signed bearer credentials.
type TokenService interface {
	// Issue turns a fully-resolved user (id, email, role all present) into a
	// compact signed token string safe for an Authorization header.
	Issue(user *domain.User) (string, error)

	// Verify checks signature integrity first, then expiry, and returns the
	// embedded claims unchanged. Fails with domain.ErrTokenMalformed,
	// domain.ErrTokenSignatureInvalid or domain.ErrTokenExpired.
	Verify(token string) (*domain.Claims, error)

	// DecodeUnsafe parses the payload WITHOUT checking signature or expiry.
	// Returns nil on any parse failure. Never use the result to authorize.
	DecodeUnsafe(token string) *domain.Claims
}
