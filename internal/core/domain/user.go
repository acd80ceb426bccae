package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the closed set of authorization labels. Storage keeps the label as
// free text; ParseRole normalizes at the boundary so the gates never compare
// raw strings.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
	// RoleUser is the ambient default granted at registration. It carries no
	// privileges beyond authenticated reads.
	RoleUser Role = "user"
)

// ParseRole folds case and maps the label into the closed role set. Unknown
// labels degrade to RoleUser: a fabricated role then matches no allow-list
// that does not explicitly include "user", which fails closed.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleEditor:
		return RoleEditor
	case RoleViewer:
		return RoleViewer
	default:
		return RoleUser
	}
}

// KnownRole reports whether the label (case-insensitively) names one of the
// closed roles. Used at write boundaries where an unknown label is an error
// rather than something to default.
func KnownRole(s string) bool {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin, RoleEditor, RoleViewer, RoleUser:
		return true
	default:
		return false
	}
}

// User models an authenticated actor in the system.
type User struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims is the decoded payload of a verified credential. It is a snapshot
// taken at issuance and is never re-read from storage during verification, so
// role changes and deactivation only take effect when the token expires or
// the client logs in again.
type Claims struct {
	UserID    string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrUnknownRole        = errors.New("unknown role")
	ErrSelfDeletion       = errors.New("cannot delete own account")

	// Token verification verdicts. Callers outside the log/metrics path must
	// not distinguish the first three; the distinction exists for operators.
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)
