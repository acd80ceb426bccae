package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aihub/usecase-hub/internal/core/domain"
)

// TokenService signs and verifies HS256 bearer tokens. The secret is
// immutable after construction; rotation means a new process generation.
// Claims are a snapshot taken at issuance. There is no revocation list, so a
// demoted or deleted account keeps its access until the token expires.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// accessClaims is the wire shape of the token payload.
type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewTokenService builds a TokenService. Config validates that the secret is
// non-empty and the TTL parses before the process gets this far.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(user *domain.User) (string, error) {
	if user == nil || user.ID == 0 || user.Email == "" || user.Role == "" {
		return "", domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := accessClaims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &accessClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenMalformed
		}
	}

	ac, ok := parsed.Claims.(*accessClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrTokenMalformed
	}
	// jwt/v5 only validates exp when the claim is present; a token without an
	// expiry never times out, which this service does not accept.
	if ac.ExpiresAt == nil {
		return nil, domain.ErrTokenMalformed
	}

	return toClaims(ac), nil
}

func (s *TokenService) DecodeUnsafe(token string) *domain.Claims {
	ac := &accessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, ac); err != nil {
		return nil
	}
	return toClaims(ac)
}

func toClaims(ac *accessClaims) *domain.Claims {
	c := &domain.Claims{
		UserID: ac.Subject,
		Email:  ac.Email,
		Role:   domain.ParseRole(ac.Role),
	}
	if ac.IssuedAt != nil {
		c.IssuedAt = ac.IssuedAt.Time
	}
	if ac.ExpiresAt != nil {
		c.ExpiresAt = ac.ExpiresAt.Time
	}
	return c
}
