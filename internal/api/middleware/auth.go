package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aihub/usecase-hub/internal/api/metrics"
	"github.com/aihub/usecase-hub/internal/core/domain"
	"github.com/aihub/usecase-hub/internal/core/ports"
)

// Context keys under which the auth middleware stores verified claims.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

const (
	msgAuthRequired = "Authentication required"
	msgInvalidToken = "Invalid or expired token"
)

// Auth verifies the bearer token and injects the verified claims into the
// request context. Every failure is a 401: a caller whose identity cannot be
// established gets "who are you", never "you may not". The response does not
// reveal whether the token was malformed, tampered or expired; logs and
// metrics keep the distinction.
func Auth(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, msgAuthRequired)
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verdict(err)).Inc()
				log.Debug().
					Str("reason", err.Error()).
					Str("path", c.Path()).
					Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			setClaims(c, claims)
			return next(c)
		}
	}
}

// OptionalAuth attaches claims when a valid token is present and otherwise
// continues anonymously. A token that is present but invalid is logged and
// then treated as no token at all. For endpoints that
// behave differently for authenticated callers but do not require them.
func OptionalAuth(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c)
			if !ok {
				return next(c)
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verdict(err)).Inc()
				log.Debug().
					Str("reason", err.Error()).
					Str("path", c.Path()).
					Msg("ignoring invalid token on optional route")
				return next(c)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			setClaims(c, claims)
			return next(c)
		}
	}
}

// bearerToken extracts the credential from "Authorization: Bearer <token>".
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setClaims(c echo.Context, claims *domain.Claims) {
	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxEmail, claims.Email)
	c.Set(CtxRole, string(claims.Role))
}

func verdict(err error) string {
	switch err {
	case domain.ErrTokenExpired:
		return "expired"
	case domain.ErrTokenSignatureInvalid:
		return "signature_invalid"
	default:
		return "malformed"
	}
}
