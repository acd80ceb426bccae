package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aihub/usecase-hub/internal/api/metrics"
	"github.com/aihub/usecase-hub/internal/core/domain"
)

// RBAC enforces a per-route role allow-list. It must run after Auth: when no
// role claim is attached the request fails 401, never passes silently.
// Comparison is case-insensitive: labels are normalized through ParseRole on
// both sides so drift between issuance and route registration cannot open or
// close access by casing alone.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[domain.ParseRole(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, _ := c.Get(CtxRole).(string)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, msgAuthRequired)
			}

			role := domain.ParseRole(raw)
			if _, ok := allowed[role]; !ok {
				metrics.RoleDenialsTotal.WithLabelValues(string(role)).Inc()
				// Generic message: never enumerate which roles would pass.
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}
			return next(c)
		}
	}
}
