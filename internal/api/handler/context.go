package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aihub/usecase-hub/internal/api/middleware"
	"github.com/aihub/usecase-hub/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware and performs
// a fast-fail check before any service call: an empty role or an unparsable
// subject id means the middleware did not run (or ran in optional mode and
// found nothing), so the handler must not proceed as if authenticated.
func ctxClaims(c echo.Context) (userID uint, role domain.Role, err error) {
	rawRole, _ := c.Get(middleware.CtxRole).(string)
	if rawRole == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	rawID, _ := c.Get(middleware.CtxUserID).(string)
	id, parseErr := strconv.ParseUint(rawID, 10, 64)
	if parseErr != nil || id == 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	return uint(id), domain.ParseRole(rawRole), nil
}

// authenticated reports whether the optional auth middleware attached claims.
func authenticated(c echo.Context) bool {
	role, _ := c.Get(middleware.CtxRole).(string)
	return role != ""
}
