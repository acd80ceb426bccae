package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aihub/usecase-hub/internal/core/domain"
	"github.com/aihub/usecase-hub/internal/core/ports"
)

// UserHandler handles the admin account-management surface plus /me.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type listUsersResponse struct {
	Items   []domain.User `json:"items"`
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

// Me handles GET /v1/me. The claims' subject is read fresh from storage, so
// a stale token still shows the account's current role.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /v1/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// List handles GET /v1/users. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	users, total, err := h.service.List(c.Request().Context(), page, perPage)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Items:   users,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

// ChangeRole handles PUT /v1/users/:id/role. Admin only.
//
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changeRoleRequest  true  "New role label"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/{id}/role [put]
func (h *UserHandler) ChangeRole(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.ChangeRole(c.Request().Context(), id, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /v1/users/:id. Admin only; self-deletion is refused.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	actorID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, actorID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
