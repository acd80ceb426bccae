package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aihub/usecase-hub/internal/core/domain"
	"github.com/aihub/usecase-hub/internal/core/ports"
)

// UseCaseHandler handles HTTP requests for use case records.
type UseCaseHandler struct {
	service ports.UseCaseService
}

func NewUseCaseHandler(service ports.UseCaseService) *UseCaseHandler {
	return &UseCaseHandler{service: service}
}

// List handles GET /v1/usecases. The route runs under optional auth:
// anonymous callers only see approved records.
//
// @Summary      List use cases
// @Tags         usecases
// @Produce      json
// @Param        page      query     int  false  "Page number (1-based)"
// @Param        per_page  query     int  false  "Page size (max 100)"
// @Success      200       {object}  listUseCasesResponse
// @Router       /v1/usecases [get]
func (h *UseCaseHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	in := ports.ListUseCasesInput{
		Page:          page,
		PerPage:       perPage,
		Authenticated: authenticated(c),
	}

	items, total, err := h.service.List(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(items, total, in))
}

// Get handles GET /v1/usecases/:id.
//
// @Summary      Get a use case by id
// @Tags         usecases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  useCaseResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/usecases/{id} [get]
func (h *UseCaseHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	uc, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUseCaseResponse(uc))
}

// Create handles POST /v1/usecases. Admin and editor only.
//
// @Summary      Register a new use case
// @Tags         usecases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUseCaseRequest  true  "Use case details"
// @Success      201   {object}  useCaseResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/usecases [post]
func (h *UseCaseHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createUseCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	uc, err := h.service.Create(c.Request().Context(), ports.CreateUseCaseInput{
		Title:        req.Title,
		Description:  req.Description,
		BusinessArea: req.BusinessArea,
		OwnerID:      userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUseCaseResponse(uc))
}

// Update handles PUT /v1/usecases/:id. Admin and editor only.
//
// @Summary      Update a use case
// @Tags         usecases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUseCaseRequest  true  "Replacement fields"
// @Success      200   {object}  useCaseResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/usecases/{id} [put]
func (h *UseCaseHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUseCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	uc, err := h.service.Update(c.Request().Context(), id, ports.UpdateUseCaseInput{
		Title:        req.Title,
		Description:  req.Description,
		BusinessArea: req.BusinessArea,
		Status:       domain.UseCaseStatus(req.Status),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUseCaseResponse(uc))
}

// Delete handles DELETE /v1/usecases/:id. Admin only.
//
// @Summary      Delete a use case
// @Tags         usecases
// @Security     BearerAuth
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/usecases/{id} [delete]
func (h *UseCaseHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
