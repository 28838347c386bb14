package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/thoughts-cell/Property-Management-System/internal/core/ports"
)

// AllocationHandler handles HTTP requests for manager-property allocations.
type AllocationHandler struct {
	service ports.AllocationService
}

func NewAllocationHandler(service ports.AllocationService) *AllocationHandler {
	return &AllocationHandler{service: service}
}

type createAllocationRequest struct {
	ManagerID  int64 `json:"manager_id" validate:"gt=0"`
	PropertyID int64 `json:"property_id" validate:"gt=0"`
}

// Create handles POST /allocations.
func (h *AllocationHandler) Create(c echo.Context) error {
	var req createAllocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	allocation, err := h.service.Allocate(c.Request().Context(), req.ManagerID, req.PropertyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, allocation)
}

// Delete handles DELETE /allocations/:id.
func (h *AllocationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Release(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Get handles GET /allocations/:id.
func (h *AllocationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	allocation, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, allocation)
}

// List handles GET /allocations. An optional manager_id query param narrows
// the listing to one manager.
func (h *AllocationHandler) List(c echo.Context) error {
	if raw := c.QueryParam("manager_id"); raw != "" {
		managerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || managerID <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid manager_id")
		}
		allocations, err := h.service.ListByManager(c.Request().Context(), managerID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, allocations)
	}

	allocations, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, allocations)
}

// Count handles GET /allocations/count.
func (h *AllocationHandler) Count(c echo.Context) error {
	n, err := h.service.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}
