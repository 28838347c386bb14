package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thoughts-cell/Property-Management-System/internal/core/ports"
)

// ManagerHandler handles HTTP requests for property managers.
type ManagerHandler struct {
	service ports.ManagerService
}

func NewManagerHandler(service ports.ManagerService) *ManagerHandler {
	return &ManagerHandler{service: service}
}

type managerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

func (r managerRequest) toInput() ports.ManagerInput {
	return ports.ManagerInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Mobile:    r.Mobile,
		Email:     r.Email,
	}
}

// Create handles POST /managers.
func (h *ManagerHandler) Create(c echo.Context) error {
	var req managerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	manager, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, manager)
}

// Update handles PUT /managers/:id.
func (h *ManagerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req managerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	manager, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, manager)
}

// Delete handles DELETE /managers/:id.
func (h *ManagerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Get handles GET /managers/:id.
func (h *ManagerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	manager, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, manager)
}

// List handles GET /managers. Optional first_name/last_name query params
// turn the listing into a search.
func (h *ManagerHandler) List(c echo.Context) error {
	firstName := c.QueryParam("first_name")
	lastName := c.QueryParam("last_name")

	var err error
	var managers interface{}
	if firstName != "" || lastName != "" {
		managers, err = h.service.Search(c.Request().Context(), firstName, lastName)
	} else {
		managers, err = h.service.List(c.Request().Context())
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, managers)
}

// Stats handles GET /managers/:id/stats.
func (h *ManagerHandler) Stats(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	stats, err := h.service.Stats(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Count handles GET /managers/count.
func (h *ManagerHandler) Count(c echo.Context) error {
	n, err := h.service.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}
