package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
	"github.com/thoughts-cell/Property-Management-System/internal/core/ports"
)

// PropertyHandler handles HTTP requests for property listings.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// --- Request types ---

type addressRequest struct {
	StreetNumber int    `json:"street_number" validate:"required"`
	StreetName   string `json:"street_name" validate:"required"`
	City         string `json:"city" validate:"required"`
	Postcode     string `json:"postcode" validate:"required"`
	Country      string `json:"country" validate:"required"`
}

type createSalePropertyRequest struct {
	Type        string         `json:"type" validate:"required"`
	Bedrooms    int            `json:"bedrooms" validate:"min=0"`
	Bathrooms   int            `json:"bathrooms" validate:"min=0"`
	Description string         `json:"description"`
	Address     addressRequest `json:"address"`
	SalePrice   int64          `json:"sale_price" validate:"gt=0"`
}

type createRentPropertyRequest struct {
	Type        string         `json:"type" validate:"required"`
	Bedrooms    int            `json:"bedrooms" validate:"min=0"`
	Bathrooms   int            `json:"bathrooms" validate:"min=0"`
	Description string         `json:"description"`
	Address     addressRequest `json:"address"`
	WeeklyRent  int64          `json:"weekly_rent" validate:"gt=0"`
	Furnished   bool           `json:"furnished"`
}

// CreateSale handles POST /properties/sales.
func (h *PropertyHandler) CreateSale(c echo.Context) error {
	var req createSalePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	property, err := h.service.Create(c.Request().Context(), ports.CreatePropertyInput{
		Kind:        domain.KindSale,
		Type:        req.Type,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Description: req.Description,
		Address:     toDomainAddress(req.Address),
		SalePrice:   req.SalePrice,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, property)
}

// CreateRent handles POST /properties/rentals.
func (h *PropertyHandler) CreateRent(c echo.Context) error {
	var req createRentPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	property, err := h.service.Create(c.Request().Context(), ports.CreatePropertyInput{
		Kind:        domain.KindRent,
		Type:        req.Type,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Description: req.Description,
		Address:     toDomainAddress(req.Address),
		WeeklyRent:  req.WeeklyRent,
		Furnished:   req.Furnished,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, property)
}

// ListSales handles GET /properties/sales.
func (h *PropertyHandler) ListSales(c echo.Context) error {
	properties, err := h.service.ListSales(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}

// ListRentals handles GET /properties/rentals.
func (h *PropertyHandler) ListRentals(c echo.Context) error {
	properties, err := h.service.ListRentals(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}

// Get handles GET /properties/:id.
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	property, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

func toDomainAddress(req addressRequest) domain.Address {
	return domain.Address{
		StreetNumber: req.StreetNumber,
		StreetName:   req.StreetName,
		City:         req.City,
		Postcode:     req.Postcode,
		Country:      req.Country,
	}
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
