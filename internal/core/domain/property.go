package domain

import "errors"

// PropertyKind distinguishes sale listings from rental listings.
type PropertyKind string

const (
	KindSale PropertyKind = "sale"
	KindRent PropertyKind = "rent"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrInvalidProperty  = errors.New("invalid property")
)

// Address is the physical location of a property.
type Address struct {
	StreetNumber int    `json:"street_number"`
	StreetName   string `json:"street_name"`
	City         string `json:"city"`
	Postcode     string `json:"postcode"`
	Country      string `json:"country"`
}

// Property is a listed property. Sale listings carry SalePrice; rental
// listings carry WeeklyRent and Furnished.
type Property struct {
	ID          int64        `json:"id"`
	Kind        PropertyKind `json:"kind"`
	Type        string       `json:"type"` // house, apartment, unit, ...
	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   int          `json:"bathrooms"`
	Description string       `json:"description"`
	Address     Address      `json:"address"`

	SalePrice  int64 `json:"sale_price,omitempty"`
	WeeklyRent int64 `json:"weekly_rent,omitempty"`
	Furnished  bool  `json:"furnished,omitempty"`
}
