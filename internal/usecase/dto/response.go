package dto

import (
	"time"

	"github.com/branch-finder/internal/domain"
)

// SearchResponse - one page of search results plus an echo of the applied query.
type SearchResponse struct {
	Results      []BranchSummary `json:"results"`
	TotalResults int             `json:"total_results"`
	Page         int             `json:"page"`
	PageSize     int             `json:"page_size"`
	SearchCenter domain.Point    `json:"search_center"`
	Filters      AppliedFilters  `json:"filters"`
}

// AppliedFilters - filters as applied; type_group and facilities are null when not sent.
type AppliedFilters struct {
	RadiusKm   float64 `json:"radius_km"`
	TypeGroup  *string `json:"type_group"`
	OpenNow    bool    `json:"open_now"`
	Facilities []int   `json:"facilities"`
}

// Address - postal address of a location.
type Address struct {
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
}

// BranchSummary - search result view of a location.
type BranchSummary struct {
	ID                       int64      `json:"id"`
	Name                     string     `json:"name"`
	Type                     string     `json:"type"`
	Address                  Address    `json:"address"`
	DistanceMeters           *float64   `json:"distance_meters,omitempty"`
	IsOpenNow                *bool      `json:"is_open_now,omitempty"`
	IsTemporarilyClosed      *bool      `json:"is_temporarily_closed,omitempty"`
	TemporarilyClosedFrom    *time.Time `json:"temporarily_closed_from"`
	TemporarilyClosedThrough *time.Time `json:"temporarily_closed_through"`
	KeyFacilities            []string   `json:"key_facilities"`
}

// BranchDetail - full view of a single location.
type BranchDetail struct {
	BranchSummary
	State             string                  `json:"state,omitempty"`
	Coordinates       *domain.Point           `json:"coordinates,omitempty"`
	Contact           *domain.Contact         `json:"contact,omitempty"`
	OpeningHours      []domain.DayHours       `json:"opening_hours,omitempty"`
	ConsultationHours []domain.DayHours       `json:"consultation_hours,omitempty"`
	PublicTransport   *domain.PublicTransport `json:"public_transport,omitempty"`
	Images            []domain.Image          `json:"images,omitempty"`
	Attributes        []domain.Attribute      `json:"attributes,omitempty"`
}

// FacilitiesResponse - facility catalog.
type FacilitiesResponse struct {
	Facilities []domain.Facility `json:"facilities"`
	Total      int               `json:"total"`
}

// ObjectTypesResponse - object type catalog.
type ObjectTypesResponse struct {
	ObjectTypes []domain.ObjectType `json:"object_types"`
	Total       int                 `json:"total"`
}
