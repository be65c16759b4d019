package dto

// SearchRequest - search for branches, ATMs and self-service points around a point.
// Optional fields are pointers so an explicit zero can be told apart from "not sent".
type SearchRequest struct {
	Latitude   *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude  *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	RadiusKm   *float64 `json:"radius_km,omitempty" validate:"omitempty,min=0.1,max=50"`
	TypeGroup  string   `json:"type_group,omitempty" validate:"omitempty,public_type"`
	OpenNow    *bool    `json:"open_now,omitempty"`
	Facilities []int    `json:"facilities,omitempty" validate:"omitempty,dive,min=1"`
	Limit      *int     `json:"limit,omitempty" validate:"omitempty,min=1,max=50"`
	Page       *int     `json:"page,omitempty" validate:"omitempty,min=1"`
}

const (
	DefaultRadiusKm = 5.0
	DefaultLimit    = 10
	DefaultPage     = 1
	MaxLimit        = 50
)

// DetailRequest - lookup of a single location.
type DetailRequest struct {
	ID int64 `json:"id" validate:"required,min=1"`
}
