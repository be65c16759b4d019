package domain

import "time"

// Location is a physical site (branch, ATM, self-service point) as delivered by a
// location provider. Providers hand out copies; a Location is never mutated after
// construction.
type Location struct {
	ID          int64     `json:"id"`
	OfficeName  string    `json:"office_name"`
	TypeGroup   TypeGroup `json:"type_group"`
	Street      string    `json:"street"`
	HouseNumber string    `json:"house_number"`
	PostalCode  string    `json:"postal_code"`
	City        string    `json:"city"`
	State       string    `json:"state,omitempty"`

	Coordinates *Point `json:"coordinates,omitempty"`

	IsOpenNow           *bool          `json:"is_open_now,omitempty"`
	IsTemporarilyClosed *bool          `json:"is_temporarily_closed,omitempty"`
	Closure             *ClosureWindow `json:"closure,omitempty"`

	Facilities []string `json:"facilities,omitempty"`

	Contact           *Contact         `json:"contact,omitempty"`
	OpeningHours      []DayHours       `json:"opening_hours,omitempty"`
	ConsultationHours []DayHours       `json:"consultation_hours,omitempty"`
	PublicTransport   *PublicTransport `json:"public_transport,omitempty"`
	Images            []Image          `json:"images,omitempty"`
	Attributes        []Attribute      `json:"attributes,omitempty"`
}

// ClosureWindow is a temporary closure. Both bounds are always set.
type ClosureWindow struct {
	From    time.Time `json:"from"`
	Through time.Time `json:"through"`
}

// NewClosureWindow returns nil unless both bounds are present.
func NewClosureWindow(from, through *time.Time) *ClosureWindow {
	if from == nil || through == nil {
		return nil
	}
	return &ClosureWindow{From: *from, Through: *through}
}

type Contact struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}

type DayHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

type PublicTransport struct {
	Description     string `json:"description,omitempty"`
	RoutePlannerURL string `json:"route_planner_url,omitempty"`
}

type Image struct {
	Caption string `json:"caption,omitempty"`
	URL     string `json:"url"`
}

type Attribute struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HasAnyFacility reports whether the location offers at least one of names.
func (l *Location) HasAnyFacility(names []string) bool {
	for _, have := range l.Facilities {
		for _, want := range names {
			if have == want {
				return true
			}
		}
	}
	return false
}

// OpenNow treats an unknown opening state as closed.
func (l *Location) OpenNow() bool {
	return l.IsOpenNow != nil && *l.IsOpenNow
}

// Clone returns a deep copy so callers can attach per-request data without touching
// the provider's record.
func (l *Location) Clone() Location {
	cp := *l
	if l.Coordinates != nil {
		p := *l.Coordinates
		cp.Coordinates = &p
	}
	if l.IsOpenNow != nil {
		v := *l.IsOpenNow
		cp.IsOpenNow = &v
	}
	if l.IsTemporarilyClosed != nil {
		v := *l.IsTemporarilyClosed
		cp.IsTemporarilyClosed = &v
	}
	if l.Closure != nil {
		w := *l.Closure
		cp.Closure = &w
	}
	if l.Contact != nil {
		c := *l.Contact
		cp.Contact = &c
	}
	if l.PublicTransport != nil {
		p := *l.PublicTransport
		cp.PublicTransport = &p
	}
	cp.Facilities = append([]string(nil), l.Facilities...)
	cp.OpeningHours = append([]DayHours(nil), l.OpeningHours...)
	cp.ConsultationHours = append([]DayHours(nil), l.ConsultationHours...)
	cp.Images = append([]Image(nil), l.Images...)
	cp.Attributes = append([]Attribute(nil), l.Attributes...)
	return cp
}

// RankedLocation is a per-query view of a Location with its distance to the search
// center. DistanceMeters is nil when the location has no coordinates.
type RankedLocation struct {
	Location
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}

// Facility is an entry of the facility catalog.
type Facility struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ObjectType maps a numeric id to a display name and backend type group.
type ObjectType struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	GroupName string `json:"group_name" db:"group_name"`
}

// Configuration describes the region served by a provider.
type Configuration struct {
	BLZ                  string   `json:"blz"`
	Name                 string   `json:"name"`
	SupportedObjectTypes []string `json:"supported_object_types"`
}
