package domain

// SearchCriteria is the normalized input of the ranking pipeline. Nil/zero fields
// disable the corresponding filter.
type SearchCriteria struct {
	Center Point

	// RadiusKm keeps only locations within this distance. Locations without
	// coordinates never pass a radius filter.
	RadiusKm *float64

	// TypeGroup is the backend code to match exactly; empty disables the filter.
	TypeGroup TypeGroup

	OpenNow bool

	// FacilityIDs are OR-combined. A non-empty list whose ids are all unknown matches
	// nothing.
	FacilityIDs []int

	// Limit caps the result; values <= 0 return everything.
	Limit int
}
