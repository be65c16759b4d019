package dto

import (
	"time"

	"github.com/branch-finder/internal/domain"
)

// ConvertSummary builds the search result view of a ranked location.
func ConvertSummary(r domain.RankedLocation) BranchSummary {
	s := summaryOf(&r.Location)
	s.DistanceMeters = r.DistanceMeters
	return s
}

// ConvertDetail builds the detail view of a location. Detail lookups carry no
// distance.
func ConvertDetail(l *domain.Location) BranchDetail {
	return BranchDetail{
		BranchSummary:     summaryOf(l),
		State:             l.State,
		Coordinates:       l.Coordinates,
		Contact:           l.Contact,
		OpeningHours:      l.OpeningHours,
		ConsultationHours: l.ConsultationHours,
		PublicTransport:   l.PublicTransport,
		Images:            l.Images,
		Attributes:        l.Attributes,
	}
}

func summaryOf(l *domain.Location) BranchSummary {
	var from, through *time.Time
	if l.Closure != nil {
		f, t := l.Closure.From, l.Closure.Through
		from, through = &f, &t
	}

	facilities := l.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	return BranchSummary{
		ID:   l.ID,
		Name: l.OfficeName,
		Type: string(l.TypeGroup),
		Address: Address{
			Street:      l.Street,
			HouseNumber: l.HouseNumber,
			PostalCode:  l.PostalCode,
			City:        l.City,
		},
		IsOpenNow:                l.IsOpenNow,
		IsTemporarilyClosed:      l.IsTemporarilyClosed,
		TemporarilyClosedFrom:    from,
		TemporarilyClosedThrough: through,
		KeyFacilities:            facilities,
	}
}
