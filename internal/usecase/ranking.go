package usecase

import (
	"math"
	"sort"

	"github.com/branch-finder/internal/domain"
	"github.com/branch-finder/internal/pkg/utils"
)

// FilterAndRank runs the search pipeline over a candidate set:
// distance -> radius -> type -> open now -> facilities -> sort by distance -> limit.
//
// Every candidate is cloned before its distance is attached, the input slice and its
// records are left untouched. The sort is stable, so locations at equal distance keep
// the order the provider returned them in. Locations without coordinates sort last.
func FilterAndRank(
	candidates []domain.Location,
	criteria domain.SearchCriteria,
	catalog *domain.FacilityCatalog,
) []domain.RankedLocation {
	ranked := make([]domain.RankedLocation, 0, len(candidates))
	for i := range candidates {
		ranked = append(ranked, rank(&candidates[i], criteria.Center))
	}

	if criteria.RadiusKm != nil {
		ranked = filterByRadius(ranked, *criteria.RadiusKm)
	}

	if criteria.TypeGroup != "" {
		ranked = filterByTypeGroup(ranked, criteria.TypeGroup)
	}

	if criteria.OpenNow {
		ranked = filterOpenNow(ranked)
	}

	if len(criteria.FacilityIDs) > 0 {
		ranked = filterByFacilities(ranked, catalog.ResolveNames(criteria.FacilityIDs))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return distanceOrInf(ranked[i]) < distanceOrInf(ranked[j])
	})

	// Only a "first N" cut: the page number does not move an offset.
	if criteria.Limit > 0 && len(ranked) > criteria.Limit {
		ranked = ranked[:criteria.Limit]
	}

	return ranked
}

func rank(loc *domain.Location, center domain.Point) domain.RankedLocation {
	r := domain.RankedLocation{Location: loc.Clone()}
	if loc.Coordinates != nil {
		d := utils.HaversineDistance(
			center.Latitude, center.Longitude,
			loc.Coordinates.Latitude, loc.Coordinates.Longitude,
		)
		r.DistanceMeters = &d
	}
	return r
}

func filterByRadius(in []domain.RankedLocation, radiusKm float64) []domain.RankedLocation {
	radiusMeters := radiusKm * 1000
	return filter(in, func(r *domain.RankedLocation) bool {
		return r.DistanceMeters != nil && *r.DistanceMeters <= radiusMeters
	})
}

func filterByTypeGroup(in []domain.RankedLocation, tg domain.TypeGroup) []domain.RankedLocation {
	return filter(in, func(r *domain.RankedLocation) bool {
		return r.TypeGroup == tg
	})
}

func filterOpenNow(in []domain.RankedLocation) []domain.RankedLocation {
	return filter(in, func(r *domain.RankedLocation) bool {
		return r.OpenNow()
	})
}

// filterByFacilities keeps locations offering at least one of names. An empty names
// list (every requested id unknown) matches nothing.
func filterByFacilities(in []domain.RankedLocation, names []string) []domain.RankedLocation {
	return filter(in, func(r *domain.RankedLocation) bool {
		return r.HasAnyFacility(names)
	})
}

func filter(in []domain.RankedLocation, keep func(*domain.RankedLocation) bool) []domain.RankedLocation {
	out := in[:0]
	for i := range in {
		if keep(&in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}

func distanceOrInf(r domain.RankedLocation) float64 {
	if r.DistanceMeters == nil {
		return math.Inf(1)
	}
	return *r.DistanceMeters
}
