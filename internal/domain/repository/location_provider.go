package repository

import (
	"context"

	"github.com/branch-finder/internal/domain"
)

// LocationProvider supplies located records and reference data. Implementations are
// read-only and safe for concurrent use. Failures are returned as
// *errors.ProviderError.
type LocationProvider interface {
	// FindCandidates returns the raw candidate set around a center point, before any
	// filtering. Implementations may pre-select nearby records but must not apply the
	// search filters themselves.
	FindCandidates(ctx context.Context, lat, lon float64) ([]domain.Location, error)

	// GetByID returns the location with the given id, or (nil, nil) if there is none.
	GetByID(ctx context.Context, id int64) (*domain.Location, error)

	// ListFacilities returns the facility catalog.
	ListFacilities(ctx context.Context) ([]domain.Facility, error)

	// ListObjectTypes returns the object type catalog.
	ListObjectTypes(ctx context.Context) ([]domain.ObjectType, error)

	// GetConfiguration returns the region configuration.
	GetConfiguration(ctx context.Context) (*domain.Configuration, error)
}
