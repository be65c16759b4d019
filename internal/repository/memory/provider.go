package memory

import (
	"context"

	"github.com/branch-finder/internal/domain"
	"github.com/branch-finder/internal/domain/repository"
)

// Provider serves a fixed in-memory dataset. The dataset is never modified after
// construction; every call hands out copies.
type Provider struct {
	locations   []domain.Location
	byID        map[int64]int
	facilities  []domain.Facility
	objectTypes []domain.ObjectType
	config      domain.Configuration
}

// Dataset is the content served by a Provider.
type Dataset struct {
	Locations     []domain.Location
	Facilities    []domain.Facility
	ObjectTypes   []domain.ObjectType
	Configuration domain.Configuration
}

// NewProvider returns the mock provider backed by the built-in Mainz dataset.
func NewProvider() repository.LocationProvider {
	return NewProviderWithDataset(Dataset{
		Locations:     mainzLocations,
		Facilities:    mainzFacilities,
		ObjectTypes:   mainzObjectTypes,
		Configuration: mainzConfiguration,
	})
}

// NewProviderWithDataset builds a provider over a custom dataset. The dataset is copied.
func NewProviderWithDataset(ds Dataset) *Provider {
	p := &Provider{
		locations:   make([]domain.Location, 0, len(ds.Locations)),
		byID:        make(map[int64]int, len(ds.Locations)),
		facilities:  append([]domain.Facility(nil), ds.Facilities...),
		objectTypes: append([]domain.ObjectType(nil), ds.ObjectTypes...),
		config:      ds.Configuration,
	}
	p.config.SupportedObjectTypes = append([]string(nil), ds.Configuration.SupportedObjectTypes...)

	for i := range ds.Locations {
		p.byID[ds.Locations[i].ID] = len(p.locations)
		p.locations = append(p.locations, ds.Locations[i].Clone())
	}
	return p
}

// FindCandidates returns the whole dataset; the dataset is small enough that no
// spatial pre-selection is worth doing.
func (p *Provider) FindCandidates(ctx context.Context, lat, lon float64) ([]domain.Location, error) {
	out := make([]domain.Location, 0, len(p.locations))
	for i := range p.locations {
		out = append(out, p.locations[i].Clone())
	}
	return out, nil
}

func (p *Provider) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	idx, ok := p.byID[id]
	if !ok {
		return nil, nil
	}
	loc := p.locations[idx].Clone()
	return &loc, nil
}

func (p *Provider) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	return append([]domain.Facility(nil), p.facilities...), nil
}

func (p *Provider) ListObjectTypes(ctx context.Context) ([]domain.ObjectType, error) {
	return append([]domain.ObjectType(nil), p.objectTypes...), nil
}

func (p *Provider) GetConfiguration(ctx context.Context) (*domain.Configuration, error) {
	cfg := p.config
	cfg.SupportedObjectTypes = append([]string(nil), p.config.SupportedObjectTypes...)
	return &cfg, nil
}
