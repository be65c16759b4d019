package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branch-finder/internal/domain"
	"github.com/branch-finder/internal/repository/memory"
)

func TestProvider_FindCandidates(t *testing.T) {
	p := memory.NewProvider()
	ctx := context.Background()

	candidates, err := p.FindCandidates(ctx, 49.9929, 8.2473)
	require.NoError(t, err)
	require.Len(t, candidates, 6)

	// Mutating a returned record must not leak into later calls.
	candidates[0].OfficeName = "changed"
	candidates[0].Facilities[0] = "changed"
	candidates[0].Coordinates.Latitude = 0

	again, err := p.FindCandidates(ctx, 49.9929, 8.2473)
	require.NoError(t, err)
	assert.Equal(t, "Sparkasse Mainz - Hauptstelle", again[0].OfficeName)
	assert.Equal(t, "Beratung", again[0].Facilities[0])
	assert.Equal(t, 49.9928617, again[0].Coordinates.Latitude)
}

func TestProvider_GetByID(t *testing.T) {
	p := memory.NewProvider()
	ctx := context.Background()

	t.Run("existing", func(t *testing.T) {
		loc, err := p.GetByID(ctx, 12001)
		require.NoError(t, err)
		require.NotNil(t, loc)
		assert.Equal(t, int64(12001), loc.ID)
		assert.Equal(t, "Sparkasse Mainz - Hauptstelle", loc.OfficeName)
		assert.Equal(t, domain.TypeGroupBranch, loc.TypeGroup)
		assert.Equal(t, "Große Bleiche", loc.Street)
		assert.Equal(t, "46-48", loc.HouseNumber)
		assert.Equal(t, "55116", loc.PostalCode)
		assert.Equal(t, "Mainz", loc.City)
	})

	t.Run("absent is not an error", func(t *testing.T) {
		loc, err := p.GetByID(ctx, 99999)
		assert.NoError(t, err)
		assert.Nil(t, loc)
	})
}

func TestProvider_ReferenceData(t *testing.T) {
	p := memory.NewProvider()
	ctx := context.Background()

	facilities, err := p.ListFacilities(ctx)
	require.NoError(t, err)
	require.Len(t, facilities, 7)
	assert.Equal(t, domain.Facility{ID: 2, Name: "Geldautomat"}, facilities[1])

	types, err := p.ListObjectTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 3)
	assert.Equal(t, "GELDAUTOMAT", types[0].GroupName)

	cfg, err := p.GetConfiguration(ctx)
	require.NoError(t, err)
	assert.Equal(t, "50050000", cfg.BLZ)
	assert.Equal(t, "Sparkasse Mainz", cfg.Name)
	assert.ElementsMatch(t, []string{"FILIALE", "GELDAUTOMAT", "SB_FILIALE"}, cfg.SupportedObjectTypes)

	cfg.SupportedObjectTypes[0] = "changed"
	again, err := p.GetConfiguration(ctx)
	require.NoError(t, err)
	assert.Equal(t, "FILIALE", again.SupportedObjectTypes[0])
}

func TestNewProviderWithDataset(t *testing.T) {
	p := memory.NewProviderWithDataset(memory.Dataset{
		Locations: []domain.Location{{ID: 1, OfficeName: "Only"}},
	})

	loc, err := p.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "Only", loc.OfficeName)

	facilities, err := p.ListFacilities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, facilities)
}
