package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branch-finder/internal/domain"
)

func TestBackendTypeGroup(t *testing.T) {
	seen := make(map[domain.TypeGroup]domain.PublicType)
	for _, pt := range domain.PublicTypes() {
		tg, ok := domain.BackendTypeGroup(pt)
		require.True(t, ok, "public type %s must map", pt)
		_, dup := seen[tg]
		assert.False(t, dup, "backend code %s mapped twice", tg)
		seen[tg] = pt
	}

	assert.Equal(t, domain.PublicTypeATM, seen[domain.TypeGroupATM])
	assert.Equal(t, domain.PublicTypeBranch, seen[domain.TypeGroupBranch])
	assert.Equal(t, domain.PublicTypeSelfService, seen[domain.TypeGroupSelfService])

	_, ok := domain.BackendTypeGroup("")
	assert.False(t, ok)
	_, ok = domain.BackendTypeGroup("KIOSK")
	assert.False(t, ok)
}

func TestFacilityCatalog_ResolveNames(t *testing.T) {
	catalog := domain.NewFacilityCatalog([]domain.Facility{
		{ID: 3, Name: "Kontoauszugsdrucker"},
		{ID: 1, Name: "Beratung"},
		{ID: 2, Name: "Geldautomat"},
	})

	assert.Equal(t, []string{"Geldautomat", "Beratung"}, catalog.ResolveNames([]int{2, 1, 2}))
	assert.Equal(t, []string{"Beratung"}, catalog.ResolveNames([]int{999, 1}))
	assert.Empty(t, catalog.ResolveNames([]int{999}))
	assert.Empty(t, catalog.ResolveNames(nil))

	entries := catalog.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, 3, entries[2].ID)

	entries[0].Name = "changed"
	assert.Equal(t, "Beratung", catalog.Entries()[0].Name)

	var nilCatalog *domain.FacilityCatalog
	assert.Empty(t, nilCatalog.ResolveNames([]int{1}))
	assert.Equal(t, 0, nilCatalog.Len())
}

func TestNewClosureWindow(t *testing.T) {
	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	through := time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC)

	w := domain.NewClosureWindow(&from, &through)
	require.NotNil(t, w)
	assert.Equal(t, from, w.From)
	assert.Equal(t, through, w.Through)

	assert.Nil(t, domain.NewClosureWindow(&from, nil))
	assert.Nil(t, domain.NewClosureWindow(nil, &through))
	assert.Nil(t, domain.NewClosureWindow(nil, nil))
}

func TestLocation_Clone(t *testing.T) {
	open := true
	orig := domain.Location{
		ID:          12001,
		OfficeName:  "Sparkasse Mainz - Hauptstelle",
		Coordinates: &domain.Point{Latitude: 49.99, Longitude: 8.24},
		IsOpenNow:   &open,
		Facilities:  []string{"Beratung"},
		Contact:     &domain.Contact{Phone: "+49 6131 3840"},
	}

	cp := orig.Clone()
	cp.Coordinates.Latitude = 0
	*cp.IsOpenNow = false
	cp.Facilities[0] = "changed"
	cp.Contact.Phone = ""

	assert.Equal(t, 49.99, orig.Coordinates.Latitude)
	assert.True(t, *orig.IsOpenNow)
	assert.Equal(t, "Beratung", orig.Facilities[0])
	assert.Equal(t, "+49 6131 3840", orig.Contact.Phone)
}

func TestLocation_HasAnyFacility(t *testing.T) {
	loc := domain.Location{Facilities: []string{"Beratung", "Geldautomat"}}

	assert.True(t, loc.HasAnyFacility([]string{"Geldautomat"}))
	assert.True(t, loc.HasAnyFacility([]string{"Barrierefrei", "Beratung"}))
	assert.False(t, loc.HasAnyFacility([]string{"Barrierefrei"}))
	assert.False(t, loc.HasAnyFacility(nil))
	assert.False(t, (&domain.Location{}).HasAnyFacility([]string{"Beratung"}))
}

func TestLocation_OpenNow(t *testing.T) {
	open, closed := true, false
	assert.True(t, (&domain.Location{IsOpenNow: &open}).OpenNow())
	assert.False(t, (&domain.Location{IsOpenNow: &closed}).OpenNow())
	assert.False(t, (&domain.Location{}).OpenNow())
}
