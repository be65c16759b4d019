package filialfinder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/branch-finder/internal/config"
	"github.com/branch-finder/internal/domain"
	apperrors "github.com/branch-finder/internal/pkg/errors"
)

const searchXML = `<?xml version="1.0" encoding="UTF-8"?>
<searchResult>
  <fiFiObject>
    <id>12001</id>
    <officeName>Sparkasse Mainz - Hauptstelle</officeName>
    <typeGroup>FILIALE</typeGroup>
    <street>Große Bleiche</street>
    <houseNumber>46-48</houseNumber>
    <postalCode>55116</postalCode>
    <city>Mainz</city>
    <state>Rheinland-Pfalz</state>
    <coordinates><latitude>49.9928617</latitude><longitude>8.2472526</longitude></coordinates>
    <isOpenNow>true</isOpenNow>
    <isTemporarilyClosed>false</isTemporarilyClosed>
    <facilities><facility>Beratung</facility><facility>Münzgeldautomat</facility></facilities>
    <contact><phone>+49 6131 3840</phone><url>https://www.sparkasse-mainz.de</url></contact>
    <openingHours>
      <entry><day>Montag</day><hours>09:00-16:00</hours></entry>
      <entry><day>Donnerstag</day><hours>09:00-18:00</hours></entry>
    </openingHours>
    <attributes><attribute id="3">Barrierefrei</attribute></attributes>
  </fiFiObject>
  <fiFiObject>
    <id>12007</id>
    <officeName>Filiale Altstadt</officeName>
    <typeGroup>FILIALE</typeGroup>
    <isTemporarilyClosed>true</isTemporarilyClosed>
    <temporarilyClosedFrom>2026-08-01</temporarilyClosedFrom>
    <temporarilyClosedThrough>2026-08-15T18:00:00Z</temporarilyClosedThrough>
  </fiFiObject>
</searchResult>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.ProviderConfig{
		BaseURL:        server.URL,
		APIKey:         "test-key",
		BLZ:            "50050000",
		RequestTimeout: time.Second,
		Candidates:     100,
	}, zap.NewNop())
}

func requireKind(t *testing.T, err error, kind apperrors.ProviderErrorKind) {
	t.Helper()

	var perr *apperrors.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, kind, perr.Kind)
}

func TestClient_FindCandidates(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/v2/objects/8.2473/49.9929", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "50050000", q.Get("blzFilter"))
			assert.Equal(t, "dist", q.Get("sort"))
			assert.Equal(t, "100", q.Get("objectsPerPage"))
			assert.Equal(t, "1", q.Get("pageNo"))
			assert.Equal(t, "test-key", q.Get("key"))

			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte(searchXML))
		})

		locations, err := client.FindCandidates(context.Background(), 49.9929, 8.2473)
		require.NoError(t, err)
		require.Len(t, locations, 2)

		first := locations[0]
		assert.Equal(t, int64(12001), first.ID)
		assert.Equal(t, domain.TypeGroupBranch, first.TypeGroup)
		assert.Equal(t, "Große Bleiche", first.Street)
		require.NotNil(t, first.Coordinates)
		assert.Equal(t, 49.9928617, first.Coordinates.Latitude)
		assert.Equal(t, 8.2472526, first.Coordinates.Longitude)
		require.NotNil(t, first.IsOpenNow)
		assert.True(t, *first.IsOpenNow)
		assert.Nil(t, first.Closure)
		assert.Equal(t, []string{"Beratung", "Münzgeldautomat"}, first.Facilities)
		require.NotNil(t, first.Contact)
		assert.Equal(t, "+49 6131 3840", first.Contact.Phone)
		assert.Equal(t, []domain.DayHours{
			{Day: "Montag", Hours: "09:00-16:00"},
			{Day: "Donnerstag", Hours: "09:00-18:00"},
		}, first.OpeningHours)
		assert.Equal(t, []domain.Attribute{{ID: 3, Name: "Barrierefrei"}}, first.Attributes)

		second := locations[1]
		assert.Nil(t, second.Coordinates)
		assert.Nil(t, second.IsOpenNow)
		require.NotNil(t, second.Closure)
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), second.Closure.From)
		assert.Equal(t, time.Date(2026, 8, 15, 18, 0, 0, 0, time.UTC), second.Closure.Through)
	})

	t.Run("empty result", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<searchResult></searchResult>`))
		})

		locations, err := client.FindCandidates(context.Background(), 50, 8)
		require.NoError(t, err)
		assert.Empty(t, locations)
	})

	t.Run("lowercase object element", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<searchResult><fifiObject><id>12001</id><officeName>Sparkasse Mainz - Hauptstelle</officeName><typeGroup>FILIALE</typeGroup></fifiObject><fiFiObject><id>12002</id><typeGroup>GELDAUTOMAT</typeGroup></fiFiObject></searchResult>`))
		})

		locations, err := client.FindCandidates(context.Background(), 50, 8)
		require.NoError(t, err)
		require.Len(t, locations, 2)
		assert.ElementsMatch(t, []int64{12001, 12002}, []int64{locations[0].ID, locations[1].ID})
	})

	t.Run("malformed xml", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<searchResult><fiFiObject><id>1</id>`))
		})

		_, err := client.FindCandidates(context.Background(), 50, 8)
		requireKind(t, err, apperrors.KindMalformed)
	})

	t.Run("unexpected root element", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body>maintenance</body></html>`))
		})

		_, err := client.FindCandidates(context.Background(), 50, 8)
		requireKind(t, err, apperrors.KindMalformed)
	})

	t.Run("bad closure timestamp", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<searchResult><fiFiObject><id>1</id><temporarilyClosedFrom>soon</temporarilyClosedFrom></fiFiObject></searchResult>`))
		})

		_, err := client.FindCandidates(context.Background(), 50, 8)
		requireKind(t, err, apperrors.KindMalformed)
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.FindCandidates(context.Background(), 50, 8)
		requireKind(t, err, apperrors.KindUnavailable)
	})

	t.Run("client error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.FindCandidates(context.Background(), 50, 8)
		requireKind(t, err, apperrors.KindMalformed)
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer server.Close()

		client := NewClient(&config.ProviderConfig{
			BaseURL:        server.URL,
			BLZ:            "50050000",
			RequestTimeout: 50 * time.Millisecond,
			Candidates:     10,
		}, zap.NewNop())

		_, err := client.FindCandidates(context.Background(), 50, 8)
		requireKind(t, err, apperrors.KindTimeout)
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseURL := server.URL
		server.Close()

		client := NewClient(&config.ProviderConfig{
			BaseURL:        baseURL,
			BLZ:            "50050000",
			RequestTimeout: time.Second,
			Candidates:     10,
		}, zap.NewNop())

		_, err := client.FindCandidates(context.Background(), 50, 8)
		requireKind(t, err, apperrors.KindUnavailable)
	})
}

func TestClient_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/v2/object/12002", r.URL.Path)
			_, _ = w.Write([]byte(`<getObjectResult><fiFiObject><id>12002</id><officeName>Geldautomat Hauptbahnhof Mainz</officeName><typeGroup>GELDAUTOMAT</typeGroup></fiFiObject></getObjectResult>`))
		})

		loc, err := client.GetByID(context.Background(), 12002)
		require.NoError(t, err)
		require.NotNil(t, loc)
		assert.Equal(t, "Geldautomat Hauptbahnhof Mainz", loc.OfficeName)
		assert.Equal(t, domain.TypeGroupATM, loc.TypeGroup)
	})

	t.Run("lowercase object element", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<getObjectResult><fifiObject><id>12003</id><typeGroup>SB_FILIALE</typeGroup></fifiObject></getObjectResult>`))
		})

		loc, err := client.GetByID(context.Background(), 12003)
		require.NoError(t, err)
		require.NotNil(t, loc)
		assert.Equal(t, int64(12003), loc.ID)
	})

	t.Run("404 is absent", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		loc, err := client.GetByID(context.Background(), 99999)
		assert.NoError(t, err)
		assert.Nil(t, loc)
	})

	t.Run("empty result is absent", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<getObjectResult/>`))
		})

		loc, err := client.GetByID(context.Background(), 99999)
		assert.NoError(t, err)
		assert.Nil(t, loc)
	})
}

func TestClient_ReferenceData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v2/facilities":
			assert.Equal(t, "50050000", r.URL.Query().Get("blzFilter"))
			_, _ = w.Write([]byte(`<getFacilitiesResult>
				<facility><id>1</id><name>Beratung</name></facility>
				<facility><id>4</id><name>Münzgeldautomat</name></facility>
			</getFacilitiesResult>`))
		case "/rest/v2/fiFiTypes":
			_, _ = w.Write([]byte(`<fiFiTypes><type><id>1</id><name>Geldautomat</name><groupName>GELDAUTOMAT</groupName></type></fiFiTypes>`))
		case "/rest/v2/fiFiConfiguration/50050000":
			_, _ = w.Write([]byte(`<fiFiConfiguration><blz>50050000</blz><name>Sparkasse Mainz</name>
				<supportedObjectTypes><type>FILIALE</type><type>GELDAUTOMAT</type></supportedObjectTypes>
			</fiFiConfiguration>`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	facilities, err := client.ListFacilities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Facility{{ID: 1, Name: "Beratung"}, {ID: 4, Name: "Münzgeldautomat"}}, facilities)

	types, err := client.ListObjectTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ObjectType{{ID: 1, Name: "Geldautomat", GroupName: "GELDAUTOMAT"}}, types)

	cfg, err := client.GetConfiguration(ctx)
	require.NoError(t, err)
	assert.Equal(t, "50050000", cfg.BLZ)
	assert.Equal(t, "Sparkasse Mainz", cfg.Name)
	assert.Equal(t, []string{"FILIALE", "GELDAUTOMAT"}, cfg.SupportedObjectTypes)
}
