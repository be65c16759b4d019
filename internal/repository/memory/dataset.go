package memory

import "github.com/branch-finder/internal/domain"

func boolPtr(b bool) *bool { return &b }

// mainzLocations is the demonstration dataset for the Rhine-Main area.
var mainzLocations = []domain.Location{
	{
		ID:                  12001,
		OfficeName:          "Sparkasse Mainz - Hauptstelle",
		TypeGroup:           domain.TypeGroupBranch,
		Street:              "Große Bleiche",
		HouseNumber:         "46-48",
		PostalCode:          "55116",
		City:                "Mainz",
		Coordinates:         &domain.Point{Latitude: 49.9928617, Longitude: 8.2472526},
		IsOpenNow:           boolPtr(true),
		IsTemporarilyClosed: boolPtr(false),
		Facilities:          []string{"Beratung", "Geldautomat", "Kontoauszugsdrucker", "Münzgeldautomat"},
		Contact: &domain.Contact{
			Phone: "+49 6131 3840",
			URL:   "https://www.sparkasse-mainz.de",
		},
		OpeningHours: []domain.DayHours{
			{Day: "Montag", Hours: "09:00-16:00"},
			{Day: "Dienstag", Hours: "09:00-16:00"},
			{Day: "Mittwoch", Hours: "09:00-16:00"},
			{Day: "Donnerstag", Hours: "09:00-18:00"},
			{Day: "Freitag", Hours: "09:00-16:00"},
		},
	},
	{
		ID:                  12002,
		OfficeName:          "Geldautomat Hauptbahnhof Mainz",
		TypeGroup:           domain.TypeGroupATM,
		Street:              "Bahnhofsplatz",
		HouseNumber:         "1",
		PostalCode:          "55116",
		City:                "Mainz",
		Coordinates:         &domain.Point{Latitude: 50.0011207, Longitude: 8.2590851},
		IsOpenNow:           boolPtr(true),
		IsTemporarilyClosed: boolPtr(false),
		Facilities:          []string{"Geldautomat", "24/7 verfügbar"},
		OpeningHours: []domain.DayHours{
			{Day: "Montag-Sonntag", Hours: "00:00-23:59"},
		},
	},
	{
		ID:                  12003,
		OfficeName:          "Sparkasse Mainz - Filiale Gonsenheim",
		TypeGroup:           domain.TypeGroupBranch,
		Street:              "Breite Straße",
		HouseNumber:         "17",
		PostalCode:          "55124",
		City:                "Mainz",
		Coordinates:         &domain.Point{Latitude: 49.9842345, Longitude: 8.2156789},
		IsOpenNow:           boolPtr(false),
		IsTemporarilyClosed: boolPtr(false),
		Facilities:          []string{"Beratung", "Geldautomat", "Kontoauszugsdrucker"},
		Contact: &domain.Contact{
			Phone: "+49 6131 3840",
			URL:   "https://www.sparkasse-mainz.de",
		},
		OpeningHours: []domain.DayHours{
			{Day: "Montag", Hours: "09:00-13:00"},
			{Day: "Dienstag", Hours: "09:00-13:00"},
			{Day: "Donnerstag", Hours: "14:00-18:00"},
			{Day: "Freitag", Hours: "09:00-13:00"},
		},
	},
	{
		ID:                  12004,
		OfficeName:          "SB-Filiale Universitätscampus",
		TypeGroup:           domain.TypeGroupSelfService,
		Street:              "Jakob-Welder-Weg",
		HouseNumber:         "9",
		PostalCode:          "55128",
		City:                "Mainz",
		Coordinates:         &domain.Point{Latitude: 49.9906783, Longitude: 8.2405234},
		IsOpenNow:           boolPtr(true),
		IsTemporarilyClosed: boolPtr(false),
		Facilities:          []string{"Geldautomat", "Kontoauszugsdrucker", "Überweisungsterminal"},
		OpeningHours: []domain.DayHours{
			{Day: "Montag-Freitag", Hours: "06:00-22:00"},
		},
	},
	{
		ID:                  12005,
		OfficeName:          "Geldautomat Rheingoldhalle",
		TypeGroup:           domain.TypeGroupATM,
		Street:              "Rheinstraße",
		HouseNumber:         "66",
		PostalCode:          "55116",
		City:                "Mainz",
		Coordinates:         &domain.Point{Latitude: 50.0050123, Longitude: 8.2706789},
		IsOpenNow:           boolPtr(true),
		IsTemporarilyClosed: boolPtr(false),
		Facilities:          []string{"Geldautomat", "24/7 verfügbar"},
		OpeningHours: []domain.DayHours{
			{Day: "Montag-Sonntag", Hours: "00:00-23:59"},
		},
	},
	{
		ID:                  12006,
		OfficeName:          "Sparkasse Mainz - Filiale Weisenau",
		TypeGroup:           domain.TypeGroupBranch,
		Street:              "Göttelmannstraße",
		HouseNumber:         "2",
		PostalCode:          "55131",
		City:                "Mainz",
		Coordinates:         &domain.Point{Latitude: 49.9712345, Longitude: 8.2934567},
		IsOpenNow:           boolPtr(false),
		IsTemporarilyClosed: boolPtr(false),
		Facilities:          []string{"Beratung", "Geldautomat"},
		Contact: &domain.Contact{
			Phone: "+49 6131 3840",
		},
		OpeningHours: []domain.DayHours{
			{Day: "Montag", Hours: "09:00-16:00"},
			{Day: "Mittwoch", Hours: "09:00-16:00"},
			{Day: "Freitag", Hours: "09:00-12:00"},
		},
	},
}

var mainzFacilities = []domain.Facility{
	{ID: 1, Name: "Beratung"},
	{ID: 2, Name: "Geldautomat"},
	{ID: 3, Name: "Kontoauszugsdrucker"},
	{ID: 4, Name: "Münzgeldautomat"},
	{ID: 5, Name: "Überweisungsterminal"},
	{ID: 6, Name: "Einzahlautomat"},
	{ID: 7, Name: "Barrierefrei"},
}

var mainzObjectTypes = []domain.ObjectType{
	{ID: 1, Name: "Geldautomat", GroupName: string(domain.TypeGroupATM)},
	{ID: 2, Name: "Filiale", GroupName: string(domain.TypeGroupBranch)},
	{ID: 3, Name: "SB-Filiale", GroupName: string(domain.TypeGroupSelfService)},
}

var mainzConfiguration = domain.Configuration{
	BLZ:  "50050000",
	Name: "Sparkasse Mainz",
	SupportedObjectTypes: []string{
		string(domain.TypeGroupBranch),
		string(domain.TypeGroupATM),
		string(domain.TypeGroupSelfService),
	},
}
