package filialfinder

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/branch-finder/internal/domain"
)

// Wire formats of the FilialFinder REST v2 API.

// The backend spells the object element both fiFiObject and fifiObject; element
// matching is case-sensitive, so both are mapped.
type searchResult struct {
	XMLName      xml.Name        `xml:"searchResult"`
	Objects      []fiFiObjectXML `xml:"fiFiObject"`
	LowerObjects []fiFiObjectXML `xml:"fifiObject"`
}

func (r *searchResult) objects() []fiFiObjectXML {
	return append(append([]fiFiObjectXML(nil), r.Objects...), r.LowerObjects...)
}

type getObjectResult struct {
	XMLName     xml.Name       `xml:"getObjectResult"`
	Object      *fiFiObjectXML `xml:"fiFiObject"`
	LowerObject *fiFiObjectXML `xml:"fifiObject"`
}

func (r *getObjectResult) object() *fiFiObjectXML {
	if r.Object != nil {
		return r.Object
	}
	return r.LowerObject
}

type getFacilitiesResult struct {
	XMLName    xml.Name      `xml:"getFacilitiesResult"`
	Facilities []facilityXML `xml:"facility"`
}

type facilityXML struct {
	ID   int    `xml:"id"`
	Name string `xml:"name"`
}

type fiFiTypes struct {
	XMLName xml.Name  `xml:"fiFiTypes"`
	Types   []typeXML `xml:"type"`
}

type typeXML struct {
	ID        int    `xml:"id"`
	Name      string `xml:"name"`
	GroupName string `xml:"groupName"`
}

type fiFiConfiguration struct {
	XMLName              xml.Name `xml:"fiFiConfiguration"`
	BLZ                  string   `xml:"blz"`
	Name                 string   `xml:"name"`
	SupportedObjectTypes []string `xml:"supportedObjectTypes>type"`
}

type fiFiObjectXML struct {
	ID                       int64               `xml:"id"`
	OfficeName               string              `xml:"officeName"`
	TypeGroup                string              `xml:"typeGroup"`
	Street                   string              `xml:"street"`
	HouseNumber              string              `xml:"houseNumber"`
	PostalCode               string              `xml:"postalCode"`
	City                     string              `xml:"city"`
	State                    string              `xml:"state"`
	Coordinates              *coordinatesXML     `xml:"coordinates"`
	IsOpenNow                *bool               `xml:"isOpenNow"`
	IsTemporarilyClosed      *bool               `xml:"isTemporarilyClosed"`
	TemporarilyClosedFrom    string              `xml:"temporarilyClosedFrom"`
	TemporarilyClosedThrough string              `xml:"temporarilyClosedThrough"`
	Facilities               []string            `xml:"facilities>facility"`
	Contact                  *contactXML         `xml:"contact"`
	OpeningHours             []dayHoursXML       `xml:"openingHours>entry"`
	ConsultationHours        []dayHoursXML       `xml:"consultationHours>entry"`
	PublicTransport          *publicTransportXML `xml:"publicTransport"`
	Images                   []imageXML          `xml:"images>image"`
	Attributes               []attributeXML      `xml:"attributes>attribute"`
}

type coordinatesXML struct {
	Latitude  float64 `xml:"latitude"`
	Longitude float64 `xml:"longitude"`
}

type contactXML struct {
	Phone string `xml:"phone"`
	Email string `xml:"email"`
	URL   string `xml:"url"`
}

type dayHoursXML struct {
	Day   string `xml:"day"`
	Hours string `xml:"hours"`
}

type publicTransportXML struct {
	Description     string `xml:"description"`
	RoutePlannerURL string `xml:"routePlannerUrl"`
}

type imageXML struct {
	Caption string `xml:"caption"`
	URL     string `xml:"url"`
}

type attributeXML struct {
	ID   int64  `xml:"id,attr"`
	Name string `xml:",chardata"`
}

// closureLayouts are the timestamp forms the backend uses for closure windows.
var closureLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseClosureTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range closureLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized timestamp %q", s)
}

func (o *fiFiObjectXML) toDomain() (domain.Location, error) {
	if o.ID <= 0 {
		return domain.Location{}, fmt.Errorf("object without id")
	}

	from, err := parseClosureTime(o.TemporarilyClosedFrom)
	if err != nil {
		return domain.Location{}, fmt.Errorf("object %d: temporarilyClosedFrom: %w", o.ID, err)
	}
	through, err := parseClosureTime(o.TemporarilyClosedThrough)
	if err != nil {
		return domain.Location{}, fmt.Errorf("object %d: temporarilyClosedThrough: %w", o.ID, err)
	}

	loc := domain.Location{
		ID:                  o.ID,
		OfficeName:          o.OfficeName,
		TypeGroup:           domain.TypeGroup(strings.TrimSpace(o.TypeGroup)),
		Street:              o.Street,
		HouseNumber:         o.HouseNumber,
		PostalCode:          o.PostalCode,
		City:                o.City,
		State:               o.State,
		IsOpenNow:           o.IsOpenNow,
		IsTemporarilyClosed: o.IsTemporarilyClosed,
		Closure:             domain.NewClosureWindow(from, through),
		Facilities:          o.Facilities,
	}

	if o.Coordinates != nil {
		loc.Coordinates = &domain.Point{
			Latitude:  o.Coordinates.Latitude,
			Longitude: o.Coordinates.Longitude,
		}
	}
	if o.Contact != nil {
		loc.Contact = &domain.Contact{Phone: o.Contact.Phone, Email: o.Contact.Email, URL: o.Contact.URL}
	}
	if o.PublicTransport != nil {
		loc.PublicTransport = &domain.PublicTransport{
			Description:     o.PublicTransport.Description,
			RoutePlannerURL: o.PublicTransport.RoutePlannerURL,
		}
	}

	loc.OpeningHours = convertHours(o.OpeningHours)
	loc.ConsultationHours = convertHours(o.ConsultationHours)

	for _, img := range o.Images {
		loc.Images = append(loc.Images, domain.Image{Caption: img.Caption, URL: img.URL})
	}
	for _, a := range o.Attributes {
		loc.Attributes = append(loc.Attributes, domain.Attribute{ID: a.ID, Name: strings.TrimSpace(a.Name)})
	}

	return loc, nil
}

func convertHours(in []dayHoursXML) []domain.DayHours {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.DayHours, 0, len(in))
	for _, h := range in {
		out = append(out, domain.DayHours{Day: h.Day, Hours: h.Hours})
	}
	return out
}
