package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/branch-finder/internal/domain"
	"github.com/branch-finder/internal/domain/repository"
	"github.com/branch-finder/internal/metrics"
	"github.com/branch-finder/internal/pkg/errors"
	"github.com/branch-finder/internal/pkg/utils"
)

const providerName = "postgres"

// MaxCandidates bounds a single candidate query.
const MaxCandidates = 500

const locationColumns = `
	id, office_name, type_group, street, house_number, postal_code, city, state,
	latitude, longitude, is_open_now, is_temporarily_closed,
	temporarily_closed_from, temporarily_closed_through, facilities,
	COALESCE(contact, 'null'::jsonb)            AS contact,
	COALESCE(opening_hours, 'null'::jsonb)      AS opening_hours,
	COALESCE(consultation_hours, 'null'::jsonb) AS consultation_hours,
	COALESCE(public_transport, 'null'::jsonb)   AS public_transport,
	COALESCE(images, 'null'::jsonb)             AS images,
	COALESCE(attributes, 'null'::jsonb)         AS attributes`

type locationRow struct {
	ID                       int64           `db:"id"`
	OfficeName               string          `db:"office_name"`
	TypeGroup                string          `db:"type_group"`
	Street                   string          `db:"street"`
	HouseNumber              string          `db:"house_number"`
	PostalCode               string          `db:"postal_code"`
	City                     string          `db:"city"`
	State                    string          `db:"state"`
	Latitude                 sql.NullFloat64 `db:"latitude"`
	Longitude                sql.NullFloat64 `db:"longitude"`
	IsOpenNow                sql.NullBool    `db:"is_open_now"`
	IsTemporarilyClosed      sql.NullBool    `db:"is_temporarily_closed"`
	TemporarilyClosedFrom    sql.NullTime    `db:"temporarily_closed_from"`
	TemporarilyClosedThrough sql.NullTime    `db:"temporarily_closed_through"`
	Facilities               pq.StringArray  `db:"facilities"`
	Contact                  []byte          `db:"contact"`
	OpeningHours             []byte          `db:"opening_hours"`
	ConsultationHours        []byte          `db:"consultation_hours"`
	PublicTransport          []byte          `db:"public_transport"`
	Images                   []byte          `db:"images"`
	Attributes               []byte          `db:"attributes"`
}

type locationProvider struct {
	db     *sqlx.DB
	blz    string
	logger *zap.Logger
}

// NewLocationProvider serves locations and reference data from PostgreSQL. blz selects
// the region_config row returned by GetConfiguration.
func NewLocationProvider(db *DB, blz string) repository.LocationProvider {
	return &locationProvider{
		db:     db.DB,
		blz:    blz,
		logger: db.logger,
	}
}

// FindCandidates returns the locations inside the bounding box of the largest searchable
// radius, nearest first, capped at MaxCandidates. The cap only ever drops the farthest
// rows; the exact distance check happens in the search engine.
func (p *locationProvider) FindCandidates(ctx context.Context, lat, lon float64) ([]domain.Location, error) {
	const op = "find_candidates"
	started := time.Now()

	boxes := utils.BoundingBox(lat, lon, utils.MaxRadiusKm)
	first, second := boxes[0], boxes[len(boxes)-1]

	// Equirectangular distance with the longitude difference wrapped at the
	// antimeridian; close enough to order candidates before the cap.
	query := `SELECT ` + locationColumns + `
		FROM locations
		WHERE latitude BETWEEN $1 AND $2
		  AND (longitude BETWEEN $3 AND $4 OR longitude BETWEEN $5 AND $6)
		ORDER BY power(latitude - $7, 2)
		       + power(least(abs(longitude - $8), 360 - abs(longitude - $8)) * cos(radians($7)), 2),
		         id
		LIMIT $9`

	var rows []locationRow
	err := p.db.SelectContext(ctx, &rows, query,
		first.MinLat, first.MaxLat,
		first.MinLon, first.MaxLon,
		second.MinLon, second.MaxLon,
		lat, lon, MaxCandidates,
	)
	if err != nil {
		return nil, p.fail(op, started, classify(err), err)
	}

	locations := make([]domain.Location, 0, len(rows))
	for i := range rows {
		loc, err := rows[i].toDomain()
		if err != nil {
			return nil, p.fail(op, started, errors.KindMalformed, err)
		}
		locations = append(locations, loc)
	}

	metrics.ObserveProvider(providerName, op, started, "")
	return locations, nil
}

func (p *locationProvider) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	const op = "get_by_id"
	started := time.Now()

	var row locationRow
	err := p.db.GetContext(ctx, &row, `SELECT `+locationColumns+` FROM locations WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		metrics.ObserveProvider(providerName, op, started, "")
		return nil, nil
	}
	if err != nil {
		return nil, p.fail(op, started, classify(err), err)
	}

	loc, err := row.toDomain()
	if err != nil {
		return nil, p.fail(op, started, errors.KindMalformed, err)
	}

	metrics.ObserveProvider(providerName, op, started, "")
	return &loc, nil
}

func (p *locationProvider) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	const op = "list_facilities"
	started := time.Now()

	facilities := []domain.Facility{}
	if err := p.db.SelectContext(ctx, &facilities, `SELECT id, name FROM facilities ORDER BY id`); err != nil {
		return nil, p.fail(op, started, classify(err), err)
	}

	metrics.ObserveProvider(providerName, op, started, "")
	return facilities, nil
}

func (p *locationProvider) ListObjectTypes(ctx context.Context) ([]domain.ObjectType, error) {
	const op = "list_object_types"
	started := time.Now()

	types := []domain.ObjectType{}
	if err := p.db.SelectContext(ctx, &types, `SELECT id, name, group_name FROM object_types ORDER BY id`); err != nil {
		return nil, p.fail(op, started, classify(err), err)
	}

	metrics.ObserveProvider(providerName, op, started, "")
	return types, nil
}

func (p *locationProvider) GetConfiguration(ctx context.Context) (*domain.Configuration, error) {
	const op = "get_configuration"
	started := time.Now()

	var row struct {
		BLZ       string         `db:"blz"`
		Name      string         `db:"name"`
		Supported pq.StringArray `db:"supported_object_types"`
	}
	err := p.db.GetContext(ctx, &row,
		`SELECT blz, name, supported_object_types FROM region_config WHERE blz = $1`, p.blz)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, p.fail(op, started, errors.KindUnavailable, fmt.Errorf("no region_config row for blz %s", p.blz))
	}
	if err != nil {
		return nil, p.fail(op, started, classify(err), err)
	}

	supported := []string(row.Supported)
	if supported == nil {
		supported = []string{}
	}

	metrics.ObserveProvider(providerName, op, started, "")
	return &domain.Configuration{BLZ: row.BLZ, Name: row.Name, SupportedObjectTypes: supported}, nil
}

func (p *locationProvider) fail(op string, started time.Time, kind errors.ProviderErrorKind, err error) error {
	metrics.ObserveProvider(providerName, op, started, string(kind))
	p.logger.Error("PostgreSQL provider call failed",
		zap.String("operation", op),
		zap.String("kind", string(kind)),
		zap.Error(err),
	)
	return errors.NewProviderError(kind, op, err)
}

func classify(err error) errors.ProviderErrorKind {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.KindTimeout
	}
	return errors.KindUnavailable
}

func (r *locationRow) toDomain() (domain.Location, error) {
	loc := domain.Location{
		ID:          r.ID,
		OfficeName:  r.OfficeName,
		TypeGroup:   domain.TypeGroup(r.TypeGroup),
		Street:      r.Street,
		HouseNumber: r.HouseNumber,
		PostalCode:  r.PostalCode,
		City:        r.City,
		State:       r.State,
		Facilities:  []string(r.Facilities),
	}

	if r.Latitude.Valid && r.Longitude.Valid {
		loc.Coordinates = &domain.Point{Latitude: r.Latitude.Float64, Longitude: r.Longitude.Float64}
	}
	if r.IsOpenNow.Valid {
		v := r.IsOpenNow.Bool
		loc.IsOpenNow = &v
	}
	if r.IsTemporarilyClosed.Valid {
		v := r.IsTemporarilyClosed.Bool
		loc.IsTemporarilyClosed = &v
	}
	if r.TemporarilyClosedFrom.Valid && r.TemporarilyClosedThrough.Valid {
		loc.Closure = &domain.ClosureWindow{
			From:    r.TemporarilyClosedFrom.Time,
			Through: r.TemporarilyClosedThrough.Time,
		}
	}

	fields := []struct {
		name string
		raw  []byte
		dst  interface{}
	}{
		{"contact", r.Contact, &loc.Contact},
		{"opening_hours", r.OpeningHours, &loc.OpeningHours},
		{"consultation_hours", r.ConsultationHours, &loc.ConsultationHours},
		{"public_transport", r.PublicTransport, &loc.PublicTransport},
		{"images", r.Images, &loc.Images},
		{"attributes", r.Attributes, &loc.Attributes},
	}
	for _, f := range fields {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return domain.Location{}, fmt.Errorf("location %d: decode %s: %w", r.ID, f.name, err)
		}
	}

	return loc, nil
}
