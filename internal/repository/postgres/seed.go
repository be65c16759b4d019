package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/branch-finder/internal/domain"
)

// SeedData is a full provider dataset to be written by Seed.
type SeedData struct {
	Locations     []domain.Location
	Facilities    []domain.Facility
	ObjectTypes   []domain.ObjectType
	Configuration *domain.Configuration
}

const upsertLocation = `
	INSERT INTO locations (
		id, office_name, type_group, street, house_number, postal_code, city, state,
		latitude, longitude, is_open_now, is_temporarily_closed,
		temporarily_closed_from, temporarily_closed_through, facilities,
		contact, opening_hours, consultation_hours, public_transport, images, attributes
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21
	)
	ON CONFLICT (id) DO UPDATE SET
		office_name = EXCLUDED.office_name,
		type_group = EXCLUDED.type_group,
		street = EXCLUDED.street,
		house_number = EXCLUDED.house_number,
		postal_code = EXCLUDED.postal_code,
		city = EXCLUDED.city,
		state = EXCLUDED.state,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		is_open_now = EXCLUDED.is_open_now,
		is_temporarily_closed = EXCLUDED.is_temporarily_closed,
		temporarily_closed_from = EXCLUDED.temporarily_closed_from,
		temporarily_closed_through = EXCLUDED.temporarily_closed_through,
		facilities = EXCLUDED.facilities,
		contact = EXCLUDED.contact,
		opening_hours = EXCLUDED.opening_hours,
		consultation_hours = EXCLUDED.consultation_hours,
		public_transport = EXCLUDED.public_transport,
		images = EXCLUDED.images,
		attributes = EXCLUDED.attributes`

// Seed upserts a dataset in one transaction.
func (db *DB) Seed(ctx context.Context, data SeedData) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, f := range data.Facilities {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO facilities (id, name) VALUES ($1, $2)
			 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`, f.ID, f.Name); err != nil {
			return fmt.Errorf("seed facility %d: %w", f.ID, err)
		}
	}

	for _, t := range data.ObjectTypes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO object_types (id, name, group_name) VALUES ($1, $2, $3)
			 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, group_name = EXCLUDED.group_name`,
			t.ID, t.Name, t.GroupName); err != nil {
			return fmt.Errorf("seed object type %d: %w", t.ID, err)
		}
	}

	if cfg := data.Configuration; cfg != nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO region_config (blz, name, supported_object_types) VALUES ($1, $2, $3)
			 ON CONFLICT (blz) DO UPDATE SET
				name = EXCLUDED.name,
				supported_object_types = EXCLUDED.supported_object_types`,
			cfg.BLZ, cfg.Name, pq.StringArray(cfg.SupportedObjectTypes)); err != nil {
			return fmt.Errorf("seed configuration %s: %w", cfg.BLZ, err)
		}
	}

	for i := range data.Locations {
		args, err := locationArgs(&data.Locations[i])
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, upsertLocation, args...); err != nil {
			return fmt.Errorf("seed location %d: %w", data.Locations[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	db.logger.Info("Dataset seeded",
		zap.Int("locations", len(data.Locations)),
		zap.Int("facilities", len(data.Facilities)),
		zap.Int("object_types", len(data.ObjectTypes)),
	)
	return nil
}

func locationArgs(l *domain.Location) ([]interface{}, error) {
	var lat, lon interface{}
	if l.Coordinates != nil {
		lat, lon = l.Coordinates.Latitude, l.Coordinates.Longitude
	}

	var from, through interface{}
	if l.Closure != nil {
		from, through = l.Closure.From, l.Closure.Through
	}

	facilities := l.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	args := []interface{}{
		l.ID, l.OfficeName, string(l.TypeGroup), l.Street, l.HouseNumber, l.PostalCode, l.City, l.State,
		lat, lon, boolArg(l.IsOpenNow), boolArg(l.IsTemporarilyClosed),
		from, through, pq.StringArray(facilities),
	}

	extras := []struct {
		name  string
		value interface{}
		empty bool
	}{
		{"contact", l.Contact, l.Contact == nil},
		{"opening_hours", l.OpeningHours, l.OpeningHours == nil},
		{"consultation_hours", l.ConsultationHours, l.ConsultationHours == nil},
		{"public_transport", l.PublicTransport, l.PublicTransport == nil},
		{"images", l.Images, l.Images == nil},
		{"attributes", l.Attributes, l.Attributes == nil},
	}
	for _, e := range extras {
		if e.empty {
			args = append(args, nil)
			continue
		}
		raw, err := json.Marshal(e.value)
		if err != nil {
			return nil, fmt.Errorf("location %d: encode %s: %w", l.ID, e.name, err)
		}
		args = append(args, string(raw))
	}

	return args, nil
}

func boolArg(b *bool) interface{} {
	if b == nil {
		return nil
	}
	return *b
}
