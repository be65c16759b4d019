package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/branch-finder/internal/config"
)

// providerTables must all exist before the provider can serve a request.
var providerTables = []string{"locations", "facilities", "object_types", "region_config"}

// DB is the connection pool behind the postgres location provider.
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

// New opens the pool described by cfg. The schema is not touched; call Migrate.
func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to location database %s@%s:%d/%s: %w",
			cfg.User, cfg.Host, cfg.Port, cfg.DBName, err)
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	logger.Info("Location database connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName),
		zap.Int("max_conns", cfg.MaxConns),
	)

	return &DB{DB: db, logger: logger}, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing location database")
	return db.DB.Close()
}

// Health reports the database unhealthy when it is unreachable or when any provider
// table is missing, which happens when the service runs against an unmigrated database.
func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var missing []string
	err := db.SelectContext(ctx, &missing, `
		SELECT t.name
		FROM unnest($1::text[]) AS t(name)
		WHERE to_regclass('public.' || t.name) IS NULL
		ORDER BY t.name`, pq.Array(providerTables))
	if err != nil {
		return fmt.Errorf("location database unreachable: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("location schema incomplete, missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// NewDBForTest wraps an existing connection.
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		DB:     sqlxDB,
		logger: logger,
	}
}
