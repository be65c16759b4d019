package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/branch-finder/internal/repository/postgres"
)

// TestDB represents a test database connection
type TestDB struct {
	DB     *postgres.DB
	Logger *zap.Logger
}

// SetupTestDB connects to the test database and applies the schema. The calling test
// is skipped when no database is reachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5433"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "branch_finder_test"),
		getEnv("TEST_DB_SSLMODE", "disable"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	sqlxDB, err := sqlx.ConnectContext(ctx, "postgres", connStr)
	if err != nil {
		t.Skipf("PostgreSQL not available: %v", err)
	}

	logger := zap.NewNop()
	db := postgres.NewDBForTest(sqlxDB, logger)
	if err := db.Migrate(ctx); err != nil {
		_ = sqlxDB.Close()
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDB{DB: db, Logger: logger}
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		_ = tdb.DB.DB.Close()
	}
}

// Cleanup empties every provider table.
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	_, err := tdb.DB.ExecContext(ctx, "TRUNCATE TABLE locations, facilities, object_types, region_config")
	return err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
