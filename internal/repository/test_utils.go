package repository

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Surajsachintha/itams-haci-project/pkg/postgres"
)

var (
	testDB     *pgxpool.Pool
	testDBOnce sync.Once
	testDBErr  error
)

// SetupTestDatabase connects to TEST_POSTGRES_DSN, applies migrations and empties the
// mutable tables. The test is skipped when the variable is not set.
func SetupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	testDBOnce.Do(func() {
		db, err := postgres.Connect(context.Background(), dsn, postgres.DefaultMaxConns)
		if err != nil {
			testDBErr = err
			return
		}

		testDBErr = postgres.UpMigrations(postgres.OpenDB(db))
		testDB = db
	})

	require.NoError(t, testDBErr)

	CleanupDatabase(t, testDB)

	return testDB
}

func CleanupDatabase(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	tables := []string{
		"dms_user_logs",
		"dms_used_tokens",
		"dms_computer_details",
		"dms_devices",
		"dms_users",
		"code_vendors",
		"code_models",
		"code_brand_name",
		"code_device_types",
		"code_stations",
		"code_divisions",
		"code_units",
		"code_ranks",
	}

	_, err := db.Exec(context.Background(), "TRUNCATE "+strings.Join(tables, ", ")+" RESTART IDENTITY CASCADE")
	if err != nil {
		t.Logf("Warning: failed to cleanup tables: %v", err)
	}
}
