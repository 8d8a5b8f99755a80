package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bedboard/bedboard/internal/platform/db"
)

// testDB holds the shared database infrastructure for integration tests.
type testDB struct {
	Pool          *pgxpool.Pool
	ConnStr       string
	MigrationsDir string
}

// globalDB is the package-level test database, initialized once in TestMain.
var globalDB *testDB

func TestMain(m *testing.M) {
	ctx := context.Background()

	tdb, cleanup, err := setupPostgresContainer(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup postgres container: %v\n", err)
		os.Exit(1)
	}

	if _, err := db.NewMigrator(tdb.Pool, tdb.MigrationsDir).Up(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		cleanup()
		os.Exit(1)
	}

	globalDB = tdb
	code := m.Run()
	cleanup()
	os.Exit(code)
}

// setupPostgresContainer starts a Postgres 16 container via the Docker CLI,
// connects a pool to it, and returns the shared test database.
func setupPostgresContainer(ctx context.Context) (*testDB, func(), error) {
	migrationsDir := findMigrationsDir()

	connStr, cleanup, err := startDockerPostgres(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("start postgres container: %w", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		cleanup()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	return &testDB{
		Pool:          pool,
		ConnStr:       connStr,
		MigrationsDir: migrationsDir,
	}, func() {
		pool.Close()
		cleanup()
	}, nil
}

// findMigrationsDir locates the migrations directory relative to this test file.
func findMigrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	// test/integration -> repo root
	root := filepath.Join(dir, "..", "..")
	return filepath.Join(root, "migrations")
}

// resetTables empties every domain table so each test starts from a clean slate.
func resetTables(t *testing.T, ctx context.Context) {
	t.Helper()
	_, err := globalDB.Pool.Exec(ctx,
		`TRUNCATE admissions, transfer_requests, beds, hospitals, users RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("reset tables: %v", err)
	}
}

// createTestBed inserts a bed and returns its id.
func createTestBed(t *testing.T, ctx context.Context, ward, specialty, status string) int {
	t.Helper()
	var id int
	err := globalDB.Pool.QueryRow(ctx,
		`INSERT INTO beds (ward_name, specialty_type, current_status)
		 VALUES ($1, $2, $3) RETURNING bed_id`,
		ward, specialty, status).Scan(&id)
	if err != nil {
		t.Fatalf("create test bed: %v", err)
	}
	return id
}

// createTestRequest inserts a transfer request with an explicit created_at so
// ordering tests do not depend on insert timing, and returns its id.
func createTestRequest(t *testing.T, ctx context.Context, patient, priority string, createdAt time.Time) int {
	t.Helper()
	var id int
	err := globalDB.Pool.QueryRow(ctx,
		`INSERT INTO transfer_requests (patient_name, from_ward, required_specialty, priority, created_at)
		 VALUES ($1, 'ER', 'ICU', $2, $3) RETURNING request_id`,
		patient, priority, createdAt).Scan(&id)
	if err != nil {
		t.Fatalf("create test request: %v", err)
	}
	return id
}

// bedStatus reads a bed's current status straight from the table.
func bedStatus(t *testing.T, ctx context.Context, bedID int) string {
	t.Helper()
	var status string
	err := globalDB.Pool.QueryRow(ctx,
		`SELECT current_status FROM beds WHERE bed_id = $1`, bedID).Scan(&status)
	if err != nil {
		t.Fatalf("read bed status: %v", err)
	}
	return status
}

// requestStatus reads a request's status straight from the table.
func requestStatus(t *testing.T, ctx context.Context, requestID int) string {
	t.Helper()
	var status string
	err := globalDB.Pool.QueryRow(ctx,
		`SELECT status FROM transfer_requests WHERE request_id = $1`, requestID).Scan(&status)
	if err != nil {
		t.Fatalf("read request status: %v", err)
	}
	return status
}

// openAdmissionCount counts a bed's open admissions.
func openAdmissionCount(t *testing.T, ctx context.Context, bedID int) int {
	t.Helper()
	var n int
	err := globalDB.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM admissions WHERE bed_id = $1 AND discharged_at IS NULL`, bedID).Scan(&n)
	if err != nil {
		t.Fatalf("count open admissions: %v", err)
	}
	return n
}
