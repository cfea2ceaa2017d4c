package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

func TestMigrator_PostgresLifecycle(t *testing.T) {
	store := openRawPostgresStoreForIntegrationTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := store.MigrateDown(ctx, 100); err != nil {
		t.Fatalf("migrate down reset: %v", err)
	}

	status, err := store.MigrationStatus(ctx)
	if err != nil {
		t.Fatalf("migration status after reset: %v", err)
	}
	if status.Version != 0 || status.Applied != 0 || status.Pending != 3 {
		t.Fatalf("unexpected status after reset: %+v", status)
	}

	if err := store.MigrateUp(ctx, 0); err != nil {
		t.Fatalf("migrate up all: %v", err)
	}
	status, err = store.MigrationStatus(ctx)
	if err != nil {
		t.Fatalf("migration status after up all: %v", err)
	}
	if status.Version != 3 || status.Applied != 3 || status.Pending != 0 {
		t.Fatalf("unexpected status after up all: %+v", status)
	}

	// Повторный up ничего не меняет.
	if err := store.MigrateUp(ctx, 0); err != nil {
		t.Fatalf("idempotent migrate up: %v", err)
	}
	status, err = store.MigrationStatus(ctx)
	if err != nil {
		t.Fatalf("migration status after idempotent up: %v", err)
	}
	if status.Version != 3 || status.Applied != 3 || status.Pending != 0 {
		t.Fatalf("unexpected status after idempotent up: %+v", status)
	}

	if err := store.MigrateDown(ctx, 2); err != nil {
		t.Fatalf("migrate down 2: %v", err)
	}
	status, err = store.MigrationStatus(ctx)
	if err != nil {
		t.Fatalf("migration status after down 2: %v", err)
	}
	if status.Version != 1 || status.Applied != 1 || status.Pending != 2 {
		t.Fatalf("unexpected status after down 2: %+v", status)
	}

	if err := store.MigrateDown(ctx, 0); err != nil {
		t.Fatalf("migrate down default step: %v", err)
	}
	status, err = store.MigrationStatus(ctx)
	if err != nil {
		t.Fatalf("migration status after down default: %v", err)
	}
	if status.Version != 0 || status.Applied != 0 || status.Pending != 3 || status.Latest != 3 {
		t.Fatalf("unexpected status after down default: %+v", status)
	}

	// down на пустой схеме не падает.
	if err := store.MigrateDown(ctx, 1); err != nil {
		t.Fatalf("migrate down on empty should be no-op: %v", err)
	}
}

func TestMigrator_GuardsAndUnsupportedDirection(t *testing.T) {
	var nilStore *Store
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := nilStore.MigrateUp(ctx, 0); err == nil {
		t.Fatal("expected error for nil store MigrateUp")
	}
	if err := nilStore.MigrateDown(ctx, 1); err == nil {
		t.Fatal("expected error for nil store MigrateDown")
	}
	if _, err := nilStore.MigrationStatus(ctx); err == nil {
		t.Fatal("expected error for nil store MigrationStatus")
	}

	store := openRawPostgresStoreForIntegrationTest(t)
	if err := store.migrate(ctx, migrationDirection("invalid"), 0); err == nil {
		t.Fatal("expected unsupported direction error")
	}
}

func TestMigrator_PostgresRefusesDriftedSchema(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	restore := func(query string, args ...any) {
		t.Helper()
		if _, err := store.DB().ExecContext(ctx, query, args...); err != nil {
			t.Fatalf("restore schema_migrations: %v", err)
		}
	}

	var checksum string
	if err := store.DB().QueryRowContext(ctx, `SELECT checksum FROM schema_migrations WHERE version = 1`).Scan(&checksum); err != nil {
		t.Fatalf("read checksum: %v", err)
	}
	if len(checksum) != 64 {
		t.Fatalf("expected recorded sha256 checksum, got %q", checksum)
	}

	restore(`UPDATE schema_migrations SET checksum = 'tampered' WHERE version = 1`)
	if err := store.MigrateUp(ctx, 0); !errors.Is(err, ErrMigrationModified) {
		t.Fatalf("expected ErrMigrationModified, got %v", err)
	}
	restore(`UPDATE schema_migrations SET checksum = $1 WHERE version = 1`, checksum)

	restore(`INSERT INTO schema_migrations (version, name, checksum) VALUES (999, 'from_newer_build', '')`)
	t.Cleanup(func() {
		_, _ = store.DB().ExecContext(context.Background(), `DELETE FROM schema_migrations WHERE version = 999`)
	})
	if err := store.MigrateDown(ctx, 1); !errors.Is(err, ErrSchemaAhead) {
		t.Fatalf("expected ErrSchemaAhead, got %v", err)
	}
	restore(`DELETE FROM schema_migrations WHERE version = 999`)

	if err := store.MigrateUp(ctx, 0); err != nil {
		t.Fatalf("migrate up after restore: %v", err)
	}
}

func TestMigrator_PostgresTimelineTypeConstraint(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := store.DB().ExecContext(ctx, `
		INSERT INTO timeline_events (order_id, type, reason, occurred) VALUES (1, $1, '', NOW())
	`, domain.TimelineItemAdded); err != nil {
		t.Fatalf("insert known timeline type: %v", err)
	}
	if _, err := store.DB().ExecContext(ctx, `
		INSERT INTO timeline_events (order_id, type, reason, occurred) VALUES (1, 'OrderShipped', '', NOW())
	`); err == nil {
		t.Fatal("expected check violation for unknown timeline type")
	}
}
