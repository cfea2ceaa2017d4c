package postgres

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

func TestLoadMigrationsFromFS_Success(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/migrations/001_init.up.sql": {
			Data: []byte("CREATE TABLE test_a (id INT);"),
		},
		"sql/migrations/001_init.down.sql": {
			Data: []byte("DROP TABLE IF EXISTS test_a;"),
		},
		"sql/migrations/002_more.up.sql": {
			Data: []byte("CREATE TABLE test_b (id INT);"),
		},
		"sql/migrations/002_more.down.sql": {
			Data: []byte("DROP TABLE IF EXISTS test_b;"),
		},
	}

	migrations, err := loadMigrationsFromFS(fsys)
	if err != nil {
		t.Fatalf("loadMigrationsFromFS failed: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}

	if migrations[0].Version != 1 || migrations[0].Name != "init" {
		t.Fatalf("unexpected first migration: %+v", migrations[0])
	}
	if migrations[1].Version != 2 || migrations[1].Name != "more" {
		t.Fatalf("unexpected second migration: %+v", migrations[1])
	}
}

func TestLoadMigrationsFromFS_MissingDown(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/migrations/001_init.up.sql": {
			Data: []byte("CREATE TABLE test_a (id INT);"),
		},
	}

	_, err := loadMigrationsFromFS(fsys)
	if err == nil {
		t.Fatal("expected error for missing down migration")
	}
	if !strings.Contains(err.Error(), "both up and down") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMigrationsFromFS_InvalidFilename(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/migrations/not_a_migration.sql": {
			Data: []byte("SELECT 1;"),
		},
	}

	_, err := loadMigrationsFromFS(fsys)
	if err == nil {
		t.Fatal("expected error for invalid migration file name")
	}
}

func TestLoadMigrationsFromFS_EmptyFile(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/migrations/001_init.up.sql": {
			Data: []byte("   \n"),
		},
		"sql/migrations/001_init.down.sql": {
			Data: []byte("DROP TABLE IF EXISTS test;"),
		},
	}

	_, err := loadMigrationsFromFS(fsys)
	if err == nil {
		t.Fatal("expected error for empty migration file body")
	}
}

func TestLoadMigrationsFromFS_DuplicateAndMismatchedNames(t *testing.T) {
	t.Parallel()

	mismatch := fstest.MapFS{
		"sql/migrations/001_init.up.sql":    {Data: []byte("SELECT 1;")},
		"sql/migrations/001_other.down.sql": {Data: []byte("SELECT 1;")},
	}
	if _, err := loadMigrationsFromFS(mismatch); err == nil || !strings.Contains(err.Error(), "name mismatch") {
		t.Fatalf("expected name mismatch error, got %v", err)
	}

	duplicate := fstest.MapFS{
		"sql/migrations/001_init.up.sql":   {Data: []byte("SELECT 1;")},
		"sql/migrations/01_init.up.sql":    {Data: []byte("SELECT 2;")},
		"sql/migrations/001_init.down.sql": {Data: []byte("SELECT 1;")},
	}
	if _, err := loadMigrationsFromFS(duplicate); err == nil || !strings.Contains(err.Error(), "duplicate up") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoadMigrationsFromFS_Embedded(t *testing.T) {
	t.Parallel()

	migrations, err := loadMigrationsFromFS(migrationsFS)
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}
	want := []string{"001_catalog_and_orders", "002_timeline_and_outbox", "003_timeline_event_types"}
	if len(migrations) != len(want) {
		t.Fatalf("expected %d embedded migrations, got %d", len(want), len(migrations))
	}
	for i, m := range migrations {
		if m.String() != want[i] {
			t.Fatalf("unexpected migration %d: %s", i, m)
		}
	}
	if !strings.Contains(migrations[0].UpSQL, "ON DELETE CASCADE") {
		t.Fatal("order_items must cascade on order delete")
	}
	if !strings.Contains(migrations[0].UpSQL, "NUMERIC(12, 2)") {
		t.Fatal("product prices must be stored as NUMERIC(12, 2)")
	}
	for _, eventType := range []string{
		domain.TimelineOrderCreated,
		domain.TimelineOrderStatusChanged,
		domain.TimelineOrderDeleted,
		domain.TimelineItemAdded,
		domain.TimelineItemRemoved,
	} {
		if !strings.Contains(migrations[2].UpSQL, "'"+eventType+"'") {
			t.Fatalf("timeline type constraint misses %s", eventType)
		}
	}
}

func testMigrations() []migration {
	return []migration{
		{Version: 1, Name: "init", UpSQL: "CREATE TABLE a (id INT);", DownSQL: "DROP TABLE a;"},
		{Version: 2, Name: "more", UpSQL: "CREATE TABLE b (id INT);", DownSQL: "DROP TABLE b;"},
		{Version: 3, Name: "last", UpSQL: "CREATE TABLE c (id INT);", DownSQL: "DROP TABLE c;"},
	}
}

func appliedFrom(migrations ...migration) []appliedMigration {
	applied := make([]appliedMigration, 0, len(migrations))
	for _, m := range migrations {
		applied = append(applied, appliedMigration{Version: m.Version, Name: m.Name, Checksum: m.Checksum()})
	}
	return applied
}

func versions(plan []migration) []int64 {
	out := make([]int64, 0, len(plan))
	for _, m := range plan {
		out = append(out, m.Version)
	}
	return out
}

func TestPlanMigrations(t *testing.T) {
	t.Parallel()

	all := testMigrations()
	applied := appliedFrom(all[0])

	tests := []struct {
		name      string
		direction migrationDirection
		steps     int
		want      []int64
	}{
		{name: "up all pending", direction: migrationUp, steps: 0, want: []int64{2, 3}},
		{name: "up one step", direction: migrationUp, steps: 1, want: []int64{2}},
		{name: "up more steps than pending", direction: migrationUp, steps: 10, want: []int64{2, 3}},
		{name: "down one step", direction: migrationDown, steps: 1, want: []int64{1}},
		{name: "down beyond applied", direction: migrationDown, steps: 5, want: []int64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := versions(planMigrations(all, applied, tt.direction, tt.steps))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	down := versions(planMigrations(all, appliedFrom(all...), migrationDown, 2))
	if !slices.Equal(down, []int64{3, 2}) {
		t.Fatalf("down must roll back newest first, got %v", down)
	}
}

func TestVerifyApplied(t *testing.T) {
	t.Parallel()

	all := testMigrations()
	if err := verifyApplied(all, appliedFrom(all[0], all[1])); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	legacy := []appliedMigration{{Version: 1, Name: "init"}}
	if err := verifyApplied(all, legacy); err != nil {
		t.Fatalf("empty checksum must be accepted: %v", err)
	}

	modified := appliedFrom(all[0])
	modified[0].Checksum = "deadbeef"
	if err := verifyApplied(all, modified); !errors.Is(err, ErrMigrationModified) {
		t.Fatalf("expected ErrMigrationModified, got %v", err)
	}

	ahead := append(appliedFrom(all...), appliedMigration{Version: 4, Name: "future"})
	if err := verifyApplied(all, ahead); !errors.Is(err, ErrSchemaAhead) {
		t.Fatalf("expected ErrSchemaAhead, got %v", err)
	}
}

func TestSchemaStatus(t *testing.T) {
	t.Parallel()

	all := testMigrations()
	if got := schemaStatus(all, nil); got != (SchemaStatus{Latest: 3, Pending: 3}) {
		t.Fatalf("unexpected empty schema status: %+v", got)
	}
	if got := schemaStatus(all, appliedFrom(all[0], all[1])); got != (SchemaStatus{Version: 2, Latest: 3, Applied: 2, Pending: 1}) {
		t.Fatalf("unexpected partial schema status: %+v", got)
	}
}

func TestMigrationChecksumTracksUpSQL(t *testing.T) {
	t.Parallel()

	m := testMigrations()[0]
	changed := m
	changed.UpSQL += " -- tweak"
	if m.Checksum() == changed.Checksum() {
		t.Fatal("checksum must change with up sql")
	}
	changed = m
	changed.DownSQL = "SELECT 1;"
	if m.Checksum() != changed.Checksum() {
		t.Fatal("checksum must not depend on down sql")
	}
	if len(m.Checksum()) != 64 {
		t.Fatalf("expected hex sha256, got %q", m.Checksum())
	}
}
