package db

import (
	"testing"

	"storefrontGraphQL/internal/config"
)

func memoryConfig(name string) config.DatabaseConfig {
	return config.DatabaseConfig{Driver: config.DriverSQLite, Path: "file:" + name + "?mode=memory&cache=shared"}
}

func tableExists(t *testing.T, d interface {
	Get(dest interface{}, query string, args ...interface{}) error
}, name string) bool {
	t.Helper()
	var n int
	if err := d.Get(&n, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name); err != nil {
		t.Fatalf("lookup table %s: %v", name, err)
	}
	return n == 1
}

func TestOpen_AppliesMigrations(t *testing.T) {
	d, err := Open(memoryConfig("dbmigrations"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	for _, table := range []string{"accounts", "product", "sales", "tasks", "schema_migrations"} {
		if !tableExists(t, d, table) {
			t.Fatalf("table %s missing after migrations", table)
		}
	}
	var applied int
	if err := d.Get(&applied, `SELECT COUNT(*) FROM schema_migrations`); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 2 {
		t.Fatalf("applied migrations = %d, want 2", applied)
	}

	// Re-applying is a no-op.
	if err := applyMigrations(d.DB); err != nil {
		t.Fatalf("reapply: %v", err)
	}
}

func TestRollbackLast(t *testing.T) {
	d, err := Open(memoryConfig("dbrollback"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if err := RollbackLast(d.DB); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if tableExists(t, d, "tasks") {
		t.Fatalf("tasks table should be dropped by rollback")
	}
	if !tableExists(t, d, "accounts") {
		t.Fatalf("accounts table should survive a single rollback")
	}
	if err := applyMigrations(d.DB); err != nil {
		t.Fatalf("reapply: %v", err)
	}
	if !tableExists(t, d, "tasks") {
		t.Fatalf("tasks table should be restored")
	}
}

func TestOpen_RejectsBadConfig(t *testing.T) {
	if _, err := Open(config.DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
	if _, err := Open(config.DatabaseConfig{Driver: config.DriverMySQL, DSN: "not-a-dsn"}); err == nil {
		t.Fatalf("expected error for malformed mysql dsn")
	}
	if err := RollbackLast(nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}

func TestSQLiteDSN(t *testing.T) {
	const params = "_busy_timeout=5000&_foreign_keys=on&_txlock=immediate"
	cases := []struct{ in, want string }{
		{"app.db", "app.db?" + params},
		{"file:x?mode=memory&cache=shared", "file:x?mode=memory&cache=shared&" + params},
	}
	for _, tc := range cases {
		if got := sqliteDSN(tc.in); got != tc.want {
			t.Fatalf("sqliteDSN(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
