package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"storefrontGraphQL/internal/config"
	"storefrontGraphQL/internal/db"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrateUpAndDown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")

	out, err := execute(t, "migrate", "up", "--db-path", path)
	if err != nil {
		t.Fatalf("migrate up: %v (%s)", err, out)
	}
	if !strings.Contains(out, "migrations applied") {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = execute(t, "migrate", "down", "--db-path", path)
	if err != nil {
		t.Fatalf("migrate down: %v (%s)", err, out)
	}

	d, err := db.Open(config.DatabaseConfig{Driver: config.DriverSQLite, Path: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer d.Close()
	var n int
	if err := d.Get(&n, `SELECT COUNT(*) FROM schema_migrations`); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	// Reopening re-applies the rolled back migration.
	if n != 2 {
		t.Fatalf("applied migrations = %d, want 2", n)
	}
}

func TestMigrateRejectsMySQL(t *testing.T) {
	_, err := execute(t, "migrate", "up", "--db-driver", "mysql", "--db-dsn", "u:p@tcp(localhost:3306)/shop")
	if err == nil || !strings.Contains(err.Error(), "managed externally") {
		t.Fatalf("expected mysql rejection, got %v", err)
	}
}

func TestServeRejectsInvalidConfig(t *testing.T) {
	if _, err := execute(t, "--tasks-store", "redis"); err == nil {
		t.Fatalf("expected invalid task store to fail")
	}
}
