package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefrontGraphQL/internal/config"
	"storefrontGraphQL/internal/db"
	"storefrontGraphQL/models"

	"github.com/jmoiron/sqlx"
)

func openTestDB(t *testing.T, name string) *sqlx.DB {
	t.Helper()
	d, err := db.Open(config.DatabaseConfig{Driver: config.DriverSQLite, Path: "file:" + name + "?mode=memory&cache=shared"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestAccountRepository_CreateAndQueries(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t, "accountrepo"))
	ctx := context.Background()

	// Empty table lists as an empty, non-nil slice
	list, err := repo.List(ctx)
	if err != nil || list == nil || len(list) != 0 {
		t.Fatalf("empty list: %v %#v", err, list)
	}

	// Create with defaulted timestamps
	before := time.Now().Add(-time.Second)
	a, err := repo.Create(ctx, &models.Account{Username: "alice", Password: "pw", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.UserID == 0 || a.Username != "alice" || a.Email != "alice@example.com" || a.Password != "pw" {
		t.Fatalf("unexpected created account: %+v", a)
	}
	if a.CreatedOn == nil || a.LastLogin == nil || a.CreatedOn.Before(before) {
		t.Fatalf("timestamps not defaulted: %+v", a)
	}

	// Create with explicit timestamps
	when := time.Date(2023, 5, 1, 10, 30, 0, 0, time.UTC)
	b, err := repo.Create(ctx, &models.Account{Username: "bob", Password: "pw2", Email: "bob@example.com", CreatedOn: &when})
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}
	if b.UserID <= a.UserID || !b.CreatedOn.Equal(when) {
		t.Fatalf("unexpected bob: %+v", b)
	}

	// GetByID
	g, err := repo.GetByID(ctx, a.UserID)
	if err != nil || g == nil || g.Username != "alice" {
		t.Fatalf("get by id: %v %+v", err, g)
	}
	missing, err := repo.GetByID(ctx, 9999)
	if err != nil || missing != nil {
		t.Fatalf("expected nil for missing account, got %+v err=%v", missing, err)
	}

	// List
	list, err = repo.List(ctx)
	if err != nil || len(list) != 2 || list[0].Username != "alice" || list[1].Username != "bob" {
		t.Fatalf("list: %v %+v", err, list)
	}

	// ListContacts
	contacts, err := repo.ListContacts(ctx)
	if err != nil || len(contacts) != 2 {
		t.Fatalf("contacts: %v %+v", err, contacts)
	}
	if contacts[1] != (models.AccountContact{Username: "bob", Email: "bob@example.com"}) {
		t.Fatalf("unexpected contact: %+v", contacts[1])
	}
}

func TestAccountRepository_ConcurrentCreateDistinctIDs(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t, "accountrepoconcurrent"))
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := repo.Create(ctx, &models.Account{Username: "user", Password: "pw", Email: "u@example.com"})
			if err != nil {
				errs <- err
				return
			}
			ids <- a.UserID
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent create: %v", err)
	}
	seen := map[int64]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate user_id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("got %d ids, want %d", len(seen), n)
	}
}

func TestAccountRepository_ClosedDB(t *testing.T) {
	d := openTestDB(t, "accountrepoclosed")
	repo := NewAccountRepository(d)
	_ = d.Close()
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatalf("expected error listing from closed db")
	}
	if _, err := repo.Create(context.Background(), &models.Account{Username: "x"}); err == nil {
		t.Fatalf("expected error creating on closed db")
	}
}
