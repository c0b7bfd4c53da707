package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/HendryAvila/assistant-tools/internal/memory"
	"github.com/HendryAvila/assistant-tools/internal/memory/memorytest"
	"github.com/HendryAvila/assistant-tools/internal/memory/sqlite"
)

// newTestStore creates a Store backed by a temp directory for isolation.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.New(sqlite.Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustInsert(t *testing.T, s *sqlite.Store, id, user, text string) {
	t.Helper()
	rec := memory.Record{MemoryID: id, UserID: user, Memory: text}
	if err := s.Insert(context.Background(), rec); err != nil {
		t.Fatalf("Insert(%q) error: %v", id, err)
	}
}

// ─── New / Initialization ───────────────────────────────────────────────────

func TestNew_CreatesDBFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := sqlite.New(sqlite.Config{DataDir: dir})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dir, "memory.db")); err != nil {
		t.Errorf("memory.db not created: %v", err)
	}
}

func TestNew_IdempotentReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s1, err := sqlite.New(sqlite.Config{DataDir: dir})
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	mustInsert(t, s1, "m1", "u1", "persisted")
	s1.Close()

	s2, err := sqlite.New(sqlite.Config{DataDir: dir})
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	recs, err := s2.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser() error: %v", err)
	}
	if len(recs) != 1 || recs[0].Memory != "persisted" {
		t.Errorf("records after reopen = %+v, want one persisted record", recs)
	}
}

func TestNew_OpenFailure(t *testing.T) {
	restore := sqlite.SetOpenDB(func(string, string) (*sql.DB, error) {
		return nil, errors.New("driver unavailable")
	})
	defer restore()

	_, err := sqlite.New(sqlite.Config{DataDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected error when driver fails to open")
	}
}

// ─── Insert / List ──────────────────────────────────────────────────────────

func TestListByUser_InsertionOrderAndFilter(t *testing.T) {
	s := newTestStore(t)
	mustInsert(t, s, "a", "u1", "first")
	mustInsert(t, s, "b", "u2", "other user")
	mustInsert(t, s, "c", "u1", "second")
	mustInsert(t, s, "d", "u1", "first") // duplicate content is allowed

	recs, err := s.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser() error: %v", err)
	}

	want := []string{"a", "c", "d"}
	if len(recs) != len(want) {
		t.Fatalf("got %d records, want %d: %+v", len(recs), len(want), recs)
	}
	for i, id := range want {
		if recs[i].MemoryID != id {
			t.Errorf("recs[%d].MemoryID = %q, want %q", i, recs[i].MemoryID, id)
		}
		if recs[i].UserID != "u1" {
			t.Errorf("recs[%d].UserID = %q, want u1", i, recs[i].UserID)
		}
	}
}

func TestListByUser_EmptyIsNonNil(t *testing.T) {
	s := newTestStore(t)
	recs, err := s.ListByUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListByUser() error: %v", err)
	}
	if recs == nil || len(recs) != 0 {
		t.Errorf("ListByUser() = %#v, want empty non-nil slice", recs)
	}
}

func TestInsert_DuplicateMemoryIDFails(t *testing.T) {
	s := newTestStore(t)
	mustInsert(t, s, "same", "u1", "one")

	err := s.Insert(context.Background(), memory.Record{MemoryID: "same", UserID: "u2", Memory: "two"})
	if err == nil {
		t.Fatal("expected unique constraint error for reused memory_id")
	}
}

// ─── Delete ─────────────────────────────────────────────────────────────────

func TestDeleteOne(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		userID   string
		memoryID string
		want     int64
	}{
		{"exact match", "u1", "m1", 1},
		{"wrong user", "u2", "m1", 0},
		{"unknown id", "u1", "nope", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			mustInsert(t, s, "m1", "u1", "text")

			n, err := s.DeleteOne(ctx, tt.userID, tt.memoryID)
			if err != nil {
				t.Fatalf("DeleteOne() error: %v", err)
			}
			if n != tt.want {
				t.Errorf("DeleteOne() = %d, want %d", n, tt.want)
			}
		})
	}
}

func TestDeleteByUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	mustInsert(t, s, "a", "u1", "x")
	mustInsert(t, s, "b", "u1", "y")
	mustInsert(t, s, "c", "u2", "z")

	n, err := s.DeleteByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("DeleteByUser() error: %v", err)
	}
	if n != 2 {
		t.Errorf("DeleteByUser() = %d, want 2", n)
	}

	n, err = s.DeleteByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("second DeleteByUser() error: %v", err)
	}
	if n != 0 {
		t.Errorf("second DeleteByUser() = %d, want 0", n)
	}

	recs, _ := s.ListByUser(ctx, "u2")
	if len(recs) != 1 {
		t.Errorf("u2 records = %d, want 1 (untouched)", len(recs))
	}
}

// ─── Failure injection ──────────────────────────────────────────────────────

func TestStore_PropagatesFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk I/O error")

	s := newTestStore(t)
	s.FailExec(boom)
	s.FailQuery(boom)

	if err := s.Insert(ctx, memory.Record{MemoryID: "x", UserID: "u", Memory: "m"}); !errors.Is(err, boom) {
		t.Errorf("Insert() error = %v, want %v", err, boom)
	}
	if _, err := s.ListByUser(ctx, "u"); !errors.Is(err, boom) {
		t.Errorf("ListByUser() error = %v, want %v", err, boom)
	}
	if _, err := s.DeleteOne(ctx, "u", "x"); !errors.Is(err, boom) {
		t.Errorf("DeleteOne() error = %v, want %v", err, boom)
	}
	if _, err := s.DeleteByUser(ctx, "u"); !errors.Is(err, boom) {
		t.Errorf("DeleteByUser() error = %v, want %v", err, boom)
	}
}

func TestStore_ClosedDatabase(t *testing.T) {
	s, err := sqlite.New(sqlite.Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	if _, err := s.ListByUser(context.Background(), "u"); err == nil {
		t.Error("expected error listing from a closed store")
	}
}

// ─── Concurrency ────────────────────────────────────────────────────────────

func TestStore_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- s.Insert(ctx, memory.Record{
				MemoryID: fmt.Sprintf("m%d", i),
				UserID:   "shared",
				Memory:   "concurrent",
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent Insert() error: %v", err)
		}
	}

	recs, err := s.ListByUser(ctx, "shared")
	if err != nil {
		t.Fatalf("ListByUser() error: %v", err)
	}
	if len(recs) != 50 {
		t.Errorf("got %d records, want 50", len(recs))
	}
}

// ─── Contract ───────────────────────────────────────────────────────────────

func TestStore_Contract(t *testing.T) {
	memorytest.RunStoreContract(t, func(t *testing.T) memory.Store {
		return newTestStore(t)
	})
}
