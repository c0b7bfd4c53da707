// Package memorytest holds a behavioural suite every memory.Store must pass.
package memorytest

import (
	"context"
	"testing"

	"github.com/HendryAvila/assistant-tools/internal/memory"
)

// Factory returns an empty store. The suite closes nothing; factories
// register their own cleanup.
type Factory func(t *testing.T) memory.Store

// RunStoreContract exercises the equality-filter CRUD contract.
func RunStoreContract(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("insert then list by user", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		insert(t, s, memory.Record{MemoryID: "c1", UserID: "alice", Memory: "likes sashimi"})
		insert(t, s, memory.Record{MemoryID: "c2", UserID: "bob", Memory: "uses yarn"})

		recs, err := s.ListByUser(ctx, "alice")
		if err != nil {
			t.Fatalf("ListByUser() error: %v", err)
		}
		if len(recs) != 1 {
			t.Fatalf("ListByUser(alice) returned %d records, want 1", len(recs))
		}
		want := memory.Record{MemoryID: "c1", UserID: "alice", Memory: "likes sashimi"}
		if recs[0] != want {
			t.Errorf("record = %+v, want %+v", recs[0], want)
		}
	})

	t.Run("list unknown user is empty", func(t *testing.T) {
		recs, err := newStore(t).ListByUser(context.Background(), "ghost")
		if err != nil {
			t.Fatalf("ListByUser() error: %v", err)
		}
		if len(recs) != 0 {
			t.Errorf("ListByUser(ghost) = %+v, want empty", recs)
		}
	})

	t.Run("delete one requires both ids", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		insert(t, s, memory.Record{MemoryID: "d1", UserID: "alice", Memory: "x"})

		if n, err := s.DeleteOne(ctx, "bob", "d1"); err != nil || n != 0 {
			t.Errorf("DeleteOne(bob, d1) = %d, %v; want 0, nil", n, err)
		}
		if n, err := s.DeleteOne(ctx, "alice", "d1"); err != nil || n != 1 {
			t.Errorf("DeleteOne(alice, d1) = %d, %v; want 1, nil", n, err)
		}
		if n, err := s.DeleteOne(ctx, "alice", "d1"); err != nil || n != 0 {
			t.Errorf("repeated DeleteOne = %d, %v; want 0, nil", n, err)
		}
	})

	t.Run("delete by user leaves others", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		insert(t, s, memory.Record{MemoryID: "e1", UserID: "alice", Memory: "x"})
		insert(t, s, memory.Record{MemoryID: "e2", UserID: "alice", Memory: "x"})
		insert(t, s, memory.Record{MemoryID: "e3", UserID: "bob", Memory: "y"})

		if n, err := s.DeleteByUser(ctx, "alice"); err != nil || n != 2 {
			t.Errorf("DeleteByUser(alice) = %d, %v; want 2, nil", n, err)
		}
		if n, err := s.DeleteByUser(ctx, "alice"); err != nil || n != 0 {
			t.Errorf("repeated DeleteByUser = %d, %v; want 0, nil", n, err)
		}
		recs, err := s.ListByUser(ctx, "bob")
		if err != nil || len(recs) != 1 {
			t.Errorf("ListByUser(bob) = %d records, %v; want 1, nil", len(recs), err)
		}
	})
}

func insert(t *testing.T, s memory.Store, rec memory.Record) {
	t.Helper()
	if err := s.Insert(context.Background(), rec); err != nil {
		t.Fatalf("Insert(%+v) error: %v", rec, err)
	}
}
