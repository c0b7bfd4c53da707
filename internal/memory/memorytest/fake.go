package memorytest

import (
	"context"
	"sync"

	"github.com/HendryAvila/assistant-tools/internal/memory"
)

// FakeStore is an in-process memory.Store. Setting Err makes every
// operation fail with it, which stands in for an unreachable database.
type FakeStore struct {
	mu      sync.Mutex
	records []memory.Record
	Err     error
	Calls   int
}

var _ memory.Store = (*FakeStore)(nil)

// NewFakeStore returns an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (f *FakeStore) begin() error {
	f.mu.Lock()
	f.Calls++
	return f.Err
}

func (f *FakeStore) Insert(_ context.Context, rec memory.Record) error {
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return err
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *FakeStore) ListByUser(_ context.Context, userID string) ([]memory.Record, error) {
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return nil, err
	}
	out := []memory.Record{}
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *FakeStore) DeleteOne(_ context.Context, userID, memoryID string) (int64, error) {
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return 0, err
	}
	for i, r := range f.records {
		if r.UserID == userID && r.MemoryID == memoryID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *FakeStore) DeleteByUser(_ context.Context, userID string) (int64, error) {
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return 0, err
	}
	kept := f.records[:0]
	var n int64
	for _, r := range f.records {
		if r.UserID == userID {
			n++
			continue
		}
		kept = append(kept, r)
	}
	f.records = kept
	return n, nil
}

func (f *FakeStore) Close() error { return nil }

// Len reports how many records are held.
func (f *FakeStore) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}
