package handlers_test

import (
	"context"
	"sort"
	"sync"

	"github.com/emogo-app/emogo-backend/internal/models"
)

// fakeStore is an in-memory RecordStore. It sorts on read the way the real
// collection does, so handler tests cover the read-path ordering contract.
type fakeStore struct {
	mu          sync.Mutex
	insertCalls int
	records     []models.StoredRecord
	insertErr   error
	findErr     error
}

func (f *fakeStore) InsertMany(ctx context.Context, docs []models.StoredRecord) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertCalls++
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.records = append(f.records, docs...)
	return len(docs), nil
}

func (f *fakeStore) FindAllSortedByTimestamp(ctx context.Context) ([]models.StoredRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := append([]models.StoredRecord(nil), f.records...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (f *fakeStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insertCalls
}

func (f *fakeStore) stored() []models.StoredRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.StoredRecord(nil), f.records...)
}
