package storage

import (
	"context"

	"github.com/emogo-app/emogo-backend/internal/models"
)

// RecordStore is the only component that talks to the document database.
// Handlers receive it explicitly so tests can substitute an in-memory store.
type RecordStore interface {
	// InsertMany writes the documents as one batch and returns the number
	// actually inserted. Empty input returns 0 without a database round trip.
	InsertMany(ctx context.Context, docs []models.StoredRecord) (int, error)

	// FindAllSortedByTimestamp returns every stored record in ascending
	// timestamp order. Order among equal timestamps is whatever the
	// database returns.
	FindAllSortedByTimestamp(ctx context.Context) ([]models.StoredRecord, error)
}
