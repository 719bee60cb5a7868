package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emogo-app/emogo-backend/internal/models"
)

func TestMongoStoreInsertMany_EmptyInputSkipsDatabase(t *testing.T) {
	// nil collection: any database round trip would panic, so this also
	// proves the empty batch never reaches Mongo
	store := NewMongoStore(nil)

	n, err := store.InsertMany(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	n, err = store.InsertMany(context.Background(), []models.StoredRecord{})
	require.NoError(t, err)
	require.Equal(t, 0, n)
}
