package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emogo-app/emogo-backend/internal/models"
)

// MongoStore is the RecordStore backed by one MongoDB collection. The
// underlying client is created once at startup and shared across requests.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) InsertMany(ctx context.Context, docs []models.StoredRecord) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	payload := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		payload = append(payload, doc)
	}

	// No transaction: a partial failure mid-batch leaves earlier documents in
	// place and surfaces the error to the caller.
	res, err := s.coll.InsertMany(ctx, payload)
	if err != nil {
		return 0, fmt.Errorf("insert records: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func (s *MongoStore) FindAllSortedByTimestamp(ctx context.Context) ([]models.StoredRecord, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := s.coll.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]models.StoredRecord, 0)
	for cursor.Next(ctx) {
		var rec models.StoredRecord
		if err := cursor.Decode(&rec); err != nil {
			// One malformed document must not abandon the rest of an export.
			log.Warn().Err(err).Msg("skipping record that failed to decode")
			continue
		}
		records = append(records, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}
