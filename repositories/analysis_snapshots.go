package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"conmates/models"
)

// AnalysisSnapshotRepository persists the latest analysis per key. It
// implements the store.Store port on top of Mongo: one document per key,
// replaced wholesale on every write.
type AnalysisSnapshotRepository struct {
	col *mongo.Collection
}

func NewAnalysisSnapshotRepository(db *mongo.Database) *AnalysisSnapshotRepository {
	return &AnalysisSnapshotRepository{col: db.Collection("analysis_snapshots")}
}

// Set upserts the value under key. Last write wins; there is no versioning
// and concurrent writers are not coordinated.
func (r *AnalysisSnapshotRepository) Set(ctx context.Context, key string, value []byte) error {
	filter := bson.M{"key": key}
	update := bson.M{"$set": bson.M{
		"key":        key,
		"value":      value,
		"updated_at": time.Now(),
	}}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// Get loads the value under key. A missing document is reported through the
// ok flag, not as an error.
func (r *AnalysisSnapshotRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc models.AnalysisSnapshot
	err := r.col.FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc.Value, true, nil
}
