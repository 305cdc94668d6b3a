package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"conmates/models"
)

type ResourceRepository struct {
	col *mongo.Collection
}

func NewResourceRepository(db *mongo.Database) *ResourceRepository {
	return &ResourceRepository{col: db.Collection("resources")}
}

// Upsert inserts or refreshes a resource keyed by (feed_name, link), so
// re-running the feeder is idempotent.
func (r *ResourceRepository) Upsert(ctx context.Context, doc models.Resource) error {
	now := time.Now()
	filter := bson.M{"feed_name": doc.FeedName, "link": doc.Link}
	update := bson.M{
		"$set": bson.M{
			"title":        doc.Title,
			"published_at": doc.PublishedAt,
			"excerpt":      doc.Excerpt,
			"updated_at":   now,
		},
		"$setOnInsert": bson.M{
			"feed_name":  doc.FeedName,
			"link":       doc.Link,
			"created_at": now,
			"view_count": int64(0),
		},
	}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

type ListResourcesOptions struct {
	Page     int
	PageSize int
}

// List returns resources ordered by published_at desc with total count.
func (r *ResourceRepository) List(ctx context.Context, opts ListResourcesOptions) ([]models.Resource, int64, error) {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cur, err := r.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.Resource
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// IncrementViewCount bumps view_count for the given resource id.
func (r *ResourceRepository) IncrementViewCount(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"view_count": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
