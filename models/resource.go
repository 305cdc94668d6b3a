package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is a tenant-rights article pulled from a configured feed.
// Collection: resources
type Resource struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	FeedName    string             `bson:"feed_name" json:"feed_name"`
	Title       string             `bson:"title" json:"title"`
	Link        string             `bson:"link" json:"link"`
	PublishedAt time.Time          `bson:"published_at" json:"published_at"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	ViewCount   int64              `bson:"view_count" json:"view_count"`
}
