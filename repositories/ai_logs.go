package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"conmates/models"
)

type AILogRepository struct {
	col *mongo.Collection
}

func NewAILogRepository(db *mongo.Database) *AILogRepository {
	return &AILogRepository{col: db.Collection("ai_logs")}
}

func (r *AILogRepository) Insert(ctx context.Context, doc models.AILog) error {
	_, err := r.col.InsertOne(ctx, doc)
	return err
}
