package mongodb

import (
	"context"
	"fmt"
	"time"

	"travel-concierge/api/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func CreateRecommendation(ctx context.Context, rec *models.Recommendation) (string, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().Format(dateLayout)

	if _, err := collection(RecommendationCollection).InsertOne(ctx, rec); err != nil {
		return "", fmt.Errorf("error creating recommendation: %v", err)
	}
	return rec.ID, nil
}

// GetRecommendations returns stored recommendations ordered by priority,
// highest first, capped at limit.
func GetRecommendations(ctx context.Context, tripID string, limit int) ([]models.Recommendation, error) {
	filter := bson.M{}
	if tripID != "" {
		filter["trip_id"] = tripID
	}
	if limit <= 0 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "priority", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := collection(RecommendationCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching recommendations: %v", err)
	}
	defer cursor.Close(ctx)

	recs := []models.Recommendation{}
	for cursor.Next(ctx) {
		var rec models.Recommendation
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("error decoding recommendation: %v", err)
		}
		recs = append(recs, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return recs, nil
}
