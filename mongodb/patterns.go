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

func CreateSpendingPattern(ctx context.Context, pattern *models.SpendingPattern) (string, error) {
	pattern.ID = uuid.NewString()
	pattern.CreatedAt = time.Now().Format(dateLayout)

	if _, err := collection(PatternCollection).InsertOne(ctx, pattern); err != nil {
		return "", fmt.Errorf("error creating spending pattern: %v", err)
	}
	return pattern.ID, nil
}

// GetSpendingPatterns returns a user's stored patterns, most recent first.
func GetSpendingPatterns(ctx context.Context, userID, period string) ([]models.SpendingPattern, error) {
	filter := bson.M{"user_id": userID}
	if period != "" {
		filter["period"] = period
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := collection(PatternCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching spending patterns: %v", err)
	}
	defer cursor.Close(ctx)

	patterns := []models.SpendingPattern{}
	for cursor.Next(ctx) {
		var pattern models.SpendingPattern
		if err := cursor.Decode(&pattern); err != nil {
			return nil, fmt.Errorf("error decoding spending pattern: %v", err)
		}
		patterns = append(patterns, pattern)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return patterns, nil
}
