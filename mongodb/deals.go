package mongodb

import (
	"context"
	"fmt"
	"time"

	"travel-concierge/api/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func CreateDealAlert(ctx context.Context, deal *models.DealAlert) (string, error) {
	deal.ID = uuid.NewString()
	deal.CreatedAt = time.Now().Format(dateLayout)

	if _, err := collection(DealAlertCollection).InsertOne(ctx, deal); err != nil {
		return "", fmt.Errorf("error creating deal alert: %v", err)
	}
	return deal.ID, nil
}

// GetDealAlerts lists deal alerts, optionally scoped to a trip. With
// activeOnly set, deals whose expires_at timestamp is in the past are
// filtered out by ISO-string comparison.
func GetDealAlerts(ctx context.Context, tripID string, activeOnly bool) ([]models.DealAlert, error) {
	filter := bson.M{}
	if tripID != "" {
		filter["trip_id"] = tripID
	}
	if activeOnly {
		filter["expires_at"] = bson.M{"$gte": time.Now().Format(dateLayout)}
	}

	cursor, err := collection(DealAlertCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching deal alerts: %v", err)
	}
	defer cursor.Close(ctx)

	deals := []models.DealAlert{}
	for cursor.Next(ctx) {
		var deal models.DealAlert
		if err := cursor.Decode(&deal); err != nil {
			return nil, fmt.Errorf("error decoding deal alert: %v", err)
		}
		deals = append(deals, deal)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return deals, nil
}
