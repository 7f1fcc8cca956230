package mongodb

import (
	"context"
	"fmt"
	"time"

	"travel-concierge/api/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SaveItinerary persists the itinerary blob for a user. The write merges at
// the top level only: the itinerary field is replaced wholesale, created_at
// is set once on first save, and any other top-level keys on the stored
// document are left untouched.
func SaveItinerary(ctx context.Context, userID string, itinerary map[string]any) error {
	update := itinerarySaveUpdate(userID, itinerary, time.Now().Format(dateLayout))

	_, err := collection(ItineraryCollection).UpdateOne(
		ctx,
		bson.M{"user_id": userID},
		update,
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("error saving itinerary: %v", err)
	}
	return nil
}

// itinerarySaveUpdate builds the upsert document behind SaveItinerary. $set
// names only user_id, itinerary, and updated_at, so every other top-level key
// on the stored document survives a save; created_at is written exclusively
// through $setOnInsert and therefore only on first insert.
func itinerarySaveUpdate(userID string, itinerary map[string]any, now string) bson.M {
	return bson.M{
		"$set": bson.M{
			"user_id":    userID,
			"itinerary":  itinerary,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}
}

// GetItinerary loads a user's itinerary document, or nil when none exists.
func GetItinerary(ctx context.Context, userID string) (*models.ItineraryDocument, error) {
	var doc models.ItineraryDocument
	err := collection(ItineraryCollection).FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching itinerary: %v", err)
	}
	return &doc, nil
}

func DeleteItinerary(ctx context.Context, userID string) (bool, error) {
	result, err := collection(ItineraryCollection).DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return false, fmt.Errorf("error deleting itinerary: %v", err)
	}
	return result.DeletedCount > 0, nil
}
