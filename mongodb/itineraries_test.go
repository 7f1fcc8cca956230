package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestItinerarySaveUpdateMergesTopLevelOnly(t *testing.T) {
	itinerary := map[string]any{
		"destination": "Goa",
		"days":        []any{map[string]any{"events": []any{}}},
	}

	update := itinerarySaveUpdate("user-1", itinerary, "2025-03-01T00:00:00")

	// Only the two operators, so no other part of the stored document is
	// rewritten by a save.
	require.Len(t, update, 2)

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Len(t, set, 3)
	assert.Equal(t, "user-1", set["user_id"])
	assert.Equal(t, itinerary, set["itinerary"])
	assert.Equal(t, "2025-03-01T00:00:00", set["updated_at"])

	// created_at must never appear under $set: it is insert-only, so a
	// later save cannot overwrite the original timestamp.
	_, hasCreated := set["created_at"]
	assert.False(t, hasCreated)

	onInsert, ok := update["$setOnInsert"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"created_at": "2025-03-01T00:00:00"}, onInsert)
}

func TestItinerarySaveUpdateReplacesBlobWholesale(t *testing.T) {
	itinerary := map[string]any{"notes": "packed"}

	update := itinerarySaveUpdate("user-2", itinerary, "2025-04-01T00:00:00")

	set := update["$set"].(bson.M)
	// The itinerary field is assigned as one value, not flattened into
	// dotted paths, so nested content round-trips untouched.
	assert.Equal(t, itinerary, set["itinerary"])
}
