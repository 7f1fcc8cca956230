package analysis

import (
	"testing"

	"travel-concierge/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestOptimizationsKnownCategories(t *testing.T) {
	expenses := []models.Expense{
		exp("airfare", 10000, "2025-03-01T00:00:00", "Flights"),
		exp("room", 6000, "2025-03-02T00:00:00", "Hotels"),
		exp("dinner", 2000, "2025-03-02T00:00:00", "Food"),
		exp("taxi", 1000, "2025-03-03T00:00:00", "Transport"),
	}

	recs := SuggestOptimizations(expenses, "trip-1", 10)
	require.Len(t, recs, 4)

	byCategory := map[string]models.Recommendation{}
	for _, rec := range recs {
		byCategory[rec.Category] = rec
	}

	assert.Equal(t, 25.0, byCategory["Flights"].SavingsPct)
	assert.Equal(t, 20.0, byCategory["Hotels"].SavingsPct)
	assert.Equal(t, 30.0, byCategory["Food"].SavingsPct)
	assert.Equal(t, 50.0, byCategory["Transport"].SavingsPct)

	flights := byCategory["Flights"]
	assert.Equal(t, 10000.0, flights.CurrentCost)
	assert.InDelta(t, 7500.0, flights.SuggestedCost, 0.001)
	assert.InDelta(t, 2500.0, flights.SavingsAmount, 0.001)
	assert.Equal(t, 9, flights.Priority)
	assert.True(t, flights.Actionable)
	assert.Equal(t, "trip-1", flights.TripID)
}

func TestSuggestOptimizationsGenericFallback(t *testing.T) {
	expenses := []models.Expense{
		exp("souvenir", 500, "2025-03-01T00:00:00", "Shopping"),
	}

	recs := SuggestOptimizations(expenses, "", 5)
	require.Len(t, recs, 1)
	assert.Equal(t, 15.0, recs[0].SavingsPct)
	assert.Equal(t, 6, recs[0].Priority)
}

func TestSuggestOptimizationsCapped(t *testing.T) {
	expenses := []models.Expense{
		exp("a", 500, "2025-03-01T00:00:00", "Flights"),
		exp("b", 400, "2025-03-01T00:00:00", "Hotels"),
		exp("c", 300, "2025-03-01T00:00:00", "Food"),
	}

	recs := SuggestOptimizations(expenses, "", 2)
	assert.Len(t, recs, 2)
	// Largest categories first
	assert.Equal(t, "Flights", recs[0].Category)
	assert.Equal(t, "Hotels", recs[1].Category)
}

func TestSuggestOptimizationsEmpty(t *testing.T) {
	assert.Nil(t, SuggestOptimizations(nil, "", 5))
}
