package analysis

import (
	"testing"

	"travel-concierge/api/models"

	"github.com/stretchr/testify/assert"
)

func TestForecastBudgetDefaults(t *testing.T) {
	forecast := ForecastBudget("Jaipur", 5, nil)

	assert.Equal(t, "Jaipur", forecast.Destination)
	assert.Equal(t, 5, forecast.DurationDays)
	assert.False(t, forecast.BasedOnHistory)
	assert.Equal(t, "low", forecast.Confidence)

	// Default daily rates: 500+300+400+200 = 1400
	assert.InDelta(t, 1400.0, forecast.DailyBudget, 0.001)
	assert.InDelta(t, 7000.0, forecast.TotalBudget, 0.001)
	assert.InDelta(t, 2500.0, forecast.Breakdown["Food"], 0.001)
}

func TestForecastBudgetFromHistory(t *testing.T) {
	patterns := []models.SpendingPattern{
		{
			Breakdown:    map[string]float64{"Food": 600, "Transport": 400},
			AverageDaily: 1000,
		},
	}

	forecast := ForecastBudget("Goa", 4, patterns)
	assert.True(t, forecast.BasedOnHistory)
	assert.Equal(t, "medium", forecast.Confidence)
	// Food is 60% of spend, so 600/day over 4 days.
	assert.InDelta(t, 2400.0, forecast.Breakdown["Food"], 0.001)
	assert.InDelta(t, 1600.0, forecast.Breakdown["Transport"], 0.001)
	assert.InDelta(t, 4000.0, forecast.TotalBudget, 0.001)
}

func TestForecastBudgetIgnoresUnusablePattern(t *testing.T) {
	// Pattern without a daily average cannot seed the forecast.
	patterns := []models.SpendingPattern{
		{Breakdown: map[string]float64{"Food": 600}},
	}

	forecast := ForecastBudget("Pune", 2, patterns)
	assert.False(t, forecast.BasedOnHistory)
	assert.Equal(t, "low", forecast.Confidence)
}
