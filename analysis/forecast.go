package analysis

import "travel-concierge/api/models"

// defaultDailyRates is the fallback per-category daily budget when the user
// has no spending history.
var defaultDailyRates = map[string]float64{
	"Food":       500,
	"Transport":  300,
	"Activities": 400,
	"Misc":       200,
}

// ForecastBudget predicts a trip budget from the user's most recent spending
// pattern. Without history it falls back to the default daily rates and marks
// the prediction low-confidence.
func ForecastBudget(destination string, durationDays int, patterns []models.SpendingPattern) models.BudgetForecast {
	daily := map[string]float64{}
	hasHistory := false

	if len(patterns) > 0 {
		pattern := patterns[0]
		var total float64
		for _, amount := range pattern.Breakdown {
			total += amount
		}
		if total > 0 && pattern.AverageDaily > 0 {
			hasHistory = true
			for cat, amount := range pattern.Breakdown {
				daily[cat] = amount / total * pattern.AverageDaily
			}
		}
	}

	if !hasHistory {
		for cat, rate := range defaultDailyRates {
			daily[cat] = rate
		}
	}

	breakdown := map[string]float64{}
	var dailyTotal, total float64
	for cat, rate := range daily {
		breakdown[cat] = rate * float64(durationDays)
		dailyTotal += rate
		total += breakdown[cat]
	}

	confidence := "low"
	if hasHistory {
		confidence = "medium"
	}

	return models.BudgetForecast{
		Destination:    destination,
		DurationDays:   durationDays,
		DailyBudget:    dailyTotal,
		TotalBudget:    total,
		Breakdown:      breakdown,
		Confidence:     confidence,
		BasedOnHistory: hasHistory,
	}
}
