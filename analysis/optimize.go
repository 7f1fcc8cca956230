package analysis

import (
	"fmt"
	"strings"

	"travel-concierge/api/models"
)

// optimization heuristics per spending category. Savings percentages are the
// canned figures the optimizer agent advertises.
type optimizationRule struct {
	title       string
	description string
	reasoning   string
	savingsPct  float64
	priority    int
}

var optimizationRules = map[string]optimizationRule{
	"flights": {
		title:       "Consider booking mid-week flights",
		description: "Booking flights on Tuesday-Thursday can save up to 25% compared to weekend flights. Consider flexible dates for better prices.",
		reasoning:   "Mid-week flights typically cost 15-25% less than weekend flights. Flexible date booking can unlock additional savings.",
		savingsPct:  25.0,
		priority:    9,
	},
	"hotels": {
		title:       "Consider alternative accommodations",
		description: "Alternative options like vacation rentals, hostels, or booking further from city center can save 20-30% on accommodation costs.",
		reasoning:   "Alternative accommodations often provide better value. Consider location flexibility for additional savings.",
		savingsPct:  20.0,
		priority:    8,
	},
	"food": {
		title:       "Mix fine dining with local eateries",
		description: "Balancing expensive restaurants with local street food and markets can reduce dining costs by 30% while enhancing cultural experience.",
		reasoning:   "Local eateries and markets offer authentic experiences at a fraction of the cost. Mixing fine dining with budget options maximizes value.",
		savingsPct:  30.0,
		priority:    7,
	},
	"transport": {
		title:       "Use public transportation or walk",
		description: "Public transportation, walking, or bike rentals can reduce transportation costs by 50% while providing better local experience.",
		reasoning:   "Public transport and walking are significantly cheaper than taxis/rideshares. Many destinations offer tourist passes for unlimited travel.",
		savingsPct:  50.0,
		priority:    8,
	},
}

// ruleFor maps free-text category names onto an optimization rule.
func ruleFor(category string) (optimizationRule, bool) {
	switch strings.ToLower(category) {
	case "flights", "flight", "airfare":
		return optimizationRules["flights"], true
	case "hotel", "hotels", "accommodation":
		return optimizationRules["hotels"], true
	case "food", "restaurant", "dining":
		return optimizationRules["food"], true
	case "transport", "transportation", "taxi", "uber":
		return optimizationRules["transport"], true
	}
	return optimizationRule{}, false
}

// SuggestOptimizations generates savings recommendations for the top spending
// categories, one per category, capped at max. Categories without a specific
// rule get the generic 15% suggestion.
func SuggestOptimizations(expenses []models.Expense, tripID string, max int) []models.Recommendation {
	if len(expenses) == 0 {
		return nil
	}
	if max <= 0 {
		max = 5
	}

	totals := CategoryTotals(expenses)
	top := TopCategories(totals, max)

	recs := make([]models.Recommendation, 0, len(top))
	for _, category := range top {
		spending := totals[category]

		rule, ok := ruleFor(category)
		if !ok {
			rule = optimizationRule{
				title:       fmt.Sprintf("Optimize %s spending", category),
				description: fmt.Sprintf("Review %s expenses and look for opportunities to save 15-20%% through better planning or alternatives.", category),
				reasoning:   fmt.Sprintf("General optimization opportunities exist in %s spending. Review individual expenses for savings.", category),
				savingsPct:  15.0,
				priority:    6,
			}
		}

		suggested := spending * (1 - rule.savingsPct/100)
		recs = append(recs, models.Recommendation{
			TripID:        tripID,
			Category:      category,
			Title:         rule.title,
			Description:   rule.description,
			CurrentCost:   spending,
			SuggestedCost: suggested,
			SavingsAmount: spending - suggested,
			SavingsPct:    rule.savingsPct,
			Reasoning:     rule.reasoning,
			Actionable:    true,
			Priority:      rule.priority,
		})
	}
	return recs
}
