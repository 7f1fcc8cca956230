// Package advisor holds the deterministic travel-advice calculators: packing
// efficiency, cultural guidelines, weather heuristics, and outfit planning.
// All of them are keyword lookups over static tables.
package advisor

import (
	"math"
	"strings"
)

// itemWeights estimates grams per packed item, matched by substring in order,
// so "t-shirt" wins over the broader "shirt".
var itemWeights = []struct {
	key   string
	grams int
}{
	{"t-shirt", 150},
	{"shirt", 200},
	{"jeans", 600},
	{"pants", 400},
	{"jacket", 800},
	{"sweater", 500},
	{"underwear", 50},
	{"socks", 30},
	{"sneakers", 800},
	{"boots", 1200},
	{"sandals", 300},
	{"phone charger", 100},
	{"laptop", 2000},
	{"camera", 500},
	{"toothbrush", 20},
	{"sunscreen", 150},
	{"book", 300},
	{"umbrella", 400},
}

var essentialCategories = []string{"documents", "charger", "toiletries", "medication"}

type PackingAnalysis struct {
	TotalItems      int                `json:"total_items"`
	EstimatedWeight float64            `json:"estimated_weight_kg"`
	EfficiencyScore int                `json:"efficiency_score"`
	Opportunities   []string           `json:"optimization_opportunities"`
	WeightBreakdown map[string]float64 `json:"weight_breakdown"`
	SpaceEfficiency string             `json:"space_efficiency"`
	Redundancies    []string           `json:"redundancy_issues"`
	MissingItems    []string           `json:"missing_essentials"`
}

// estimateItemWeight resolves one item against the weight table, with
// category fallbacks for unmatched items.
func estimateItemWeight(item string) int {
	item = strings.ToLower(item)
	for _, w := range itemWeights {
		if strings.Contains(item, w.key) {
			return w.grams
		}
	}
	switch {
	case containsAny(item, "clothing", "shirt", "pants"):
		return 200
	case containsAny(item, "electronics", "charger", "device"):
		return 150
	case containsAny(item, "shoes", "footwear"):
		return 600
	}
	return 100
}

func categorizeItem(item string) string {
	switch {
	case containsAny(item, "passport", "visa", "ticket", "document"):
		return "documents"
	case containsAny(item, "charger", "laptop", "camera", "phone", "adapter"):
		return "charger"
	case containsAny(item, "toothbrush", "sunscreen", "shampoo", "soap", "toiletr"):
		return "toiletries"
	case containsAny(item, "medicine", "medication", "pill", "first aid"):
		return "medication"
	case containsAny(item, "shirt", "pants", "jeans", "jacket", "sweater", "dress", "underwear", "socks"):
		return "clothing"
	case containsAny(item, "shoes", "sneakers", "boots", "sandals"):
		return "footwear"
	}
	return "misc"
}

func containsAny(s string, keys ...string) bool {
	for _, key := range keys {
		if strings.Contains(s, key) {
			return true
		}
	}
	return false
}

// AnalyzePacking scores a packing list against the trip length. Deductions:
// more than 8 items per day, total weight over 20kg, clothing beyond 1.5x the
// trip duration, and each missing essential category.
func AnalyzePacking(items []string, tripDuration int) PackingAnalysis {
	if tripDuration < 1 {
		tripDuration = 1
	}

	analysis := PackingAnalysis{
		TotalItems:      len(items),
		EfficiencyScore: 100,
		Opportunities:   []string{},
		WeightBreakdown: map[string]float64{},
		SpaceEfficiency: "good",
		Redundancies:    []string{},
		MissingItems:    []string{},
	}

	totalGrams := 0
	clothingCount := 0
	packed := map[string]bool{}

	for _, item := range items {
		lower := strings.ToLower(strings.TrimSpace(item))
		grams := estimateItemWeight(lower)
		totalGrams += grams

		category := categorizeItem(lower)
		analysis.WeightBreakdown[category] = round2(analysis.WeightBreakdown[category] + float64(grams)/1000)
		packed[category] = true

		if containsAny(lower, "shirt", "pants", "jacket") {
			clothingCount++
		}
	}

	analysis.EstimatedWeight = round2(float64(totalGrams) / 1000)

	if float64(len(items))/float64(tripDuration) > 8 {
		analysis.EfficiencyScore -= 20
		analysis.Opportunities = append(analysis.Opportunities,
			"Consider reducing items - packing more than 8 items per day")
	}
	if analysis.EstimatedWeight > 20 {
		analysis.EfficiencyScore -= 15
		analysis.Opportunities = append(analysis.Opportunities,
			"Total weight exceeds 20kg - consider lighter alternatives")
	}
	if float64(clothingCount) > float64(tripDuration)*1.5 {
		analysis.EfficiencyScore -= 10
		analysis.Redundancies = append(analysis.Redundancies,
			"Excessive clothing items for trip duration")
	}
	for _, essential := range essentialCategories {
		if !packed[essential] {
			analysis.EfficiencyScore -= 5
			analysis.MissingItems = append(analysis.MissingItems, essential)
		}
	}

	switch {
	case len(items) > 50:
		analysis.SpaceEfficiency = "poor"
	case len(items) > 30:
		analysis.SpaceEfficiency = "moderate"
	}

	return analysis
}

type PackingOptimizations struct {
	WeightReduction []string `json:"weight_reduction"`
	SpaceSaving     []string `json:"space_saving"`
	MultiPurpose    []string `json:"multi_purpose_items"`
	Techniques      []string `json:"packing_techniques"`
	SavedWeightKg   float64  `json:"estimated_weight_savings_kg"`
	SavedSpacePct   int      `json:"estimated_space_savings_percent"`
}

// OptimizePacking suggests concrete reductions for a given analysis.
func OptimizePacking(analysis PackingAnalysis) PackingOptimizations {
	opts := PackingOptimizations{
		SpaceSaving: []string{
			"Roll clothes instead of folding (save 30% space)",
			"Use packing cubes for organization and compression",
			"Wear heaviest items (boots, jacket) while traveling",
			"Pack socks and underwear inside shoes",
			"Use compression bags for bulky items",
		},
		MultiPurpose: []string{
			"Sarong: towel, blanket, scarf, cover-up",
			"Convertible pants that zip into shorts",
			"Phone as camera, map, and reading device",
		},
		Techniques: []string{
			"Lay out everything, then remove a third",
			"One outfit per two days plus laundry",
		},
		SavedSpacePct: 25,
	}

	if analysis.EstimatedWeight > 15 {
		opts.WeightReduction = []string{
			"Replace heavy jeans with lighter travel pants (save ~200g per pair)",
			"Choose lightweight, quick-dry fabrics over cotton",
			"Limit shoes to 2 pairs maximum (wear heaviest while traveling)",
			"Use travel-size toiletries or solid alternatives",
			"Consider leaving laptop if not essential (save ~2kg)",
		}
		opts.SavedWeightKg = 2.5
	}

	return opts
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
