package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzePackingBaseline(t *testing.T) {
	items := []string{"passport", "phone charger", "toothbrush", "medication", "t-shirt", "jeans"}
	analysis := AnalyzePacking(items, 3)

	assert.Equal(t, 6, analysis.TotalItems)
	assert.Equal(t, 100, analysis.EfficiencyScore)
	assert.Empty(t, analysis.MissingItems)
	assert.Equal(t, "good", analysis.SpaceEfficiency)
}

func TestAnalyzePackingTooManyItemsPerDay(t *testing.T) {
	items := make([]string, 10)
	for i := range items {
		items[i] = "t-shirt"
	}

	analysis := AnalyzePacking(items, 1)
	// 10 items for 1 day trips the per-day deduction, clothing redundancy,
	// and all four missing essentials: 100-20-10-20 = 50.
	assert.Equal(t, 50, analysis.EfficiencyScore)
	assert.Len(t, analysis.MissingItems, 4)
	assert.NotEmpty(t, analysis.Redundancies)
}

func TestAnalyzePackingOverweight(t *testing.T) {
	items := make([]string, 20)
	for i := range items {
		items[i] = "boots" // 1.2kg each, 24kg total
	}

	analysis := AnalyzePacking(items, 14)
	assert.Greater(t, analysis.EstimatedWeight, 20.0)

	found := false
	for _, op := range analysis.Opportunities {
		if op == "Total weight exceeds 20kg - consider lighter alternatives" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAnalyzePackingSpaceRating(t *testing.T) {
	many := make([]string, 35)
	for i := range many {
		many[i] = "socks"
	}
	assert.Equal(t, "moderate", AnalyzePacking(many, 30).SpaceEfficiency)

	tooMany := make([]string, 55)
	for i := range tooMany {
		tooMany[i] = "socks"
	}
	assert.Equal(t, "poor", AnalyzePacking(tooMany, 30).SpaceEfficiency)
}

func TestEstimateItemWeight(t *testing.T) {
	assert.Equal(t, 150, estimateItemWeight("cotton t-shirt"))
	assert.Equal(t, 1200, estimateItemWeight("hiking boots"))
	assert.Equal(t, 100, estimateItemWeight("mystery object"))
}

func TestCategorizeItem(t *testing.T) {
	assert.Equal(t, "documents", categorizeItem("passport"))
	assert.Equal(t, "charger", categorizeItem("phone charger"))
	assert.Equal(t, "clothing", categorizeItem("blue jeans"))
	assert.Equal(t, "misc", categorizeItem("frisbee"))
}

func TestOptimizePackingWeightSuggestions(t *testing.T) {
	light := OptimizePacking(PackingAnalysis{EstimatedWeight: 10})
	assert.Empty(t, light.WeightReduction)
	assert.Zero(t, light.SavedWeightKg)
	assert.Equal(t, 25, light.SavedSpacePct)

	heavy := OptimizePacking(PackingAnalysis{EstimatedWeight: 18})
	assert.NotEmpty(t, heavy.WeightReduction)
	assert.Equal(t, 2.5, heavy.SavedWeightKg)
}
