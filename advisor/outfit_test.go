package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanOutfits(t *testing.T) {
	plan, err := PlanOutfits("Goa", "2025-03-01", "2025-03-04", []string{"beach", "hiking"})
	require.NoError(t, err)

	assert.Equal(t, 4, plan.TripDuration)
	require.Len(t, plan.DailyOutfits, 4)

	// Activities rotate day by day.
	assert.Equal(t, "beach", plan.DailyOutfits[0].MainActivity)
	assert.Equal(t, "hiking", plan.DailyOutfits[1].MainActivity)
	assert.Equal(t, "beach", plan.DailyOutfits[2].MainActivity)

	assert.Equal(t, "2025-03-01", plan.DailyOutfits[0].Date)
	assert.Equal(t, 1, plan.DailyOutfits[0].DayNumber)
	assert.NotEmpty(t, plan.Essentials)
	assert.NotEmpty(t, plan.Versatile)
}

func TestPlanOutfitsDefaultActivity(t *testing.T) {
	plan, err := PlanOutfits("Delhi", "2025-03-01", "2025-03-01", nil)
	require.NoError(t, err)
	require.Len(t, plan.DailyOutfits, 1)
	assert.Equal(t, "sightseeing", plan.DailyOutfits[0].MainActivity)
}

func TestPlanOutfitsInvalidDates(t *testing.T) {
	_, err := PlanOutfits("Delhi", "bad", "2025-03-01", nil)
	assert.Error(t, err)

	_, err = PlanOutfits("Delhi", "2025-03-05", "2025-03-01", nil)
	assert.Error(t, err)
}

func TestOutfitForActivity(t *testing.T) {
	hot := DailyWeather{TempMin: 27, TempMax: 35, Description: "sunny"}
	assert.Equal(t, "Formal shirt, trousers, blazer", outfitFor("business meeting", hot))
	assert.Equal(t, "Long-sleeve top, long pants or skirt, scarf", outfitFor("temple visit", hot))
	assert.Equal(t, "Light cotton shirt, breathable pants, sandals", outfitFor("wandering", hot))

	cold := DailyWeather{TempMin: 8, TempMax: 15, Description: "cool and clear"}
	assert.Equal(t, "Layered top, warm jacket, closed shoes", outfitFor("wandering", cold))
}

func TestAccessoriesForWeather(t *testing.T) {
	rainy := DailyWeather{TempMin: 22, TempMax: 28, Description: "humid with showers"}
	assert.Equal(t, "Compact umbrella, waterproof footwear", accessoriesFor(rainy))

	hot := DailyWeather{TempMin: 26, TempMax: 34, Description: "sunny"}
	assert.Equal(t, "Sunglasses, sunscreen, hat", accessoriesFor(hot))
}

func TestPackingEssentialsIndia(t *testing.T) {
	assert.Contains(t, packingEssentials("Jaipur"), "Scarf for temple visits")
	assert.NotContains(t, packingEssentials("Paris"), "Scarf for temple visits")
}
