package advisor

import (
	"fmt"
	"strings"
	"time"
)

type DailyOutfit struct {
	Date           string `json:"date"`
	DayNumber      int    `json:"day_number"`
	WeatherSummary string `json:"weather_summary"`
	MainActivity   string `json:"main_activity"`
	Outfit         string `json:"outfit"`
	ActivityGear   string `json:"activity_gear"`
	Accessories    string `json:"weather_accessories"`
	CulturalNote   string `json:"cultural_notes"`
}

type OutfitPlan struct {
	Destination  string        `json:"destination"`
	TripDuration int           `json:"trip_duration"`
	DailyOutfits []DailyOutfit `json:"daily_outfits"`
	Essentials   []string      `json:"packing_essentials"`
	Versatile    []string      `json:"versatile_pieces"`
}

// PlanOutfits builds a day-by-day outfit plan for the trip, rotating through
// the planned activities and keyed to the mock weather.
func PlanOutfits(destination, startDate, endDate string, activities []string) (OutfitPlan, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return OutfitPlan{}, fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return OutfitPlan{}, fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
	}
	if end.Before(start) {
		return OutfitPlan{}, fmt.Errorf("end date %s before start date %s", endDate, startDate)
	}

	cleaned := make([]string, 0, len(activities))
	for _, a := range activities {
		if a = strings.TrimSpace(a); a != "" {
			cleaned = append(cleaned, strings.ToLower(a))
		}
	}
	if len(cleaned) == 0 {
		cleaned = []string{"sightseeing"}
	}

	plan := OutfitPlan{
		Destination:  destination,
		TripDuration: int(end.Sub(start).Hours()/24) + 1,
		Essentials:   packingEssentials(destination),
		Versatile: []string{
			"Neutral-colored pants that pair with every top",
			"A light layer for evenings and air conditioning",
			"Comfortable walking shoes that also pass at dinner",
		},
	}

	day := 1
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		weather := DayForecast(destination, d)
		activity := cleaned[(day-1)%len(cleaned)]

		plan.DailyOutfits = append(plan.DailyOutfits, DailyOutfit{
			Date:           weather.Date,
			DayNumber:      day,
			WeatherSummary: fmt.Sprintf("%s, %d-%d°C", weather.Description, weather.TempMin, weather.TempMax),
			MainActivity:   activity,
			Outfit:         outfitFor(activity, weather),
			ActivityGear:   gearFor(activity),
			Accessories:    accessoriesFor(weather),
			CulturalNote:   LocalCustomsNote(destination),
		})
		day++
	}

	return plan, nil
}

func outfitFor(activity string, weather DailyWeather) string {
	switch {
	case containsAny(activity, "business", "meeting"):
		return "Formal shirt, trousers, blazer"
	case containsAny(activity, "temple", "religious", "spiritual"):
		return "Long-sleeve top, long pants or skirt, scarf"
	case containsAny(activity, "hike", "trek", "adventure"):
		return "Quick-dry shirt, convertible pants, sturdy shoes"
	case containsAny(activity, "beach", "swim"):
		return "Swimwear with a cover-up, sandals"
	case weather.TempMax >= 30:
		return "Light cotton shirt, breathable pants, sandals"
	case weather.TempMax <= 18:
		return "Layered top, warm jacket, closed shoes"
	}
	return "Casual shirt, comfortable pants, walking shoes"
}

func gearFor(activity string) string {
	switch {
	case containsAny(activity, "hike", "trek"):
		return "Daypack, water bottle, sun hat"
	case containsAny(activity, "beach", "swim"):
		return "Towel, waterproof bag"
	case containsAny(activity, "business"):
		return "Laptop bag, notepad"
	}
	return "Daypack"
}

func accessoriesFor(weather DailyWeather) string {
	switch {
	case strings.Contains(weather.Description, "showers"):
		return "Compact umbrella, waterproof footwear"
	case weather.TempMax >= 30:
		return "Sunglasses, sunscreen, hat"
	case weather.TempMin <= 10:
		return "Scarf, gloves"
	}
	return "Sunglasses"
}

func packingEssentials(destination string) []string {
	essentials := []string{
		"Travel documents and copies",
		"Phone charger and power adapter",
		"Basic toiletries",
		"Any personal medication",
	}
	if containsAny(strings.ToLower(destination), indiaKeywords...) {
		essentials = append(essentials, "Scarf for temple visits")
	}
	return essentials
}
