package advisor

import (
	"fmt"
	"strings"
	"time"
)

type DailyWeather struct {
	Date        string `json:"date"`
	TempMin     int    `json:"temp_min"`
	TempMax     int    `json:"temp_max"`
	Description string `json:"description"`
}

// baseTemperature is the destination lookup behind the mock forecast. The
// default of 25°C applies to unknown destinations.
func baseTemperature(destination string) int {
	dest := strings.ToLower(destination)
	switch {
	case containsAny(dest, "mumbai", "chennai"):
		return 30
	case containsAny(dest, "delhi", "jaipur"):
		return 28
	case containsAny(dest, "bangalore", "pune"):
		return 24
	case containsAny(dest, "himachal", "kashmir"):
		return 15
	}
	return 25
}

// seasonalAdjustment shifts the base temperature: winter months −5, monsoon
// months −2.
func seasonalAdjustment(month time.Month) int {
	switch month {
	case time.December, time.January, time.February:
		return -5
	case time.June, time.July, time.August, time.September:
		return -2
	}
	return 0
}

// DayForecast returns the mock weather for a destination on a given day.
func DayForecast(destination string, date time.Time) DailyWeather {
	base := baseTemperature(destination) + seasonalAdjustment(date.Month())

	description := "sunny"
	switch date.Month() {
	case time.June, time.July, time.August, time.September:
		description = "humid with showers"
	case time.December, time.January, time.February:
		description = "cool and clear"
	}

	return DailyWeather{
		Date:        date.Format("2006-01-02"),
		TempMin:     base - 3,
		TempMax:     base + 5,
		Description: description,
	}
}

// RangeForecast returns day-by-day mock weather for a trip. Both dates are
// YYYY-MM-DD and inclusive.
func RangeForecast(destination, startDate, endDate string) ([]DailyWeather, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s before start date %s", endDate, startDate)
	}

	var forecast []DailyWeather
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		forecast = append(forecast, DayForecast(destination, d))
	}
	return forecast, nil
}

// ForecastSummary is the one-line weather blurb used in prompts.
func ForecastSummary(destination, startDate, endDate string) string {
	return fmt.Sprintf(
		"The weather in %s from %s to %s is expected to be warm and sunny, with average temperatures between 28°C and 32°C. A chance of light evening showers.",
		destination, startDate, endDate)
}
