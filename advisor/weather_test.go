package advisor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseTemperature(t *testing.T) {
	assert.Equal(t, 30, baseTemperature("Mumbai"))
	assert.Equal(t, 28, baseTemperature("Jaipur, Rajasthan"))
	assert.Equal(t, 24, baseTemperature("Bangalore"))
	assert.Equal(t, 15, baseTemperature("Himachal Pradesh"))
	assert.Equal(t, 25, baseTemperature("Somewhere Else"))
}

func TestDayForecastSeasons(t *testing.T) {
	winter := DayForecast("Delhi", time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))
	// Base 28 - 5 winter adjustment = 23; spread is -3/+5.
	assert.Equal(t, 20, winter.TempMin)
	assert.Equal(t, 28, winter.TempMax)
	assert.Equal(t, "cool and clear", winter.Description)

	monsoon := DayForecast("Delhi", time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 23, monsoon.TempMin)
	assert.Equal(t, 31, monsoon.TempMax)
	assert.Equal(t, "humid with showers", monsoon.Description)

	spring := DayForecast("Delhi", time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "sunny", spring.Description)
}

func TestRangeForecast(t *testing.T) {
	forecast, err := RangeForecast("Goa", "2025-03-01", "2025-03-05")
	require.NoError(t, err)
	require.Len(t, forecast, 5)
	assert.Equal(t, "2025-03-01", forecast[0].Date)
	assert.Equal(t, "2025-03-05", forecast[4].Date)
}

func TestRangeForecastInvalidDates(t *testing.T) {
	_, err := RangeForecast("Goa", "not-a-date", "2025-03-05")
	assert.Error(t, err)

	_, err = RangeForecast("Goa", "2025-03-05", "2025-03-01")
	assert.Error(t, err)
}
