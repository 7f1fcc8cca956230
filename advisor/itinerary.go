package advisor

import (
	"fmt"
	"sort"

	"travel-concierge/api/models"
)

// ExtractItineraryDetails projects the nested itinerary blob down to the
// fields the packing tools need: destination, dates, and the set of activity
// categories. Hotel events count as Leisure and flights as Travel.
func ExtractItineraryDetails(itinerary map[string]any) (*models.ItineraryDetails, error) {
	if len(itinerary) == 0 {
		return nil, fmt.Errorf("no itinerary found")
	}

	details := &models.ItineraryDetails{
		Destination: stringField(itinerary, "destination"),
		StartDate:   stringField(itinerary, "startDate"),
		EndDate:     stringField(itinerary, "endDate"),
	}

	activities := map[string]bool{}
	if days, ok := itinerary["days"].([]any); ok {
		for _, d := range days {
			day, ok := d.(map[string]any)
			if !ok {
				continue
			}
			events, ok := day["events"].([]any)
			if !ok {
				continue
			}
			for _, e := range events {
				event, ok := e.(map[string]any)
				if !ok {
					continue
				}
				switch {
				case stringField(event, "category") != "":
					activities[stringField(event, "category")] = true
				case stringField(event, "eventType") == "hotel":
					activities["Leisure"] = true
				case stringField(event, "eventType") == "flight":
					activities["Travel"] = true
				}
			}
		}
	}

	for activity := range activities {
		details.Activities = append(details.Activities, activity)
	}
	sort.Strings(details.Activities)
	if len(details.Activities) == 0 {
		details.Activities = []string{"General sightseeing"}
	}

	return details, nil
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
