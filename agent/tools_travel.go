package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"travel-concierge/api/advisor"
	"travel-concierge/api/mongodb"
)

func saveItinerary(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		UserID    string         `json:"user_id"`
		Itinerary map[string]any `json:"itinerary"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if req.UserID == "" {
		req.UserID = "default_user"
	}
	if len(req.Itinerary) == 0 {
		return map[string]string{
			"status":  "error",
			"message": "No itinerary found in the current state to save.",
		}, nil
	}

	if err := mongodb.SaveItinerary(ctx, req.UserID, req.Itinerary); err != nil {
		return nil, err
	}
	return map[string]string{
		"status":  "success",
		"message": "Itinerary saved successfully for user " + req.UserID,
		"user_id": req.UserID,
	}, nil
}

func loadItinerary(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	doc, err := mongodb.GetItinerary(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return map[string]string{
			"status":  "not_found",
			"message": "No saved itinerary found for user " + req.UserID,
		}, nil
	}
	return map[string]any{
		"status":    "success",
		"message":   "Itinerary loaded successfully for user " + req.UserID,
		"itinerary": doc.Itinerary,
	}, nil
}

func deleteItinerary(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	found, err := mongodb.DeleteItinerary(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !found {
		return map[string]string{
			"status":  "not_found",
			"message": "No saved itinerary found for user " + req.UserID,
		}, nil
	}
	return map[string]string{
		"status":  "success",
		"message": "Itinerary deleted successfully for user " + req.UserID,
	}, nil
}

func getWeatherForecast(_ context.Context, args json.RawMessage) (any, error) {
	var req struct {
		Destination string `json:"destination"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if req.StartDate == "" || req.EndDate == "" {
		return map[string]string{
			"forecast": fmt.Sprintf("The weather in %s is sunny with a high of 25°C.", req.Destination),
		}, nil
	}
	return map[string]string{
		"forecast": advisor.ForecastSummary(req.Destination, req.StartDate, req.EndDate),
	}, nil
}

// getTrafficConditions is a canned placeholder; a live deployment would call
// a maps API here.
func getTrafficConditions(_ context.Context, args json.RawMessage) (any, error) {
	var req struct {
		StartLocation string `json:"start_location"`
		EndLocation   string `json:"end_location"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return map[string]string{
		"conditions": fmt.Sprintf("The traffic between %s and %s is light.",
			req.StartLocation, req.EndLocation),
	}, nil
}

func getLocalCustoms(_ context.Context, args json.RawMessage) (any, error) {
	var req struct {
		Destination string `json:"destination"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return map[string]string{"advice": advisor.LocalCustomsNote(req.Destination)}, nil
}
