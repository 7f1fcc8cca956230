package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"travel-concierge/api/advisor"
	"travel-concierge/api/mongodb"
)

func getItineraryDetails(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if req.UserID == "" {
		req.UserID = "default_user"
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

	details, err := advisor.ExtractItineraryDetails(doc.Itinerary)
	if err != nil {
		return map[string]string{"status": "error", "message": err.Error()}, nil
	}
	return details, nil
}

func getWeatherForecastRange(_ context.Context, args json.RawMessage) (any, error) {
	var req struct {
		Destination string `json:"destination"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	forecast, err := advisor.RangeForecast(req.Destination, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"destination": req.Destination,
		"forecast":    forecast,
	}, nil
}

func analyzePackingEfficiency(_ context.Context, args json.RawMessage) (any, error) {
	var req struct {
		Items        []string `json:"items"`
		TripDuration int      `json:"trip_duration"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("items list is required")
	}
	return advisor.AnalyzePacking(req.Items, req.TripDuration), nil
}

func suggestPackingOptimizations(_ context.Context, args json.RawMessage) (any, error) {
	var req struct {
		Items        []string `json:"items"`
		TripDuration int      `json:"trip_duration"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("items list is required")
	}

	analysis := advisor.AnalyzePacking(req.Items, req.TripDuration)
	return map[string]any{
		"analysis":      analysis,
		"optimizations": advisor.OptimizePacking(analysis),
	}, nil
}

func getCulturalGuidelines(_ context.Context, args json.RawMessage) (any, error) {
	var req struct {
		Destination string   `json:"destination"`
		Activities  []string `json:"activities"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if req.Destination == "" {
		return nil, fmt.Errorf("destination is required")
	}
	return advisor.CulturalAdvice(req.Destination, req.Activities), nil
}

func createDailyOutfits(_ context.Context, args json.RawMessage) (any, error) {
	var req struct {
		Destination string   `json:"destination"`
		StartDate   string   `json:"start_date"`
		EndDate     string   `json:"end_date"`
		Activities  []string `json:"activities"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	plan, err := advisor.PlanOutfits(req.Destination, req.StartDate, req.EndDate, req.Activities)
	if err != nil {
		return nil, err
	}
	return plan, nil
}
