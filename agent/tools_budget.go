package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"travel-concierge/api/analysis"
	"travel-concierge/api/models"
	"travel-concierge/api/mongodb"
)

func analyzeSpendingPatterns(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
		Category  string `json:"category"`
		UserID    string `json:"user_id"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if req.UserID == "" {
		req.UserID = "default"
	}

	expenses, err := mongodb.GetExpenses(ctx, mongodb.ExpenseFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Category:  req.Category,
	})
	if err != nil {
		return nil, err
	}

	result := analysis.AnalyzeSpending(expenses)

	if len(expenses) > 0 {
		period := "all_time"
		if req.StartDate != "" || req.EndDate != "" {
			period = "custom"
		}
		pattern := &models.SpendingPattern{
			UserID:        req.UserID,
			Period:        period,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			TotalSpending: result.TotalSpending,
			Breakdown:     result.Breakdown,
			AverageDaily:  result.AverageExpense,
			TopCategories: result.TopCategories,
			Insights:      result.Insights,
		}
		if _, err := mongodb.CreateSpendingPattern(ctx, pattern); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// compareBudgetVsActual compares either a trip budget plan or a monthly
// budget against recorded spending. When several budget documents match, the
// first one wins.
func compareBudgetVsActual(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		TripID string `json:"trip_id"`
		Month  int    `json:"month"`
		Year   int    `json:"year"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	switch {
	case req.TripID != "":
		plans, err := mongodb.GetBudgetPlans(ctx, req.TripID, "")
		if err != nil {
			return nil, err
		}
		if len(plans) == 0 {
			return analysis.NoBudgetComparison(), nil
		}
		plan := plans[0]
		expenses, err := mongodb.GetExpenses(ctx, mongodb.ExpenseFilter{
			StartDate: plan.StartDate,
			EndDate:   plan.EndDate,
		})
		if err != nil {
			return nil, err
		}
		return analysis.CompareBudget(expenses, plan.TotalBudget, plan.Categories), nil

	case req.Month != 0 && req.Year != 0:
		budgets, err := mongodb.GetBudgets(ctx, req.Month, req.Year)
		if err != nil {
			return nil, err
		}
		if len(budgets) == 0 {
			return analysis.NoBudgetComparison(), nil
		}
		start, end := analysis.MonthRange(req.Month, req.Year)
		expenses, err := mongodb.GetExpenses(ctx, mongodb.ExpenseFilter{
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			return nil, err
		}
		return analysis.CompareBudget(expenses, budgets[0].Amount, nil), nil
	}

	return nil, fmt.Errorf("either trip_id or month and year are required")
}

func suggestOptimizations(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		TripID    string `json:"trip_id"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
		Max       int    `json:"max_recommendations"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	expenses, err := mongodb.GetExpenses(ctx, mongodb.ExpenseFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return "No expenses found for optimization analysis.", nil
	}

	recs := analysis.SuggestOptimizations(expenses, req.TripID, req.Max)
	for i := range recs {
		if _, err := mongodb.CreateRecommendation(ctx, &recs[i]); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

func createBudgetPlan(ctx context.Context, args json.RawMessage) (any, error) {
	var plan models.BudgetPlan
	if err := json.Unmarshal(args, &plan); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if plan.Destination == "" || plan.StartDate == "" || plan.EndDate == "" {
		return nil, fmt.Errorf("destination, start_date and end_date are required")
	}

	id, err := mongodb.CreateBudgetPlan(ctx, &plan)
	if err != nil {
		return nil, err
	}
	return "Budget plan created successfully with ID: " + id, nil
}

func getBudgetPlans(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		TripID string `json:"trip_id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return mongodb.GetBudgetPlans(ctx, req.TripID, req.Status)
}

func saveDealAlerts(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		TripID string             `json:"trip_id"`
		Deals  []models.DealAlert `json:"deals"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	ids := []string{}
	for i := range req.Deals {
		if req.TripID != "" {
			req.Deals[i].TripID = req.TripID
		}
		id, err := mongodb.CreateDealAlert(ctx, &req.Deals[i])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func getDealAlerts(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		TripID     string `json:"trip_id"`
		ActiveOnly *bool  `json:"active_only"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	activeOnly := req.ActiveOnly == nil || *req.ActiveOnly
	return mongodb.GetDealAlerts(ctx, req.TripID, activeOnly)
}

// trackPriceChanges reports a price drop against previously stored deals of
// the same type, or records the current price as a new alert.
func trackPriceChanges(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		TripID       string  `json:"trip_id"`
		ItemType     string  `json:"item_type"`
		ItemName     string  `json:"item_name"`
		CurrentPrice float64 `json:"current_price"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if req.TripID == "" {
		return nil, fmt.Errorf("trip_id is required")
	}

	deals, err := mongodb.GetDealAlerts(ctx, req.TripID, false)
	if err != nil {
		return nil, err
	}
	for _, deal := range deals {
		if deal.DealType == req.ItemType && deal.DealPrice > 0 && req.CurrentPrice < deal.DealPrice {
			return fmt.Sprintf("Price drop detected! %s is now %.2f (was %.2f)",
				req.ItemName, req.CurrentPrice, deal.DealPrice), nil
		}
	}

	_, err = mongodb.CreateDealAlert(ctx, &models.DealAlert{
		TripID:        req.TripID,
		DealType:      req.ItemType,
		Title:         "Price Alert: " + req.ItemName,
		Description:   fmt.Sprintf("Current price: %.2f", req.CurrentPrice),
		OriginalPrice: req.CurrentPrice,
		DealPrice:     req.CurrentPrice,
		Source:        "price_tracker",
	})
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("Price tracking started for %s at %.2f", req.ItemName, req.CurrentPrice), nil
}

func getPersonalizedRecommendations(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		UserID string `json:"user_id"`
		TripID string `json:"trip_id"`
		Limit  int    `json:"limit"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if req.UserID == "" {
		req.UserID = "default"
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	patterns, err := mongodb.GetSpendingPatterns(ctx, req.UserID, "")
	if err != nil {
		return nil, err
	}
	recs, err := mongodb.GetRecommendations(ctx, req.TripID, req.Limit)
	if err != nil {
		return nil, err
	}
	deals, err := mongodb.GetDealAlerts(ctx, req.TripID, true)
	if err != nil {
		return nil, err
	}
	if len(deals) > req.Limit {
		deals = deals[:req.Limit]
	}

	insights := []map[string]any{}
	for i, pattern := range patterns {
		if i >= 3 {
			break
		}
		if len(pattern.TopCategories) > 0 {
			insights = append(insights, map[string]any{
				"type":     "spending_pattern",
				"category": pattern.TopCategories[0],
				"insight": fmt.Sprintf(
					"Based on your spending history, %s is your highest spending category. Consider optimization here first.",
					pattern.TopCategories[0]),
				"priority": 9,
			})
		}
	}

	return map[string]any{
		"personalized_recommendations": recs,
		"active_deals":                 deals,
		"insights":                     insights,
		"based_on_patterns":            len(patterns) > 0,
	}, nil
}

func predictBudgetNeeds(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		Destination  string `json:"destination"`
		DurationDays int    `json:"duration_days"`
		UserID       string `json:"user_id"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if req.DurationDays <= 0 {
		return nil, fmt.Errorf("duration_days must be positive")
	}
	if req.UserID == "" {
		req.UserID = "default"
	}

	patterns, err := mongodb.GetSpendingPatterns(ctx, req.UserID, "")
	if err != nil {
		return nil, err
	}
	return analysis.ForecastBudget(req.Destination, req.DurationDays, patterns), nil
}
