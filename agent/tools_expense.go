package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"travel-concierge/api/analysis"
	"travel-concierge/api/models"
	"travel-concierge/api/mongodb"
)

func addExpense(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		Name     string  `json:"name"`
		Amount   float64 `json:"amount"`
		Date     string  `json:"date"`
		Category string  `json:"category"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	expense := &models.Expense{
		Name:     req.Name,
		Amount:   req.Amount,
		Date:     req.Date,
		Category: req.Category,
	}
	id, err := mongodb.CreateExpense(ctx, expense)
	if err != nil {
		return nil, err
	}
	return "Expense added successfully with ID: " + id, nil
}

func getAllExpenses(ctx context.Context, _ json.RawMessage) (any, error) {
	expenses, err := mongodb.GetExpenses(ctx, mongodb.ExpenseFilter{})
	if err != nil {
		return nil, err
	}
	return models.ExpenseList{Expenses: expenses, Total: analysis.Total(expenses)}, nil
}

func getExpenseByDate(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		Date string `json:"date"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	expenses, err := mongodb.GetExpenses(ctx, mongodb.ExpenseFilter{
		StartDate: req.Date,
		EndDate:   req.Date,
	})
	if err != nil {
		return nil, err
	}
	return models.ExpenseList{Expenses: expenses, Total: analysis.Total(expenses)}, nil
}

func getExpenseByDateRange(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
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
	return models.ExpenseList{Expenses: expenses, Total: analysis.Total(expenses)}, nil
}

func getExpensesByCategory(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	expenses, err := mongodb.GetExpenses(ctx, mongodb.ExpenseFilter{Category: req.Category})
	if err != nil {
		return nil, err
	}
	return models.ExpenseList{Expenses: expenses, Total: analysis.Total(expenses)}, nil
}

func getAllCategories(ctx context.Context, _ json.RawMessage) (any, error) {
	return mongodb.GetAllCategories(ctx)
}

func updateExpense(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		ExpenseID string `json:"expense_id"`
		models.ExpenseUpdate
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	found, err := mongodb.UpdateExpense(ctx, req.ExpenseID, req.ExpenseUpdate)
	if err != nil {
		return nil, err
	}
	if !found {
		return "Expense not found", nil
	}
	return "Expense updated successfully", nil
}

func deleteExpense(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		ExpenseID string `json:"expense_id"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if err := mongodb.DeleteExpense(ctx, req.ExpenseID); err != nil {
		return nil, err
	}
	return "Expense deleted successfully", nil
}

func addBudget(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		Amount float64 `json:"amount"`
		Month  int     `json:"month"`
		Year   int     `json:"year"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}

	id, err := mongodb.CreateBudget(ctx, &models.Budget{
		Amount: req.Amount,
		Month:  req.Month,
		Year:   req.Year,
	})
	if err != nil {
		return nil, err
	}
	return "Budget added successfully with ID: " + id, nil
}

func getCurrentMonthBudget(ctx context.Context, _ json.RawMessage) (any, error) {
	budget, err := mongodb.GetCurrentMonthBudget(ctx)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return "No budget set for the current month", nil
	}
	return budget, nil
}

func updateBudget(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		BudgetID string `json:"budget_id"`
		models.BudgetUpdate
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	found, err := mongodb.UpdateBudget(ctx, req.BudgetID, req.BudgetUpdate)
	if err != nil {
		return nil, err
	}
	if !found {
		return "Budget not found", nil
	}
	return "Budget updated successfully", nil
}

func deleteBudget(ctx context.Context, args json.RawMessage) (any, error) {
	var req struct {
		BudgetID string `json:"budget_id"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if err := mongodb.DeleteBudget(ctx, req.BudgetID); err != nil {
		return nil, err
	}
	return "Budget deleted successfully", nil
}

// getExpenseSummary rolls up the current month: total, per-category sums, the
// expense list, and the month's budget if one is set.
func getExpenseSummary(ctx context.Context, _ json.RawMessage) (any, error) {
	now := time.Now()
	start := now.Format("2006-01") + "-01"
	end := now.Format("2006-01-02")

	expenses, err := mongodb.GetExpenses(ctx, mongodb.ExpenseFilter{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, err
	}

	budget, err := mongodb.GetCurrentMonthBudget(ctx)
	if err != nil {
		return nil, err
	}

	return models.ExpenseSummary{
		Total:      analysis.Total(expenses),
		Categories: analysis.CategoryTotals(expenses),
		Expenses:   expenses,
		Budget:     budget,
	}, nil
}
