package analysis

import (
	"testing"

	"travel-concierge/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exp(name string, amount float64, date, category string) models.Expense {
	return models.Expense{Name: name, Amount: amount, Date: date, Category: category}
}

func TestCategoryTotalsSumToGrandTotal(t *testing.T) {
	expenses := []models.Expense{
		exp("lunch", 450, "2025-03-01T00:00:00", "Food"),
		exp("taxi", 220, "2025-03-01T00:00:00", "Transport"),
		exp("dinner", 800, "2025-03-02T00:00:00", "Food"),
		exp("museum", 150, "2025-03-03T00:00:00", ""),
	}

	totals := CategoryTotals(expenses)
	var sum float64
	for _, v := range totals {
		sum += v
	}
	assert.Equal(t, Total(expenses), sum)
	assert.Equal(t, 1250.0, totals["Food"])
	assert.Equal(t, 150.0, totals["Uncategorized"])
}

func TestTopCategoriesOrdering(t *testing.T) {
	totals := map[string]float64{
		"Food":      1000,
		"Transport": 500,
		"Hotels":    1000,
		"Misc":      100,
	}

	top := TopCategories(totals, 3)
	require.Len(t, top, 3)
	// Ties break alphabetically
	assert.Equal(t, []string{"Food", "Hotels", "Transport"}, top)
}

func TestBuildDashboard(t *testing.T) {
	expenses := make([]models.Expense, 0, 15)
	for i := 0; i < 15; i++ {
		expenses = append(expenses, exp("item", 10, "2025-03-01T00:00:00", "Food"))
	}

	dash := BuildDashboard(expenses, "2025-03-01", "2025-03-31")
	assert.Equal(t, 150.0, dash.TotalAmount)
	assert.Equal(t, 15, dash.ExpenseCount)
	assert.Len(t, dash.Recent, 10)

	var sum float64
	for _, v := range dash.Categories {
		sum += v
	}
	assert.Equal(t, dash.TotalAmount, sum)
}

func TestBuildDashboardEmpty(t *testing.T) {
	dash := BuildDashboard(nil, "", "")
	assert.Zero(t, dash.TotalAmount)
	assert.Zero(t, dash.ExpenseCount)
	assert.Empty(t, dash.Recent)
	assert.Empty(t, dash.Categories)
}

func TestClassifyBoundary(t *testing.T) {
	// Exactly 80% of budget is on_track, not under_budget.
	assert.Equal(t, models.StatusOnTrack, classify(800, 1000))
	assert.Equal(t, models.StatusUnderBudget, classify(799.99, 1000))
	assert.Equal(t, models.StatusOnTrack, classify(1000, 1000))
	assert.Equal(t, models.StatusOverBudget, classify(1000.01, 1000))
}

func TestClassifyMonotonic(t *testing.T) {
	// Increasing spend never moves the status backwards.
	rank := map[string]int{
		models.StatusUnderBudget: 0,
		models.StatusOnTrack:     1,
		models.StatusOverBudget:  2,
	}

	budget := 1000.0
	prev := -1
	for actual := 0.0; actual <= 2000; actual += 50 {
		r := rank[classify(actual, budget)]
		assert.GreaterOrEqual(t, r, prev, "status regressed at actual=%v", actual)
		prev = r
	}
}

func TestCompareBudget(t *testing.T) {
	expenses := []models.Expense{
		exp("flight", 9000, "2025-03-01T00:00:00", "Flights"),
		exp("hotel", 4000, "2025-03-02T00:00:00", "Hotels"),
	}
	budgetCategories := map[string]float64{
		"Flights": 10000,
		"Hotels":  3000,
		"Food":    2000,
	}

	result := CompareBudget(expenses, 15000, budgetCategories)
	assert.Equal(t, 13000.0, result.TotalActual)
	assert.Equal(t, models.StatusOnTrack, result.Status)
	require.Len(t, result.Categories, 3)

	byName := map[string]models.CategoryComparison{}
	for _, cat := range result.Categories {
		byName[cat.Category] = cat
	}
	assert.Equal(t, models.StatusOnTrack, byName["Flights"].Status)
	assert.Equal(t, models.StatusOverBudget, byName["Hotels"].Status)
	assert.Equal(t, models.StatusUnderBudget, byName["Food"].Status)

	require.NotNil(t, byName["Hotels"].PercentOver)
	assert.InDelta(t, 33.33, *byName["Hotels"].PercentOver, 0.01)
}

func TestCompareBudgetNoCategoriesBudget(t *testing.T) {
	expenses := []models.Expense{
		exp("dinner", 500, "2025-03-01T00:00:00", "Food"),
	}

	result := CompareBudget(expenses, 0, nil)
	// Category without a budgeted amount has no percent figure.
	require.Len(t, result.Categories, 1)
	assert.Nil(t, result.Categories[0].PercentOver)
	assert.Nil(t, result.PercentOver)
}

func TestNoBudgetComparison(t *testing.T) {
	result := NoBudgetComparison()
	assert.Equal(t, models.StatusNoBudget, result.Status)
	assert.NotNil(t, result.Categories)
	assert.NotEmpty(t, result.Insights)
}

func TestAnalyzeSpending(t *testing.T) {
	expenses := []models.Expense{
		exp("taxi", 200, "2025-03-05T00:00:00", "Transport"),
		exp("lunch", 400, "2025-03-01T00:00:00", "Food"),
		exp("dinner", 600, "2025-03-10T00:00:00", "Food"),
	}

	result := AnalyzeSpending(expenses)
	assert.Equal(t, 1200.0, result.TotalSpending)
	assert.Equal(t, 3, result.ExpenseCount)
	assert.Equal(t, 400.0, result.AverageExpense)
	assert.Equal(t, "2025-03-01T00:00:00", result.FirstExpense)
	assert.Equal(t, "2025-03-10T00:00:00", result.LastExpense)
	require.NotEmpty(t, result.TopCategories)
	assert.Equal(t, "Food", result.TopCategories[0])
	assert.NotEmpty(t, result.Insights)
}

func TestAnalyzeSpendingEmpty(t *testing.T) {
	result := AnalyzeSpending(nil)
	assert.Zero(t, result.TotalSpending)
	assert.Equal(t, []string{"No expenses found for the specified period."}, result.Insights)
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(3, 2025)
	assert.Equal(t, "2025-03-01", start)
	assert.Equal(t, "2025-04-01", end)

	start, end = MonthRange(12, 2025)
	assert.Equal(t, "2025-12-01", start)
	assert.Equal(t, "2026-01-01", end)
}
