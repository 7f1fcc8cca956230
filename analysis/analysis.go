// Package analysis holds the pure aggregation and classification logic over
// expense and budget records. Everything here is deterministic and operates
// on in-memory slices fetched by the callers.
package analysis

import (
	"fmt"
	"sort"

	"travel-concierge/api/models"
)

const defaultCurrency = "INR"

// previewCap bounds the expense preview list on the dashboard.
const previewCap = 10

// CategoryTotals sums expense amounts per category. Expenses without a
// category land under "Uncategorized".
func CategoryTotals(expenses []models.Expense) map[string]float64 {
	totals := map[string]float64{}
	for _, exp := range expenses {
		cat := exp.Category
		if cat == "" {
			cat = "Uncategorized"
		}
		totals[cat] += exp.Amount
	}
	return totals
}

// Total sums the amount field over all expenses.
func Total(expenses []models.Expense) float64 {
	var total float64
	for _, exp := range expenses {
		total += exp.Amount
	}
	return total
}

// TopCategories returns up to n category names ordered by descending spend.
// Ties break alphabetically so the ordering is stable.
func TopCategories(totals map[string]float64, n int) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if totals[names[i]] != totals[names[j]] {
			return totals[names[i]] > totals[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}

// BuildDashboard aggregates expenses into the dashboard payload: grand total,
// per-category sums, and a preview list capped at 10 in fetch order. Empty
// input yields zeroed aggregates, not an error.
func BuildDashboard(expenses []models.Expense, startDate, endDate string) models.DashboardData {
	recent := expenses
	if len(recent) > previewCap {
		recent = recent[:previewCap]
	}
	return models.DashboardData{
		TotalAmount:  Total(expenses),
		ExpenseCount: len(expenses),
		Categories:   CategoryTotals(expenses),
		Recent:       recent,
		StartDate:    startDate,
		EndDate:      endDate,
	}
}

// AnalyzeSpending produces the spending-pattern summary: totals, average,
// category breakdown, top-5 categories, date range, and insight strings.
func AnalyzeSpending(expenses []models.Expense) models.SpendingAnalysis {
	if len(expenses) == 0 {
		return models.SpendingAnalysis{
			Breakdown:     map[string]float64{},
			TopCategories: []string{},
			Insights:      []string{"No expenses found for the specified period."},
		}
	}

	total := Total(expenses)
	average := total / float64(len(expenses))
	breakdown := CategoryTotals(expenses)
	top := TopCategories(breakdown, 5)

	first, last := expenses[0].Date, expenses[0].Date
	for _, exp := range expenses[1:] {
		if exp.Date < first {
			first = exp.Date
		}
		if exp.Date > last {
			last = exp.Date
		}
	}

	insights := []string{
		fmt.Sprintf("Total spending: %s %.2f across %d expenses", defaultCurrency, total, len(expenses)),
		fmt.Sprintf("Average expense: %s %.2f", defaultCurrency, average),
	}
	if len(top) > 0 {
		insights = append(insights, fmt.Sprintf("Highest spending category: %s (%s %.2f)",
			top[0], defaultCurrency, breakdown[top[0]]))
	}
	if len(breakdown) > 1 {
		insights = append(insights, fmt.Sprintf("Expenses spread across %d categories", len(breakdown)))
	}

	return models.SpendingAnalysis{
		TotalSpending:  total,
		ExpenseCount:   len(expenses),
		AverageExpense: average,
		Breakdown:      breakdown,
		TopCategories:  top,
		FirstExpense:   first,
		LastExpense:    last,
		Insights:       insights,
	}
}

// classify maps an actual/budgeted pair onto a status. Spending above the
// budget is over_budget; below 80% of it is under_budget; anything from 80%
// up to and including the budget itself is on_track.
func classify(actual, budgeted float64) string {
	switch {
	case actual > budgeted:
		return models.StatusOverBudget
	case actual < budgeted*0.8:
		return models.StatusUnderBudget
	default:
		return models.StatusOnTrack
	}
}

// CompareBudget classifies actual spending against a budget, per category and
// overall. budgetCategories may be empty (monthly budgets carry only a total).
func CompareBudget(expenses []models.Expense, totalBudget float64, budgetCategories map[string]float64) models.BudgetComparison {
	actual := CategoryTotals(expenses)
	totalActual := Total(expenses)

	names := map[string]bool{}
	for name := range budgetCategories {
		names[name] = true
	}
	for name := range actual {
		names[name] = true
	}
	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	comparisons := make([]models.CategoryComparison, 0, len(ordered))
	for _, name := range ordered {
		budgeted := budgetCategories[name]
		spent := actual[name]
		diff := spent - budgeted

		var pctOver *float64
		if budgeted > 0 {
			v := diff / budgeted * 100
			pctOver = &v
		}

		comparisons = append(comparisons, models.CategoryComparison{
			Category:    name,
			Budgeted:    budgeted,
			Actual:      spent,
			Difference:  diff,
			PercentOver: pctOver,
			Status:      classify(spent, budgeted),
		})
	}

	diff := totalActual - totalBudget
	var pctOver *float64
	if totalBudget > 0 {
		v := diff / totalBudget * 100
		pctOver = &v
	}

	return models.BudgetComparison{
		TotalBudgeted: totalBudget,
		TotalActual:   totalActual,
		Difference:    diff,
		PercentOver:   pctOver,
		Categories:    comparisons,
		Status:        classify(totalActual, totalBudget),
		Insights:      []string{},
	}
}

// NoBudgetComparison is the result when no budget document matches the query.
func NoBudgetComparison() models.BudgetComparison {
	return models.BudgetComparison{
		Categories: []models.CategoryComparison{},
		Status:     models.StatusNoBudget,
		Insights:   []string{"No budget found for comparison."},
	}
}

// MonthRange gives the first day of the month and the first day of the next
// month (YYYY-MM-DD), the bounds fed to the expense range filter. Both bounds
// are inclusive there, so an expense stamped exactly midnight on the next
// month's first day falls into the earlier month as well.
func MonthRange(month, year int) (string, string) {
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	var end string
	if month == 12 {
		end = fmt.Sprintf("%04d-01-01", year+1)
	} else {
		end = fmt.Sprintf("%04d-%02d-01", year, month+1)
	}
	return start, end
}
