package models

type BudgetPlan struct {
	ID          string             `json:"id" bson:"_id,omitempty"`
	TripID      string             `json:"trip_id,omitempty" bson:"trip_id,omitempty"`
	Destination string             `json:"destination" bson:"destination"`
	StartDate   string             `json:"start_date" bson:"start_date"`
	EndDate     string             `json:"end_date" bson:"end_date"`
	Categories  map[string]float64 `json:"categories" bson:"categories"`
	TotalBudget float64            `json:"total_budget" bson:"total_budget"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   string             `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

type DealAlert struct {
	ID            string  `json:"id" bson:"_id,omitempty"`
	TripID        string  `json:"trip_id,omitempty" bson:"trip_id,omitempty"`
	DealType      string  `json:"deal_type" bson:"deal_type"`
	Title         string  `json:"title" bson:"title"`
	Description   string  `json:"description" bson:"description"`
	OriginalPrice float64 `json:"original_price" bson:"original_price"`
	DealPrice     float64 `json:"deal_price" bson:"deal_price"`
	SavingsAmount float64 `json:"savings_amount" bson:"savings_amount"`
	SavingsPct    float64 `json:"savings_percent" bson:"savings_percent"`
	Source        string  `json:"source" bson:"source"`
	URL           string  `json:"url,omitempty" bson:"url,omitempty"`
	ExpiresAt     string  `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

type Recommendation struct {
	ID            string  `json:"id" bson:"_id,omitempty"`
	TripID        string  `json:"trip_id,omitempty" bson:"trip_id,omitempty"`
	Category      string  `json:"category" bson:"category"`
	Title         string  `json:"title" bson:"title"`
	Description   string  `json:"description" bson:"description"`
	CurrentCost   float64 `json:"current_cost" bson:"current_cost"`
	SuggestedCost float64 `json:"suggested_cost" bson:"suggested_cost"`
	SavingsAmount float64 `json:"savings_amount" bson:"savings_amount"`
	SavingsPct    float64 `json:"savings_percent" bson:"savings_percent"`
	Reasoning     string  `json:"reasoning" bson:"reasoning"`
	Actionable    bool    `json:"actionable" bson:"actionable"`
	Priority      int     `json:"priority" bson:"priority"`
	CreatedAt     string  `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// SpendingPattern is a derived summary document. It is recomputable from the
// expense collection and carries no authority of its own.
type SpendingPattern struct {
	ID            string             `json:"id" bson:"_id,omitempty"`
	UserID        string             `json:"user_id" bson:"user_id"`
	Period        string             `json:"period" bson:"period"`
	StartDate     string             `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate       string             `json:"end_date,omitempty" bson:"end_date,omitempty"`
	TotalSpending float64            `json:"total_spending" bson:"total_spending"`
	Breakdown     map[string]float64 `json:"category_breakdown" bson:"category_breakdown"`
	AverageDaily  float64            `json:"average_daily_spending" bson:"average_daily_spending"`
	TopCategories []string           `json:"top_categories" bson:"top_categories"`
	Insights      []string           `json:"insights" bson:"insights"`
	CreatedAt     string             `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// Budget-vs-actual classification statuses. A category sitting exactly at 80%
// of its budget counts as on_track.
const (
	StatusOnTrack     = "on_track"
	StatusOverBudget  = "over_budget"
	StatusUnderBudget = "under_budget"
	StatusNoBudget    = "no_budget"
)

type CategoryComparison struct {
	Category    string   `json:"category"`
	Budgeted    float64  `json:"budgeted_amount"`
	Actual      float64  `json:"actual_amount"`
	Difference  float64  `json:"difference"`
	PercentOver *float64 `json:"percent_over_budget"`
	Status      string   `json:"status"`
}

type BudgetComparison struct {
	TotalBudgeted float64              `json:"total_budgeted"`
	TotalActual   float64              `json:"total_actual"`
	Difference    float64              `json:"difference"`
	PercentOver   *float64             `json:"percent_over_budget"`
	Categories    []CategoryComparison `json:"category_comparisons"`
	Status        string               `json:"status"`
	Insights      []string             `json:"insights"`
}

type SpendingAnalysis struct {
	TotalSpending  float64            `json:"total_spending"`
	ExpenseCount   int                `json:"expense_count"`
	AverageExpense float64            `json:"average_expense"`
	Breakdown      map[string]float64 `json:"category_breakdown"`
	TopCategories  []string           `json:"top_categories"`
	FirstExpense   string             `json:"first_expense,omitempty"`
	LastExpense    string             `json:"last_expense,omitempty"`
	Insights       []string           `json:"insights"`
}

type BudgetForecast struct {
	Destination    string             `json:"destination"`
	DurationDays   int                `json:"duration_days"`
	DailyBudget    float64            `json:"predicted_daily_budget"`
	TotalBudget    float64            `json:"predicted_total_budget"`
	Breakdown      map[string]float64 `json:"category_breakdown"`
	Confidence     string             `json:"confidence"`
	BasedOnHistory bool               `json:"based_on_history"`
}
