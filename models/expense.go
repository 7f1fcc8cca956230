package models

// Expense is a single spend record. Dates are stored as zero-padded ISO-8601
// strings so that lexicographic comparison matches chronological order.
type Expense struct {
	ID       string  `json:"id" bson:"_id,omitempty"`
	Name     string  `json:"name" bson:"name"`
	Amount   float64 `json:"amount" bson:"amount"`
	Date     string  `json:"date" bson:"date"`
	Category string  `json:"category" bson:"category"`
}

type ExpenseList struct {
	Expenses []Expense `json:"expenses"`
	Total    float64   `json:"total"`
}

// ExpenseSummary is the current-month rollup returned by the summary tool.
type ExpenseSummary struct {
	Total      float64            `json:"total"`
	Categories map[string]float64 `json:"categories"`
	Expenses   []Expense          `json:"expenses"`
	Budget     *Budget            `json:"budget"`
}

type Budget struct {
	ID     string  `json:"id" bson:"_id,omitempty"`
	Amount float64 `json:"amount" bson:"amount"`
	Month  int     `json:"month" bson:"month"`
	Year   int     `json:"year" bson:"year"`
}

// ExpenseUpdate carries the optional fields of a partial expense update.
// Nil fields keep their stored value.
type ExpenseUpdate struct {
	Name     *string  `json:"name"`
	Amount   *float64 `json:"amount"`
	Date     *string  `json:"date"`
	Category *string  `json:"category"`
}

type BudgetUpdate struct {
	Amount *float64 `json:"amount"`
	Month  *int     `json:"month"`
	Year   *int     `json:"year"`
}

// DashboardData backs the expense dashboard UI.
type DashboardData struct {
	TotalAmount  float64            `json:"total_amount"`
	ExpenseCount int                `json:"expense_count"`
	Categories   map[string]float64 `json:"categories"`
	Recent       []Expense          `json:"recent"`
	StartDate    string             `json:"start_date,omitempty"`
	EndDate      string             `json:"end_date,omitempty"`
}
