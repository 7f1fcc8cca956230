package mongodb

import (
	"context"
	"fmt"
	"time"

	"travel-concierge/api/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// dateLayout is the stored form of expense dates. Zero-padded and fixed-width,
// so lexicographic comparison on the field matches chronological order.
const dateLayout = "2006-01-02T15:04:05"

// NormalizeDate converts a YYYY-MM-DD input into the stored timestamp form.
func NormalizeDate(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}
	return t.Format(dateLayout), nil
}

// ExpenseFilter narrows expense queries. Empty fields are ignored. Dates are
// YYYY-MM-DD and both bounds are inclusive.
type ExpenseFilter struct {
	StartDate string
	EndDate   string
	Category  string
}

func (f ExpenseFilter) query() (bson.M, error) {
	filter := bson.M{}
	dateFilter := bson.M{}
	if f.StartDate != "" {
		start, err := NormalizeDate(f.StartDate)
		if err != nil {
			return nil, err
		}
		dateFilter["$gte"] = start
	}
	if f.EndDate != "" {
		end, err := NormalizeDate(f.EndDate)
		if err != nil {
			return nil, err
		}
		dateFilter["$lte"] = end
	}
	if len(dateFilter) > 0 {
		filter["date"] = dateFilter
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	return filter, nil
}

func CreateExpense(ctx context.Context, expense *models.Expense) (string, error) {
	normalized, err := NormalizeDate(expense.Date)
	if err != nil {
		return "", err
	}
	expense.ID = uuid.NewString()
	expense.Date = normalized

	if _, err := collection(ExpenseCollection).InsertOne(ctx, expense); err != nil {
		return "", fmt.Errorf("error creating expense: %v", err)
	}
	return expense.ID, nil
}

func GetExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error) {
	query, err := filter.query()
	if err != nil {
		return nil, err
	}

	cursor, err := collection(ExpenseCollection).Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching expenses: %v", err)
	}
	defer cursor.Close(ctx)

	expenses := []models.Expense{}
	for cursor.Next(ctx) {
		var expense models.Expense
		if err := cursor.Decode(&expense); err != nil {
			return nil, fmt.Errorf("error decoding expense: %v", err)
		}
		expenses = append(expenses, expense)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return expenses, nil
}

// GetAllCategories returns the distinct category values across all expenses.
func GetAllCategories(ctx context.Context) ([]string, error) {
	result := collection(ExpenseCollection).Distinct(ctx, "category", bson.M{})
	if result.Err() != nil {
		return nil, fmt.Errorf("error fetching categories: %v", result.Err())
	}

	var raw []bson.RawValue
	if err := result.Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding categories: %v", err)
	}

	categories := []string{}
	for _, v := range raw {
		if s, ok := v.StringValueOK(); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// UpdateExpense merges the non-nil fields of update into the stored expense.
// The second return value reports whether the expense exists.
func UpdateExpense(ctx context.Context, expenseID string, update models.ExpenseUpdate) (bool, error) {
	fields := bson.M{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Amount != nil {
		fields["amount"] = *update.Amount
	}
	if update.Date != nil {
		normalized, err := NormalizeDate(*update.Date)
		if err != nil {
			return false, err
		}
		fields["date"] = normalized
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if len(fields) == 0 {
		return true, nil
	}

	result, err := collection(ExpenseCollection).UpdateOne(
		ctx,
		bson.M{"_id": expenseID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return false, fmt.Errorf("error updating expense: %v", err)
	}
	return result.MatchedCount > 0, nil
}

func DeleteExpense(ctx context.Context, expenseID string) error {
	_, err := collection(ExpenseCollection).DeleteOne(ctx, bson.M{"_id": expenseID})
	if err != nil {
		return fmt.Errorf("error deleting expense: %v", err)
	}
	return nil
}
