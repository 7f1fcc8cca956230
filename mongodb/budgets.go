package mongodb

import (
	"context"
	"fmt"
	"time"

	"travel-concierge/api/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func CreateBudget(ctx context.Context, budget *models.Budget) (string, error) {
	budget.ID = uuid.NewString()
	if _, err := collection(BudgetCollection).InsertOne(ctx, budget); err != nil {
		return "", fmt.Errorf("error creating budget: %v", err)
	}
	return budget.ID, nil
}

// GetBudgets filters by month and/or year; zero values are ignored.
func GetBudgets(ctx context.Context, month, year int) ([]models.Budget, error) {
	filter := bson.M{}
	if month != 0 {
		filter["month"] = month
	}
	if year != 0 {
		filter["year"] = year
	}

	cursor, err := collection(BudgetCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching budgets: %v", err)
	}
	defer cursor.Close(ctx)

	budgets := []models.Budget{}
	for cursor.Next(ctx) {
		var budget models.Budget
		if err := cursor.Decode(&budget); err != nil {
			return nil, fmt.Errorf("error decoding budget: %v", err)
		}
		budgets = append(budgets, budget)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return budgets, nil
}

// GetCurrentMonthBudget returns the first budget matching the current month
// and year, or nil when none is set. Duplicate (month, year) documents are
// possible by convention; the first match wins.
func GetCurrentMonthBudget(ctx context.Context) (*models.Budget, error) {
	now := time.Now()
	budgets, err := GetBudgets(ctx, int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return nil, nil
	}
	return &budgets[0], nil
}

func UpdateBudget(ctx context.Context, budgetID string, update models.BudgetUpdate) (bool, error) {
	fields := bson.M{}
	if update.Amount != nil {
		fields["amount"] = *update.Amount
	}
	if update.Month != nil {
		fields["month"] = *update.Month
	}
	if update.Year != nil {
		fields["year"] = *update.Year
	}
	if len(fields) == 0 {
		return true, nil
	}

	result, err := collection(BudgetCollection).UpdateOne(
		ctx,
		bson.M{"_id": budgetID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return false, fmt.Errorf("error updating budget: %v", err)
	}
	return result.MatchedCount > 0, nil
}

func DeleteBudget(ctx context.Context, budgetID string) error {
	_, err := collection(BudgetCollection).DeleteOne(ctx, bson.M{"_id": budgetID})
	if err != nil {
		return fmt.Errorf("error deleting budget: %v", err)
	}
	return nil
}
