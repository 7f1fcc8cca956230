package mongodb

import (
	"context"
	"fmt"
	"time"

	"travel-concierge/api/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func CreateBudgetPlan(ctx context.Context, plan *models.BudgetPlan) (string, error) {
	plan.ID = uuid.NewString()
	if plan.Status == "" {
		plan.Status = "planned"
	}
	plan.CreatedAt = time.Now().Format(dateLayout)

	if _, err := collection(BudgetPlanCollection).InsertOne(ctx, plan); err != nil {
		return "", fmt.Errorf("error creating budget plan: %v", err)
	}
	return plan.ID, nil
}

func GetBudgetPlans(ctx context.Context, tripID, status string) ([]models.BudgetPlan, error) {
	filter := bson.M{}
	if tripID != "" {
		filter["trip_id"] = tripID
	}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := collection(BudgetPlanCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching budget plans: %v", err)
	}
	defer cursor.Close(ctx)

	plans := []models.BudgetPlan{}
	for cursor.Next(ctx) {
		var plan models.BudgetPlan
		if err := cursor.Decode(&plan); err != nil {
			return nil, fmt.Errorf("error decoding budget plan: %v", err)
		}
		plans = append(plans, plan)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return plans, nil
}
