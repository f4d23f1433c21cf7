// File: database/repository/plan/interface.go
package planRepo

import (
	"context"
	"errors"

	"courtcredits/database"
	"courtcredits/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrPlanNotFound is returned when no plan matches.
var ErrPlanNotFound = errors.New("week plan not found")

type WeekPlanRepository interface {
	Save(ctx context.Context, plan models.WeekPlan) (*models.WeekPlan, error)
	GetByID(ctx context.Context, id string) (*models.WeekPlan, error)
	GetByWeek(ctx context.Context, weekStarting string) (*models.WeekPlan, error)
	Latest(ctx context.Context) (*models.WeekPlan, error)
	EnsureIndexes() error
}

type mongoWeekPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoWeekPlanRepo constructs a new MongoDB WeekPlanRepository.
func NewMongoWeekPlanRepo() WeekPlanRepository {
	return &mongoWeekPlanRepo{
		coll: database.DB().Collection("week_plans"),
	}
}
