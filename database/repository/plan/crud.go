// File: database/repository/plan/crud.go
package planRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtcredits/models"
)

// Save upserts the plan for its week. A week has at most one plan; saving again replaces its sessions.
func (r *mongoWeekPlanRepo) Save(ctx context.Context, plan models.WeekPlan) (*models.WeekPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	if plan.Sessions == nil {
		plan.Sessions = []models.SessionEntry{}
	}

	filter := bson.M{"weekStarting": plan.WeekStarting}
	update := bson.M{
		"$set": bson.M{
			"sessions":  plan.Sessions,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"id":        uuid.New().String(),
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved models.WeekPlan
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, fmt.Errorf("save week plan %s: %w", plan.WeekStarting, err)
	}
	return &saved, nil
}

func (r *mongoWeekPlanRepo) GetByID(ctx context.Context, id string) (*models.WeekPlan, error) {
	return r.findOne(ctx, bson.M{"id": id}, nil)
}

func (r *mongoWeekPlanRepo) GetByWeek(ctx context.Context, weekStarting string) (*models.WeekPlan, error) {
	return r.findOne(ctx, bson.M{"weekStarting": weekStarting}, nil)
}

// Latest returns the most recently updated plan.
func (r *mongoWeekPlanRepo) Latest(ctx context.Context) (*models.WeekPlan, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	return r.findOne(ctx, bson.M{}, opts)
}

func (r *mongoWeekPlanRepo) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*models.WeekPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var plan models.WeekPlan
	var err error
	if opts != nil {
		err = r.coll.FindOne(ctx, filter, opts).Decode(&plan)
	} else {
		err = r.coll.FindOne(ctx, filter).Decode(&plan)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
