// File: database/repository/expert/crud.go
package expertRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"serene/models"
)

func (r *mongoExpertRepo) Create(ctx context.Context, expert *models.Expert) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if expert.ID == "" {
		expert.ID = uuid.New().String()
	}
	if expert.Status == "" {
		expert.Status = models.ExpertStatusActive
	}
	now := time.Now()
	expert.CreatedAt = now
	expert.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, expert); err != nil {
		return fmt.Errorf("failed to create expert: %w", err)
	}
	return nil
}

func (r *mongoExpertRepo) GetByID(ctx context.Context, id string) (*models.Expert, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var expert models.Expert
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&expert); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch expert with id %s: %w", id, err)
	}
	return &expert, nil
}

func (r *mongoExpertRepo) UpdateSchedule(ctx context.Context, id string, update models.ScheduleUpdate) (*models.Expert, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	set := bson.M{
		"timezone":         update.Timezone,
		"sessionDurations": update.SessionDurations,
		"weeklyTemplate":   update.WeeklyTemplate,
		"breakRules":       update.BreakRules,
		"updatedAt":        time.Now(),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var expert models.Expert
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&expert)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update schedule for expert %s: %w", id, err)
	}
	return &expert, nil
}

func (r *mongoExpertRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete expert %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
