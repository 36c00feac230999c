// File: database/repository/expert/interface.go
package expertRepo

import (
	"context"
	"errors"
	"log"

	"serene/database"
	"serene/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no expert matches the given id.
var ErrNotFound = errors.New("expert not found")

type ExpertRepository interface {
	Create(ctx context.Context, expert *models.Expert) error
	GetByID(ctx context.Context, id string) (*models.Expert, error)
	UpdateSchedule(ctx context.Context, id string, update models.ScheduleUpdate) (*models.Expert, error)
	Delete(ctx context.Context, id string) error
}

type mongoExpertRepo struct {
	coll *mongo.Collection
}

// NewMongoExpertRepo constructs a new MongoDB ExpertRepository.
func NewMongoExpertRepo() ExpertRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoExpertRepo{
		coll: db.Collection("experts"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("expert repo: failed to create indexes: %v", err)
	}
	return repo
}
