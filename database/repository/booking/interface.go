// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"log"
	"time"

	"serene/database"
	"serene/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Cancel(ctx context.Context, id string) (*models.Booking, error)
	// GetByExpertAndDate returns the active booked intervals for one expert on
	// one date.
	GetByExpertAndDate(ctx context.Context, expertID string, date models.Date) ([]models.BookedInterval, error)
	// GetByExpertAndMonth returns the active booked intervals for one expert
	// across a whole month, grouped by date. Dates without bookings are absent.
	GetByExpertAndMonth(ctx context.Context, expertID string, year int, month time.Month) (map[models.Date][]models.BookedInterval, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("booking repo: failed to create indexes: %v", err)
	}
	return repo
}
