// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"serene/models"
)

func (r *mongoBookingRepo) GetByExpertAndDate(ctx context.Context, expertID string, date models.Date) ([]models.BookedInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"expertId": expertID,
		"date":     date.ISO(),
		"status":   models.BookingStatusConfirmed,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for expert %s on %s: %w", expertID, date.ISO(), err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	intervals := make([]models.BookedInterval, 0, len(bookings))
	for _, b := range bookings {
		intervals = append(intervals, b.Interval())
	}
	return intervals, nil
}

func (r *mongoBookingRepo) GetByExpertAndMonth(ctx context.Context, expertID string, year int, month time.Month) (map[models.Date][]models.BookedInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// "YYYY-MM-DD" strings sort lexicographically, so a month is a range scan.
	first := models.Date{Year: year, Month: month, Day: 1}
	last := models.Date{Year: year, Month: month, Day: models.DaysInMonth(year, month)}
	filter := bson.M{
		"expertId": expertID,
		"date":     bson.M{"$gte": first.ISO(), "$lte": last.ISO()},
		"status":   models.BookingStatusConfirmed,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for expert %s in %04d-%02d: %w", expertID, year, month, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	byDate := make(map[models.Date][]models.BookedInterval, len(bookings))
	for _, b := range bookings {
		date, err := models.ParseDate(b.Date)
		if err != nil {
			return nil, fmt.Errorf("booking %s has malformed date: %w", b.ID, err)
		}
		byDate[date] = append(byDate[date], b.Interval())
	}
	return byDate, nil
}
