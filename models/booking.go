package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed wellbeing session reservation.
type Booking struct {
	ID        string    `bson:"id" json:"id"`               // Unique booking identifier (UUID)
	ExpertID  string    `bson:"expertId" json:"expertId"`   // Expert being booked
	ClientID  string    `bson:"clientId" json:"clientId"`   // Client who made the booking
	Date      string    `bson:"date" json:"date"`           // Session date in "YYYY-MM-DD" format
	StartTime int       `bson:"startTime" json:"startTime"` // Session start (minutes from midnight)
	EndTime   int       `bson:"endTime" json:"endTime"`     // Session end (minutes from midnight)
	Status    string    `bson:"status" json:"status"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsActive reports whether the booking still occupies its interval.
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}

// Interval returns the booked time range for overlap checks.
func (b *Booking) Interval() BookedInterval {
	return BookedInterval{StartTime: b.StartTime, EndTime: b.EndTime}
}

// BookingRequestInput is the payload for creating a booking.
type BookingRequestInput struct {
	ExpertID        string `json:"expertId" binding:"required"`
	ClientID        string `json:"clientId" binding:"required"`
	Date            string `json:"date" binding:"required"`      // "YYYY-MM-DD"
	StartTime       string `json:"startTime" binding:"required"` // "HH:MM"
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	Notes           string `json:"notes"`
}
