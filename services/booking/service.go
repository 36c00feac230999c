package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "serene/database/repository/booking"
	expertRepo "serene/database/repository/expert"
	"serene/models"
	"serene/services/availability"
	"serene/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service manages the lifecycle of session bookings.
type Service interface {
	Book(ctx context.Context, req models.BookingRequestInput) (*models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Cancel(ctx context.Context, id string) (*models.Booking, error)
}

// DefaultService validates every booking against the same slot computation
// the availability endpoints serve, so a client can never confirm a slot the
// calendar would not have offered.
type DefaultService struct {
	ExpertRepo  expertRepo.ExpertRepository
	BookingRepo bookingRepo.BookingRepository
	Cache       *redis.Client    // optional; used to drop stale month scans
	Now         func() time.Time // clock override for tests; defaults to time.Now
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultService) Book(ctx context.Context, req models.BookingRequestInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	start, err := availability.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", availability.ErrInvalidDuration, req.DurationMinutes)
	}

	expert, err := s.ExpertRepo.GetByID(ctx, req.ExpertID)
	if err != nil {
		if errors.Is(err, expertRepo.ErrNotFound) {
			return nil, ErrExpertNotFound
		}
		return nil, fmt.Errorf("failed to load expert %s: %w", req.ExpertID, err)
	}
	if !expert.OffersDuration(req.DurationMinutes) {
		return nil, fmt.Errorf("%w: %d minutes", availability.ErrDurationNotOffered, req.DurationMinutes)
	}

	booked, err := s.BookingRepo.GetByExpertAndDate(ctx, req.ExpertID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date.ISO(), err)
	}

	// The requested start must be one of the slots the calendar would offer
	// right now: inside a window, on the duration grid, not past, not booked,
	// not in a break.
	windows := expert.WeeklyTemplate.Windows(date.Weekday())
	slots, err := availability.GenerateDaySlots(windows, req.DurationMinutes, booked, expert.BreakRules, date, s.now())
	if err != nil {
		return nil, err
	}
	if !containsSlot(slots, start) {
		return nil, fmt.Errorf("%w: %s at %s", ErrSlotUnavailable, date.ISO(), req.StartTime)
	}

	if req.Notes != "" && utils.ContainsCrisisKeyword(req.Notes) {
		// Escalation delivery is handled outside this service; the flag is
		// logged so the care team pipeline picks it up.
		logger.Warn("crisis keywords detected in booking notes",
			zap.String("expertID", req.ExpertID),
			zap.String("clientID", req.ClientID))
	}

	newBooking := &models.Booking{
		ExpertID:  req.ExpertID,
		ClientID:  req.ClientID,
		Date:      date.ISO(),
		StartTime: start,
		EndTime:   start + req.DurationMinutes,
		Status:    models.BookingStatusConfirmed,
		Notes:     req.Notes,
	}
	if err := s.BookingRepo.Create(ctx, newBooking); err != nil {
		return nil, err
	}

	s.invalidateMonth(ctx, req.ExpertID, date)
	logger.Info("booking confirmed",
		zap.String("bookingID", newBooking.ID),
		zap.String("expertID", req.ExpertID),
		zap.String("date", newBooking.Date),
		zap.String("start", req.StartTime))
	return newBooking, nil
}

func (s *DefaultService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *DefaultService) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.BookingRepo.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if date, err := models.ParseDate(b.Date); err == nil {
		s.invalidateMonth(ctx, b.ExpertID, date)
	}
	utils.GetLogger().Info("booking cancelled", zap.String("bookingID", b.ID))
	return b, nil
}

// invalidateMonth drops cached month scans that the change made stale.
func (s *DefaultService) invalidateMonth(ctx context.Context, expertID string, date models.Date) {
	if s.Cache == nil {
		return
	}
	if err := utils.InvalidateAvailability(ctx, s.Cache, expertID, date.Year, date.Month); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("expertID", expertID), zap.Error(err))
	}
}

func containsSlot(slots []int, start int) bool {
	for _, s := range slots {
		if s == start {
			return true
		}
	}
	return false
}
