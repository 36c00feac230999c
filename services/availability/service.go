package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bookingRepo "serene/database/repository/booking"
	expertRepo "serene/database/repository/expert"
	"serene/models"
	"serene/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service answers availability queries for a single expert.
type Service interface {
	DayAvailability(ctx context.Context, expertID string, date models.Date, durationMinutes int) (*models.DayAvailability, error)
	MonthAvailability(ctx context.Context, expertID string, year int, month time.Month, durationMinutes int) (*models.MonthAvailability, error)
}

// DefaultService loads schedule data through the repositories, runs the pure
// slot computation, and memoizes month scans in Redis for a short window. The
// computation itself never touches I/O.
type DefaultService struct {
	ExpertRepo  expertRepo.ExpertRepository
	BookingRepo bookingRepo.BookingRepository
	Cache       *redis.Client    // optional; nil disables month-scan caching
	Now         func() time.Time // clock override for tests; defaults to time.Now
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// resolveDuration falls back to the expert's default session length when the
// caller passes zero, and rejects lengths the expert does not offer.
func (s *DefaultService) resolveDuration(expert *models.Expert, requested int) (int, error) {
	if requested < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDuration, requested)
	}
	if requested == 0 {
		d := expert.DefaultDuration()
		if d <= 0 {
			return 0, fmt.Errorf("%w: expert %s has no session durations configured", ErrInvalidDuration, expert.ID)
		}
		return d, nil
	}
	if !expert.OffersDuration(requested) {
		return 0, fmt.Errorf("%w: %d minutes", ErrDurationNotOffered, requested)
	}
	return requested, nil
}

func (s *DefaultService) DayAvailability(ctx context.Context, expertID string, date models.Date, durationMinutes int) (*models.DayAvailability, error) {
	expert, err := s.ExpertRepo.GetByID(ctx, expertID)
	if err != nil {
		if errors.Is(err, expertRepo.ErrNotFound) {
			return nil, ErrExpertNotFound
		}
		return nil, fmt.Errorf("failed to load expert %s: %w", expertID, err)
	}

	duration, err := s.resolveDuration(expert, durationMinutes)
	if err != nil {
		return nil, err
	}

	booked, err := s.BookingRepo.GetByExpertAndDate(ctx, expertID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date.ISO(), err)
	}

	windows := expert.WeeklyTemplate.Windows(date.Weekday())
	slots, err := GenerateDaySlots(windows, duration, booked, expert.BreakRules, date, s.now())
	if err != nil {
		return nil, err
	}

	starts := make([]string, 0, len(slots))
	for _, m := range slots {
		starts = append(starts, FormatClock(m))
	}
	return &models.DayAvailability{
		ExpertID:        expertID,
		Date:            date.ISO(),
		DurationMinutes: duration,
		Slots:           starts,
	}, nil
}

func (s *DefaultService) MonthAvailability(ctx context.Context, expertID string, year int, month time.Month, durationMinutes int) (*models.MonthAvailability, error) {
	expert, err := s.ExpertRepo.GetByID(ctx, expertID)
	if err != nil {
		if errors.Is(err, expertRepo.ErrNotFound) {
			return nil, ErrExpertNotFound
		}
		return nil, fmt.Errorf("failed to load expert %s: %w", expertID, err)
	}

	duration, err := s.resolveDuration(expert, durationMinutes)
	if err != nil {
		return nil, err
	}

	cacheKey := utils.AvailabilityCacheKey(expertID, year, month, duration)
	if cached := s.readCached(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	bookedByDate, err := s.BookingRepo.GetByExpertAndMonth(ctx, expertID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %04d-%02d: %w", year, month, err)
	}

	dates, err := ScanMonth(year, month, expert.WeeklyTemplate, duration, bookedByDate, expert.BreakRules, s.now())
	if err != nil {
		return nil, err
	}

	isoDates := make([]string, 0, len(dates))
	for _, d := range dates {
		isoDates = append(isoDates, d.ISO())
	}
	result := &models.MonthAvailability{
		ExpertID:        expertID,
		Year:            year,
		Month:           int(month),
		DurationMinutes: duration,
		Dates:           isoDates,
	}
	s.writeCached(ctx, cacheKey, result)
	return result, nil
}

// readCached fetches a cached month response. Cache failures only cost a
// recompute, so they are logged and swallowed.
func (s *DefaultService) readCached(ctx context.Context, key string) *models.MonthAvailability {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			utils.GetLogger().Warn("availability cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	var cached models.MonthAvailability
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		utils.GetLogger().Warn("availability cache entry malformed", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &cached
}

func (s *DefaultService) writeCached(ctx context.Context, key string, result *models.MonthAvailability) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, utils.AvailabilityCacheTTL()).Err(); err != nil {
		utils.GetLogger().Warn("availability cache write failed", zap.String("key", key), zap.Error(err))
	}
}
