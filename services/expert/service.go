package expert

import (
	"context"
	"errors"
	"fmt"

	expertRepo "serene/database/repository/expert"
	"serene/models"
	"serene/services/availability"
	"serene/utils"

	"go.uber.org/zap"
)

// ErrNotFound is returned for unknown expert ids.
var ErrNotFound = errors.New("expert not found")

// ErrInvalidTimezone is returned when a schedule update names a timezone
// outside the canonical list.
var ErrInvalidTimezone = errors.New("timezone is not a recognised zone name")

// Service manages expert profiles and their recurring schedules.
type Service interface {
	Create(ctx context.Context, expert *models.Expert) (*models.Expert, error)
	GetByID(ctx context.Context, id string) (*models.Expert, error)
	UpdateSchedule(ctx context.Context, id string, update models.ScheduleUpdate) (*models.Expert, error)
	Delete(ctx context.Context, id string) error
}

// DefaultService is the production implementation backed by the Mongo repo.
type DefaultService struct {
	Repo expertRepo.ExpertRepository
}

func (s *DefaultService) Create(ctx context.Context, e *models.Expert) (*models.Expert, error) {
	if err := validateSchedule(e.Timezone, e.SessionDurations, e.WeeklyTemplate, e.BreakRules); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("expert created", zap.String("expertID", e.ID), zap.String("specialty", e.Specialty))
	return e, nil
}

func (s *DefaultService) GetByID(ctx context.Context, id string) (*models.Expert, error) {
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, expertRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *DefaultService) UpdateSchedule(ctx context.Context, id string, update models.ScheduleUpdate) (*models.Expert, error) {
	if err := validateSchedule(update.Timezone, update.SessionDurations, update.WeeklyTemplate, update.BreakRules); err != nil {
		return nil, err
	}
	e, err := s.Repo.UpdateSchedule(ctx, id, update)
	if err != nil {
		if errors.Is(err, expertRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	utils.GetLogger().Info("expert schedule updated", zap.String("expertID", id))
	return e, nil
}

func (s *DefaultService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, expertRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// validateSchedule rejects schedule data the slot computation could not
// safely consume.
func validateSchedule(timezone string, durations []int, template models.WeeklyTemplate, rules []models.BreakRule) error {
	if !utils.IsValidTimezone(timezone) {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}
	for _, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%w: got %d", availability.ErrInvalidDuration, d)
		}
	}
	if err := availability.ValidateTemplate(template); err != nil {
		return err
	}
	return availability.ValidateBreakRules(rules)
}
