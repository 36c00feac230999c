package expert

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	expertRepo "serene/database/repository/expert"
	"serene/models"
	"serene/services/availability"
)

type fakeRepo struct {
	byID map[string]*models.Expert
}

func newFakeRepo(experts ...*models.Expert) *fakeRepo {
	f := &fakeRepo{byID: make(map[string]*models.Expert)}
	for _, e := range experts {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeRepo) Create(ctx context.Context, e *models.Expert) error {
	if e.ID == "" {
		e.ID = "generated"
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.Expert, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, expertRepo.ErrNotFound
}

func (f *fakeRepo) UpdateSchedule(ctx context.Context, id string, update models.ScheduleUpdate) (*models.Expert, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, expertRepo.ErrNotFound
	}
	e.Timezone = update.Timezone
	e.SessionDurations = update.SessionDurations
	e.WeeklyTemplate = update.WeeklyTemplate
	e.BreakRules = update.BreakRules
	return e, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return expertRepo.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func validExpert() *models.Expert {
	return &models.Expert{
		ID:               "exp-1",
		Name:             "Amara Njoroge",
		Specialty:        "therapy",
		Timezone:         "Africa/Nairobi",
		SessionDurations: []int{60},
		WeeklyTemplate: models.WeeklyTemplate{
			Monday: []models.AvailabilityWindow{{Start: 540, End: 720}},
		},
		Status: models.ExpertStatusActive,
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultService{Repo: repo}

	created, err := svc.Create(context.Background(), validExpert())
	require.NoError(t, err)
	assert.Contains(t, repo.byID, created.ID)
}

func TestCreate_InvalidTimezone(t *testing.T) {
	svc := &DefaultService{Repo: newFakeRepo()}

	e := validExpert()
	e.Timezone = "Not/A_Zone"
	_, err := svc.Create(context.Background(), e)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestCreate_NonPositiveDuration(t *testing.T) {
	svc := &DefaultService{Repo: newFakeRepo()}

	e := validExpert()
	e.SessionDurations = []int{60, 0}
	_, err := svc.Create(context.Background(), e)
	assert.ErrorIs(t, err, availability.ErrInvalidDuration)
}

func TestCreate_InvertedWindow(t *testing.T) {
	svc := &DefaultService{Repo: newFakeRepo()}

	e := validExpert()
	e.WeeklyTemplate.Monday = []models.AvailabilityWindow{{Start: 720, End: 540}}
	_, err := svc.Create(context.Background(), e)
	assert.ErrorIs(t, err, availability.ErrInvalidWindow)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := &DefaultService{Repo: newFakeRepo()}

	_, err := svc.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSchedule(t *testing.T) {
	svc := &DefaultService{Repo: newFakeRepo(validExpert())}

	update := models.ScheduleUpdate{
		Timezone:         "Europe/Berlin",
		SessionDurations: []int{30, 60},
		WeeklyTemplate: models.WeeklyTemplate{
			Friday: []models.AvailabilityWindow{{Start: 600, End: 840}},
		},
		BreakRules: []models.BreakRule{
			{Start: 720, End: 780, Days: []time.Weekday{time.Friday}},
		},
	}
	e, err := svc.UpdateSchedule(context.Background(), "exp-1", update)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", e.Timezone)
	assert.Equal(t, []int{30, 60}, e.SessionDurations)
}

func TestUpdateSchedule_InvalidBreakRule(t *testing.T) {
	svc := &DefaultService{Repo: newFakeRepo(validExpert())}

	update := models.ScheduleUpdate{
		Timezone:         "Africa/Nairobi",
		SessionDurations: []int{60},
		BreakRules: []models.BreakRule{
			{Start: 780, End: 720, Days: []time.Weekday{time.Monday}},
		},
	}
	_, err := svc.UpdateSchedule(context.Background(), "exp-1", update)
	assert.ErrorIs(t, err, availability.ErrInvalidWindow)
}

func TestUpdateSchedule_NotFound(t *testing.T) {
	svc := &DefaultService{Repo: newFakeRepo()}

	update := models.ScheduleUpdate{
		Timezone:         "UTC",
		SessionDurations: []int{60},
	}
	_, err := svc.UpdateSchedule(context.Background(), "ghost", update)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	svc := &DefaultService{Repo: newFakeRepo()}

	err := svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
