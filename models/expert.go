package models

import "time"

// Expert statuses.
const (
	ExpertStatusActive   = "active"
	ExpertStatusInactive = "inactive"
)

// Expert is a wellbeing professional offering bookable sessions. Only the
// fields the scheduling engine and its HTTP surface need live here; identity,
// credentials, and payout details belong to other systems.
type Expert struct {
	ID               string         `bson:"id" json:"id"`
	Name             string         `bson:"name" json:"name"`
	Specialty        string         `bson:"specialty" json:"specialty"` // e.g., "therapy", "nutrition", "mindfulness"
	Timezone         string         `bson:"timezone" json:"timezone"`   // IANA name; all schedule times are wall clock in this zone
	SessionDurations []int          `bson:"sessionDurations" json:"sessionDurations"` // offered session lengths, minutes
	WeeklyTemplate   WeeklyTemplate `bson:"weeklyTemplate" json:"weeklyTemplate"`
	BreakRules       []BreakRule    `bson:"breakRules" json:"breakRules"`
	Status           string         `bson:"status" json:"status"`
	CreatedAt        time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// OffersDuration reports whether the expert offers sessions of the given
// length.
func (e *Expert) OffersDuration(minutes int) bool {
	for _, d := range e.SessionDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// DefaultDuration returns the expert's first configured session length, or
// zero when none are configured.
func (e *Expert) DefaultDuration() int {
	if len(e.SessionDurations) == 0 {
		return 0
	}
	return e.SessionDurations[0]
}

// ScheduleUpdate is the payload for replacing an expert's recurring schedule.
type ScheduleUpdate struct {
	Timezone         string         `json:"timezone" binding:"required"`
	SessionDurations []int          `json:"sessionDurations" binding:"required,min=1"`
	WeeklyTemplate   WeeklyTemplate `json:"weeklyTemplate"`
	BreakRules       []BreakRule    `json:"breakRules"`
}
