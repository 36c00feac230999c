package models

import "time"

// AvailabilityWindow is one contiguous working interval within a day.
// Start and End are minutes from midnight (e.g., 540 for 9:00 AM); a valid
// window has Start < End.
type AvailabilityWindow struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// BreakRule blocks sessions from starting during [Start, End) on the listed
// weekdays. Days follow Go's time.Weekday numbering (0 = Sunday).
type BreakRule struct {
	Start int            `bson:"start" json:"start"`
	End   int            `bson:"end" json:"end"`
	Days  []time.Weekday `bson:"days" json:"days"`
}

// AppliesOn reports whether the rule is active on the given weekday.
func (r BreakRule) AppliesOn(day time.Weekday) bool {
	for _, d := range r.Days {
		if d == day {
			return true
		}
	}
	return false
}

// BookedInterval is one already-reserved session on a specific calendar date,
// expressed in minutes from midnight.
type BookedInterval struct {
	StartTime int `bson:"startTime" json:"startTime"`
	EndTime   int `bson:"endTime" json:"endTime"`
}

// WeeklyTemplate holds an expert's recurring working windows, one ordered
// list per weekday.
type WeeklyTemplate struct {
	Sunday    []AvailabilityWindow `bson:"sunday" json:"sunday"`
	Monday    []AvailabilityWindow `bson:"monday" json:"monday"`
	Tuesday   []AvailabilityWindow `bson:"tuesday" json:"tuesday"`
	Wednesday []AvailabilityWindow `bson:"wednesday" json:"wednesday"`
	Thursday  []AvailabilityWindow `bson:"thursday" json:"thursday"`
	Friday    []AvailabilityWindow `bson:"friday" json:"friday"`
	Saturday  []AvailabilityWindow `bson:"saturday" json:"saturday"`
}

// Windows returns the working windows configured for the given weekday. An
// empty result means the expert does not work that day.
func (t WeeklyTemplate) Windows(day time.Weekday) []AvailabilityWindow {
	switch day {
	case time.Sunday:
		return t.Sunday
	case time.Monday:
		return t.Monday
	case time.Tuesday:
		return t.Tuesday
	case time.Wednesday:
		return t.Wednesday
	case time.Thursday:
		return t.Thursday
	case time.Friday:
		return t.Friday
	case time.Saturday:
		return t.Saturday
	default:
		return nil
	}
}
