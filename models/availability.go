package models

// DayAvailability is the response payload for a single-day availability query.
type DayAvailability struct {
	ExpertID        string   `json:"expertId"`
	Date            string   `json:"date"` // "YYYY-MM-DD"
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"` // bookable start times, "HH:MM", ascending per window
}

// MonthAvailability is the response payload for a month availability query.
type MonthAvailability struct {
	ExpertID        string   `json:"expertId"`
	Year            int      `json:"year"`
	Month           int      `json:"month"`
	DurationMinutes int      `json:"durationMinutes"`
	Dates           []string `json:"dates"` // dates with at least one free slot, "YYYY-MM-DD", ascending
}
