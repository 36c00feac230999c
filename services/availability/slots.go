package availability

import (
	"fmt"
	"time"

	"serene/models"
)

// OverlapsBooking reports whether the half-open candidate slot
// [slotStart, slotEnd) intersects any booked interval. Intervals that merely
// touch at a boundary do not overlap.
func OverlapsBooking(slotStart, slotEnd int, booked []models.BookedInterval) bool {
	for _, b := range booked {
		if slotStart < b.EndTime && slotEnd > b.StartTime {
			return true
		}
	}
	return false
}

// InBreak reports whether a session starting at minute t on the given weekday
// falls inside a break rule. Only the start time is tested: a session that
// begins just before a break and runs into it is still offered.
func InBreak(t int, day time.Weekday, rules []models.BreakRule) bool {
	for _, r := range rules {
		if r.AppliesOn(day) && t >= r.Start && t < r.End {
			return true
		}
	}
	return false
}

// GenerateDaySlots tiles each working window in fixed steps of duration
// minutes and returns the start times (minutes from midnight) at which a
// session of that length could begin: not already past, not overlapping an
// existing booking, and not starting inside a break. Windows are processed in
// input order with results ascending within each window; overlapping windows
// can repeat a start time.
func GenerateDaySlots(
	windows []models.AvailabilityWindow,
	duration int,
	booked []models.BookedInterval,
	rules []models.BreakRule,
	target models.Date,
	now time.Time,
) ([]int, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, duration)
	}

	isToday := models.NewDate(now) == target
	nowMinute := now.Hour()*60 + now.Minute()
	day := target.Weekday()

	slots := make([]int, 0)
	for _, w := range windows {
		if w.Start >= w.End {
			return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidWindow, w.Start, w.End)
		}
		for cursor := w.Start; cursor+duration <= w.End; cursor += duration {
			// A start time the clock has already passed is gone for good,
			// whether or not the slot is otherwise free.
			if isToday && cursor <= nowMinute {
				continue
			}
			if OverlapsBooking(cursor, cursor+duration, booked) {
				continue
			}
			if InBreak(cursor, day, rules) {
				continue
			}
			slots = append(slots, cursor)
		}
	}
	return slots, nil
}
