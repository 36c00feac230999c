package availability

import (
	"fmt"
	"time"

	"serene/models"
)

// ScanMonth walks every calendar day of the given month and returns the dates
// that still have at least one bookable slot, in ascending order. Dates
// strictly before now's date are skipped with a date-only comparison; the
// time-aware past filter only bites on today itself, inside GenerateDaySlots.
func ScanMonth(
	year int,
	month time.Month,
	template models.WeeklyTemplate,
	duration int,
	bookedByDate map[models.Date][]models.BookedInterval,
	rules []models.BreakRule,
	now time.Time,
) ([]models.Date, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, duration)
	}

	today := models.NewDate(now)
	dates := make([]models.Date, 0)
	for d := 1; d <= models.DaysInMonth(year, month); d++ {
		target := models.Date{Year: year, Month: month, Day: d}
		if target.Before(today) {
			continue
		}
		windows := template.Windows(target.Weekday())
		if len(windows) == 0 {
			// Nothing configured for this weekday, as opposed to a working
			// day whose slots are all taken.
			continue
		}
		slots, err := GenerateDaySlots(windows, duration, bookedByDate[target], rules, target, now)
		if err != nil {
			return nil, err
		}
		if len(slots) > 0 {
			dates = append(dates, target)
		}
	}
	return dates, nil
}
