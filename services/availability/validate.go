package availability

import (
	"fmt"
	"time"

	"serene/models"
)

// ValidateWindows rejects windows with a non-positive length or bounds
// outside a single day. An unchecked inverted window would make the slot
// cursor loop forever, so this runs before any schedule is persisted.
func ValidateWindows(windows []models.AvailabilityWindow) error {
	for _, w := range windows {
		if w.Start < 0 || w.End > minutesPerDay {
			return fmt.Errorf("%w: [%d, %d) is outside the day", ErrInvalidWindow, w.Start, w.End)
		}
		if w.Start >= w.End {
			return fmt.Errorf("%w: [%d, %d)", ErrInvalidWindow, w.Start, w.End)
		}
	}
	return nil
}

// ValidateTemplate checks every weekday's windows in a weekly template.
func ValidateTemplate(t models.WeeklyTemplate) error {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if err := ValidateWindows(t.Windows(day)); err != nil {
			return fmt.Errorf("%s: %w", day, err)
		}
	}
	return nil
}

// ValidateBreakRules checks break bounds and weekday indexes.
func ValidateBreakRules(rules []models.BreakRule) error {
	for _, r := range rules {
		if r.Start < 0 || r.End > minutesPerDay || r.Start >= r.End {
			return fmt.Errorf("%w: break [%d, %d)", ErrInvalidWindow, r.Start, r.End)
		}
		for _, d := range r.Days {
			if d < time.Sunday || d > time.Saturday {
				return fmt.Errorf("%w: break weekday %d", ErrInvalidWindow, d)
			}
		}
	}
	return nil
}
