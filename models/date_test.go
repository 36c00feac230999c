package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.September, Day: 10}, d)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "2026-9-10", "10/09/2026", "2026-13-01", "2026-02-30", "today"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestDate_ISORoundTrip(t *testing.T) {
	d := Date{Year: 2026, Month: time.January, Day: 5}
	assert.Equal(t, "2026-01-05", d.ISO())

	parsed, err := ParseDate(d.ISO())
	require.NoError(t, err)
	assert.Equal(t, d, parsed)
}

func TestDate_Weekday(t *testing.T) {
	assert.Equal(t, time.Tuesday, Date{Year: 2026, Month: time.September, Day: 1}.Weekday())
	assert.Equal(t, time.Sunday, Date{Year: 2026, Month: time.September, Day: 6}.Weekday())
}

func TestDate_Before(t *testing.T) {
	a := Date{Year: 2026, Month: time.September, Day: 10}
	assert.True(t, Date{Year: 2025, Month: time.December, Day: 31}.Before(a))
	assert.True(t, Date{Year: 2026, Month: time.August, Day: 31}.Before(a))
	assert.True(t, Date{Year: 2026, Month: time.September, Day: 9}.Before(a))
	assert.False(t, a.Before(a))
	assert.False(t, Date{Year: 2026, Month: time.September, Day: 11}.Before(a))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, DaysInMonth(2026, time.September))
	assert.Equal(t, 31, DaysInMonth(2026, time.December))
	assert.Equal(t, 28, DaysInMonth(2026, time.February))
	assert.Equal(t, 29, DaysInMonth(2028, time.February))
}
