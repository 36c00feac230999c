package availability

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"12:05", 725},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClock_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"9",
		"09",
		"0900",
		"9:0:0",
		"24:00",
		"12:60",
		"-1:30",
		"12:-5",
		"ab:cd",
		"12:",
		":30",
	}
	for _, in := range invalid {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			_, err := ParseClock(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestClock_RoundTrip(t *testing.T) {
	// FormatClock(ParseClock(s)) == s for every valid wall-clock string.
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 7 {
			s := fmt.Sprintf("%02d:%02d", h, m)
			minutes, err := ParseClock(s)
			require.NoError(t, err)
			assert.Equal(t, s, FormatClock(minutes))
		}
	}
}

func TestAddClock(t *testing.T) {
	got, err := AddClock("09:00", 90)
	require.NoError(t, err)
	assert.Equal(t, "10:30", got)

	got, err = AddClock("23:00", 59)
	require.NoError(t, err)
	assert.Equal(t, "23:59", got)
}

func TestAddClock_RejectsDayOverflow(t *testing.T) {
	_, err := AddClock("23:30", 30)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = AddClock("00:10", -20)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
