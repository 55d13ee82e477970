package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf(t *testing.T) {
	// 2025-06-02 is a Monday.
	tests := []struct {
		date string
		want int
	}{
		{"2025-06-02", Monday},
		{"2025-06-03", Tuesday},
		{"2025-06-04", Wednesday},
		{"2025-06-05", Thursday},
		{"2025-06-06", Friday},
		{"2025-06-07", Saturday},
		{"2025-06-08", Sunday},
	}
	for _, tc := range tests {
		t.Run(tc.date, func(t *testing.T) {
			got, err := WeekdayOf(tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWeekdayOfRejectsMalformedDates(t *testing.T) {
	for _, date := range []string{"", "2025-13-01", "2025-02-30", "02-06-2025", "2025-6-2", "not-a-date"} {
		t.Run(date, func(t *testing.T) {
			_, err := WeekdayOf(date)
			assert.Error(t, err)
		})
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "08:00", want: 480},
		{in: "8:30", want: 510},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12:5", wantErr: true},
		{in: "12", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseClockTime(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsTimeWithinWindowIsHalfOpen(t *testing.T) {
	open, _ := ParseClockTime("08:00")
	closing, _ := ParseClockTime("18:00")

	start, _ := ParseClockTime("08:00")
	assert.True(t, IsTimeWithinWindow(start, open, closing), "window start is bookable")

	end, _ := ParseClockTime("18:00")
	assert.False(t, IsTimeWithinWindow(end, open, closing), "window end is the close, not a bookable instant")

	last, _ := ParseClockTime("17:59")
	assert.True(t, IsTimeWithinWindow(last, open, closing))
}

func TestIsPastUsesDayGranularity(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	yesterday := time.Date(2025, 6, 9, 23, 59, 0, 0, time.UTC)
	assert.True(t, IsPast(yesterday, now))

	// Earlier the same day is not past: the comparison is by day, not instant.
	earlierToday := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsPast(earlierToday, now))

	tomorrow := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsPast(tomorrow, now))
}

func TestIsWithinHorizonBoundary(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	exactly := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsWithinHorizon(exactly, now, 3), "a date exactly the horizon away passes")

	oneDayBeyond := time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsWithinHorizon(oneDayBeyond, now, 3), "one day beyond the horizon fails")
}

func TestCombineDateTime(t *testing.T) {
	day, err := ParseCalendarDate("2025-06-10")
	require.NoError(t, err)
	minutes, err := ParseClockTime("14:30")
	require.NoError(t, err)

	combined := CombineDateTime(day, minutes)
	assert.Equal(t, 14, combined.Hour())
	assert.Equal(t, 30, combined.Minute())
	assert.Equal(t, day.Year(), combined.Year())
}

func TestFormatClockTimePadsHours(t *testing.T) {
	minutes, err := ParseClockTime("8:05")
	require.NoError(t, err)
	assert.Equal(t, "08:05", FormatClockTime(minutes))
}
