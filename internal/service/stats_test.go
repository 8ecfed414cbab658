package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/service"
)

func TestTotalSessions(t *testing.T) {
	t.Parallel()

	records := []model.AttendanceRecord{
		{Date: "2024-03-01", Attended: true},
		{Date: "2024-03-02", Attended: false},
		{Date: "2024-03-03", Attended: true},
	}
	assert.Equal(t, 2, service.TotalSessions(records))
	assert.Zero(t, service.TotalSessions(nil))
}

func TestAttendedLastNDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	records := []model.AttendanceRecord{
		{Date: "2024-03-15", Attended: true},
		{Date: "2024-03-12", Attended: true},
		{Date: "2024-03-08", Attended: true}, // outside the window
		{Date: "2024-03-14", Attended: false},
	}
	assert.Equal(t, 2, service.AttendedLastNDays(records, now, 7))
	assert.Equal(t, 3, service.AttendedLastNDays(records, now, 8))
}

func TestWeekFrequency(t *testing.T) {
	t.Parallel()

	// 2024-03-15 is a Friday; the week runs Mon 11th through Sun 17th.
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	records := []model.AttendanceRecord{
		{Date: "2024-03-11", Attended: true},
		{Date: "2024-03-15", Attended: true},
		{Date: "2024-03-10", Attended: true}, // previous week
	}
	week := service.WeekFrequency(records, now)
	assert.Len(t, week, 7)
	assert.Equal(t, "2024-03-11", week[0].Date)
	assert.Equal(t, "Mon", week[0].Weekday)
	assert.True(t, week[0].Attended)
	assert.True(t, week[4].Attended)
	assert.False(t, week[6].Attended)
	assert.Equal(t, "2024-03-17", week[6].Date)
}

func TestWeekFrequencyStartsMondayOnSunday(t *testing.T) {
	t.Parallel()

	sunday := time.Date(2024, 3, 17, 12, 0, 0, 0, time.UTC)
	week := service.WeekFrequency(nil, sunday)
	assert.Equal(t, "2024-03-11", week[0].Date, "Sunday belongs to the week that began the previous Monday")
	assert.Equal(t, "2024-03-17", week[6].Date)
}
