package service

import (
	"time"

	"github.com/Thrinath17/FitTrack/internal/model"
)

// TotalSessions counts every attended record.
func TotalSessions(records []model.AttendanceRecord) int {
	count := 0
	for _, rec := range records {
		if rec.Attended {
			count++
		}
	}
	return count
}

// AttendedLastNDays counts distinct attended days within the trailing n
// days, today included.
func AttendedLastNDays(records []model.AttendanceRecord, now time.Time, n int) int {
	count := 0
	for i := 0; i < n; i++ {
		day := DateString(now.AddDate(0, 0, -i))
		if rec := RecordByDate(records, day); rec != nil && rec.Attended {
			count++
		}
	}
	return count
}

type DayFrequency struct {
	Date     string
	Weekday  string
	Attended bool
}

// WeekFrequency builds the Monday-start frequency row for the week
// containing now.
func WeekFrequency(records []model.AttendanceRecord, now time.Time) []DayFrequency {
	offset := (int(now.Weekday()) + 6) % 7 // days since Monday
	monday := now.AddDate(0, 0, -offset)

	out := make([]DayFrequency, 0, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		date := DateString(day)
		rec := RecordByDate(records, date)
		out = append(out, DayFrequency{
			Date:     date,
			Weekday:  day.Format("Mon"),
			Attended: rec != nil && rec.Attended,
		})
	}
	return out
}
