package service

import (
	"database/sql"
	"strings"

	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/store"
)

type DoctorReport struct {
	DuplicateDates    int
	InvalidDates      int
	BlankWorkoutNames int
	MergedRecords     int
	RenamedWorkouts   int
}

// RunDoctor checks the attendance list for shapes the rest of the code
// assumes away: duplicate dates (the date is supposed to be a unique
// key), unparsable date strings, and performed snapshots without a name.
// With fix set, duplicates collapse to the record with the latest
// timestamp and nameless snapshots get the default label. Invalid dates
// are only reported; dropping data is not a safe auto-fix.
func RunDoctor(db *sql.DB, fix bool) (DoctorReport, error) {
	var report DoctorReport

	records, err := store.GetAttendance(db)
	if err != nil {
		return report, err
	}

	seen := map[string]int{}
	deduped := make([]model.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		if _, err := parseDate(rec.Date); err != nil {
			report.InvalidDates++
		}
		for _, w := range rec.PerformedWorkouts {
			if strings.TrimSpace(w.Name) == "" {
				report.BlankWorkoutNames++
			}
		}

		if idx, dup := seen[rec.Date]; dup {
			report.DuplicateDates++
			if rec.Timestamp >= deduped[idx].Timestamp {
				deduped[idx] = rec
			}
			continue
		}
		seen[rec.Date] = len(deduped)
		deduped = append(deduped, rec)
	}

	if !fix {
		return report, nil
	}

	report.MergedRecords = len(records) - len(deduped)
	for i := range deduped {
		for j := range deduped[i].PerformedWorkouts {
			w := &deduped[i].PerformedWorkouts[j]
			if strings.TrimSpace(w.Name) == "" {
				w.Name = defaultWorkoutName
				w.Abbreviation = GenerateLabel(w.Name)
				report.RenamedWorkouts++
			}
		}
	}
	if report.MergedRecords > 0 || report.RenamedWorkouts > 0 {
		if err := store.SaveAttendanceList(db, deduped); err != nil {
			return report, err
		}
	}
	return report, nil
}
