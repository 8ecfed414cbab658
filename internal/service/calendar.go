package service

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/store"
)

type DayState int

const (
	DayNeutral DayState = iota
	DayMissed
	DayAttended
	DayPerformed
	DayPlanned
	DayInProgress
)

func (s DayState) String() string {
	switch s {
	case DayMissed:
		return "missed"
	case DayAttended:
		return "attended"
	case DayPerformed:
		return "performed"
	case DayPlanned:
		return "planned"
	case DayInProgress:
		return "in-progress"
	default:
		return "neutral"
	}
}

// ClassifyDay reduces a day to a single display state, in strict
// priority: in-progress, planned-not-performed, performed, attended,
// missed, neutral. The returned badge is the workout to show for the
// day, nil when there is none.
//
// Planned/performed matching is by name, not id: two routines sharing a
// name are conflated. That quirk is load-bearing for existing data and
// is kept on purpose.
func ClassifyDay(rec *model.AttendanceRecord, date, today string, executing *model.Workout) (DayState, *model.Workout) {
	if date == today && executing != nil {
		return DayInProgress, executing
	}
	if rec == nil {
		return DayNeutral, nil
	}

	performedNames := make(map[string]bool, len(rec.PerformedWorkouts))
	for _, w := range rec.PerformedWorkouts {
		performedNames[w.Name] = true
	}
	for i := range rec.PlannedWorkouts {
		if !performedNames[rec.PlannedWorkouts[i].Name] {
			return DayPlanned, &rec.PlannedWorkouts[i]
		}
	}
	if n := len(rec.PerformedWorkouts); n > 0 {
		return DayPerformed, &rec.PerformedWorkouts[n-1]
	}
	if rec.Attended {
		return DayAttended, nil
	}
	if len(rec.PlannedWorkouts) == 0 {
		return DayMissed, nil
	}
	return DayNeutral, nil
}

func RecordByDate(records []model.AttendanceRecord, date string) *model.AttendanceRecord {
	for i := range records {
		if records[i].Date == date {
			return &records[i]
		}
	}
	return nil
}

// MonthAdd offsets a reference date by whole months, normalized to the
// first of the month so day-of-month overflow cannot skip a month.
func MonthAdd(ref time.Time, offset int) time.Time {
	return time.Date(ref.Year(), ref.Month()+time.Month(offset), 1, 0, 0, 0, 0, ref.Location())
}

// MonthSessions counts attended records in the same month as ref.
func MonthSessions(records []model.AttendanceRecord, ref time.Time) int {
	count := 0
	for _, rec := range records {
		day, err := parseDate(rec.Date)
		if err != nil {
			continue
		}
		if sameMonth(day, ref) && rec.Attended {
			count++
		}
	}
	return count
}

// ToggleAttendance flips the attended flag for an explicit date,
// creating the record when absent and preserving both workout lists.
func ToggleAttendance(db *sql.DB, date string, now time.Time) (model.AttendanceRecord, error) {
	if _, err := parseDate(date); err != nil {
		return model.AttendanceRecord{}, err
	}
	record, err := recordForDate(db, date)
	if err != nil {
		return model.AttendanceRecord{}, err
	}
	record.Attended = !record.Attended
	record.Timestamp = nowMillis(now)
	if err := store.SaveAttendance(db, record); err != nil {
		return model.AttendanceRecord{}, err
	}
	return record, nil
}

// LogWorkout adds a fresh instance snapshot of template to the date's
// performed list. Logging a workout marks the day attended; that side
// effect is part of the contract, not a UI nicety.
func LogWorkout(db *sql.DB, date string, template model.Workout, now time.Time) (model.AttendanceRecord, error) {
	if _, err := parseDate(date); err != nil {
		return model.AttendanceRecord{}, err
	}
	record, err := recordForDate(db, date)
	if err != nil {
		return model.AttendanceRecord{}, err
	}
	record.Attended = true
	record.Timestamp = nowMillis(now)
	record.PerformedWorkouts = append(record.PerformedWorkouts, Instantiate(template))
	if err := store.SaveAttendance(db, record); err != nil {
		return model.AttendanceRecord{}, err
	}
	return record, nil
}

type SnapshotKind string

const (
	SnapshotPerformed SnapshotKind = "performed"
	SnapshotPlanned   SnapshotKind = "planned"
)

// RemoveWorkout drops a snapshot by instance id. The attended flag is
// left alone; removing the last performed workout does not un-attend the
// day.
func RemoveWorkout(db *sql.DB, date, instanceID string, kind SnapshotKind, now time.Time) (model.AttendanceRecord, error) {
	records, err := store.GetAttendance(db)
	if err != nil {
		return model.AttendanceRecord{}, err
	}
	record := RecordByDate(records, date)
	if record == nil {
		return model.AttendanceRecord{}, fmt.Errorf("no record for %s", date)
	}

	filter := func(workouts []model.Workout) ([]model.Workout, bool) {
		kept := make([]model.Workout, 0, len(workouts))
		removed := false
		for _, w := range workouts {
			if w.ID == instanceID {
				removed = true
				continue
			}
			kept = append(kept, w)
		}
		return kept, removed
	}

	var removed bool
	switch kind {
	case SnapshotPerformed:
		record.PerformedWorkouts, removed = filter(record.PerformedWorkouts)
	case SnapshotPlanned:
		record.PlannedWorkouts, removed = filter(record.PlannedWorkouts)
	default:
		return model.AttendanceRecord{}, fmt.Errorf("unknown snapshot kind %q", kind)
	}
	if !removed {
		return model.AttendanceRecord{}, fmt.Errorf("no %s workout %q on %s", kind, instanceID, date)
	}

	record.Timestamp = nowMillis(now)
	if err := store.SaveAttendance(db, *record); err != nil {
		return model.AttendanceRecord{}, err
	}
	return *record, nil
}

type HistoryEntry struct {
	Date    string
	Workout model.Workout
}

// RecentHistory lists performed workouts from the most recently touched
// days, newest first.
func RecentHistory(records []model.AttendanceRecord, days int) []HistoryEntry {
	withWorkouts := make([]model.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		if len(rec.PerformedWorkouts) > 0 {
			withWorkouts = append(withWorkouts, rec)
		}
	}
	sort.SliceStable(withWorkouts, func(i, j int) bool {
		return withWorkouts[i].Timestamp > withWorkouts[j].Timestamp
	})
	if days > 0 && len(withWorkouts) > days {
		withWorkouts = withWorkouts[:days]
	}
	var out []HistoryEntry
	for _, rec := range withWorkouts {
		for _, w := range rec.PerformedWorkouts {
			out = append(out, HistoryEntry{Date: rec.Date, Workout: w})
		}
	}
	return out
}

func recordForDate(db *sql.DB, date string) (model.AttendanceRecord, error) {
	records, err := store.GetAttendance(db)
	if err != nil {
		return model.AttendanceRecord{}, err
	}
	if rec := RecordByDate(records, date); rec != nil {
		return *rec, nil
	}
	return model.AttendanceRecord{
		ID:                newID(),
		Date:              date,
		PerformedWorkouts: []model.Workout{},
		PlannedWorkouts:   []model.Workout{},
	}, nil
}
