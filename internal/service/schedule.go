package service

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/store"
)

type ScheduleStep int

const (
	StepDate ScheduleStep = iota
	StepTemplate
	StepCustom
	StepDone
	StepCancelled
)

func (s ScheduleStep) String() string {
	switch s {
	case StepDate:
		return "date"
	case StepTemplate:
		return "template"
	case StepCustom:
		return "custom"
	case StepDone:
		return "done"
	case StepCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ScheduleFlow is the three-step scheduling wizard: pick a date, pick a
// template or build a custom routine, confirm. Done and Cancelled are
// terminal.
type ScheduleFlow struct {
	Step ScheduleStep
	Date string
}

func NewScheduleFlow(today string) *ScheduleFlow {
	return &ScheduleFlow{Step: StepDate, Date: today}
}

// PickDate accepts any date string; the date step has no validation.
func (f *ScheduleFlow) PickDate(date string) error {
	if f.Step != StepDate {
		return fmt.Errorf("cannot pick a date in step %s", f.Step)
	}
	if date != "" {
		f.Date = date
	}
	f.Step = StepTemplate
	return nil
}

func (f *ScheduleFlow) ChooseCustom() error {
	if f.Step != StepTemplate {
		return fmt.Errorf("cannot switch to custom in step %s", f.Step)
	}
	f.Step = StepCustom
	return nil
}

func (f *ScheduleFlow) Confirm() error {
	if f.Step != StepTemplate && f.Step != StepCustom {
		return fmt.Errorf("cannot confirm in step %s", f.Step)
	}
	f.Step = StepDone
	return nil
}

func (f *ScheduleFlow) Cancel() error {
	if f.Step == StepDone {
		return fmt.Errorf("flow already confirmed")
	}
	f.Step = StepCancelled
	return nil
}

// ScheduleWorkout appends a fresh instance snapshot of w to the date's
// planned list. An existing record keeps its timestamp and attended
// flag; scheduling is not a mutation of the day itself.
func ScheduleWorkout(db *sql.DB, date string, w model.Workout, now time.Time) (model.AttendanceRecord, model.Workout, error) {
	if _, err := parseDate(date); err != nil {
		return model.AttendanceRecord{}, model.Workout{}, err
	}
	record, err := recordForDate(db, date)
	if err != nil {
		return model.AttendanceRecord{}, model.Workout{}, err
	}
	if record.Timestamp == 0 {
		record.Timestamp = nowMillis(now)
	}
	instance := Instantiate(w)
	record.PlannedWorkouts = append(record.PlannedWorkouts, instance)
	if err := store.SaveAttendance(db, record); err != nil {
		return model.AttendanceRecord{}, model.Workout{}, err
	}
	return record, instance, nil
}

type PlannedEntry struct {
	Date    string
	Workout model.Workout
}

// UpcomingPlanned flattens planned entries for today or later, ascending
// by date. Entries whose name matches a performed workout on the same
// day, or the currently executing workout on today, are excluded (name
// matching, same caveat as day classification).
func UpcomingPlanned(records []model.AttendanceRecord, today string, executing *model.Workout) []PlannedEntry {
	sorted := make([]model.AttendanceRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	var out []PlannedEntry
	for _, rec := range sorted {
		if rec.Date < today || len(rec.PlannedWorkouts) == 0 {
			continue
		}
		performedNames := make(map[string]bool, len(rec.PerformedWorkouts))
		for _, w := range rec.PerformedWorkouts {
			performedNames[w.Name] = true
		}
		for _, w := range rec.PlannedWorkouts {
			if performedNames[w.Name] {
				continue
			}
			if executing != nil && rec.Date == today && executing.Name == w.Name {
				continue
			}
			out = append(out, PlannedEntry{Date: rec.Date, Workout: w})
		}
	}
	return out
}
