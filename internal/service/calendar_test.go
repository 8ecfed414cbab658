package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/service"
	"github.com/Thrinath17/FitTrack/internal/store"
)

func TestClassifyDayPriority(t *testing.T) {
	t.Parallel()

	executing := &model.Workout{ID: "x", Name: "Chest Day"}
	performed := model.Workout{ID: "p", Name: "Chest Day"}
	planned := model.Workout{ID: "q", Name: "Leg Day"}

	rec := &model.AttendanceRecord{
		Date:              "2024-03-15",
		Attended:          true,
		PerformedWorkouts: []model.Workout{performed},
		PlannedWorkouts:   []model.Workout{planned},
	}

	// An executing workout on today beats everything, planned included.
	state, badge := service.ClassifyDay(rec, "2024-03-15", "2024-03-15", executing)
	assert.Equal(t, service.DayInProgress, state)
	assert.Equal(t, "x", badge.ID)

	// Without execution, an unperformed plan wins over performed.
	state, badge = service.ClassifyDay(rec, "2024-03-15", "2024-03-16", nil)
	assert.Equal(t, service.DayPlanned, state)
	assert.Equal(t, "Leg Day", badge.Name)

	// A plan whose name was performed no longer counts as pending.
	recDone := &model.AttendanceRecord{
		Date:              "2024-03-15",
		Attended:          true,
		PerformedWorkouts: []model.Workout{performed},
		PlannedWorkouts:   []model.Workout{{ID: "q2", Name: "Chest Day"}},
	}
	state, badge = service.ClassifyDay(recDone, "2024-03-15", "2024-03-16", nil)
	assert.Equal(t, service.DayPerformed, state)
	assert.Equal(t, "p", badge.ID)
}

func TestClassifyDayAttendedMissedNeutral(t *testing.T) {
	t.Parallel()

	state, badge := service.ClassifyDay(nil, "2024-03-15", "2024-03-16", nil)
	assert.Equal(t, service.DayNeutral, state)
	assert.Nil(t, badge)

	attended := &model.AttendanceRecord{Date: "2024-03-15", Attended: true}
	state, _ = service.ClassifyDay(attended, "2024-03-15", "2024-03-16", nil)
	assert.Equal(t, service.DayAttended, state)

	missed := &model.AttendanceRecord{Date: "2024-03-15", Attended: false}
	state, _ = service.ClassifyDay(missed, "2024-03-15", "2024-03-16", nil)
	assert.Equal(t, service.DayMissed, state)
}

func TestToggleAttendance(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	rec, err := service.ToggleAttendance(sqldb, "2024-03-15", testNow)
	require.NoError(t, err)
	assert.True(t, rec.Attended)
	assert.NotEmpty(t, rec.ID)

	rec, err = service.ToggleAttendance(sqldb, "2024-03-15", testNow)
	require.NoError(t, err)
	assert.False(t, rec.Attended)

	records, err := store.GetAttendance(sqldb)
	require.NoError(t, err)
	require.Len(t, records, 1, "toggling twice still leaves one record per date")

	_, err = service.ToggleAttendance(sqldb, "not-a-date", testNow)
	assert.Error(t, err)
}

func TestToggleAttendancePreservesWorkoutLists(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	template := seedRoutine(t, sqldb, "Chest Day")
	_, err := service.LogWorkout(sqldb, "2024-03-15", template, testNow)
	require.NoError(t, err)

	rec, err := service.ToggleAttendance(sqldb, "2024-03-15", testNow)
	require.NoError(t, err)
	assert.False(t, rec.Attended)
	assert.Len(t, rec.PerformedWorkouts, 1, "un-attending keeps the logged workouts")
}

func TestLogWorkoutMarksAttended(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	template := seedRoutine(t, sqldb, "Chest Day")
	rec, err := service.LogWorkout(sqldb, "2024-03-10", template, testNow)
	require.NoError(t, err)
	assert.True(t, rec.Attended)
	require.Len(t, rec.PerformedWorkouts, 1)
	assert.NotEqual(t, template.ID, rec.PerformedWorkouts[0].ID, "logged snapshot is an instance")

	rec, err = service.LogWorkout(sqldb, "2024-03-10", template, testNow)
	require.NoError(t, err)
	assert.Len(t, rec.PerformedWorkouts, 2)
}

func TestRemoveWorkout(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	template := seedRoutine(t, sqldb, "Chest Day")
	rec, err := service.LogWorkout(sqldb, "2024-03-10", template, testNow)
	require.NoError(t, err)
	instanceID := rec.PerformedWorkouts[0].ID

	rec, err = service.RemoveWorkout(sqldb, "2024-03-10", instanceID, service.SnapshotPerformed, testNow)
	require.NoError(t, err)
	assert.Empty(t, rec.PerformedWorkouts)
	assert.True(t, rec.Attended, "removing the last workout does not un-attend the day")

	_, err = service.RemoveWorkout(sqldb, "2024-03-10", instanceID, service.SnapshotPerformed, testNow)
	assert.Error(t, err)
	_, err = service.RemoveWorkout(sqldb, "2024-03-11", "whatever", service.SnapshotPerformed, testNow)
	assert.Error(t, err)
}

func TestMonthAdd(t *testing.T) {
	t.Parallel()

	ref := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	prev := service.MonthAdd(ref, -1)
	assert.Equal(t, time.February, prev.Month())
	assert.Equal(t, 1, prev.Day())

	next := service.MonthAdd(ref, 1)
	assert.Equal(t, time.April, next.Month())

	jan := service.MonthAdd(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), -1)
	assert.Equal(t, 2023, jan.Year())
	assert.Equal(t, time.December, jan.Month())
}

func TestMonthSessions(t *testing.T) {
	t.Parallel()

	records := []model.AttendanceRecord{
		{Date: "2024-03-01", Attended: true},
		{Date: "2024-03-20", Attended: true},
		{Date: "2024-03-25", Attended: false},
		{Date: "2024-02-28", Attended: true},
		{Date: "garbage", Attended: true},
	}
	ref := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, service.MonthSessions(records, ref))
}

func TestRecentHistory(t *testing.T) {
	t.Parallel()

	records := []model.AttendanceRecord{
		{Date: "2024-03-01", Timestamp: 100, PerformedWorkouts: []model.Workout{{ID: "a", Name: "Chest Day"}}},
		{Date: "2024-03-05", Timestamp: 300, PerformedWorkouts: []model.Workout{{ID: "b", Name: "Leg Day"}, {ID: "c", Name: "Arms"}}},
		{Date: "2024-03-03", Timestamp: 200},
	}
	history := service.RecentHistory(records, 1)
	require.Len(t, history, 2, "top day only, both its workouts")
	assert.Equal(t, "2024-03-05", history[0].Date)

	history = service.RecentHistory(records, 10)
	require.Len(t, history, 3)
	assert.Equal(t, "b", history[0].Workout.ID)
	assert.Equal(t, "a", history[2].Workout.ID)
}
