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

func TestScheduleFlowTemplatePath(t *testing.T) {
	t.Parallel()

	flow := service.NewScheduleFlow("2024-03-15")
	assert.Equal(t, service.StepDate, flow.Step)
	assert.Equal(t, "2024-03-15", flow.Date)

	require.NoError(t, flow.PickDate("2024-03-20"))
	assert.Equal(t, service.StepTemplate, flow.Step)
	assert.Equal(t, "2024-03-20", flow.Date)

	require.NoError(t, flow.Confirm())
	assert.Equal(t, service.StepDone, flow.Step)
}

func TestScheduleFlowCustomPath(t *testing.T) {
	t.Parallel()

	flow := service.NewScheduleFlow("2024-03-15")
	require.NoError(t, flow.PickDate("")) // empty keeps the seeded date
	assert.Equal(t, "2024-03-15", flow.Date)

	require.NoError(t, flow.ChooseCustom())
	assert.Equal(t, service.StepCustom, flow.Step)
	require.NoError(t, flow.Confirm())
	assert.Equal(t, service.StepDone, flow.Step)
}

func TestScheduleFlowInvalidTransitions(t *testing.T) {
	t.Parallel()

	flow := service.NewScheduleFlow("2024-03-15")
	assert.Error(t, flow.Confirm(), "cannot confirm before picking a date")
	assert.Error(t, flow.ChooseCustom())

	require.NoError(t, flow.PickDate("2024-03-20"))
	assert.Error(t, flow.PickDate("2024-03-21"), "date step already passed")

	require.NoError(t, flow.Confirm())
	assert.Error(t, flow.Cancel(), "done is terminal")
	assert.Error(t, flow.Confirm())

	cancelled := service.NewScheduleFlow("2024-03-15")
	require.NoError(t, cancelled.Cancel())
	assert.Equal(t, service.StepCancelled, cancelled.Step)
	assert.Error(t, cancelled.PickDate("2024-03-20"))
}

func TestScheduleWorkout(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	template := seedRoutine(t, sqldb, "Chest Day")
	rec, instance, err := service.ScheduleWorkout(sqldb, "2024-03-20", template, testNow)
	require.NoError(t, err)
	assert.NotEqual(t, template.ID, instance.ID)
	assert.False(t, rec.Attended, "scheduling does not attend the day")
	require.Len(t, rec.PlannedWorkouts, 1)

	// Scheduling onto an existing record keeps its timestamp.
	original := rec.Timestamp
	rec, _, err = service.ScheduleWorkout(sqldb, "2024-03-20", template, testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, original, rec.Timestamp)
	assert.Len(t, rec.PlannedWorkouts, 2)

	_, _, err = service.ScheduleWorkout(sqldb, "someday", template, testNow)
	assert.Error(t, err)

	records, err := store.GetAttendance(sqldb)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestUpcomingPlanned(t *testing.T) {
	t.Parallel()

	records := []model.AttendanceRecord{
		{Date: "2024-03-20", PlannedWorkouts: []model.Workout{{ID: "b", Name: "Leg Day"}}},
		{Date: "2024-03-10", PlannedWorkouts: []model.Workout{{ID: "a", Name: "Old Plan"}}},
		{
			Date:              "2024-03-15",
			PlannedWorkouts:   []model.Workout{{ID: "c", Name: "Chest Day"}, {ID: "d", Name: "Arms"}},
			PerformedWorkouts: []model.Workout{{ID: "p", Name: "Chest Day"}},
		},
	}

	entries := service.UpcomingPlanned(records, "2024-03-15", nil)
	require.Len(t, entries, 2)
	assert.Equal(t, "Arms", entries[0].Workout.Name, "ascending by date, performed names excluded")
	assert.Equal(t, "Leg Day", entries[1].Workout.Name)

	// The workout being executed today disappears from the list too.
	executing := &model.Workout{ID: "x", Name: "Arms"}
	entries = service.UpcomingPlanned(records, "2024-03-15", executing)
	require.Len(t, entries, 1)
	assert.Equal(t, "Leg Day", entries[0].Workout.Name)
}
