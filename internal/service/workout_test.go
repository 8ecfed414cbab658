package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/service"
)

func TestSaveWorkoutCreate(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	w := seedRoutine(t, sqldb, "Chest Day")
	assert.NotEmpty(t, w.ID)
	assert.Equal(t, "Chest Day", w.Name)
	assert.Equal(t, "CD", w.Abbreviation)
	assert.Equal(t, service.DefaultWorkoutColor, w.Color)
	require.Len(t, w.Exercises, 1)
	assert.NotEmpty(t, w.Exercises[0].ID)
	for _, set := range w.Exercises[0].Sets {
		assert.NotEmpty(t, set.ID)
	}

	listed, err := service.ListWorkouts(sqldb)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, w, listed[0])
}

func TestSaveWorkoutUpdatePreservesCreatedAt(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	w := seedRoutine(t, sqldb, "Chest Day")
	later := testNow.Add(48 * time.Hour)
	updated, err := service.SaveWorkout(sqldb, service.SaveWorkoutInput{
		ID:   w.ID,
		Name: "Push Day",
	}, later)
	require.NoError(t, err)
	assert.Equal(t, w.ID, updated.ID)
	assert.Equal(t, w.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "PD", updated.Abbreviation)

	listed, err := service.ListWorkouts(sqldb)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Push Day", listed[0].Name)
}

func TestSaveWorkoutRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	_, err := service.SaveWorkout(sqldb, service.SaveWorkoutInput{Name: ""}, testNow)
	assert.Error(t, err)

	_, err = service.SaveWorkout(sqldb, service.SaveWorkoutInput{Name: strings.Repeat("a", 51)}, testNow)
	assert.Error(t, err)

	_, err = service.SaveWorkout(sqldb, service.SaveWorkoutInput{
		Name: "Legs",
		Exercises: []model.Exercise{
			{Name: "Squat", Sets: []model.ExerciseSet{{Reps: 1001}}},
		},
	}, testNow)
	assert.Error(t, err)

	_, err = service.SaveWorkout(sqldb, service.SaveWorkoutInput{
		Name: "Legs",
		Exercises: []model.Exercise{
			{Name: "Squat", Sets: []model.ExerciseSet{{Reps: 5, Weight: 2001}}},
		},
	}, testNow)
	assert.Error(t, err)
}

func TestDeleteWorkout(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	w := seedRoutine(t, sqldb, "Chest Day")
	require.NoError(t, service.DeleteWorkout(sqldb, w.ID))

	listed, err := service.ListWorkouts(sqldb)
	require.NoError(t, err)
	assert.Empty(t, listed)

	assert.Error(t, service.DeleteWorkout(sqldb, w.ID))
}

func TestWorkoutByName(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	seedRoutine(t, sqldb, "Chest Day")
	seedRoutine(t, sqldb, "Leg Day")

	got, err := service.WorkoutByName(sqldb, "Chest Day")
	require.NoError(t, err)
	assert.Equal(t, "Chest Day", got.Name)

	got, err = service.WorkoutByName(sqldb, "chest day")
	require.NoError(t, err)
	assert.Equal(t, "Chest Day", got.Name)

	_, err = service.WorkoutByName(sqldb, "Arms")
	assert.Error(t, err)
}

func TestInstantiate(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	template := seedRoutine(t, sqldb, "Chest Day")
	instance := service.Instantiate(template)

	assert.NotEqual(t, template.ID, instance.ID, "instance gets a fresh id")
	require.Len(t, instance.Exercises, len(template.Exercises))
	assert.Equal(t, template.Exercises[0].ID, instance.Exercises[0].ID, "exercise ids are preserved")
	assert.Equal(t, template.Exercises[0].Sets[0].ID, instance.Exercises[0].Sets[0].ID, "set ids are preserved")

	// Mutating the instance must not reach back into the template.
	instance.Exercises[0].Sets[0].Reps = 99
	assert.Equal(t, 10, template.Exercises[0].Sets[0].Reps)
}

func TestNewCustomWorkout(t *testing.T) {
	t.Parallel()

	w, err := service.NewCustomWorkout("Quick Pull", "light day", []model.Exercise{
		{Name: "Row", Sets: []model.ExerciseSet{{Reps: 12, Weight: 95}}},
	}, testNow)
	require.NoError(t, err)
	assert.NotEmpty(t, w.ID)
	assert.Equal(t, "QP", w.Abbreviation)
	assert.Equal(t, service.DefaultWorkoutColor, w.Color)
	require.Len(t, w.Exercises, 1)
	assert.NotEmpty(t, w.Exercises[0].ID)
	assert.NotEmpty(t, w.Exercises[0].Sets[0].ID)

	_, err = service.NewCustomWorkout("", "", nil, testNow)
	assert.Error(t, err)
}
