package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Thrinath17/FitTrack/internal/db"
	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fittrack.db")
	sqldb, err := db.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.ApplyMigrations(sqldb))
	t.Cleanup(func() { sqldb.Close() })
	return sqldb
}

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func seedRoutine(t *testing.T, sqldb *sql.DB, name string) model.Workout {
	t.Helper()
	w, err := service.SaveWorkout(sqldb, service.SaveWorkoutInput{
		Name: name,
		Exercises: []model.Exercise{
			{Name: "Bench Press", Sets: []model.ExerciseSet{
				{Reps: 10, Weight: 135},
				{Reps: 8, Weight: 155},
			}},
		},
	}, testNow)
	require.NoError(t, err)
	return w
}
