package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/store"
)

type SaveWorkoutInput struct {
	ID        string
	Name      string
	Note      string
	Exercises []model.Exercise
}

// SaveWorkout creates or updates a routine in the library. The
// abbreviation and color are always derived, never caller-supplied.
func SaveWorkout(db *sql.DB, in SaveWorkoutInput, now time.Time) (model.Workout, error) {
	if !ValidateWorkoutName(in.Name) {
		return model.Workout{}, fmt.Errorf("workout name must be %d-%d characters", MinWorkoutNameLength, MaxWorkoutNameLength)
	}
	for _, ex := range in.Exercises {
		if ex.Name != "" && !ValidateExerciseName(ex.Name) {
			return model.Workout{}, fmt.Errorf("exercise name %q exceeds %d characters", ex.Name, MaxExerciseNameLength)
		}
		for _, set := range ex.Sets {
			if !ValidateReps(set.Reps) {
				return model.Workout{}, fmt.Errorf("reps must be between %d and %d", MinReps, MaxReps)
			}
			if !ValidateWeight(set.Weight) {
				return model.Workout{}, fmt.Errorf("weight must be between %d and %d lbs", MinWeight, MaxWeight)
			}
		}
	}

	workouts, err := store.GetWorkouts(db)
	if err != nil {
		return model.Workout{}, err
	}

	workout := model.Workout{
		ID:           in.ID,
		Name:         strings.TrimSpace(in.Name),
		Note:         strings.TrimSpace(in.Note),
		Exercises:    in.Exercises,
		CreatedAt:    nowMillis(now),
		Color:        DefaultWorkoutColor,
		Abbreviation: GenerateLabel(in.Name),
	}
	if workout.Exercises == nil {
		workout.Exercises = []model.Exercise{}
	}
	ensureExerciseIDs(workout.Exercises)

	updated := false
	for i := range workouts {
		if workouts[i].ID == workout.ID && workout.ID != "" {
			workout.CreatedAt = workouts[i].CreatedAt
			workouts[i] = workout
			updated = true
			break
		}
	}
	if !updated {
		if workout.ID == "" {
			workout.ID = newID()
		}
		workouts = append(workouts, workout)
	}

	if err := store.SaveWorkouts(db, workouts); err != nil {
		return model.Workout{}, err
	}
	return workout, nil
}

func DeleteWorkout(db *sql.DB, id string) error {
	workouts, err := store.GetWorkouts(db)
	if err != nil {
		return err
	}
	kept := make([]model.Workout, 0, len(workouts))
	found := false
	for _, w := range workouts {
		if w.ID == id {
			found = true
			continue
		}
		kept = append(kept, w)
	}
	if !found {
		return fmt.Errorf("workout %q not found", id)
	}
	return store.SaveWorkouts(db, kept)
}

func ListWorkouts(db *sql.DB) ([]model.Workout, error) {
	return store.GetWorkouts(db)
}

// WorkoutByName resolves a routine by exact name, then falls back to a
// unique case-insensitive match.
func WorkoutByName(db *sql.DB, name string) (model.Workout, error) {
	workouts, err := store.GetWorkouts(db)
	if err != nil {
		return model.Workout{}, err
	}
	for _, w := range workouts {
		if w.Name == name {
			return w, nil
		}
	}
	var matches []model.Workout
	for _, w := range workouts {
		if strings.EqualFold(w.Name, name) {
			matches = append(matches, w)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	return model.Workout{}, fmt.Errorf("no routine named %q", name)
}

// Instantiate turns a template into an instance snapshot: a deep copy
// with a fresh workout id and no ownership link back to the template.
// Exercise and set ids are preserved so set-completion tracking keyed on
// them keeps working.
func Instantiate(template model.Workout) model.Workout {
	instance := template
	instance.ID = newID()
	instance.Exercises = copyExercises(template.Exercises)
	return instance
}

// NewCustomWorkout builds an unsaved one-off workout, for ad-hoc
// scheduling that never enters the routine library.
func NewCustomWorkout(name, note string, exercises []model.Exercise, now time.Time) (model.Workout, error) {
	if !ValidateWorkoutName(name) {
		return model.Workout{}, fmt.Errorf("workout name must be %d-%d characters", MinWorkoutNameLength, MaxWorkoutNameLength)
	}
	if exercises == nil {
		exercises = []model.Exercise{}
	}
	ensureExerciseIDs(exercises)
	return model.Workout{
		ID:           newID(),
		Name:         strings.TrimSpace(name),
		Note:         strings.TrimSpace(note),
		Exercises:    exercises,
		CreatedAt:    nowMillis(now),
		Color:        DefaultWorkoutColor,
		Abbreviation: GenerateLabel(name),
	}, nil
}

func ensureExerciseIDs(exercises []model.Exercise) {
	for i := range exercises {
		if exercises[i].ID == "" {
			exercises[i].ID = newID()
		}
		for j := range exercises[i].Sets {
			if exercises[i].Sets[j].ID == "" {
				exercises[i].Sets[j].ID = newID()
			}
		}
	}
}

func copyExercises(exercises []model.Exercise) []model.Exercise {
	out := make([]model.Exercise, len(exercises))
	for i, ex := range exercises {
		out[i] = ex
		out[i].Sets = make([]model.ExerciseSet, len(ex.Sets))
		copy(out[i].Sets, ex.Sets)
	}
	return out
}
