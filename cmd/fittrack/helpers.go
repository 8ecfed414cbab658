package fittrack

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Thrinath17/FitTrack/internal/app"
	"github.com/Thrinath17/FitTrack/internal/db"
	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/service"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func parseDateOrToday(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return service.DateString(time.Now()), nil
	}
	if _, err := time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// parseExerciseSpec reads "Name=reps@weight,reps@weight,...". The weight
// part is optional: "Squat=5@225,5@225,5" is three sets, the last one
// bodyweight.
func parseExerciseSpec(spec string) (model.Exercise, error) {
	name, setsPart, found := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Exercise{}, fmt.Errorf("exercise spec %q has no name", spec)
	}
	if !service.ValidateExerciseName(name) {
		return model.Exercise{}, fmt.Errorf("exercise name %q exceeds %d characters", name, service.MaxExerciseNameLength)
	}

	exercise := model.Exercise{Name: name, Sets: []model.ExerciseSet{}}
	if !found || strings.TrimSpace(setsPart) == "" {
		return exercise, nil
	}

	for _, setSpec := range strings.Split(setsPart, ",") {
		setSpec = strings.TrimSpace(setSpec)
		if setSpec == "" {
			continue
		}
		repsPart, weightPart, hasWeight := strings.Cut(setSpec, "@")
		reps, err := strconv.Atoi(strings.TrimSpace(repsPart))
		if err != nil || !service.ValidateReps(reps) {
			return model.Exercise{}, fmt.Errorf("invalid reps in set %q (expected 0-%d)", setSpec, service.MaxReps)
		}
		set := model.ExerciseSet{Reps: reps}
		if hasWeight {
			weight, err := strconv.ParseFloat(strings.TrimSpace(weightPart), 64)
			if err != nil || !service.ValidateWeight(weight) {
				return model.Exercise{}, fmt.Errorf("invalid weight in set %q (expected 0-%d lbs)", setSpec, service.MaxWeight)
			}
			set.Weight = weight
		}
		exercise.Sets = append(exercise.Sets, set)
	}
	return exercise, nil
}

func parseExerciseSpecs(specs []string) ([]model.Exercise, error) {
	exercises := make([]model.Exercise, 0, len(specs))
	for _, spec := range specs {
		ex, err := parseExerciseSpec(spec)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

type stdinConfirmer struct{}

func (stdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

type alwaysConfirm struct{}

func (alwaysConfirm) Confirm(string) bool { return true }

func formatWorkoutLine(w model.Workout) string {
	sets := 0
	for _, ex := range w.Exercises {
		sets += len(ex.Sets)
	}
	return fmt.Sprintf("%s\t%s\t%s\t%d exercises\t%d sets", w.ID, w.Abbreviation, w.Name, len(w.Exercises), sets)
}
