package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/store"
)

// RecentCompletionWindow bounds how long a finished session still counts
// as "just completed".
const RecentCompletionWindow = 10 * time.Minute

const defaultWorkoutName = "My Workout"

var ErrNoActiveSession = errors.New("no workout in progress")

func CurrentSession(db *sql.DB) (model.ExecutionSession, error) {
	return store.GetSession(db)
}

// StartWorkout begins executing an instance of template. Restarting the
// instance that is already executing is a no-op resume; starting anything
// else replaces the draft and resets set tracking.
func StartWorkout(db *sql.DB, template model.Workout) (model.Workout, error) {
	session, err := store.GetSession(db)
	if err != nil {
		return model.Workout{}, err
	}
	if session.Active() && session.Workout.ID == template.ID {
		return *session.Workout, nil
	}

	instance := Instantiate(template)
	instance.Color = DefaultWorkoutColor

	session.Workout = &instance
	session.CompletedSetIDs = map[string]bool{}
	session.LastCompleted = 0
	if err := store.SaveSession(db, session); err != nil {
		return model.Workout{}, err
	}
	return instance, nil
}

// StartBlankWorkout begins an ad-hoc session with no name and no
// exercises.
func StartBlankWorkout(db *sql.DB, now time.Time) (model.Workout, error) {
	blank := model.Workout{
		ID:           newID(),
		Name:         "",
		Exercises:    []model.Exercise{},
		CreatedAt:    nowMillis(now),
		Color:        DefaultWorkoutColor,
		Abbreviation: "W",
	}
	session := model.ExecutionSession{
		Workout:         &blank,
		CompletedSetIDs: map[string]bool{},
	}
	if err := store.SaveSession(db, session); err != nil {
		return model.Workout{}, err
	}
	return blank, nil
}

// ToggleSet flips completion for setID. Ids not present in the draft are
// tolerated and leave the session untouched.
func ToggleSet(db *sql.DB, setID string) (bool, error) {
	session, err := store.GetSession(db)
	if err != nil {
		return false, err
	}
	if !session.Active() {
		return false, ErrNoActiveSession
	}
	if !draftHasSet(session.Workout, setID) {
		return false, nil
	}
	if session.CompletedSetIDs == nil {
		session.CompletedSetIDs = map[string]bool{}
	}
	completed := !session.CompletedSetIDs[setID]
	if completed {
		session.CompletedSetIDs[setID] = true
	} else {
		delete(session.CompletedSetIDs, setID)
	}
	if err := store.SaveSession(db, session); err != nil {
		return false, err
	}
	return completed, nil
}

func AddExercise(db *sql.DB, name string) (model.Exercise, error) {
	if name != "" && !ValidateExerciseName(name) {
		return model.Exercise{}, fmt.Errorf("exercise name %q exceeds %d characters", name, MaxExerciseNameLength)
	}
	session, err := store.GetSession(db)
	if err != nil {
		return model.Exercise{}, err
	}
	if !session.Active() {
		return model.Exercise{}, ErrNoActiveSession
	}
	exercise := model.Exercise{
		ID:   newID(),
		Name: strings.TrimSpace(name),
		Sets: []model.ExerciseSet{{ID: newID(), Reps: 0, Weight: 0}},
	}
	session.Workout.Exercises = append(session.Workout.Exercises, exercise)
	if err := store.SaveSession(db, session); err != nil {
		return model.Exercise{}, err
	}
	return exercise, nil
}

// AddSet appends a set to the exercise; the new set inherits the weight
// of the exercise's last set so the lifter does not re-enter it.
func AddSet(db *sql.DB, exerciseID string) (model.ExerciseSet, error) {
	session, err := store.GetSession(db)
	if err != nil {
		return model.ExerciseSet{}, err
	}
	if !session.Active() {
		return model.ExerciseSet{}, ErrNoActiveSession
	}
	for i := range session.Workout.Exercises {
		ex := &session.Workout.Exercises[i]
		if ex.ID != exerciseID {
			continue
		}
		set := model.ExerciseSet{ID: newID(), Reps: 0}
		if len(ex.Sets) > 0 {
			set.Weight = ex.Sets[len(ex.Sets)-1].Weight
		}
		ex.Sets = append(ex.Sets, set)
		if err := store.SaveSession(db, session); err != nil {
			return model.ExerciseSet{}, err
		}
		return set, nil
	}
	return model.ExerciseSet{}, fmt.Errorf("exercise %q not found in current workout", exerciseID)
}

func RenameSessionWorkout(db *sql.DB, name string) error {
	if name != "" && !ValidateWorkoutName(name) {
		return fmt.Errorf("workout name must be %d-%d characters", MinWorkoutNameLength, MaxWorkoutNameLength)
	}
	session, err := store.GetSession(db)
	if err != nil {
		return err
	}
	if !session.Active() {
		return ErrNoActiveSession
	}
	session.Workout.Name = name
	session.Workout.Abbreviation = GenerateLabel(name)
	return store.SaveSession(db, session)
}

func RenameExercise(db *sql.DB, exerciseID, name string) error {
	if !ValidateExerciseName(name) {
		return fmt.Errorf("exercise name must be 1-%d characters", MaxExerciseNameLength)
	}
	return updateExercise(db, exerciseID, func(ex *model.Exercise) {
		ex.Name = strings.TrimSpace(name)
	})
}

func SetExerciseNote(db *sql.DB, exerciseID, note string) error {
	return updateExercise(db, exerciseID, func(ex *model.Exercise) {
		ex.Note = note
	})
}

func UpdateSetReps(db *sql.DB, exerciseID, setID string, reps int) error {
	if !ValidateReps(reps) {
		return fmt.Errorf("reps must be between %d and %d", MinReps, MaxReps)
	}
	return updateSet(db, exerciseID, setID, func(set *model.ExerciseSet) {
		set.Reps = reps
	})
}

func UpdateSetWeight(db *sql.DB, exerciseID, setID string, weight float64) error {
	if !ValidateWeight(weight) {
		return fmt.Errorf("weight must be between %d and %d lbs", MinWeight, MaxWeight)
	}
	return updateSet(db, exerciseID, setID, func(set *model.ExerciseSet) {
		set.Weight = weight
	})
}

// FinishWorkout finalizes the draft: a blank name gets the default label,
// the snapshot lands in today's record with attended forced true, and the
// draft is cleared while the completion time sticks around.
func FinishWorkout(db *sql.DB, now time.Time) (model.Workout, model.AttendanceRecord, error) {
	session, err := store.GetSession(db)
	if err != nil {
		return model.Workout{}, model.AttendanceRecord{}, err
	}
	if !session.Active() {
		return model.Workout{}, model.AttendanceRecord{}, ErrNoActiveSession
	}

	finished := *session.Workout
	if strings.TrimSpace(finished.Name) == "" {
		finished.Name = defaultWorkoutName
	}
	finished.Abbreviation = GenerateLabel(finished.Name)
	finished.Color = DefaultWorkoutColor

	record, err := recordForDate(db, DateString(now))
	if err != nil {
		return model.Workout{}, model.AttendanceRecord{}, err
	}
	record.Attended = true
	record.Timestamp = nowMillis(now)
	record.PerformedWorkouts = append(record.PerformedWorkouts, finished)
	if err := store.SaveAttendance(db, record); err != nil {
		return model.Workout{}, model.AttendanceRecord{}, err
	}

	session.Workout = nil
	session.CompletedSetIDs = nil
	session.LastCompleted = nowMillis(now)
	if err := store.SaveSession(db, session); err != nil {
		return model.Workout{}, model.AttendanceRecord{}, err
	}
	return finished, record, nil
}

// Confirmer gates destructive flows; the CLI prompts, tests stub it.
type Confirmer interface {
	Confirm(prompt string) bool
}

// CancelWorkout discards the draft after confirmation. Attendance records
// are never touched.
func CancelWorkout(db *sql.DB, confirm Confirmer) error {
	session, err := store.GetSession(db)
	if err != nil {
		return err
	}
	if !session.Active() {
		return ErrNoActiveSession
	}
	if confirm != nil && !confirm.Confirm("Are you sure you want to cancel this workout? Progress will be lost.") {
		return nil
	}
	session.Workout = nil
	session.CompletedSetIDs = nil
	return store.SaveSession(db, session)
}

// RecentlyCompleted reports whether a session finished inside the
// completion window.
func RecentlyCompleted(session model.ExecutionSession, now time.Time) bool {
	if session.LastCompleted == 0 {
		return false
	}
	return now.Sub(time.UnixMilli(session.LastCompleted)) < RecentCompletionWindow
}

// SessionProgress counts total and completed sets in the draft.
func SessionProgress(session model.ExecutionSession) (total, completed int) {
	if !session.Active() {
		return 0, 0
	}
	for _, ex := range session.Workout.Exercises {
		total += len(ex.Sets)
		for _, set := range ex.Sets {
			if session.CompletedSetIDs[set.ID] {
				completed++
			}
		}
	}
	return total, completed
}

func draftHasSet(w *model.Workout, setID string) bool {
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			if set.ID == setID {
				return true
			}
		}
	}
	return false
}

func updateExercise(db *sql.DB, exerciseID string, apply func(*model.Exercise)) error {
	session, err := store.GetSession(db)
	if err != nil {
		return err
	}
	if !session.Active() {
		return ErrNoActiveSession
	}
	for i := range session.Workout.Exercises {
		if session.Workout.Exercises[i].ID == exerciseID {
			apply(&session.Workout.Exercises[i])
			return store.SaveSession(db, session)
		}
	}
	return fmt.Errorf("exercise %q not found in current workout", exerciseID)
}

func updateSet(db *sql.DB, exerciseID, setID string, apply func(*model.ExerciseSet)) error {
	session, err := store.GetSession(db)
	if err != nil {
		return err
	}
	if !session.Active() {
		return ErrNoActiveSession
	}
	for i := range session.Workout.Exercises {
		ex := &session.Workout.Exercises[i]
		if ex.ID != exerciseID {
			continue
		}
		for j := range ex.Sets {
			if ex.Sets[j].ID == setID {
				apply(&ex.Sets[j])
				return store.SaveSession(db, session)
			}
		}
		return fmt.Errorf("set %q not found in exercise %q", setID, exerciseID)
	}
	return fmt.Errorf("exercise %q not found in current workout", exerciseID)
}
