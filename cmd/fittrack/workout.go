package fittrack

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Thrinath17/FitTrack/internal/service"
	"github.com/spf13/cobra"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Manage reusable workout routines",
}

var (
	workoutName      string
	workoutNote      string
	workoutExercises []string
	workoutID        string
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a routine",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := parseExerciseSpecs(workoutExercises)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			workout, err := service.SaveWorkout(sqldb, service.SaveWorkoutInput{
				Name:      workoutName,
				Note:      workoutNote,
				Exercises: exercises,
			}, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created routine %s (%s)\n", workout.Name, workout.Abbreviation)
			return nil
		})
	},
}

var workoutUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a routine",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := parseExerciseSpecs(workoutExercises)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			workout, err := service.SaveWorkout(sqldb, service.SaveWorkoutInput{
				ID:        workoutID,
				Name:      workoutName,
				Note:      workoutNote,
				Exercises: exercises,
			}, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated routine %s\n", workout.Name)
			return nil
		})
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			workouts, err := service.ListWorkouts(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tLABEL\tNAME\tEXERCISES\tSETS")
			for _, w := range workouts {
				fmt.Fprintln(cmd.OutOrStdout(), formatWorkoutLine(w))
			}
			return nil
		})
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a routine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			w, err := service.WorkoutByName(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", w.Name, w.Abbreviation)
			if w.Note != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Note: %s\n", w.Note)
			}
			for i, ex := range w.Exercises {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s", i+1, ex.Name)
				if ex.Note != "" {
					fmt.Fprintf(cmd.OutOrStdout(), " (%s)", ex.Note)
				}
				fmt.Fprintln(cmd.OutOrStdout())
				for j, set := range ex.Sets {
					if set.Weight > 0 {
						fmt.Fprintf(cmd.OutOrStdout(), "   #%d\t%d reps\t%.1f lbs\n", j+1, set.Reps, set.Weight)
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "   #%d\t%d reps\n", j+1, set.Reps)
					}
				}
			}
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a routine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			w, err := service.WorkoutByName(sqldb, args[0])
			if err != nil {
				return err
			}
			if err := service.DeleteWorkout(sqldb, w.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted routine %s\n", w.Name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutUpdateCmd, workoutListCmd, workoutShowCmd, workoutDeleteCmd)

	for _, c := range []*cobra.Command{workoutAddCmd, workoutUpdateCmd} {
		c.Flags().StringVar(&workoutName, "name", "", "Routine name")
		c.Flags().StringVar(&workoutNote, "note", "", "Routine note")
		c.Flags().StringArrayVar(&workoutExercises, "exercise", nil, `Exercise spec "Name=reps@weight,reps@weight" (repeatable)`)
		_ = c.MarkFlagRequired("name")
	}
	workoutUpdateCmd.Flags().StringVar(&workoutID, "id", "", "Routine id to update")
	_ = workoutUpdateCmd.MarkFlagRequired("id")
}
