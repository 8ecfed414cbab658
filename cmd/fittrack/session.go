package fittrack

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Thrinath17/FitTrack/internal/service"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Track the workout in progress",
}

var sessionBlank bool

var sessionStartCmd = &cobra.Command{
	Use:   "start [routine-name]",
	Short: "Start a workout from a routine, or a blank one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if len(args) == 0 || sessionBlank {
				w, err := service.StartBlankWorkout(sqldb, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Started blank workout %s\n", w.ID)
				return nil
			}
			template, err := service.WorkoutByName(sqldb, args[0])
			if err != nil {
				return err
			}
			w, err := service.StartWorkout(sqldb, template)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s (%s)\n", w.Name, w.ID)
			return nil
		})
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the workout in progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			session, err := service.CurrentSession(sqldb)
			if err != nil {
				return err
			}
			if !session.Active() {
				if service.RecentlyCompleted(session, time.Now()) {
					fmt.Fprintln(cmd.OutOrStdout(), "You killed it! Workout finished moments ago.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), "No workout in progress")
				return nil
			}

			w := session.Workout
			name := w.Name
			if name == "" {
				name = "(unnamed)"
			}
			total, completed := service.SessionProgress(session)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d sets done, %d left\n", name, completed, total, total-completed)
			for _, ex := range w.Exercises {
				exName := ex.Name
				if exName == "" {
					exName = "(unnamed exercise)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", ex.ID, exName)
				for i, set := range ex.Sets {
					mark := " "
					if session.CompletedSetIDs[set.ID] {
						mark = "x"
					}
					if set.Weight > 0 {
						fmt.Fprintf(cmd.OutOrStdout(), "  [%s] #%d\t%s\t%d reps\t%.1f lbs\n", mark, i+1, set.ID, set.Reps, set.Weight)
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "  [%s] #%d\t%s\t%d reps\n", mark, i+1, set.ID, set.Reps)
					}
				}
			}
			return nil
		})
	},
}

var sessionToggleCmd = &cobra.Command{
	Use:   "toggle <set-id>",
	Short: "Flip completion of a set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			completed, err := service.ToggleSet(sqldb, args[0])
			if err != nil {
				return err
			}
			if completed {
				fmt.Fprintln(cmd.OutOrStdout(), "Set done")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Set reopened")
			}
			return nil
		})
	},
}

var sessionExerciseName string

var sessionAddExerciseCmd = &cobra.Command{
	Use:   "add-exercise",
	Short: "Add an exercise to the workout in progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			ex, err := service.AddExercise(sqldb, sessionExerciseName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added exercise %s\n", ex.ID)
			return nil
		})
	},
}

var sessionAddSetCmd = &cobra.Command{
	Use:   "add-set <exercise-id>",
	Short: "Add a set (inherits the last set's weight)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			set, err := service.AddSet(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added set %s (%.1f lbs)\n", set.ID, set.Weight)
			return nil
		})
	},
}

var sessionRenameCmd = &cobra.Command{
	Use:   "rename <name>",
	Short: "Rename the workout in progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			return service.RenameSessionWorkout(sqldb, args[0])
		})
	},
}

var (
	editExerciseName string
	editExerciseNote string
)

var sessionEditExerciseCmd = &cobra.Command{
	Use:   "edit-exercise <exercise-id>",
	Short: "Rename an exercise or set its note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if editExerciseName != "" {
				if err := service.RenameExercise(sqldb, args[0], editExerciseName); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("note") {
				if err := service.SetExerciseNote(sqldb, args[0], editExerciseNote); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var (
	editSetReps   int
	editSetWeight float64
)

var sessionEditSetCmd = &cobra.Command{
	Use:   "edit-set <exercise-id> <set-id>",
	Short: "Change reps or weight of a set",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if cmd.Flags().Changed("reps") {
				if err := service.UpdateSetReps(sqldb, args[0], args[1], editSetReps); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("weight") {
				if err := service.UpdateSetWeight(sqldb, args[0], args[1], editSetWeight); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var sessionFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish the workout and log it to today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			finished, record, err := service.FinishWorkout(sqldb, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Finished %s, logged to %s\n", finished.Name, record.Date)
			return nil
		})
	},
}

var cancelYes bool

var sessionCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the workout in progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			var confirm service.Confirmer = stdinConfirmer{}
			if cancelYes {
				confirm = alwaysConfirm{}
			}
			if err := service.CancelWorkout(sqldb, confirm); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Workout cancelled")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionStartCmd, sessionStatusCmd, sessionToggleCmd,
		sessionAddExerciseCmd, sessionAddSetCmd, sessionRenameCmd,
		sessionEditExerciseCmd, sessionEditSetCmd, sessionFinishCmd, sessionCancelCmd)

	sessionStartCmd.Flags().BoolVar(&sessionBlank, "blank", false, "Start an ad-hoc workout with no routine")
	sessionAddExerciseCmd.Flags().StringVar(&sessionExerciseName, "name", "", "Exercise name")
	sessionEditExerciseCmd.Flags().StringVar(&editExerciseName, "name", "", "New exercise name")
	sessionEditExerciseCmd.Flags().StringVar(&editExerciseNote, "note", "", "Exercise note")
	sessionEditSetCmd.Flags().IntVar(&editSetReps, "reps", 0, "Rep count")
	sessionEditSetCmd.Flags().Float64Var(&editSetWeight, "weight", 0, "Weight in lbs")
	sessionCancelCmd.Flags().BoolVar(&cancelYes, "yes", false, "Skip the confirmation prompt")
}
