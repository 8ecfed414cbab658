package fittrack

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/service"
	"github.com/Thrinath17/FitTrack/internal/store"
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Plan workouts for future days",
}

var (
	scheduleDate      string
	scheduleRoutine   string
	scheduleCustom    bool
	scheduleName      string
	scheduleNote      string
	scheduleExercises []string
)

var scheduleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Schedule a routine or a custom workout for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		flow := service.NewScheduleFlow(service.DateString(now))
		if err := flow.PickDate(scheduleDate); err != nil {
			return err
		}
		if _, err := parseDateOrToday(flow.Date); err != nil {
			return err
		}

		return withDB(func(sqldb *sql.DB) error {
			var workout model.Workout
			if scheduleCustom {
				if err := flow.ChooseCustom(); err != nil {
					return err
				}
				exercises, err := parseExerciseSpecs(scheduleExercises)
				if err != nil {
					return err
				}
				workout, err = service.NewCustomWorkout(scheduleName, scheduleNote, exercises, now)
				if err != nil {
					return err
				}
			} else {
				if scheduleRoutine == "" {
					return fmt.Errorf("either --routine or --custom is required")
				}
				var err error
				workout, err = service.WorkoutByName(sqldb, scheduleRoutine)
				if err != nil {
					return err
				}
			}
			if err := flow.Confirm(); err != nil {
				return err
			}

			record, instance, err := service.ScheduleWorkout(sqldb, flow.Date, workout, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %s for %s (%s)\n", instance.Name, record.Date, instance.ID)
			return nil
		})
	},
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming planned workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			records, err := store.GetAttendance(sqldb)
			if err != nil {
				return err
			}
			session, err := service.CurrentSession(sqldb)
			if err != nil {
				return err
			}
			upcoming := service.UpcomingPlanned(records, service.DateString(time.Now()), session.Workout)
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tID\tNAME\tEXERCISES")
			for _, entry := range upcoming {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", entry.Date, entry.Workout.ID, entry.Workout.Name, len(entry.Workout.Exercises))
			}
			return nil
		})
	},
}

var scheduleRemoveCmd = &cobra.Command{
	Use:   "remove <date> <instance-id>",
	Short: "Remove a planned workout from a date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			record, err := service.RemoveWorkout(sqldb, args[0], args[1], service.SnapshotPlanned, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed planned workout from %s\n", record.Date)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleAddCmd, scheduleListCmd, scheduleRemoveCmd)

	scheduleAddCmd.Flags().StringVar(&scheduleDate, "date", "", "Target date YYYY-MM-DD (default today)")
	scheduleAddCmd.Flags().StringVar(&scheduleRoutine, "routine", "", "Routine name to schedule")
	scheduleAddCmd.Flags().BoolVar(&scheduleCustom, "custom", false, "Schedule a one-off custom workout")
	scheduleAddCmd.Flags().StringVar(&scheduleName, "name", "", "Custom workout name")
	scheduleAddCmd.Flags().StringVar(&scheduleNote, "note", "", "Custom workout note")
	scheduleAddCmd.Flags().StringArrayVar(&scheduleExercises, "exercise", nil, `Exercise spec "Name=reps@weight,..." (repeatable, with --custom)`)
}
