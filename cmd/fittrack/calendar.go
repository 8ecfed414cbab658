package fittrack

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/service"
	"github.com/Thrinath17/FitTrack/internal/store"
	"github.com/spf13/cobra"
)

var calendarMonthOffset int

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the month calendar with day states",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			now := time.Now()
			ref := service.MonthAdd(now, calendarMonthOffset)
			records, err := store.GetAttendance(sqldb)
			if err != nil {
				return err
			}
			session, err := service.CurrentSession(sqldb)
			if err != nil {
				return err
			}

			today := service.DateString(now)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d sessions\n", ref.Format("January 2006"), service.MonthSessions(records, ref))
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tSTATE\tBADGE")

			last := service.MonthAdd(ref, 1).AddDate(0, 0, -1)
			for day := ref; !day.After(last); day = day.AddDate(0, 0, 1) {
				date := service.DateString(day)
				rec := service.RecordByDate(records, date)
				state, badge := service.ClassifyDay(rec, date, today, session.Workout)
				if state == service.DayNeutral {
					continue
				}
				label := ""
				if badge != nil {
					label = badge.Abbreviation
					if label == "" && badge.Name != "" {
						label = strings.ToUpper(string([]rune(badge.Name)[:1]))
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", date, state, label)
			}
			return nil
		})
	},
}

var attendCmd = &cobra.Command{
	Use:   "attend [date]",
	Short: "Toggle gym attendance for a date (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := ""
		if len(args) == 1 {
			date = args[0]
		}
		date, err := parseDateOrToday(date)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			record, err := service.ToggleAttendance(sqldb, date, time.Now())
			if err != nil {
				return err
			}
			if record.Attended {
				fmt.Fprintf(cmd.OutOrStdout(), "%s marked as attended\n", record.Date)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s marked as not attended\n", record.Date)
			}
			return nil
		})
	},
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage workouts logged on a day",
}

var (
	logDate    string
	logRoutine string
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a performed workout on a day (marks it attended)",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			template, err := service.WorkoutByName(sqldb, logRoutine)
			if err != nil {
				return err
			}
			record, err := service.LogWorkout(sqldb, date, template, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on %s\n", template.Name, record.Date)
			return nil
		})
	},
}

var logRemovePlanned bool

var logRemoveCmd = &cobra.Command{
	Use:   "remove <date> <instance-id>",
	Short: "Remove a logged or planned workout from a day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := service.SnapshotPerformed
		if logRemovePlanned {
			kind = service.SnapshotPlanned
		}
		return withDB(func(sqldb *sql.DB) error {
			record, err := service.RemoveWorkout(sqldb, args[0], args[1], kind, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s workout from %s\n", kind, record.Date)
			return nil
		})
	},
}

var dayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show one day's attendance and workouts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := ""
		if len(args) == 1 {
			date = args[0]
		}
		date, err := parseDateOrToday(date)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			records, err := store.GetAttendance(sqldb)
			if err != nil {
				return err
			}
			session, err := service.CurrentSession(sqldb)
			if err != nil {
				return err
			}
			rec := service.RecordByDate(records, date)
			state, _ := service.ClassifyDay(rec, date, service.DateString(time.Now()), session.Workout)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", date, state)
			if rec == nil {
				return nil
			}
			printDayWorkouts(cmd, "Planned", rec.PlannedWorkouts, performedNames(rec))
			printDayWorkouts(cmd, "Performed", rec.PerformedWorkouts, nil)
			return nil
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently performed workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			records, err := store.GetAttendance(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tID\tNAME\tEXERCISES")
			for _, entry := range service.RecentHistory(records, 5) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", entry.Date, entry.Workout.ID, entry.Workout.Name, len(entry.Workout.Exercises))
			}
			return nil
		})
	},
}

func performedNames(rec *model.AttendanceRecord) map[string]bool {
	names := make(map[string]bool, len(rec.PerformedWorkouts))
	for _, w := range rec.PerformedWorkouts {
		names[w.Name] = true
	}
	return names
}

func printDayWorkouts(cmd *cobra.Command, title string, workouts []model.Workout, done map[string]bool) {
	if len(workouts) == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", title)
	for _, w := range workouts {
		suffix := ""
		if done != nil && done[w.Name] {
			suffix = "\t(completed)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%s\t%d exercises%s\n", w.ID, w.Name, len(w.Exercises), suffix)
	}
}

func init() {
	rootCmd.AddCommand(calendarCmd, attendCmd, logCmd, dayCmd, historyCmd)
	logCmd.AddCommand(logAddCmd, logRemoveCmd)

	calendarCmd.Flags().IntVar(&calendarMonthOffset, "month", 0, "Month offset from the current month (e.g. -1 for last month)")
	logAddCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	logAddCmd.Flags().StringVar(&logRoutine, "routine", "", "Routine name to log")
	_ = logAddCmd.MarkFlagRequired("routine")
	logRemoveCmd.Flags().BoolVar(&logRemovePlanned, "planned", false, "Remove from the planned list instead of performed")
}
