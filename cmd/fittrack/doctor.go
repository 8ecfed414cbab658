package fittrack

import (
	"database/sql"
	"fmt"

	"github.com/Thrinath17/FitTrack/internal/service"
	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb, doctorFix)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate dates: %d\n", report.DuplicateDates)
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid dates: %d\n", report.InvalidDates)
			fmt.Fprintf(cmd.OutOrStdout(), "Blank workout names: %d\n", report.BlankWorkoutNames)
			if doctorFix {
				fmt.Fprintf(cmd.OutOrStdout(), "Merged records: %d\n", report.MergedRecords)
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed workouts: %d\n", report.RenamedWorkouts)
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(sqldb, false)
				if err != nil {
					return err
				}
			}
			if report.DuplicateDates > 0 || report.InvalidDates > 0 || report.BlankWorkoutNames > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
