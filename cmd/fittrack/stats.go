package fittrack

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Thrinath17/FitTrack/internal/service"
	"github.com/Thrinath17/FitTrack/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attendance overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			records, err := store.GetAttendance(sqldb)
			if err != nil {
				return err
			}
			now := time.Now()
			fmt.Fprintf(cmd.OutOrStdout(), "Total sessions: %d\n", service.TotalSessions(records))
			fmt.Fprintf(cmd.OutOrStdout(), "Last 7 days: %d\n", service.AttendedLastNDays(records, now, 7))

			fmt.Fprintln(cmd.OutOrStdout(), "This week:")
			for _, day := range service.WeekFrequency(records, now) {
				bar := strings.Repeat(" ", 4)
				if day.Attended {
					bar = "████"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%s\t%s\n", day.Weekday, day.Date, bar)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
