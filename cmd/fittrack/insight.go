package fittrack

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/Thrinath17/FitTrack/internal/provider/coach"
	"github.com/Thrinath17/FitTrack/internal/store"
	"github.com/spf13/cobra"
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Ask the AI coach about your consistency",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			records, err := store.GetAttendance(sqldb)
			if err != nil {
				return err
			}
			client := &coach.Client{APIKey: os.Getenv("FITTRACK_API_KEY")}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			fmt.Fprintln(cmd.OutOrStdout(), client.Insight(ctx, records))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(insightCmd)
}
