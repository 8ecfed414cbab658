package fittrack

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "fittrack logs gym attendance and workouts from your terminal",
	Long:  "fittrack is a local-first gym tracking CLI with reusable routines, a workout session tracker, an attendance calendar, scheduling, and an optional AI coach.",
}

func Execute() {
	// Optional .env for the AI coach key; absence is fine.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
