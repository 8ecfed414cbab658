package fittrack

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/Thrinath17/FitTrack/internal/service"
	"github.com/Thrinath17/FitTrack/internal/store"
	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Manage workout reminders",
}

// stderrPermission stands in for a platform notification-permission
// prompt; the request is fire-and-forget.
type stderrPermission struct{}

func (stderrPermission) RequestPermission() {
	fmt.Fprintln(os.Stderr, "Requesting notification permission...")
}

var notifyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show notification settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cfg := store.GetNotificationConfig(sqldb)
			state := "disabled"
			if cfg.Enabled {
				state = "enabled"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Notifications %s, usual gym time %s\n", state, cfg.UsualGymTime)
			for _, r := range cfg.Reminders {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%d min before\t%s\n", r.ID, r.MinutesBefore, r.Message)
			}
			return nil
		})
	},
}

var notifyEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.SetNotificationsEnabled(sqldb, true, stderrPermission{}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Notifications enabled")
			return nil
		})
	},
}

var notifyDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.SetNotificationsEnabled(sqldb, false, nil); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Notifications disabled")
			return nil
		})
	},
}

var notifyTimeCmd = &cobra.Command{
	Use:   "time <HH:mm>",
	Short: "Set your usual gym time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cfg, err := service.SetGymTime(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usual gym time set to %s\n", cfg.UsualGymTime)
			return nil
		})
	},
}

var (
	reminderMinutes int
	reminderMessage string
)

var notifyReminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Manage reminder entries",
}

var notifyReminderAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			r, err := service.AddReminder(sqldb, reminderMinutes, reminderMessage)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added reminder %s\n", r.ID)
			return nil
		})
	},
}

var notifyReminderRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.RemoveReminder(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed reminder")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.AddCommand(notifyShowCmd, notifyEnableCmd, notifyDisableCmd, notifyTimeCmd, notifyReminderCmd)
	notifyReminderCmd.AddCommand(notifyReminderAddCmd, notifyReminderRemoveCmd)

	notifyReminderAddCmd.Flags().IntVar(&reminderMinutes, "minutes", 60, "Minutes before gym time")
	notifyReminderAddCmd.Flags().StringVar(&reminderMessage, "message", "Time to get ready for the gym!", "Reminder message")
}
