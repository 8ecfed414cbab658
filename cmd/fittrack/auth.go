package fittrack

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/service"
	"github.com/spf13/cobra"
)

var (
	loginProvider string
	loginEmail    string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in (mock: creates a local user)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.Login(sqldb, model.AuthProvider(loginProvider), loginEmail)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s> via %s\n", user.Name, user.Email, user.Provider)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the local user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			// Logout always ends the local session; a failed clear is a
			// warning, not a failure.
			if err := service.Logout(sqldb); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not clear stored data: %v\n", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.CurrentUser(sqldb)
			if err != nil {
				return err
			}
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> via %s\n", user.Name, user.Email, user.Provider)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)

	loginCmd.Flags().StringVar(&loginProvider, "provider", "email", "Auth provider: email, google, or apple")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address (optional)")
}
