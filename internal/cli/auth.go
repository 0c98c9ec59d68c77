package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"society-admin-svc/internal/service"
)

func loginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the token in the session file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("SOCIETYCTL_PASSWORD")
			}
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password (or $SOCIETYCTL_PASSWORD) are required")
			}

			user, err := app.Auth.Login(cmd.Context(), app.Session, &service.LoginRequest{Email: email, Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Logged in as %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func logoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context(), app.Session); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Logged out")
			return nil
		},
	}
}

func whoamiCmd(app *App) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fetch := app.Auth.CurrentUser
			if refresh {
				fetch = app.Auth.Me
			}
			user, err := fetch(cmd.Context(), app.Session)
			if err != nil {
				if service.IsNotAuthenticated(err) {
					return fmt.Errorf("not logged in; run `societyctl login`")
				}
				return err
			}
			return app.Print(user)
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "reload the user from the API")
	return cmd
}

func dashboardCmd(app *App) *cobra.Command {
	var societyID uint

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the headline counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Dashboard.GetSummary(cmd.Context(), societyID)
			if err != nil {
				return err
			}
			return app.Print(summary)
		},
	}
	cmd.Flags().UintVar(&societyID, "society", 0, "limit the counters to one society")
	return cmd
}
