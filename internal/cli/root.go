// Package cli implements societyctl, the operator command line of the society API.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"society-admin-svc/internal/models"
	"society-admin-svc/internal/service"
)

// NewRootCommand builds the societyctl command tree
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &Options{}
	app := &App{}

	root := &cobra.Command{
		Use:           "societyctl",
		Short:         "Manage societies, notices, amenities, complaints, payments and users",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := NewApp(*opts, out, errOut)
			if err != nil {
				return err
			}
			*app = *built
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.APIURL, "api-url", "", "society API base URL (default $API_BASE_URL)")
	flags.StringVar(&opts.SessionFile, "session-file", "", "session file (default ~/.societyctl/session.json)")
	flags.StringVar(&opts.Profile, "profile", DefaultProfile, "session profile inside the session file")
	flags.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		loginCmd(app),
		logoutCmd(app),
		whoamiCmd(app),
		dashboardCmd(app),
		resourceCmd[models.Society, service.SocietyInput](app, "societies", "society", func(a *App) service.ResourceService[models.Society, service.SocietyInput] { return a.Society }),
		resourceCmd[models.Notice, service.NoticeInput](app, "notices", "notice", func(a *App) service.ResourceService[models.Notice, service.NoticeInput] { return a.Notice }),
		resourceCmd[models.Amenity, service.AmenityInput](app, "amenities", "amenity", func(a *App) service.ResourceService[models.Amenity, service.AmenityInput] { return a.Amenity }),
		complaintsCmd(app),
		paymentsCmd(app),
		resourceCmd[models.User, service.UserInput](app, "users", "user", func(a *App) service.ResourceService[models.User, service.UserInput] { return a.User }),
	)
	return root
}

// Execute runs societyctl with the process arguments
func Execute(out, errOut io.Writer) error {
	root := NewRootCommand(out, errOut)
	return root.Execute()
}
