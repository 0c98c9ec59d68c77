package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"society-admin-svc/internal/models"
	"society-admin-svc/internal/service"
)

// listFlags are the pagination, search, sort and filter flags of list commands
type listFlags struct {
	page    int
	limit   int
	search  string
	sort    string
	order   string
	filters []string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "page number")
	cmd.Flags().IntVar(&f.limit, "limit", 10, "page size (max 100)")
	cmd.Flags().StringVar(&f.search, "search", "", "free text search")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort field")
	cmd.Flags().StringVar(&f.order, "order", "", "sort order (asc or desc)")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "filter key=value (repeatable)")
}

func (f *listFlags) params() (models.ListParams, error) {
	filters, err := ParseFields(f.filters)
	if err != nil {
		return models.ListParams{}, err
	}
	return models.ListParams{
		Page:    f.page,
		Limit:   f.limit,
		Search:  f.search,
		Sort:    f.sort,
		Order:   f.order,
		Filters: filters,
	}, nil
}

// bodyFlags are the --field and --file flags of create and update commands
type bodyFlags struct {
	fields []string
	files  []string
}

func (f *bodyFlags) register(cmd *cobra.Command, withFiles bool) {
	cmd.Flags().StringArrayVarP(&f.fields, "field", "f", nil, "field key=value (repeatable)")
	if withFiles {
		cmd.Flags().StringArrayVar(&f.files, "file", nil, "upload field=path (repeatable)")
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// resourceCmd builds list, get, create, update, patch and delete for one resource.
// svc is resolved lazily because the App is only built once the flags are parsed.
func resourceCmd[T any, I any](app *App, use, singular string, svc func(*App) service.ResourceService[T, I]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "Manage " + use,
	}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List " + use,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := lf.params()
			if err != nil {
				return err
			}
			page, err := svc(app).List(cmd.Context(), params)
			if err != nil {
				return err
			}
			return app.Print(page)
		},
	}
	lf.register(list)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one " + singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			record, err := svc(app).Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return app.Print(record)
		},
	}

	var createBody bodyFlags
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a " + singular,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := ParseFields(createBody.fields)
			if err != nil {
				return err
			}
			input, err := DecodeInput[I](raw)
			if err != nil {
				return err
			}
			files, closeFiles, err := OpenFiles(createBody.files)
			if err != nil {
				return err
			}
			defer closeFiles()

			record, err := svc(app).Create(cmd.Context(), input, files)
			if err != nil {
				return err
			}
			return app.Print(record)
		},
	}
	createBody.register(create, true)

	var updateBody bodyFlags
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a " + singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			raw, err := ParseFields(updateBody.fields)
			if err != nil {
				return err
			}
			input, err := DecodeInput[I](raw)
			if err != nil {
				return err
			}
			files, closeFiles, err := OpenFiles(updateBody.files)
			if err != nil {
				return err
			}
			defer closeFiles()

			record, err := svc(app).Update(cmd.Context(), id, input, files)
			if err != nil {
				return err
			}
			return app.Print(record)
		},
	}
	updateBody.register(update, true)

	var patchBody bodyFlags
	patch := &cobra.Command{
		Use:   "patch <id>",
		Short: "Change some fields of a " + singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			raw, err := ParseFields(patchBody.fields)
			if err != nil {
				return err
			}
			record, err := svc(app).Patch(cmd.Context(), id, InferFields(raw))
			if err != nil {
				return err
			}
			return app.Print(record)
		},
	}
	patchBody.register(patch, false)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := svc(app).Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Deleted %s %d\n", singular, id)
			return nil
		},
	}

	cmd.AddCommand(list, get, create, update, patch, del)
	return cmd
}

func complaintsCmd(app *App) *cobra.Command {
	cmd := resourceCmd[models.Complaint, service.ComplaintInput](app, "complaints", "complaint", func(a *App) service.ResourceService[models.Complaint, service.ComplaintInput] {
		return a.Complaint
	})

	var remarks string
	status := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a complaint to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			complaint, err := app.Complaint.UpdateStatus(cmd.Context(), id, args[1], remarks)
			if err != nil {
				return err
			}
			return app.Print(complaint)
		},
	}
	status.Flags().StringVar(&remarks, "remarks", "", "remarks for the resident (required when rejecting)")

	cmd.AddCommand(status)
	return cmd
}

func paymentsCmd(app *App) *cobra.Command {
	cmd := resourceCmd[models.Payment, service.PaymentInput](app, "payments", "payment", func(a *App) service.ResourceService[models.Payment, service.PaymentInput] {
		return a.Payment
	})

	var lf listFlags
	bySociety := &cobra.Command{
		Use:   "society <society-id>",
		Short: "List the payments of one society",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			societyID, err := parseID(args[0])
			if err != nil {
				return err
			}
			params, err := lf.params()
			if err != nil {
				return err
			}
			page, err := app.Payment.ListBySociety(cmd.Context(), societyID, params)
			if err != nil {
				return err
			}
			return app.Print(page)
		},
	}
	lf.register(bySociety)

	cmd.AddCommand(bySociety)
	return cmd
}
