package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/errors"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/service"
)

type opener func() (*app, error)

func newRootCmd(open opener) *cobra.Command {
	var format string

	root := &cobra.Command{
		Use:   "ctl",
		Short: "Administer the complaint tracker store",
		Long: `ctl works directly against the configured store (STORAGE_TYPE and friends,
or CONFIG_FILE). It seeds demo data, lists and triages complaints, and prints
the report summary.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&format, "format", "f", "json", "Output format (json or yaml)")

	// withApp opens the store for the duration of one command.
	withApp := func(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := open()
			if err != nil {
				return err
			}
			defer a.Close()
			return run(cmd, a, args)
		}
	}
	show := func(cmd *cobra.Command, v interface{}) error {
		return render(cmd.OutOrStdout(), format, v)
	}

	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Create the demo accounts and complaints if the store is empty",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			if err := a.identity.EnsureSeedData(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Seed data is in place.")
			return err
		}),
	})

	root.AddCommand(newComplaintsCmd(withApp, show))

	users := &cobra.Command{Use: "users", Short: "Inspect registered users"}
	users.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List users without their password digests",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			list, err := a.users.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			return show(cmd, publicUsers(list))
		}),
	})
	root.AddCommand(users)

	root.AddCommand(&cobra.Command{
		Use:   "report",
		Short: "Print the complaint summary report",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			summary, err := a.reports.Summary(cmd.Context())
			if err != nil {
				return err
			}
			return show(cmd, summary)
		}),
	})

	return root
}

type appRunner func(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error

func newComplaintsCmd(withApp appRunner, show func(*cobra.Command, interface{}) error) *cobra.Command {
	var (
		userID  string
		actorID string
		filter  service.ComplaintFilter
	)

	complaints := &cobra.Command{Use: "complaints", Short: "List and triage complaints"}
	complaints.PersistentFlags().StringVar(&actorID, "as", service.SeedAdminID, "ID of the admin performing changes")

	list := &cobra.Command{
		Use:   "list",
		Short: "List complaints, newest first",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			var (
				items []model.Complaint
				err   error
			)
			if userID != "" {
				items, err = a.complaints.ListForUser(cmd.Context(), userID)
			} else {
				items, err = a.complaints.ListAll(cmd.Context())
			}
			if err != nil {
				return err
			}
			return show(cmd, service.FilterComplaints(items, filter))
		}),
	}
	list.Flags().StringVar(&userID, "user", "", "Only complaints submitted by this user ID")
	list.Flags().StringVarP(&filter.Query, "query", "q", "", "Search title, ID or submitter")
	list.Flags().StringVar(&filter.Status, "status", service.FilterAll, "Status filter")
	list.Flags().StringVar(&filter.Priority, "priority", service.FilterAll, "Priority filter")
	list.Flags().StringVar(&filter.Department, "department", service.FilterAll, "Department filter")
	complaints.AddCommand(list)

	complaints.AddCommand(&cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a complaint's status",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			g, err := a.guarded(cmd.Context(), actorID)
			if err != nil {
				return err
			}
			c, err := g.UpdateStatus(cmd.Context(), args[0], model.ComplaintStatus(args[1]))
			if err != nil {
				return err
			}
			if c == nil {
				return errors.ErrComplaintNotFound
			}
			return show(cmd, c)
		}),
	})

	complaints.AddCommand(&cobra.Command{
		Use:   "assign <id> <assignee>",
		Short: "Assign a complaint; an empty assignee clears it",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			g, err := a.guarded(cmd.Context(), actorID)
			if err != nil {
				return err
			}
			c, err := g.Assign(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if c == nil {
				return errors.ErrComplaintNotFound
			}
			return show(cmd, c)
		}),
	})

	complaints.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a complaint permanently",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			g, err := a.guarded(cmd.Context(), actorID)
			if err != nil {
				return err
			}
			if err := g.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", args[0])
			return err
		}),
	})

	return complaints
}
