package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listEntry is the JSON payload for one listed record.
// The password is deliberately absent: listings are a lookup surface, not a
// disclosure surface.
type listEntry struct {
	Service   string `json:"service"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [service]",
		Short: "List credential entries",
		Long: `List stored entries in insertion order, optionally filtered by an exact
service name. Passwords are never shown in listings.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := ""
			if len(args) == 1 {
				service = args[0]
			}
			return runList(rootOpts, service, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, service string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := opts.openStore()
	if err != nil {
		return formatter.Fail(err)
	}
	formatter.VerboseLog("using store file %s", st.Path())

	records, err := st.List(service)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSONEnabled() {
		entries := make([]listEntry, 0, len(records))
		for _, rec := range records {
			entries = append(entries, listEntry{
				Service:   rec.Service,
				Username:  rec.Username,
				CreatedAt: rec.FormatCreatedAt(),
			})
		}
		return formatter.Success(entries)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No passwords found.")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Password Entries:")
	for _, rec := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "Service: %s\n", rec.Service)
		fmt.Fprintf(cmd.OutOrStdout(), "Username: %s\n", rec.Username)
		fmt.Fprintf(cmd.OutOrStdout(), "Created At: %s\n\n", rec.FormatCreatedAt())
	}
	return nil
}
