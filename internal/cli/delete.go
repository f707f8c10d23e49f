package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteResult is the JSON payload for a successful delete.
type deleteResult struct {
	Service  string `json:"service"`
	Username string `json:"username"`
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <service> <username>",
		Short: "Delete a credential entry",
		Long: `Delete the entry matching a (service, username) pair exactly.

The file is rewritten in full without the removed row; all other entries
keep their relative order. Deleting a pair that is not stored is an error
and changes nothing.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runDelete(opts *RootOptions, service, username string, cmd *cobra.Command) error {
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

	if err := st.Delete(service, username); err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSONEnabled() {
		return formatter.Success(deleteResult{Service: service, Username: username})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Password for %s (%s) deleted successfully!\n", service, username)
	return nil
}
