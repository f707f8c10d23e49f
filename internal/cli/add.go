package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Password string
	Prompt   bool
}

// addResult is the JSON payload for a successful add.
// Password is present only when it was generated, so callers of the JSON
// interface can display it exactly like terminal users see it.
type addResult struct {
	Service   string `json:"service"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
	Generated bool   `json:"generated"`
	Password  string `json:"password,omitempty"`
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <service> <username>",
		Short: "Add a credential entry",
		Long: `Add a credential entry for a service and username.

When no password is supplied one is generated from the 94-symbol printable
ASCII alphabet with a cryptographically secure source, and printed so you
can use it. Supplied passwords are stored verbatim - no strength check is
imposed.

Example:
  passman add github alice
  passman add github alice -p 'hunter2'
  passman add github alice --prompt`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "password to store (generated when omitted)")
	cmd.Flags().BoolVar(&opts.Prompt, "prompt", false, "read the password from the terminal without echo")

	return cmd
}

func runAdd(opts *AddOptions, service, username string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Prompt && opts.Password != "" {
		return formatter.Fail(NewExitError(ExitCommandError, "--password and --prompt are mutually exclusive"))
	}
	if opts.Prompt {
		pw, err := promptPassword(cmd.ErrOrStderr())
		if err != nil {
			return formatter.Fail(WrapExitError(ExitCommandError, "read password", err))
		}
		opts.Password = string(pw)
	}

	st, err := opts.openStore()
	if err != nil {
		return formatter.Fail(err)
	}
	formatter.VerboseLog("using store file %s", st.Path())

	generated := opts.Password == ""
	rec, err := st.Add(service, username, opts.Password)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSONEnabled() {
		result := addResult{
			Service:   rec.Service,
			Username:  rec.Username,
			CreatedAt: rec.FormatCreatedAt(),
			Generated: generated,
		}
		if generated {
			result.Password = rec.Password
		}
		return formatter.Success(result)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Password for %s (%s) added successfully!\n", rec.Service, rec.Username)
	if generated {
		// Deliberate plaintext echo: a generated value the user never chose
		// has to be shown once or it is lost.
		fmt.Fprintf(cmd.OutOrStdout(), "Generated Password: %s\n", rec.Password)
	}
	return nil
}
