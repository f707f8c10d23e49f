package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eyono/Password-manager-final/internal/password"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Length int
}

// generateResult is the JSON payload for a generated password.
type generateResult struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// NewGenerateCommand creates the generate command.
// It produces a password without storing anything, for use outside the store.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password without storing it",
		Long: `Generate a cryptographically secure password from the 94-symbol
printable ASCII alphabet and print it. Nothing is written to the store.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Length, "length", "n", 0, "password length (default from config, 16 otherwise)")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := opts.resolveConfig()
	if err != nil {
		return formatter.Fail(err)
	}

	length := opts.Length
	if length == 0 {
		length = cfg.PasswordLength
	}

	pw, err := password.Generate(length)
	if err != nil {
		return formatter.Fail(WrapExitError(ExitCommandError, "generate password", err))
	}

	if formatter.JSONEnabled() {
		return formatter.Success(generateResult{Password: pw, Length: length})
	}

	fmt.Fprintln(cmd.OutOrStdout(), pw)
	return nil
}
