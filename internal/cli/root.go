// Package cli implements the passman command-line interface.
//
// Each invocation is a short-lived process that performs exactly one of
// {add, list, delete, generate} against the CSV store; selecting the action
// is structural (cobra subcommands), so "exactly one action" cannot be
// violated. The CLI layer only parses input, invokes the store, and formats
// output - it performs no recovery logic of its own.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eyono/Password-manager-final/internal/config"
	"github.com/Eyono/Password-manager-final/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	File       string // store path; overrides config and default
	ConfigPath string // optional YAML config file
	Format     string // "json" | "text"
	Verbose    bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the passman CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "passman",
		Short: "passman - local credential store",
		Long: `A local credential store over a flat CSV file.

Records are (service, username, password, created_at) rows; adds append,
deletes rewrite the file atomically, and every command re-reads the file
from disk so external edits are honored.

Note: adding without --password prints the generated password in plain
text on the terminal. That is deliberate (the caller needs the value) but
worth knowing before running it in a logged session.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.File, "file", "", "path of the credential file (default "+config.DefaultFile+")")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path of an optional YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// resolveConfig merges defaults, the optional config file, and flags.
// Flags win over the config file; the config file wins over defaults.
func (o *RootOptions) resolveConfig() (config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return config.Config{}, WrapExitError(ExitCommandError, "load config", err)
		}
		cfg = loaded
	}
	if o.File != "" {
		cfg.File = o.File
	}
	return cfg, nil
}

// openStore resolves configuration and opens (creating if needed) the store.
func (o *RootOptions) openStore() (*store.Store, error) {
	cfg, err := o.resolveConfig()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.File, store.WithPasswordLength(cfg.PasswordLength))
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open store", err)
	}
	return st, nil
}
