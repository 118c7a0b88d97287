// Package main provides the CLI entrypoint for assign-inspect.
//
// assign-inspect loads Go packages and answers the questions the matching
// core answers during resolution:
//   - supertypes: the ordered supertype closure of a type
//   - assignable: whether a payload type may flow into a receiver type
//   - resolve: which candidates from a YAML file satisfy a requirement
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	format  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "assign-inspect",
		Short:         "Inspect supertypes, assignability and resolution of Go types",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateFormat(opts.format)
		},
		// No Run: prints help by default.
	}

	cmd.PersistentFlags().StringVar(&opts.format, "format", "text", "output format: text|yaml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug records to stderr")

	cmd.AddCommand(newSupertypesCmd(opts))
	cmd.AddCommand(newAssignableCmd(opts))
	cmd.AddCommand(newResolveCmd(opts))
	return cmd
}

// logger returns a debug logger writing to w when verbose output is on.
func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	if !o.verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
