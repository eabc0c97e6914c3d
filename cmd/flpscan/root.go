// Package main provides the entry point for the flpscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for flpscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flpscan",
		Short: "Parse coverage reporting for FL Studio project files",
		Long: `flpscan generates a static HTML report showing how much of an FL Studio
project file (.flp) was decoded into known event types versus left opaque.

Decoding is delegated entirely to the external PyFLP dumper; flpscan only
classifies, counts, and renders the decoded event stream.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
