// Package main provides the entry point for the repocheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for repocheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repocheck",
		Short: "Batch checker for GitHub repository links",
		Long: `Repocheck verifies that GitHub repository links are still alive.

It reads a newline-delimited list of repository URLs, queries the GitHub
API for each one with a fixed delay between requests, and reports which
links are dead, private, or malformed.

Supply a personal access token to raise the API rate limit and to check
private repositories the token can see.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewInitCmd())
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
