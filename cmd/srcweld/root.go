// Package main provides the entry point for the srcweld CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for srcweld.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "srcweld",
		Short: "Combine project source files into a single file",
		Long: `srcweld concatenates the compilable source files of one or more projects
into a single output file. Import directives are collected, deduplicated,
and hoisted to the top; each file's body follows behind a marker comment
naming its origin. Minification optionally strips comments and line breaks
without altering executable semantics.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCombineCmd())
	cmd.AddCommand(NewHistoryCmd())
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
