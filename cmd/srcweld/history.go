package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/srcweld/srcweld/internal/config"
	"github.com/srcweld/srcweld/internal/database"
)

// NewHistoryCmd creates the history command, which lists combine runs
// recorded in the history database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded combine runs",
		Long: `History lists combine runs recorded in the history database, newest
first. Runs are recorded automatically unless combine was invoked with
--no-history.

Examples:
  # Show the most recent runs
  srcweld history

  # Show the last 5 runs
  srcweld history --limit 5

  # Output history in JSON format
  srcweld history --json`,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 20,
		"Maximum number of runs to list (0 for all)")
	cmd.Flags().BoolP("json", "j", false,
		"Output history in JSON format")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory containing the history database")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	// Missing database just means nothing was recorded yet.
	opts := database.Options{CreateIfNotExists: false}
	db, err := database.Open(dbDir, opts)
	if err != nil {
		if errors.Is(err, database.ErrDatabaseNotFound) {
			fmt.Fprintln(cmd.OutOrStdout(), "No combine history recorded yet.")
			return nil
		}
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close() //nolint:errcheck // Read-only listing

	records, err := db.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No combine history recorded yet.")
		return nil
	}

	for _, r := range records {
		minified := ""
		if r.Minified {
			minified = " (minified)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "#%d  %s  %s -> %s  files=%d namespaces=%d bytes=%d%s\n",
			r.ID,
			r.Timestamp.Local().Format(time.DateTime),
			r.ProjectList,
			r.OutputPath,
			r.FileCount,
			r.NamespaceCount,
			r.BytesWritten,
			minified,
		)
		if r.UnterminatedComments > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "    warning: %d unterminated block comment(s)\n",
				r.UnterminatedComments)
		}
	}

	return nil
}
