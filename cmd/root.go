package cmd

import (
	"github.com/daehan/examly/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "examly",
	Short: "Adaptive assessment and categorization engine",
	Long: "Examly classifies study notes into a category tree, recommends lectures by tag\n" +
		"overlap, assembles exams from a question bank, grades submissions, and tracks\n" +
		"per-user statistics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMLY_DB env var)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EXAMLY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
