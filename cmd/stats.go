package cmd

import (
	"fmt"

	"github.com/daehan/examly/internal/stats"
	"github.com/spf13/cobra"
)

// statsOutput pairs the aggregate with a presentation-ordered weak list.
type statsOutput struct {
	stats.Statistics
	WeakCategoriesSorted []stats.WeakCategory `json:"weakCategoriesSorted"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a user's test statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		attempts, err := s.AttemptRepo().ByUser(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}

		agg := stats.Aggregate(attempts)
		return printJSON(statsOutput{
			Statistics:           agg,
			WeakCategoriesSorted: stats.SortedWeakCategories(agg.WeakCategories),
		})
	},
}

func init() {
	statsCmd.Flags().StringP("user", "u", "", "User ID")
}
