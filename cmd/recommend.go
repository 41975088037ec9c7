package cmd

import (
	"fmt"
	"strings"

	"github.com/daehan/examly/internal/recommend"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend lectures by tag overlap",
	RunE: func(cmd *cobra.Command, args []string) error {
		tagsFlag, _ := cmd.Flags().GetString("tags")
		limit, _ := cmd.Flags().GetInt("limit")

		if tagsFlag == "" {
			return fmt.Errorf("--tags is required")
		}
		tags := strings.Split(tagsFlag, ",")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		lectures, err := s.LectureRepo().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load lectures: %w", err)
		}

		matches := recommend.Top(tags, lectures, limit)
		return printJSON(matches)
	},
}

func init() {
	recommendCmd.Flags().StringP("tags", "t", "", "Comma-separated note tags")
	recommendCmd.Flags().IntP("limit", "n", 5, "Maximum number of lectures to return")
}
