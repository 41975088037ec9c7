package cmd

import (
	"fmt"

	"github.com/daehan/examly/internal/exam"
	"github.com/daehan/examly/internal/recommend"
	"github.com/daehan/examly/internal/tagmatch"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import questions or lectures from JSON files",
}

var importQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Import question-bank entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		var questions []exam.Question
		if err := readJSONFile(file, &questions); err != nil {
			return fmt.Errorf("read questions: %w", err)
		}
		for _, q := range questions {
			if q.ID == "" {
				return fmt.Errorf("question with empty id in %s", file)
			}
			if q.Difficulty < exam.MinDifficulty || q.Difficulty > exam.MaxDifficulty {
				return fmt.Errorf("question %s: difficulty %d out of range", q.ID, q.Difficulty)
			}
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		if err := s.QuestionRepo().Put(cmd.Context(), questions); err != nil {
			return fmt.Errorf("import questions: %w", err)
		}

		fmt.Printf("Imported %d questions.\n", len(questions))
		return nil
	},
}

var importLecturesCmd = &cobra.Command{
	Use:   "lectures",
	Short: "Import recommendable lectures",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		var lectures []recommend.Lecture
		if err := readJSONFile(file, &lectures); err != nil {
			return fmt.Errorf("read lectures: %w", err)
		}
		for i := range lectures {
			if lectures[i].ID == "" {
				return fmt.Errorf("lecture with empty id in %s", file)
			}
			// Tags are matched case-insensitively; store them normalized.
			lectures[i].Tags = tagmatch.Normalize(lectures[i].Tags)
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		if err := s.LectureRepo().Put(cmd.Context(), lectures); err != nil {
			return fmt.Errorf("import lectures: %w", err)
		}

		fmt.Printf("Imported %d lectures.\n", len(lectures))
		return nil
	},
}

func init() {
	importQuestionsCmd.Flags().StringP("file", "f", "", "Path to a JSON array of questions")
	importLecturesCmd.Flags().StringP("file", "f", "", "Path to a JSON array of lectures")

	importCmd.AddCommand(importQuestionsCmd)
	importCmd.AddCommand(importLecturesCmd)
}
