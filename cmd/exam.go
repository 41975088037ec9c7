package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/daehan/examly/internal/exam"
	"github.com/daehan/examly/internal/grading"
	"github.com/spf13/cobra"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Assemble and grade exams",
}

var examNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Assemble an exam from the question bank",
	Long: "Assemble draws questions matching the category, difficulty, and type\n" +
		"constraints. With --adaptive the draw is biased toward the difficulty the\n" +
		"user's recent accuracy suggests. The answer-free exam is printed to stdout;\n" +
		"--out saves the full exam (with answers) for grading.",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec := exam.Spec{}
		spec.Title, _ = cmd.Flags().GetString("title")
		spec.Desc, _ = cmd.Flags().GetString("desc")
		spec.Category.Large, _ = cmd.Flags().GetString("large")
		spec.Category.Medium, _ = cmd.Flags().GetString("medium")
		spec.Category.Small, _ = cmd.Flags().GetString("small")
		spec.Difficulty, _ = cmd.Flags().GetInt("difficulty")
		spec.MinDiff, _ = cmd.Flags().GetInt("min-difficulty")
		spec.MaxDiff, _ = cmd.Flags().GetInt("max-difficulty")
		spec.Count, _ = cmd.Flags().GetInt("count")
		typ, _ := cmd.Flags().GetString("type")
		spec.Type = exam.Type(typ)
		spec.Adaptive, _ = cmd.Flags().GetBool("adaptive")
		spec.UserID, _ = cmd.Flags().GetString("user")
		spec.ScorePerQuestion, _ = cmd.Flags().GetInt("score")

		if spec.Adaptive && spec.UserID == "" {
			return fmt.Errorf("--adaptive requires --user")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		seed, _ := cmd.Flags().GetUint64("seed")
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng := rand.New(rand.NewPCG(seed, seed>>1))

		asm := exam.NewAssembler(s.QuestionRepo(), s.AttemptRepo(), exam.DefaultConfig(), rng)
		ex, err := asm.Assemble(cmd.Context(), spec)
		if err != nil {
			return fmt.Errorf("assemble exam: %w", err)
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			full, err := json.MarshalIndent(ex, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal exam: %w", err)
			}
			if err := os.WriteFile(out, full, 0o644); err != nil {
				return fmt.Errorf("write exam file: %w", err)
			}
		}

		return printJSON(ex.Response())
	},
}

// submissionFile is the JSON shape accepted by exam grade --answers.
type submissionFile struct {
	UserID    string            `json:"userId"`
	Answers   map[string]string `json:"answers"`
	StartedAt time.Time         `json:"startedAt"`
	EndedAt   time.Time         `json:"endedAt"`
}

var examGradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a submission against a saved exam",
	RunE: func(cmd *cobra.Command, args []string) error {
		examFile, _ := cmd.Flags().GetString("exam")
		answersFile, _ := cmd.Flags().GetString("answers")
		threshold, _ := cmd.Flags().GetFloat64("threshold")

		var ex exam.Exam
		if err := readJSONFile(examFile, &ex); err != nil {
			return fmt.Errorf("read exam: %w", err)
		}

		var sf submissionFile
		if err := readJSONFile(answersFile, &sf); err != nil {
			return fmt.Errorf("read answers: %w", err)
		}

		sub := grading.Submission{
			ExamID:    ex.ID,
			UserID:    sf.UserID,
			Answers:   sf.Answers,
			StartedAt: sf.StartedAt,
			EndedAt:   sf.EndedAt,
		}

		grader := grading.NewGrader(grading.DefaultConfig())
		res, err := grader.Grade(&ex, sub, threshold)
		if err != nil {
			return fmt.Errorf("grade: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		if err := s.AttemptRepo().Append(cmd.Context(), res); err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}

		return printJSON(res)
	},
}

func readJSONFile(path string, v any) error {
	if path == "" {
		return fmt.Errorf("file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func init() {
	examNewCmd.Flags().String("title", "", "Exam title")
	examNewCmd.Flags().String("desc", "", "Exam description")
	examNewCmd.Flags().String("large", "", "Large category filter")
	examNewCmd.Flags().String("medium", "", "Medium category filter")
	examNewCmd.Flags().String("small", "", "Small category filter")
	examNewCmd.Flags().Int("difficulty", 0, "Pin a single difficulty (1-5)")
	examNewCmd.Flags().Int("min-difficulty", 0, "Lower difficulty bound")
	examNewCmd.Flags().Int("max-difficulty", 0, "Upper difficulty bound")
	examNewCmd.Flags().IntP("count", "n", 10, "Number of questions")
	examNewCmd.Flags().String("type", "", "Question type filter (multiple_choice, fill_blank, concept, subjective)")
	examNewCmd.Flags().Bool("adaptive", false, "Bias difficulty by the user's recent accuracy")
	examNewCmd.Flags().StringP("user", "u", "", "User ID for adaptive mode")
	examNewCmd.Flags().Int("score", 5, "Score per question")
	examNewCmd.Flags().Uint64("seed", 0, "Random seed (0 = time-based)")
	examNewCmd.Flags().StringP("out", "o", "", "Write the full exam (with answers) to this file")

	examGradeCmd.Flags().String("exam", "", "Path to a saved exam file (from exam new --out)")
	examGradeCmd.Flags().String("answers", "", "Path to a submission JSON file")
	examGradeCmd.Flags().Float64("threshold", 60, "Pass threshold in percent")

	examCmd.AddCommand(examNewCmd)
	examCmd.AddCommand(examGradeCmd)
}
