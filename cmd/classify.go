package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/daehan/examly/internal/keywords"
	"github.com/daehan/examly/internal/llm"
	"github.com/daehan/examly/internal/taxonomy"
	"github.com/spf13/cobra"
)

// classifyOutput is the JSON shape printed for a classification.
type classifyOutput struct {
	ExtractedKeywords   []string       `json:"extractedKeywords"`
	MatchedCategory     *taxonomy.Node `json:"matchedCategory"`
	Confidence          float64        `json:"confidence"`
	SuggestedFolderPath string         `json:"suggestedFolderPath"`
	HighConfidence      bool           `json:"highConfidence"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a note into the category tree",
	Long: "Classify matches keywords against the category tree and suggests a folder.\n" +
		"Pass --keywords directly, or --text (or --file) to extract keywords from\n" +
		"note content with the configured LLM provider first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		kwFlag, _ := cmd.Flags().GetString("keywords")
		text, _ := cmd.Flags().GetString("text")
		file, _ := cmd.Flags().GetString("file")

		var kws []string
		switch {
		case kwFlag != "":
			kws = strings.Split(kwFlag, ",")

		case text != "" || file != "":
			if file != "" {
				content, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read note file: %w", err)
				}
				text = string(content)
			}

			s, err := openStore(cmd)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			provider, err := llm.NewProviderFromEnv(cmd.Context(), s.EventRepo())
			if err != nil {
				return fmt.Errorf("LLM provider not configured: %w", err)
			}

			extractor := keywords.New(provider, keywords.DefaultConfig())
			kws, err = extractor.Extract(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("extract keywords: %w", err)
			}

		default:
			return fmt.Errorf("one of --keywords, --text, or --file is required")
		}

		res := taxonomy.Classify(kws)

		out := classifyOutput{
			ExtractedKeywords:   res.ExtractedKeywords,
			MatchedCategory:     res.MatchedCategory,
			Confidence:          res.Confidence,
			SuggestedFolderPath: res.SuggestedFolderPath,
			HighConfidence:      res.HighConfidence(),
		}
		return printJSON(out)
	},
}

func init() {
	classifyCmd.Flags().StringP("keywords", "k", "", "Comma-separated keywords to classify directly")
	classifyCmd.Flags().StringP("text", "t", "", "Note text to extract keywords from")
	classifyCmd.Flags().StringP("file", "f", "", "Path to a note file to extract keywords from")
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
