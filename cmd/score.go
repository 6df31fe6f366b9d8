package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ajugbo/aiq-platform/internal/scorer"
)

var scoreCmd = &cobra.Command{
	Use:   "score [text...]",
	Short: "Score a single answer without storing anything",
	Long:  "Score one free-text answer. The text is taken from the arguments, or from stdin when none are given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ordinal, _ := cmd.Flags().GetInt("ordinal")
		asJSON, _ := cmd.Flags().GetBool("json")

		text := strings.Join(args, " ")
		if len(args) == 0 {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = string(raw)
		}

		b, err := scorer.EvaluateValue(text, ordinal)
		if err != nil {
			return err
		}
		composite := scorer.Aggregate(b)

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Breakdown scorer.Breakdown `json:"breakdown"`
				scorer.Composite
			}{b, composite})
		}

		printBreakdown(out, b)
		fmt.Fprintf(out, "\n%-12s %3d / %d  %s\n", "Total", composite.Score, scorer.MaxComposite, composite.Level)
		return nil
	},
}

func init() {
	scoreCmd.Flags().Int("ordinal", 1, "1-based question number the answer belongs to")
	scoreCmd.Flags().Bool("json", false, "Print JSON instead of a table")
}

func printBreakdown(w io.Writer, b scorer.Breakdown) {
	for _, c := range scorer.Categories() {
		fmt.Fprintf(w, "%-12s %3d / %d\n", c.DisplayName(), b.Get(c), scorer.MaxCategoryScore)
	}
}

