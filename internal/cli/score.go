package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gokatarajesh/qcm-math/internal/scoring"
	"github.com/gokatarajesh/qcm-math/internal/validation"
)

func newScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a submission read from a file or stdin",
		Long: `Score reads {"metaData": {"answers": {...}}} or {"answers": {...}} and
prints the time-weighted score.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if path, _ := cmd.Flags().GetString("file"); path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open submission: %w", err)
				}
				defer f.Close()
				in = f
			}

			sub, err := scoring.DecodeSubmission(in)
			if err != nil {
				return fmt.Errorf("decode submission: %w", err)
			}
			if fields := validation.New().Struct(sub); fields != nil {
				field, msg := validation.First(fields)
				return fmt.Errorf("%s: %s", field, msg)
			}

			scale, _ := cmd.Flags().GetFloat64("scale")
			offset, _ := cmd.Flags().GetFloat64("offset")
			score, accuracy, err := scoring.NewEngine(scoring.ScoringConfig{Scale: scale, Offset: offset}).ComputeFinalScore(sub)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "score: %.2f\naccuracy: %.0f%%\n", score, accuracy*100)
			return nil
		},
	}
	defaults := scoring.DefaultScoringConfig()
	cmd.Flags().String("file", "", "Submission file (defaults to stdin)")
	cmd.Flags().Float64("scale", defaults.Scale, "Points of an instant correct answer")
	cmd.Flags().Float64("offset", defaults.Offset, "Seconds added to each response time before log10")
	return cmd
}
