package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gokatarajesh/qcm-math/internal/catalog"
	"github.com/gokatarajesh/qcm-math/internal/question"
	"github.com/gokatarajesh/qcm-math/internal/quiz"
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print generated questions as JSON lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			subjects, _ := cmd.Flags().GetStringSlice("subjects")
			kind, _ := cmd.Flags().GetString("kind")
			latex, _ := cmd.Flags().GetBool("latex")
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			gen, err := newGenerator(cmd, quiz.Options{})
			if err != nil {
				return err
			}

			var set *question.Set
			if kind != "" {
				if len(subjects) != 1 || subjects[0] == catalog.Wildcard {
					return fmt.Errorf("--kind needs exactly one subject in --subjects")
				}
				var ok bool
				if set, ok = gen.Catalog().Lookup(subjects[0]); !ok {
					return fmt.Errorf("unknown subject %q", subjects[0])
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			for i := range count {
				var q question.Question
				if set != nil {
					q, err = set.Generate(quiz.NewRand(seedFor(cmd, i)), kind, question.Options{LaTeX: latex})
				} else {
					q, err = gen.Generate(cmd.Context(), quiz.Request{
						Subjects: subjects,
						LaTeX:    latex,
						Seed:     seedFor(cmd, i),
					})
				}
				if err != nil {
					return fmt.Errorf("generate question %d: %w", i+1, err)
				}
				if err := enc.Encode(q); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Int("count", 1, "Number of questions")
	cmd.Flags().StringSlice("subjects", []string{"*"}, "Subjects to draw from")
	cmd.Flags().String("kind", "", "Question kind, e.g. calcul_product (requires a single subject)")
	return cmd
}
