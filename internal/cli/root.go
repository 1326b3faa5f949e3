// Package cli implements the qcm terminal commands.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/qcm-math/internal/catalog"
	"github.com/gokatarajesh/qcm-math/internal/logging"
	"github.com/gokatarajesh/qcm-math/internal/quiz"
)

// NewRootCommand builds the qcm command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "qcm",
		Short:         "Math multiple-choice quiz generator",
		Long:          "qcm generates multiple-choice math questions in French and scores timed answers.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("subjects-file", "", "YAML file overriding the subject intervals")
	root.PersistentFlags().Bool("latex", false, "Render math in LaTeX instead of plain Unicode")
	root.PersistentFlags().Uint64("seed", 0, "Seed making the generated questions reproducible")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")
	root.PersistentFlags().String("log-level", "warn", "Log level written to stderr")

	root.AddCommand(newPlayCommand())
	root.AddCommand(newGenerateCommand())
	root.AddCommand(newScoreCommand())
	root.AddCommand(newSubjectsCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func commandLogger(cmd *cobra.Command) zerolog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.NewWithWriter(cmd.ErrOrStderr(), "qcm", "cli", level)
}

func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	cfg := catalog.DefaultConfig()
	if path, _ := cmd.Flags().GetString("subjects-file"); path != "" {
		loaded, err := catalog.LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cat, err := catalog.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return cat, nil
}

// seedFor returns the seed of the i-th question, or nil when --seed is unset.
func seedFor(cmd *cobra.Command, i int) *uint64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	seed, _ := cmd.Flags().GetUint64("seed")
	seed += uint64(i)
	return &seed
}

// stylize applies optional color styling.
func stylize(cmd *cobra.Command, text string, color lipgloss.Color) string {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func newGenerator(cmd *cobra.Command, opts quiz.Options) (*quiz.Generator, error) {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return nil, err
	}
	return quiz.NewGenerator(cat, commandLogger(cmd), opts), nil
}
