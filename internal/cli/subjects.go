package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gokatarajesh/qcm-math/internal/quiz"
)

func newSubjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "List the subjects and their question kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-14s  %-6s  %s\n", "Subject", "Weight", "Kinds")
			fmt.Fprintln(out, strings.Repeat("─", 72))
			for _, s := range quiz.Describe(cat) {
				fmt.Fprintf(out, "%-14s  %-6d  %s\n", s.Name, s.Weight, strings.Join(s.Kinds, ", "))
			}
			return nil
		},
	}
}
