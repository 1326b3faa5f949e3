package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/qcm-math/internal/quiz"
	"github.com/gokatarajesh/qcm-math/internal/scoring"
)

const (
	letters   = "ABCD"
	margin    = "   "
	maxRuleTo = 80
)

var (
	colorRight   = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("203")
	colorSubject = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("242")
)

func newPlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Answer questions in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			subjects, _ := cmd.Flags().GetStringSlice("subjects")
			latex, _ := cmd.Flags().GetBool("latex")

			gen, err := newGenerator(cmd, quiz.Options{Recent: quiz.NewMemoryRecentStore(time.Hour)})
			if err != nil {
				return err
			}
			s := &session{
				cmd:       cmd,
				generator: gen,
				engine:    scoring.NewEngine(scoring.DefaultScoringConfig()),
				in:        bufio.NewScanner(cmd.InOrStdin()),
				out:       cmd.OutOrStdout(),
				now:       time.Now,
				id:        uuid.NewString(),
			}
			return s.run(cmd.Context(), count, subjects, latex)
		},
	}
	cmd.Flags().Int("count", 0, "Number of questions (asked interactively when 0)")
	cmd.Flags().StringSlice("subjects", []string{"*"}, "Subjects to draw from")
	return cmd
}

// session is one interactive quiz.
type session struct {
	cmd       *cobra.Command
	generator *quiz.Generator
	engine    *scoring.Engine
	in        *bufio.Scanner
	out       io.Writer
	now       func() time.Time
	id        string
}

func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) askCount() (int, error) {
	for {
		fmt.Fprint(s.out, "Combien de questions voulez-vous ? : ")
		line, ok := s.readLine()
		if !ok {
			return 0, io.ErrUnexpectedEOF
		}
		if n, err := strconv.Atoi(line); err == nil && n > 0 {
			return n, nil
		}
		fmt.Fprintln(s.out, "Je n'ai pas compris.")
	}
}

func (s *session) run(ctx context.Context, count int, subjects []string, latex bool) error {
	fmt.Fprint(s.out, "Bienvenue! appuyez sur entrer pour commencer le quiz !")
	if _, ok := s.readLine(); !ok {
		return nil
	}
	fmt.Fprintln(s.out)
	if count <= 0 {
		n, err := s.askCount()
		if err != nil {
			return err
		}
		count = n
	}

	answers := make(map[string]scoring.AnswerRecord, count)
	right := 0
	for i := range count {
		q, err := s.generator.Generate(ctx, quiz.Request{
			Subjects:  subjects,
			LaTeX:     latex,
			SessionID: s.id,
			Seed:      seedFor(s.cmd, i),
		})
		if err != nil {
			return fmt.Errorf("generate question %d: %w", i+1, err)
		}

		rule := min(utf8.RuneCountInString(q.Text), maxRuleTo)
		fmt.Fprintln(s.out, stylize(s.cmd, strings.Repeat("─", rule), colorMuted))
		fmt.Fprintf(s.out, "%s - %s\n", stylize(s.cmd, "("+q.Subject+")", colorSubject), q.Text)
		for j, a := range q.Answers {
			fmt.Fprintf(s.out, "%s%c. %s\n", margin, letters[j], a)
		}

		fmt.Fprint(s.out, margin+"Votre réponse : ")
		start := s.now()
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			break
		}
		elapsed := s.now().Sub(start).Seconds()

		correct := strings.ToUpper(line) == string(letters[q.CorrectIndex])
		if correct {
			right++
			fmt.Fprintln(s.out, margin+stylize(s.cmd, "Bonne réponse !", colorRight))
		} else {
			fmt.Fprintln(s.out, margin+stylize(s.cmd,
				fmt.Sprintf("Et non, la réponse était la lettre %c.  %s...", letters[q.CorrectIndex], q.Correct()), colorWrong))
		}
		answers[strconv.Itoa(i)] = scoring.AnswerRecord{
			QuestionName: q.Kind,
			Subject:      q.Subject,
			TimeTaken:    elapsed,
			Correct:      correct,
		}
	}

	if len(answers) == 0 {
		return nil
	}
	score, _, err := s.engine.ComputeFinalScore(scoring.Submission{Answers: answers})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Votre score est de %d bonne(s) réponse(s), soit %d%% de réussite\n", right, right*100/len(answers))
	fmt.Fprintf(s.out, "Score pondéré par le temps : %.2f\n", score)
	return nil
}
