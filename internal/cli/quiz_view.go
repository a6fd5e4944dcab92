package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cedzoi/cedzoi/internal/content"
	"github.com/cedzoi/cedzoi/internal/quiz"
	"github.com/cedzoi/cedzoi/internal/theme"
)

const quizHelp = "number: pick/toggle option  s: submit  n: next  r: restart  t: theme  q: back to list"

func (a *App) runQuiz(ctx context.Context, in *bufio.Scanner, id string) error {
	res, err := a.Loader.Quiz(ctx, id)
	if isNotFound(err) {
		a.notFound("Quiz", id)
		return nil
	}
	if err != nil {
		return err
	}
	sid := newSessionID()
	a.Log.Debug("quiz session %s started on %s (fallback=%v)", sid, id, res.Fallback)
	if res.Fallback {
		fmt.Fprintln(a.Out, a.palette(ctx).dim("(content unavailable, showing a built-in sample)"))
	}

	s := quiz.New(res.Quiz)
	fmt.Fprintf(a.Out, "%s\n%s\n%s\n", a.palette(ctx).bold(res.Quiz.Title), res.Quiz.Description, quizHelp)
	a.renderQuiz(ctx, s)
	for {
		cmd, ok := readCommand(in)
		if !ok || cmd == "q" {
			a.Log.Debug("quiz session %s closed at %s, score %d", sid, s.Phase(), s.Score())
			if ok {
				return a.list(ctx)
			}
			return nil
		}
		next, msg := applyQuizCommand(ctx, s, cmd)
		s = next
		if msg != "" {
			fmt.Fprintln(a.Out, msg)
			continue
		}
		a.renderQuiz(ctx, s)
	}
}

// applyQuizCommand maps one input line to a transition.
func applyQuizCommand(ctx context.Context, s quiz.Session, cmd string) (quiz.Session, string) {
	switch cmd {
	case "s":
		if !s.CanSubmit() {
			return s, "Pick an answer first."
		}
		return s.Submit(), ""
	case "n":
		if s.Phase() != quiz.Revealed {
			return s, "Submit your answer first."
		}
		return s.Advance(), ""
	case "r":
		return s.Restart(), ""
	case "t":
		return s, "Theme: " + string(theme.FromContext(ctx).Toggle())
	case "", "?", "h":
		return s, quizHelp
	}
	n, err := strconv.Atoi(cmd)
	if err != nil {
		return s, "Unknown command. " + quizHelp
	}
	if s.Phase() != quiz.Answering {
		return s, "The answer is locked."
	}
	return s.SelectAnswer(n - 1), ""
}

func (a *App) renderQuiz(ctx context.Context, s quiz.Session) {
	p := a.palette(ctx)
	if s.Phase() == quiz.Completed {
		fmt.Fprintf(a.Out, "\n%s\n", p.bold("Quiz finished"))
		fmt.Fprintf(a.Out, "You answered %d / %d questions correctly (%d%%)\n", s.Score(), s.Total(), s.Percentage())
		if s.Passed() {
			fmt.Fprintln(a.Out, p.ok("Well done, good result!"))
		} else {
			fmt.Fprintln(a.Out, p.bad("Practice a little more!"))
		}
		fmt.Fprintln(a.Out, "r: start again  q: back to list")
		return
	}
	q, _ := s.Current()
	pr := s.Progress()
	fmt.Fprintf(a.Out, "\nQuestion %d / %d   Score: %d / %d\n", pr.Position, pr.Total, s.Score(), pr.Answered)
	fmt.Fprintln(a.Out, p.bold(q.Prompt))
	if q.Kind() == content.KindMultiple {
		fmt.Fprintln(a.Out, p.dim("(multiple answers, select every correct option)"))
	}
	for i, opt := range q.Options {
		fmt.Fprintf(a.Out, "  %s %d. %s\n", optionMarker(p, s.OptionState(i), q.Kind()), i+1, opt)
	}
	if s.Phase() != quiz.Revealed {
		return
	}
	if s.LastCorrect() {
		fmt.Fprintln(a.Out, p.ok("Correct!"))
	} else {
		fmt.Fprintln(a.Out, p.bad("Wrong."))
		for _, fb := range s.Feedback() {
			fmt.Fprintln(a.Out, p.dim("  "+fb))
		}
	}
	if q.Explanation != "" {
		fmt.Fprintf(a.Out, "Explanation: %s\n", q.Explanation)
	}
	if s.IsLastQuestion() {
		fmt.Fprintln(a.Out, "n: finish quiz")
	} else {
		fmt.Fprintln(a.Out, "n: next question")
	}
}

func optionMarker(p palette, st quiz.OptionState, k content.Kind) string {
	open, closed := "( )", "(*)"
	if k == content.KindMultiple {
		open, closed = "[ ]", "[x]"
	}
	switch st {
	case quiz.OptionSelected:
		return closed
	case quiz.OptionCorrect:
		return p.ok(strings.Replace(open, " ", "✓", 1))
	case quiz.OptionWrong:
		return p.bad(strings.Replace(open, " ", "✗", 1))
	}
	return open
}
