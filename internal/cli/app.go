// Package cli is the terminal front end: it lists content and drives the
// quiz and flashcard sessions from line-based input.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/cedzoi/cedzoi/internal/content"
	"github.com/cedzoi/cedzoi/internal/loader"
	"github.com/cedzoi/cedzoi/internal/logger"
	"github.com/cedzoi/cedzoi/internal/theme"
)

var ErrUsage = errors.New("usage: cedzoi [flags] list | quiz <id> | cards <id>")

type App struct {
	Loader *loader.Loader
	In     io.Reader
	Out    io.Writer
	Log    *logger.Logger
	Color  bool // ANSI styling; off for pipes and tests
}

func (a *App) palette(ctx context.Context) palette {
	if !a.Color {
		return plain
	}
	return paletteFor(theme.FromContext(ctx))
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	in := bufio.NewScanner(a.In)
	switch args[0] {
	case "list":
		return a.list(ctx)
	case "quiz":
		if len(args) != 2 {
			return ErrUsage
		}
		return a.runQuiz(ctx, in, args[1])
	case "cards":
		if len(args) != 2 {
			return ErrUsage
		}
		return a.runCards(ctx, in, args[1])
	}
	return fmt.Errorf("unknown command %q: %w", args[0], ErrUsage)
}

func (a *App) list(ctx context.Context) error {
	c, err := a.Loader.Catalog(ctx)
	if err != nil {
		return err
	}
	p := a.palette(ctx)
	if c.QuizzesFallback || c.FlashcardFallback {
		fmt.Fprintln(a.Out, p.dim("(content unavailable, showing built-in samples)"))
	}
	fmt.Fprintln(a.Out, p.bold("Quizzes"))
	for _, q := range c.Quizzes {
		fmt.Fprintf(a.Out, "  %-16s %s (%d questions)\n", q.ID, q.Title, q.QuestionCount)
		if q.Description != "" {
			fmt.Fprintf(a.Out, "  %-16s %s\n", "", p.dim(q.Description))
		}
	}
	fmt.Fprintln(a.Out, p.bold("Flashcards"))
	for _, s := range c.FlashcardSets {
		fmt.Fprintf(a.Out, "  %-16s %s (%d cards)\n", s.ID, s.Title, s.CardCount)
		if s.Description != "" {
			fmt.Fprintf(a.Out, "  %-16s %s\n", "", p.dim(s.Description))
		}
	}
	return nil
}

// notFound prints the recoverable "not found" notice.
func (a *App) notFound(kind, id string) {
	fmt.Fprintf(a.Out, "%s %q not found. Run `cedzoi list` to see what is available.\n", kind, id)
}

func newSessionID() string { return uuid.NewString() }

// readCommand returns the next trimmed input line; ok is false at EOF.
func readCommand(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func isNotFound(err error) bool { return errors.Is(err, content.ErrNotFound) }
