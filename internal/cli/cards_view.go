package cli

import (
	"bufio"
	"context"
	"fmt"

	"github.com/cedzoi/cedzoi/internal/flashcard"
	"github.com/cedzoi/cedzoi/internal/theme"
)

const cardsHelp = "f: flip  n/p: next/prev  k/u: known/unknown  a/K/U: show all/known/unknown  r: restart  t: theme  q: back to list"

func (a *App) runCards(ctx context.Context, in *bufio.Scanner, id string) error {
	res, err := a.Loader.FlashcardSet(ctx, id)
	if isNotFound(err) {
		a.notFound("Flashcard set", id)
		return nil
	}
	if err != nil {
		return err
	}
	sid := newSessionID()
	a.Log.Debug("cards session %s started on %s (fallback=%v)", sid, id, res.Fallback)
	if res.Fallback {
		fmt.Fprintln(a.Out, a.palette(ctx).dim("(content unavailable, showing a built-in sample)"))
	}

	s := flashcard.New(res.Set)
	fmt.Fprintf(a.Out, "%s\n%s\n%s\n", a.palette(ctx).bold(res.Set.Title), res.Set.Description, cardsHelp)
	a.renderCards(ctx, s)
	for {
		cmd, ok := readCommand(in)
		if !ok || cmd == "q" {
			known, unknown := s.Counts()
			a.Log.Debug("cards session %s closed, known %d unknown %d", sid, known, unknown)
			if ok {
				return a.list(ctx)
			}
			return nil
		}
		next, msg := applyCardsCommand(ctx, s, cmd)
		s = next
		if msg != "" {
			fmt.Fprintln(a.Out, msg)
			continue
		}
		a.renderCards(ctx, s)
	}
}

// applyCardsCommand maps one input line to a transition.
func applyCardsCommand(ctx context.Context, s flashcard.Session, cmd string) (flashcard.Session, string) {
	switch cmd {
	case "f":
		return s.Flip(), ""
	case "n":
		return s.Advance(), ""
	case "p":
		return s.Retreat(), ""
	case "k":
		return s.MarkKnown(), ""
	case "u":
		return s.MarkUnknown(), ""
	case "a":
		return s.SetFilter(flashcard.FilterAll), ""
	case "K":
		return s.SetFilter(flashcard.FilterKnown), ""
	case "U":
		return s.SetFilter(flashcard.FilterUnknown), ""
	case "r":
		return s.Restart(), ""
	case "t":
		return s, "Theme: " + string(theme.FromContext(ctx).Toggle())
	case "", "?", "h":
		return s, cardsHelp
	}
	if f, err := flashcard.ParseFilter(cmd); err == nil {
		return s.SetFilter(f), ""
	}
	return s, "Unknown command. " + cardsHelp
}

func (a *App) renderCards(ctx context.Context, s flashcard.Session) {
	p := a.palette(ctx)
	known, unknown := s.Counts()
	counts := fmt.Sprintf("%s %d  %s %d", p.ok("known:"), known, p.bad("unknown:"), unknown)
	card, ok := s.Current()
	if !ok {
		fmt.Fprintf(a.Out, "\n%s   [%s]\n", emptyMessage(s.Filter()), counts)
		fmt.Fprintln(a.Out, "a: show all  r: restart  q: back to list")
		return
	}
	pr := s.Progress()
	fmt.Fprintf(a.Out, "\nCard %d / %d (%s)   [%s]\n", pr.Position, pr.Total, s.Filter(), counts)
	switch s.Status(card.ID) {
	case flashcard.Known:
		fmt.Fprintln(a.Out, p.ok("(known)"))
	case flashcard.Unknown:
		fmt.Fprintln(a.Out, p.bad("(unknown)"))
	}
	if s.Flipped() {
		fmt.Fprintf(a.Out, "%s %s\n", p.dim("Back: "), p.bold(card.Back))
	} else {
		fmt.Fprintf(a.Out, "%s %s\n", p.dim("Front:"), p.bold(card.Front))
	}
}

func emptyMessage(f flashcard.Filter) string {
	switch f {
	case flashcard.FilterKnown:
		return "No cards marked as known yet."
	case flashcard.FilterUnknown:
		return "No cards marked as unknown yet."
	}
	return "This set has no cards."
}
