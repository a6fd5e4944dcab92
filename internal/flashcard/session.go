// Package flashcard holds the flashcard study session. Like the quiz
// session it is a value type: transitions return a new snapshot and the
// known/unknown sets are copied on write.
package flashcard

import (
	"fmt"

	"github.com/cedzoi/cedzoi/internal/content"
)

type Filter string

const (
	FilterAll     Filter = "all"
	FilterKnown   Filter = "known"
	FilterUnknown Filter = "unknown"
)

func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterKnown, FilterUnknown:
		return Filter(s), nil
	case "":
		return FilterAll, nil
	}
	return "", fmt.Errorf("unknown filter %q (want all, known or unknown)", s)
}

// Status is the learner's classification of a single card.
type Status int

const (
	Unclassified Status = iota
	Known
	Unknown
)

type Session struct {
	set     content.FlashcardSet
	filter  Filter
	index   int
	flipped bool
	known   map[string]struct{}
	unknown map[string]struct{}
}

func New(set content.FlashcardSet) Session {
	return Session{set: set, filter: FilterAll}
}

func (s Session) Set() content.FlashcardSet { return s.set }
func (s Session) Filter() Filter            { return s.filter }
func (s Session) Index() int                { return s.index }
func (s Session) Flipped() bool             { return s.flipped }

// Cards is the filtered view in original order.
func (s Session) Cards() []content.Card {
	if s.filter == FilterAll {
		return append([]content.Card(nil), s.set.Cards...)
	}
	out := make([]content.Card, 0, len(s.set.Cards))
	for _, c := range s.set.Cards {
		if s.inView(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

func (s Session) inView(id string) bool {
	switch s.filter {
	case FilterKnown:
		_, ok := s.known[id]
		return ok
	case FilterUnknown:
		_, ok := s.unknown[id]
		return ok
	}
	return true
}

// Empty reports that the current filter leaves nothing to study.
func (s Session) Empty() bool { return len(s.Cards()) == 0 }

func (s Session) Current() (content.Card, bool) {
	cards := s.Cards()
	if s.index < 0 || s.index >= len(cards) {
		return content.Card{}, false
	}
	return cards[s.index], true
}

func (s Session) Status(id string) Status {
	if _, ok := s.known[id]; ok {
		return Known
	}
	if _, ok := s.unknown[id]; ok {
		return Unknown
	}
	return Unclassified
}

func (s Session) Counts() (known, unknown int) { return len(s.known), len(s.unknown) }

type Progress struct {
	Position int // 1-based, 0 when empty
	Total    int
}

func (s Session) Progress() Progress {
	n := len(s.Cards())
	if n == 0 {
		return Progress{}
	}
	return Progress{Position: s.index + 1, Total: n}
}

func (s Session) Flip() Session {
	s.flipped = !s.flipped
	return s
}

// Advance moves to the next card of the filtered view; no-op on the last.
func (s Session) Advance() Session {
	if s.index >= len(s.Cards())-1 {
		return s
	}
	s.index++
	s.flipped = false
	return s
}

// Retreat moves to the previous card; no-op on the first.
func (s Session) Retreat() Session {
	if s.index <= 0 {
		return s
	}
	s.index--
	s.flipped = false
	return s
}

func (s Session) MarkKnown() Session   { return s.mark(Known) }
func (s Session) MarkUnknown() Session { return s.mark(Unknown) }

// mark classifies the current card and moves on. When the card drops out
// of the filtered view the following card slides under the cursor, so the
// index is only clamped instead of advanced.
func (s Session) mark(st Status) Session {
	card, ok := s.Current()
	if !ok {
		return s
	}
	known, unknown := cloneSet(s.known), cloneSet(s.unknown)
	if st == Known {
		known[card.ID] = struct{}{}
		delete(unknown, card.ID)
	} else {
		unknown[card.ID] = struct{}{}
		delete(known, card.ID)
	}
	s.known, s.unknown = known, unknown

	if s.inView(card.ID) {
		return s.Advance()
	}
	s.flipped = false
	if n := len(s.Cards()); s.index >= n {
		s.index = max(n-1, 0)
	}
	return s
}

// SetFilter switches the view and always starts it from the first card.
func (s Session) SetFilter(f Filter) Session {
	s.filter = f
	s.index = 0
	s.flipped = false
	return s
}

func (s Session) Restart() Session {
	return New(s.set)
}

func cloneSet(m map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(m)+1)
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}
