// Package quiz holds the quiz session state machine. A Session is a value:
// every transition returns a new snapshot and leaves the receiver as it was.
package quiz

import (
	"context"
	"math"

	"github.com/cedzoi/cedzoi/internal/content"
	"github.com/cedzoi/cedzoi/internal/grading"
)

type Phase int

const (
	Answering Phase = iota
	Revealed
	Completed
)

func (p Phase) String() string {
	switch p {
	case Answering:
		return "answering"
	case Revealed:
		return "revealed"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// PassPercentage is the score at which a finished run counts as a good result.
const PassPercentage = 70

type Session struct {
	quiz   content.Quiz
	grader grading.Grader

	index       int
	selection   []int // never shared between snapshots
	revealed    bool
	lastCorrect bool
	feedback    []string
	score       int
	completed   bool
}

type Option func(*Session)

// WithGrader replaces the default single/multiple choice grader.
func WithGrader(g grading.Grader) Option { return func(s *Session) { s.grader = g } }

// New starts a session on the first question. A quiz without questions
// starts out completed.
func New(q content.Quiz, opts ...Option) Session {
	s := Session{quiz: q, grader: grading.NewDefaultGrader()}
	for _, o := range opts {
		o(&s)
	}
	s.completed = len(q.Questions) == 0
	return s
}

func (s Session) Quiz() content.Quiz { return s.quiz }
func (s Session) Index() int         { return s.index }
func (s Session) Score() int         { return s.score }
func (s Session) Total() int         { return len(s.quiz.Questions) }

func (s Session) Phase() Phase {
	switch {
	case s.completed:
		return Completed
	case s.revealed:
		return Revealed
	default:
		return Answering
	}
}

// Current returns the question under the cursor; ok is false once completed.
func (s Session) Current() (content.Question, bool) {
	if s.completed || s.index >= len(s.quiz.Questions) {
		return content.Question{}, false
	}
	return s.quiz.Questions[s.index], true
}

// Selection returns the tentative picks in the order they were made.
func (s Session) Selection() []int { return append([]int(nil), s.selection...) }

func (s Session) IsSelected(i int) bool {
	for _, v := range s.selection {
		if v == i {
			return true
		}
	}
	return false
}

// CanSubmit mirrors the enabled state of the submit action.
func (s Session) CanSubmit() bool {
	return s.Phase() == Answering && len(s.selection) > 0
}

// LastCorrect is the verdict of the most recent submit. Only meaningful
// while Revealed.
func (s Session) LastCorrect() bool    { return s.revealed && s.lastCorrect }
func (s Session) Feedback() []string   { return append([]string(nil), s.feedback...) }
func (s Session) IsLastQuestion() bool { return s.index == len(s.quiz.Questions)-1 }

// SelectAnswer picks option i. Single-select replaces the pick, multi-select
// toggles it. Ignored after reveal or for an index outside the options.
func (s Session) SelectAnswer(i int) Session {
	q, ok := s.Current()
	if !ok || s.revealed || i < 0 || i >= len(q.Options) {
		return s
	}
	if q.Kind() == content.KindSingle {
		s.selection = []int{i}
		return s
	}
	next := make([]int, 0, len(s.selection)+1)
	found := false
	for _, v := range s.selection {
		if v == i {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, i)
	}
	s.selection = next
	return s
}

// Submit grades the current selection and reveals the result. Ignored
// without a selection or outside the Answering phase.
func (s Session) Submit() Session {
	if !s.CanSubmit() {
		return s
	}
	q, _ := s.Current()
	res, err := s.grader.Grade(context.Background(), q, grading.Selection(s.selection))
	s.revealed = true
	s.lastCorrect = err == nil && res.Correct
	s.feedback = res.Feedback
	if err != nil {
		s.feedback = []string{err.Error()}
	}
	if s.lastCorrect {
		s.score++
	}
	return s
}

// Advance moves past a revealed question, finishing the run after the last.
func (s Session) Advance() Session {
	if s.Phase() != Revealed {
		return s
	}
	if s.index < len(s.quiz.Questions)-1 {
		s.index++
		s.selection = nil
		s.revealed = false
		s.lastCorrect = false
		s.feedback = nil
		return s
	}
	s.completed = true
	return s
}

// Restart throws away all progress and returns to the first question.
func (s Session) Restart() Session {
	return New(s.quiz, WithGrader(s.grader))
}

// Percentage is round(score / total * 100); 0 for an empty quiz.
func (s Session) Percentage() int {
	return Percentage(s.score, len(s.quiz.Questions))
}

func (s Session) Passed() bool { return s.Percentage() >= PassPercentage }

func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

type Progress struct {
	Position int // 1-based question number
	Total    int
	Answered int // questions already graded
}

func (s Session) Progress() Progress {
	p := Progress{Position: s.index + 1, Total: len(s.quiz.Questions), Answered: s.index}
	if s.revealed {
		p.Answered++
	}
	if s.completed {
		p.Position, p.Answered = p.Total, p.Total
	}
	return p
}

type OptionState int

const (
	OptionNeutral OptionState = iota
	OptionSelected
	OptionCorrect
	OptionWrong
)

// OptionState tells how option i should be shown: after reveal the correct
// options and wrong picks are marked, before it only the picks.
func (s Session) OptionState(i int) OptionState {
	q, ok := s.Current()
	if !ok {
		return OptionNeutral
	}
	picked := s.IsSelected(i)
	if !s.revealed {
		if picked {
			return OptionSelected
		}
		return OptionNeutral
	}
	switch {
	case q.Answer.Contains(i):
		return OptionCorrect
	case picked:
		return OptionWrong
	}
	return OptionNeutral
}
