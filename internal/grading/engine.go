package grading

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/cedzoi/cedzoi/internal/content"
)

// Selection is what the learner picked for one question. Single-select
// questions carry exactly one index.
type Selection []int

// Result is the outcome of grading a single question response.
type Result struct {
	Correct  bool
	Points   int      // 1 when correct, 0 otherwise
	Feedback []string // optional notes
}

// Strategy grades a single question.
type Strategy interface {
	Grade(ctx context.Context, q content.Question, sel Selection) (Result, error)
}

// Grader routes by question kind to the correct Strategy.
type Grader interface {
	Grade(ctx context.Context, q content.Question, sel Selection) (Result, error)
}

var ErrEmptySelection = errors.New("empty selection")

type defaultGrader struct {
	strategies map[content.Kind]Strategy
}

func (g *defaultGrader) Grade(ctx context.Context, q content.Question, sel Selection) (Result, error) {
	s, ok := g.strategies[q.Kind()]
	if !ok {
		return Result{}, fmt.Errorf("no strategy for kind %q", q.Kind())
	}
	if len(sel) == 0 {
		return Result{}, ErrEmptySelection
	}
	return s.Grade(ctx, q, sel)
}

// NewDefaultGrader installs the single and multiple choice strategies.
func NewDefaultGrader() Grader {
	return &defaultGrader{
		strategies: map[content.Kind]Strategy{
			content.KindSingle:   singleStrategy{},
			content.KindMultiple: multipleStrategy{},
		},
	}
}

// --- Strategies ---

type singleStrategy struct{}

func (singleStrategy) Grade(_ context.Context, q content.Question, sel Selection) (Result, error) {
	if len(sel) != 1 {
		return Result{}, fmt.Errorf("single-select question %s got %d picks", q.ID, len(sel))
	}
	want, ok := q.Answer.Index()
	if !ok {
		return Result{}, fmt.Errorf("question %s has no single answer", q.ID)
	}
	return verdict(sel[0] == want), nil
}

// multipleStrategy gives credit only for the exact set: no partial
// credit, and one wrong pick loses the question.
type multipleStrategy struct{}

func (multipleStrategy) Grade(_ context.Context, q content.Question, sel Selection) (Result, error) {
	picked := append([]int(nil), sel...)
	sort.Ints(picked)
	res := verdict(sortedEqual(picked, q.CorrectIndices()))
	if !res.Correct {
		missed, extra := diff(picked, q.CorrectIndices())
		if missed > 0 {
			res.Feedback = append(res.Feedback, fmt.Sprintf("%d correct option(s) not selected", missed))
		}
		if extra > 0 {
			res.Feedback = append(res.Feedback, fmt.Sprintf("%d wrong option(s) selected", extra))
		}
	}
	return res, nil
}

// helpers

func verdict(ok bool) Result {
	if ok {
		return Result{Correct: true, Points: 1}
	}
	return Result{}
}

func sortedEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func diff(picked, correct []int) (missed, extra int) {
	in := make(map[int]bool, len(picked))
	for _, p := range picked {
		in[p] = true
	}
	want := make(map[int]bool, len(correct))
	for _, c := range correct {
		want[c] = true
		if !in[c] {
			missed++
		}
	}
	for p := range in {
		if !want[p] {
			extra++
		}
	}
	return missed, extra
}
