package grading

import (
	"context"
	"errors"
	"testing"

	"github.com/cedzoi/cedzoi/internal/content"
)

func TestGrade_Single(t *testing.T) {
	g := NewDefaultGrader()
	q := content.Question{ID: "q1", Options: []string{"3", "4", "5", "6"}, Answer: content.Single(1)}
	for i := range q.Options {
		res, err := g.Grade(context.Background(), q, Selection{i})
		if err != nil {
			t.Fatalf("grade %d: %v", i, err)
		}
		if res.Correct != (i == 1) {
			t.Errorf("pick %d: correct=%v", i, res.Correct)
		}
		if res.Correct && res.Points != 1 {
			t.Errorf("pick %d: points=%d", i, res.Points)
		}
	}
}

func TestGrade_MultipleExactSetOnly(t *testing.T) {
	g := NewDefaultGrader()
	q := content.Question{ID: "q2", Options: []string{"a", "b", "c", "d"}, Answer: content.Multiple(0, 2), Type: "multiple"}
	cases := []struct {
		name string
		sel  Selection
		want bool
	}{
		{"exact", Selection{0, 2}, true},
		{"exact reversed", Selection{2, 0}, true},
		{"subset", Selection{0}, false},
		{"superset", Selection{0, 1, 2}, false},
		{"disjoint", Selection{1, 3}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := g.Grade(context.Background(), q, tc.sel)
			if err != nil {
				t.Fatalf("grade: %v", err)
			}
			if res.Correct != tc.want {
				t.Fatalf("correct=%v want %v", res.Correct, tc.want)
			}
			if !tc.want && len(res.Feedback) == 0 {
				t.Fatal("expected feedback on a wrong set")
			}
		})
	}
}

func TestGrade_TaggedMultipleWithSingleAnswer(t *testing.T) {
	g := NewDefaultGrader()
	q := content.Question{ID: "q3", Options: []string{"a", "b"}, Answer: content.Single(1), Type: "multiple"}
	res, err := g.Grade(context.Background(), q, Selection{1})
	if err != nil || !res.Correct {
		t.Fatalf("res=%+v err=%v", res, err)
	}
	res, _ = g.Grade(context.Background(), q, Selection{0, 1})
	if res.Correct {
		t.Fatal("extra pick must disqualify")
	}
}

func TestGrade_EmptySelection(t *testing.T) {
	g := NewDefaultGrader()
	q := content.Question{ID: "q1", Options: []string{"a"}, Answer: content.Single(0)}
	if _, err := g.Grade(context.Background(), q, nil); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("want ErrEmptySelection, got %v", err)
	}
}
