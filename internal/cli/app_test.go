package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cedzoi/cedzoi/internal/loader"
	"github.com/cedzoi/cedzoi/internal/logger"
	"github.com/cedzoi/cedzoi/internal/theme"
)

const quizzesJSON = `[{"id":"quiz-1","title":"Math","description":"basics","questions":[
 {"id":"q1","question":"2+2?","options":["3","4"],"correctAnswer":1,"explanation":"2 + 2 = 4"},
 {"id":"q2","question":"odd?","options":["1","2","3"],"correctAnswer":[0,2]}]}]`

const flashcardsJSON = `[{"id":"words","title":"Words","description":"d","cards":[
 {"id":"card-1","front":"Hello","back":"Szia"},{"id":"card-2","front":"Bye","back":"Viszlát"}]}]`

type failingSource struct{}

func (failingSource) Fetch(context.Context, loader.Doc) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func newApp(t *testing.T, src loader.Source, input string) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &App{
		Loader: loader.New(src, logger.Discard()),
		In:     strings.NewReader(input),
		Out:    out,
		Log:    logger.Discard(),
	}, out
}

func dirSource(t *testing.T) loader.Source {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "quizzes.json"), []byte(quizzesJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "flashcards.json"), []byte(flashcardsJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	src, err := loader.NewSource(dir)
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	return src
}

func mustContain(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("output missing %q:\n%s", want, out)
	}
}

func TestRun_Usage(t *testing.T) {
	app, _ := newApp(t, failingSource{}, "")
	if err := app.Run(context.Background(), nil); !errors.Is(err, ErrUsage) {
		t.Fatalf("want ErrUsage, got %v", err)
	}
	if err := app.Run(context.Background(), []string{"bogus"}); !errors.Is(err, ErrUsage) {
		t.Fatalf("want ErrUsage, got %v", err)
	}
	if err := app.Run(context.Background(), []string{"quiz"}); !errors.Is(err, ErrUsage) {
		t.Fatalf("want ErrUsage, got %v", err)
	}
}

func TestRun_List(t *testing.T) {
	app, out := newApp(t, dirSource(t), "")
	if err := app.Run(context.Background(), []string{"list"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	mustContain(t, out.String(), "Math (2 questions)")
	mustContain(t, out.String(), "Words (2 cards)")
	if strings.Contains(out.String(), "built-in") {
		t.Fatal("no fallback banner expected")
	}
}

func TestRun_ListFallback(t *testing.T) {
	app, out := newApp(t, failingSource{}, "")
	if err := app.Run(context.Background(), []string{"list"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	mustContain(t, out.String(), "showing built-in samples")
	mustContain(t, out.String(), "Matematika Alapok")
}

func TestRun_QuizPerfectScore(t *testing.T) {
	app, out := newApp(t, dirSource(t), "2\ns\nn\n1\n3\ns\nn\nq\n")
	if err := app.Run(context.Background(), []string{"quiz", "quiz-1"}); err != nil {
		t.Fatalf("quiz: %v", err)
	}
	s := out.String()
	mustContain(t, s, "Question 1 / 2")
	mustContain(t, s, "Explanation: 2 + 2 = 4")
	mustContain(t, s, "(multiple answers")
	mustContain(t, s, "You answered 2 / 2 questions correctly (100%)")
	mustContain(t, s, "Well done")
}

func TestRun_QuizWrongAndGuards(t *testing.T) {
	// submit without a pick, then a wrong pick, then a locked option
	app, out := newApp(t, dirSource(t), "s\n1\ns\n2\nn\n2\ns\nn\n")
	if err := app.Run(context.Background(), []string{"quiz", "quiz-1"}); err != nil {
		t.Fatalf("quiz: %v", err)
	}
	s := out.String()
	mustContain(t, s, "Pick an answer first.")
	mustContain(t, s, "Wrong.")
	mustContain(t, s, "The answer is locked.")
	mustContain(t, s, "(0%)")
	mustContain(t, s, "Practice a little more!")
}

func TestRun_QuizFallbackAndNotFound(t *testing.T) {
	app, out := newApp(t, failingSource{}, "")
	if err := app.Run(context.Background(), []string{"quiz", "anything"}); err != nil {
		t.Fatalf("quiz: %v", err)
	}
	mustContain(t, out.String(), "showing a built-in sample")
	mustContain(t, out.String(), "Mennyi 2 + 2?")

	app, out = newApp(t, dirSource(t), "")
	if err := app.Run(context.Background(), []string{"quiz", "quiz-9"}); err != nil {
		t.Fatalf("quiz: %v", err)
	}
	mustContain(t, out.String(), `Quiz "quiz-9" not found`)
}

func TestRun_Cards(t *testing.T) {
	app, out := newApp(t, dirSource(t), "f\nk\nU\nK\nq\n")
	if err := app.Run(context.Background(), []string{"cards", "words"}); err != nil {
		t.Fatalf("cards: %v", err)
	}
	s := out.String()
	mustContain(t, s, "Card 1 / 2 (all)")
	mustContain(t, s, "Szia")
	mustContain(t, s, "Card 2 / 2 (all)")
	mustContain(t, s, "No cards marked as unknown yet.")
	mustContain(t, s, "Card 1 / 1 (known)")
}

func TestRun_CardsEmptyFilterAndBackToList(t *testing.T) {
	app, out := newApp(t, dirSource(t), "U\nq\n")
	if err := app.Run(context.Background(), []string{"cards", "words"}); err != nil {
		t.Fatalf("cards: %v", err)
	}
	s := out.String()
	mustContain(t, s, "No cards marked as unknown yet.")
	mustContain(t, s, "a: show all  r: restart  q: back to list")
	i := strings.Index(s, "r: restart  q: back to list")
	if j := strings.LastIndex(s, "Words (2 cards)"); j < i {
		t.Fatalf("q must print the list after the session:\n%s", s)
	}
}

func TestRun_QuizEOFDoesNotList(t *testing.T) {
	app, out := newApp(t, dirSource(t), "2\n")
	if err := app.Run(context.Background(), []string{"quiz", "quiz-1"}); err != nil {
		t.Fatalf("quiz: %v", err)
	}
	if strings.Contains(out.String(), "Flashcards") {
		t.Fatalf("list printed on end of input:\n%s", out.String())
	}
}

func TestRun_CardsNotFound(t *testing.T) {
	app, out := newApp(t, dirSource(t), "")
	if err := app.Run(context.Background(), []string{"cards", "nope"}); err != nil {
		t.Fatalf("cards: %v", err)
	}
	mustContain(t, out.String(), `Flashcard set "nope" not found`)
}

func TestThemeToggleCommand(t *testing.T) {
	pref := theme.Init("light", false)
	ctx := theme.WithPreference(context.Background(), pref)
	app, out := newApp(t, dirSource(t), "t\nq\n")
	if err := app.Run(ctx, []string{"cards", "words"}); err != nil {
		t.Fatalf("cards: %v", err)
	}
	mustContain(t, out.String(), "Theme: dark")
	if !pref.IsDark() {
		t.Fatal("preference must be toggled in place")
	}
}
