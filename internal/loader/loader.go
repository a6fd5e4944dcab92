package loader

import (
	"bytes"
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/cedzoi/cedzoi/internal/content"
	"github.com/cedzoi/cedzoi/internal/logger"
)

// Loader fetches content for the session engines. Fetch and parse
// failures fall back to the built-in sample documents; a missing
// identifier is reported as content.ErrNotFound.
type Loader struct {
	src Source
	log *logger.Logger
}

func New(src Source, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Discard()
	}
	return &Loader{src: src, log: log}
}

type QuizResult struct {
	Quiz     content.Quiz
	Fallback bool // the built-in sample stands in for unreachable content
}

type FlashcardResult struct {
	Set      content.FlashcardSet
	Fallback bool
}

func (l *Loader) fetchQuizzes(ctx context.Context) ([]content.Quiz, error) {
	b, err := l.src.Fetch(ctx, DocQuizzes)
	if err != nil {
		return nil, err
	}
	return content.DecodeQuizzes(bytes.NewReader(b))
}

func (l *Loader) fetchFlashcardSets(ctx context.Context) ([]content.FlashcardSet, error) {
	b, err := l.src.Fetch(ctx, DocFlashcards)
	if err != nil {
		return nil, err
	}
	return content.DecodeFlashcardSets(bytes.NewReader(b))
}

func (l *Loader) Quiz(ctx context.Context, id string) (QuizResult, error) {
	list, err := l.fetchQuizzes(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return QuizResult{}, err
		}
		l.log.Error("loading quiz %s: %v; using built-in sample", id, err)
		return QuizResult{Quiz: content.SampleQuiz(id), Fallback: true}, nil
	}
	q, err := content.FindQuiz(list, id)
	if err != nil {
		l.log.Info("quiz not found: %s", id)
		return QuizResult{}, err
	}
	if err := q.Validate(); err != nil {
		l.log.Debug("quiz %s has problems: %v", id, err)
	}
	return QuizResult{Quiz: q}, nil
}

func (l *Loader) FlashcardSet(ctx context.Context, id string) (FlashcardResult, error) {
	list, err := l.fetchFlashcardSets(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return FlashcardResult{}, err
		}
		l.log.Error("loading flashcard set %s: %v; using built-in sample", id, err)
		return FlashcardResult{Set: content.SampleFlashcardSet(id), Fallback: true}, nil
	}
	s, err := content.FindFlashcardSet(list, id)
	if err != nil {
		l.log.Info("flashcard set not found: %s", id)
		return FlashcardResult{}, err
	}
	if err := s.Validate(); err != nil {
		l.log.Debug("flashcard set %s has problems: %v", id, err)
	}
	return FlashcardResult{Set: s}, nil
}

// Quizzes lists quiz summaries; fallback is true when the sample list was used.
func (l *Loader) Quizzes(ctx context.Context) (list []content.QuizSummary, fallback bool) {
	qs, err := l.fetchQuizzes(ctx)
	if err != nil {
		l.log.Error("loading quizzes: %v; using built-in sample", err)
		return content.SummarizeQuizzes(content.SampleQuizzes()), true
	}
	return content.SummarizeQuizzes(qs), false
}

func (l *Loader) FlashcardSets(ctx context.Context) (list []content.SetSummary, fallback bool) {
	ss, err := l.fetchFlashcardSets(ctx)
	if err != nil {
		l.log.Error("loading flashcard sets: %v; using built-in sample", err)
		return content.SummarizeFlashcardSets(content.SampleFlashcardSets()), true
	}
	return content.SummarizeFlashcardSets(ss), false
}

type Catalog struct {
	Quizzes           []content.QuizSummary
	FlashcardSets     []content.SetSummary
	QuizzesFallback   bool
	FlashcardFallback bool
}

// Catalog fetches both lists at once.
func (l *Loader) Catalog(ctx context.Context) (Catalog, error) {
	var c Catalog
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.Quizzes, c.QuizzesFallback = l.Quizzes(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		c.FlashcardSets, c.FlashcardFallback = l.FlashcardSets(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}
