package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cedzoi/cedzoi/internal/content"
)

// Seed copies both documents from src into dst. Reads run concurrently;
// writes go one after another since sqlite allows a single writer.
func Seed(ctx context.Context, src Store, dst Importer) error {
	var (
		quizzes []content.Quiz
		sets    []content.FlashcardSet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		quizzes, err = src.Quizzes(gctx)
		return err
	})
	g.Go(func() (err error) {
		sets, err = src.FlashcardSets(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if err := dst.ImportQuizzes(ctx, quizzes); err != nil {
		return err
	}
	return dst.ImportFlashcardSets(ctx, sets)
}
