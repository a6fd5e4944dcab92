package catalog

import (
	"context"

	"github.com/cedzoi/cedzoi/internal/content"
)

// Store serves the two content documents in their published order.
type Store interface {
	Quizzes(ctx context.Context) ([]content.Quiz, error)
	FlashcardSets(ctx context.Context) ([]content.FlashcardSet, error)
}

// Importer replaces the stored document with list; list order becomes
// publish order and items missing from list are dropped.
type Importer interface {
	ImportQuizzes(ctx context.Context, list []content.Quiz) error
	ImportFlashcardSets(ctx context.Context, list []content.FlashcardSet) error
}
