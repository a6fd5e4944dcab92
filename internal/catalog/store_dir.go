package catalog

import (
	"context"
	"fmt"

	"github.com/cedzoi/cedzoi/internal/content"
	"github.com/cedzoi/cedzoi/internal/storage"
)

const (
	QuizzesFile    = "quizzes.json"
	FlashcardsFile = "flashcards.json"
)

// DirStore reads quizzes.json and flashcards.json from a content directory
// on every call, so edits show up without a restart.
type DirStore struct {
	blobs storage.BlobStore
}

func NewDirStore(bs storage.BlobStore) *DirStore { return &DirStore{blobs: bs} }

func (s *DirStore) Quizzes(ctx context.Context) ([]content.Quiz, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := s.blobs.Get(QuizzesFile)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	list, err := content.DecodeQuizzes(rc)
	if err != nil {
		return nil, err
	}
	if err := content.ValidateQuizzes(list); err != nil {
		return nil, fmt.Errorf("%s: %w", QuizzesFile, err)
	}
	return list, nil
}

func (s *DirStore) FlashcardSets(ctx context.Context) ([]content.FlashcardSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := s.blobs.Get(FlashcardsFile)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	list, err := content.DecodeFlashcardSets(rc)
	if err != nil {
		return nil, err
	}
	if err := content.ValidateFlashcardSets(list); err != nil {
		return nil, fmt.Errorf("%s: %w", FlashcardsFile, err)
	}
	return list, nil
}
