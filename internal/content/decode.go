package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrNotFound = errors.New("not found")

func DecodeQuizzes(r io.Reader) ([]Quiz, error) {
	var list []Quiz
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode quizzes: %w", err)
	}
	return list, nil
}

func DecodeFlashcardSets(r io.Reader) ([]FlashcardSet, error) {
	var list []FlashcardSet
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode flashcard sets: %w", err)
	}
	return list, nil
}

// FindQuiz looks a quiz up by exact identifier.
func FindQuiz(list []Quiz, id string) (Quiz, error) {
	for _, q := range list {
		if q.ID == id {
			return q, nil
		}
	}
	return Quiz{}, fmt.Errorf("quiz %q: %w", id, ErrNotFound)
}

func FindFlashcardSet(list []FlashcardSet, id string) (FlashcardSet, error) {
	for _, s := range list {
		if s.ID == id {
			return s, nil
		}
	}
	return FlashcardSet{}, fmt.Errorf("flashcard set %q: %w", id, ErrNotFound)
}
