package content

import (
	"bytes"
	_ "embed"
)

// Built-in documents used when the real content cannot be fetched.

//go:embed sample/quizzes.json
var sampleQuizzesJSON []byte

//go:embed sample/flashcards.json
var sampleFlashcardsJSON []byte

func SampleQuizzes() []Quiz {
	list, err := DecodeQuizzes(bytes.NewReader(sampleQuizzesJSON))
	if err != nil {
		panic("content: embedded sample quizzes: " + err.Error())
	}
	return list
}

func SampleFlashcardSets() []FlashcardSet {
	list, err := DecodeFlashcardSets(bytes.NewReader(sampleFlashcardsJSON))
	if err != nil {
		panic("content: embedded sample flashcards: " + err.Error())
	}
	return list
}

// SampleQuiz returns the built-in quiz carrying the requested id.
func SampleQuiz(id string) Quiz {
	q := SampleQuizzes()[0]
	q.ID = id
	return q
}

func SampleFlashcardSet(id string) FlashcardSet {
	s := SampleFlashcardSets()[0]
	s.ID = id
	return s
}
