package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cedzoi/cedzoi/internal/catalog"
	"github.com/cedzoi/cedzoi/internal/content"
)

// GET /api/quizzes?q=...
func ListQuizzesHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.Quizzes(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
		out := make([]content.QuizSummary, 0, len(list))
		for _, s := range content.SummarizeQuizzes(list) {
			if matches(q, s.Title, s.Description) {
				out = append(out, s)
			}
		}
		writeJSON(w, out)
	}
}

// GET /api/flashcards?q=...
func ListFlashcardSetsHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.FlashcardSets(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
		out := make([]content.SetSummary, 0, len(list))
		for _, s := range content.SummarizeFlashcardSets(list) {
			if matches(q, s.Title, s.Description) {
				out = append(out, s)
			}
		}
		writeJSON(w, out)
	}
}

// GET /api/quizzes/{quizID}
func GetQuizHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		list, err := store.Quizzes(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		q, err := content.FindQuiz(list, id)
		if errors.Is(err, content.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, q)
	}
}

// GET /api/flashcards/{setID}
func GetFlashcardSetHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "setID")
		list, err := store.FlashcardSets(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s, err := content.FindFlashcardSet(list, id)
		if errors.Is(err, content.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, s)
	}
}

func matches(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
