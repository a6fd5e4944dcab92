package http

import (
	"encoding/json"
	"net/http"

	"github.com/cedzoi/cedzoi/internal/catalog"
)

// GET /data/quizzes.json
func QuizzesDocumentHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.Quizzes(r.Context())
		if err != nil {
			http.Error(w, "quizzes: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, list)
	}
}

// GET /data/flashcards.json
func FlashcardsDocumentHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.FlashcardSets(r.Context())
		if err != nil {
			http.Error(w, "flashcards: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, list)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	_ = json.NewEncoder(w).Encode(v)
}
