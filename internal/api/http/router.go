package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cedzoi/cedzoi/internal/catalog"
)

type RouterOptions struct {
	CORSOrigins []string
	// Ready reports whether the content store can be served.
	Ready func() error
}

// NewRouter mounts the static content documents and the list API.
func NewRouter(store catalog.Store, opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Route("/data", func(dr chi.Router) {
		dr.Get("/quizzes.json", QuizzesDocumentHandler(store))
		dr.Get("/flashcards.json", FlashcardsDocumentHandler(store))
	})

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/quizzes", ListQuizzesHandler(store))
		ar.Get("/quizzes/{quizID}", GetQuizHandler(store))
		ar.Get("/flashcards", ListFlashcardSetsHandler(store))
		ar.Get("/flashcards/{setID}", GetFlashcardSetHandler(store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if opts.Ready != nil {
			if err := opts.Ready(); err != nil {
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(200)
	})
	return r
}
