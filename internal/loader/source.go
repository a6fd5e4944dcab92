package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cedzoi/cedzoi/internal/storage"
)

// Doc names one of the two static content documents.
type Doc string

const (
	DocQuizzes    Doc = "quizzes"
	DocFlashcards Doc = "flashcards"
)

// FileName is the document's name under the content root.
func (d Doc) FileName() string { return string(d) + ".json" }

// Source fetches the raw bytes of a content document.
type Source interface {
	Fetch(ctx context.Context, doc Doc) ([]byte, error)
}

// HTTPSource fetches <BaseURL>/data/<doc>.json.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context, doc Doc) ([]byte, error) {
	url := s.BaseURL + "/data/" + doc.FileName()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("GET %s: %s: %s", url, resp.Status, strings.TrimSpace(string(b)))
	}
	return io.ReadAll(resp.Body)
}

// FileSource reads documents from a content directory.
type FileSource struct {
	Store storage.BlobStore
}

func (s FileSource) Fetch(ctx context.Context, doc Doc) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := s.Store.Get(doc.FileName())
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// NewSource picks an HTTP source for URLs and a file source otherwise.
func NewSource(location string) (Source, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location), nil
	}
	fs, err := storage.NewFSStore(location)
	if err != nil {
		return nil, err
	}
	return FileSource{Store: fs}, nil
}
