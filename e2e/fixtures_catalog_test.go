//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

type movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
}

type video struct {
	Name string `json:"name"`
	Site string `json:"site"`
	Key  string `json:"key"`
	Type string `json:"type"`
}

// CatalogOption configures the fake catalog
type CatalogOption func(*fakeCatalog)

type fakeCatalog struct {
	mu       sync.Mutex
	listings map[string][]movie
	searches map[string][]movie
	videos   map[int][]video
	delays   map[string]time.Duration
	requests []string
}

// WithListing serves movies for a category key
func WithListing(key string, movies ...movie) CatalogOption {
	return func(f *fakeCatalog) {
		f.listings[key] = movies
	}
}

// WithSearch serves movies for a search term
func WithSearch(term string, movies ...movie) CatalogOption {
	return func(f *fakeCatalog) {
		f.searches[term] = movies
	}
}

// WithVideos attaches videos to a movie detail
func WithVideos(id int, videos ...video) CatalogOption {
	return func(f *fakeCatalog) {
		f.videos[id] = videos
	}
}

// WithDelay slows the response for a search term
func WithDelay(term string, d time.Duration) CatalogOption {
	return func(f *fakeCatalog) {
		f.delays[term] = d
	}
}

// StartCatalog serves a fake catalog API for the duration of the test
func StartCatalog(t *testing.T, options ...CatalogOption) (*fakeCatalog, string) {
	t.Helper()
	f := &fakeCatalog{
		listings: map[string][]movie{},
		searches: map[string][]movie{},
		videos:   map[int][]video{},
		delays:   map[string]time.Duration{},
	}
	for _, opt := range options {
		opt(f)
	}

	server := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(server.Close)
	return f, server.URL
}

func (f *fakeCatalog) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.URL.RequestURI())
	f.mu.Unlock()

	path := r.URL.Path
	switch {
	case path == "/api/trending":
		writeResults(w, f.listings["trending"])
	case strings.HasPrefix(path, "/api/category/"):
		writeResults(w, f.listings[strings.TrimPrefix(path, "/api/category/")])
	case path == "/api/search":
		term := r.URL.Query().Get("q")
		if d := f.delays[term]; d > 0 {
			time.Sleep(d)
		}
		writeResults(w, f.searches[term])
	case strings.HasPrefix(path, "/api/movie/"):
		f.writeDetail(w, strings.TrimPrefix(path, "/api/movie/"))
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeCatalog) writeDetail(w http.ResponseWriter, id string) {
	for _, list := range []map[string][]movie{f.listings, f.searches} {
		for _, movies := range list {
			for _, m := range movies {
				if jsonID(m.ID) != id {
					continue
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]any{
					"id":           m.ID,
					"title":        m.Title,
					"overview":     "Overview of " + m.Title,
					"poster_path":  m.PosterPath,
					"vote_average": m.VoteAverage,
					"runtime":      101,
					"videos":       map[string]any{"results": f.videos[m.ID]},
				})
				return
			}
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

// Requests returns the request URIs seen so far
func (f *fakeCatalog) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func writeResults(w http.ResponseWriter, movies []movie) {
	if movies == nil {
		movies = []movie{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"results": movies})
}

func jsonID(id int) string {
	b, _ := json.Marshal(id)
	return string(b)
}
