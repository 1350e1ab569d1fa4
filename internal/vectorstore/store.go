package vectorstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"sync"
)

// ErrCorpusUnavailable is returned by Load when the corpus file does not
// exist. The store then behaves as empty rather than failing the process.
var ErrCorpusUnavailable = errors.New("corpus unavailable")

// Metadata carries the article metadata produced by the ingestion pipeline.
type Metadata struct {
	Source string `json:"source"`
	Madde  *int   `json:"madde"`
	Konu   string `json:"konu"`
	Page   int    `json:"page"`
}

// Article is a single legal article with its topic heading and source page.
// Articles are immutable once loaded and owned by the Store for the
// lifetime of the process.
type Article struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
}

// corpusRecord is the on-disk shape: one article plus its precomputed
// embedding vector.
type corpusRecord struct {
	Article
	Embedding []float64 `json:"embedding"`
}

// SearchResult pairs an article with its cosine similarity to the query.
type SearchResult struct {
	Article Article
	Score   float64
}

// Store is an in-memory vector index over the precomputed corpus file.
// The corpus is loaded once, lazily, on first use and is read-only
// afterwards, so the store is safe for unlimited concurrent readers.
type Store struct {
	path   string
	logger *slog.Logger

	once     sync.Once
	loadErr  error
	articles []Article
	vectors  [][]float64
	dim      int
}

// New creates a store backed by the corpus file at path. The file is not
// read until the first query.
func New(path string) *Store {
	return &Store{
		path:   path,
		logger: slog.Default(),
	}
}

// Load forces the corpus to be read immediately. A missing file returns
// ErrCorpusUnavailable and leaves the store empty; callers may treat this
// as a degraded (not fatal) condition.
func (s *Store) Load() error {
	s.once.Do(s.load)
	return s.loadErr
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.loadErr = fmt.Errorf("%w: %s", ErrCorpusUnavailable, s.path)
			s.logger.Warn("corpus file not found, index is empty", "path", s.path)
			return
		}
		s.loadErr = fmt.Errorf("failed to read corpus file: %w", err)
		return
	}

	var records []corpusRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.loadErr = fmt.Errorf("failed to parse corpus file: %w", err)
		return
	}

	var rejected int
	for _, rec := range records {
		if len(rec.Embedding) == 0 {
			rejected++
			continue
		}
		if s.dim == 0 {
			s.dim = len(rec.Embedding)
		}
		// All vectors must share the corpus dimensionality.
		if len(rec.Embedding) != s.dim {
			rejected++
			s.logger.Warn("rejecting corpus entry with mismatched dimension",
				"id", rec.ID, "got", len(rec.Embedding), "want", s.dim)
			continue
		}
		s.articles = append(s.articles, rec.Article)
		s.vectors = append(s.vectors, rec.Embedding)
	}

	s.logger.Info("corpus loaded",
		"path", s.path, "articles", len(s.articles), "dimension", s.dim, "rejected", rejected)
}

// Len returns the number of loaded articles.
func (s *Store) Len() int {
	s.once.Do(s.load)
	return len(s.articles)
}

// Dimension returns the embedding dimensionality of the loaded corpus,
// or 0 when the corpus is empty.
func (s *Store) Dimension() int {
	s.once.Do(s.load)
	return s.dim
}

// Articles returns all loaded articles in corpus order.
func (s *Store) Articles() []Article {
	s.once.Do(s.load)
	return s.articles
}

// Search returns up to n articles ranked by cosine similarity to the
// query vector, descending. Ties keep corpus order (stable sort).
func (s *Store) Search(query []float64, n int) []SearchResult {
	s.once.Do(s.load)

	if n <= 0 || len(s.articles) == 0 || len(query) == 0 {
		return nil
	}

	results := make([]SearchResult, len(s.articles))
	for i, vec := range s.vectors {
		results[i] = SearchResult{
			Article: s.articles[i],
			Score:   CosineSimilarity(query, vec),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > n {
		results = results[:n]
	}
	return results
}

// CosineSimilarity computes the normalized dot product of two vectors.
// Returns 0 when either norm is zero, guarding against divide-by-zero.
func CosineSimilarity(a, b []float64) float64 {
	length := len(a)
	if len(b) < length {
		length = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < length; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
