package memory

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"sync"

	"docdistance/internal/domain"
	"docdistance/internal/frequency"
	"docdistance/internal/similarity"
)

// Storage is a simple in-memory document store using brute-force frequency similarity.
type Storage struct {
	mu    sync.RWMutex
	docs  []domain.Document
	freqs []domain.FrequencyMap
	index map[string]int
}

// NewStorage returns an empty store.
func NewStorage() *Storage { return &Storage{index: make(map[string]int)} }

// Init resets the store to empty.
func (s *Storage) Init() error {
	return s.Clear()
}

// Upsert stores docs in order. A document whose label is already stored replaces it in place.
func (s *Storage) Upsert(docs []domain.Document) error {
	for _, d := range docs {
		if d.Label == "" {
			return errors.New("document label is empty")
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range docs {
		freq := frequency.Count(d.Tokens)
		if i, ok := s.index[d.Label]; ok {
			s.docs[i] = d
			s.freqs[i] = freq
			continue
		}
		s.index[d.Label] = len(s.docs)
		s.docs = append(s.docs, d)
		s.freqs = append(s.freqs, freq)
	}
	return nil
}

// Documents returns the stored documents in insertion order.
func (s *Storage) Documents() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.docs)
}

// Get returns the document stored under label.
func (s *Storage) Get(label string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[label]
	if !ok {
		return domain.Document{}, false
	}
	return s.docs[i], true
}

// Search ranks stored documents by similarity to query, best first, ties by label.
// topK <= 0 returns every document.
func (s *Storage) Search(query domain.FrequencyMap, topK int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]domain.SearchResult, 0, len(s.docs))
	for i, d := range s.docs {
		score, err := similarity.Score(query, s.freqs[i])
		if err != nil && !errors.Is(err, domain.ErrDegenerateInput) {
			return nil, err
		}
		// an empty query against an empty document scores 0
		results = append(results, domain.SearchResult{Document: d, Score: score})
	}
	slices.SortFunc(results, func(a, b domain.SearchResult) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return strings.Compare(a.Document.Label, b.Document.Label)
	})
	if topK > 0 && topK < len(results) {
		results = results[:topK]
	}
	return results, nil
}

// Clear drops every stored document.
func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = nil
	s.freqs = nil
	s.index = make(map[string]int)
	return nil
}
