package service

import (
	"errors"
	"fmt"
	"log/slog"

	"docdistance/internal/domain"
	"docdistance/internal/frequency"
	"docdistance/internal/similarity"
	"docdistance/internal/tfidf"
)

type CorpusServiceImpl struct {
	tokenizer domain.Tokenizer
	source    domain.Source
	store     domain.DocumentStore
	logger    *slog.Logger
}

func NewCorpusService(tokenizer domain.Tokenizer, source domain.Source, store domain.DocumentStore, logger *slog.Logger) *CorpusServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &CorpusServiceImpl{tokenizer: tokenizer, source: source, store: store, logger: logger}
}

// Ingest replaces the corpus with the documents matched by paths, in match order.
func (s *CorpusServiceImpl) Ingest(paths []string) ([]domain.Document, error) {
	files, err := s.source.Expand(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("no documents found")
	}
	docs := make([]domain.Document, 0, len(files))
	for _, f := range files {
		text, err := s.source.Read(f)
		if err != nil {
			return nil, err
		}
		tokens := s.tokenizer.Tokens(text)
		if len(tokens) == 0 {
			s.logger.Warn("document has no tokens", "label", f)
		}
		s.logger.Debug("loaded document", "label", f, "tokens", len(tokens))
		docs = append(docs, domain.Document{Label: f, Tokens: tokens})
	}
	if err := s.store.Clear(); err != nil {
		return nil, err
	}
	if err := s.store.Upsert(docs); err != nil {
		return nil, err
	}
	s.logger.Info("corpus ingested", "documents", len(docs))
	return docs, nil
}

func (s *CorpusServiceImpl) Documents() []domain.Document {
	return s.store.Documents()
}

func (s *CorpusServiceImpl) WordFrequencies(label string) (domain.FrequencyMap, error) {
	doc, err := s.document(label)
	if err != nil {
		return nil, err
	}
	return frequency.Count(doc.Tokens), nil
}

func (s *CorpusServiceImpl) TermFrequency(label string) (map[string]float64, error) {
	doc, err := s.document(label)
	if err != nil {
		return nil, err
	}
	tf, err := tfidf.TermFrequency(doc.Tokens)
	if err != nil {
		return nil, fmt.Errorf("term frequency of %s: %w", label, err)
	}
	return tf, nil
}

// Compare scores the word distributions of two ingested documents.
func (s *CorpusServiceImpl) Compare(a, b string) (domain.Comparison, error) {
	fa, err := s.WordFrequencies(a)
	if err != nil {
		return domain.Comparison{}, err
	}
	fb, err := s.WordFrequencies(b)
	if err != nil {
		return domain.Comparison{}, err
	}
	return compare(fa, fb, fmt.Sprintf("documents %s and %s", a, b))
}

// CompareWords scores the letter distributions of two words.
func (s *CorpusServiceImpl) CompareWords(w1, w2 string) (domain.Comparison, error) {
	return compare(frequency.CountLetters(w1), frequency.CountLetters(w2), fmt.Sprintf("words %q and %q", w1, w2))
}

func (s *CorpusServiceImpl) InverseDocumentFrequency() (map[string]float64, error) {
	return tfidf.InverseDocumentFrequency(s.store.Documents())
}

// Rank returns the TF-IDF ranking of an ingested document against the whole corpus.
func (s *CorpusServiceImpl) Rank(label string) ([]domain.ScoredTerm, error) {
	doc, err := s.document(label)
	if err != nil {
		return nil, err
	}
	ranked, err := tfidf.Rank(doc.Tokens, s.store.Documents())
	if err != nil {
		return nil, fmt.Errorf("rank %s: %w", label, err)
	}
	return ranked, nil
}

// Nearest returns the other documents ordered by word similarity to label.
func (s *CorpusServiceImpl) Nearest(label string, topK int) ([]domain.SearchResult, error) {
	freq, err := s.WordFrequencies(label)
	if err != nil {
		return nil, err
	}
	all, err := s.store.Search(freq, 0)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SearchResult, 0, len(all))
	for _, r := range all {
		if r.Document.Label == label {
			continue
		}
		out = append(out, r)
	}
	if topK > 0 && topK < len(out) {
		out = out[:topK]
	}
	return out, nil
}

func (s *CorpusServiceImpl) document(label string) (domain.Document, error) {
	doc, ok := s.store.Get(label)
	if !ok {
		return domain.Document{}, fmt.Errorf("%w: %s", domain.ErrUnknownDocument, label)
	}
	return doc, nil
}

func compare(a, b domain.FrequencyMap, what string) (domain.Comparison, error) {
	score, err := similarity.Score(a, b)
	if err != nil {
		return domain.Comparison{}, fmt.Errorf("compare %s: %w", what, err)
	}
	return domain.Comparison{Similarity: score, MostFrequent: frequency.MostFrequent(a, b)}, nil
}
