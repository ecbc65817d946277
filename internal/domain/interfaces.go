package domain

// FrequencyMap maps a token (a word or a single letter) to its occurrence count.
// Present keys always hold a count of at least 1.
type FrequencyMap map[string]int

// Document is one normalized text source identified by its label (usually a file path).
type Document struct {
	Label  string
	Tokens []string
}

// ScoredTerm pairs a term with a TF, IDF or TF-IDF score.
type ScoredTerm struct {
	Term  string
	Score float64
}

// SearchResult represents a stored document with its similarity to a query.
type SearchResult struct {
	Document Document
	Score    float64
}

// Comparison is the outcome of comparing two frequency distributions.
type Comparison struct {
	Similarity   float64
	MostFrequent []string
}

// Tokenizer turns raw text into a lowercase, punctuation-free token sequence.
type Tokenizer interface {
	Tokens(text string) []string
}

// Source resolves input patterns to document paths and reads their text.
type Source interface {
	Expand(patterns []string) ([]string, error)
	Read(path string) (string, error)
}

// DocumentStore keeps ingested documents and supports similarity search.
type DocumentStore interface {
	Init() error
	Upsert(docs []Document) error
	Documents() []Document
	Get(label string) (Document, bool)
	Search(query FrequencyMap, topK int) ([]SearchResult, error)
	Clear() error
}

// CorpusService defines the operations exposed by the application core.
type CorpusService interface {
	Ingest(paths []string) ([]Document, error)
	Documents() []Document
	WordFrequencies(label string) (FrequencyMap, error)
	TermFrequency(label string) (map[string]float64, error)
	Compare(a, b string) (Comparison, error)
	CompareWords(w1, w2 string) (Comparison, error)
	Rank(label string) ([]ScoredTerm, error)
	InverseDocumentFrequency() (map[string]float64, error)
	Nearest(label string, topK int) ([]SearchResult, error)
}
