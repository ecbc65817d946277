// Package tfidf computes term frequency, inverse document frequency and the
// TF-IDF ranking of a document's terms against a corpus.
package tfidf

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"docdistance/internal/domain"
	"docdistance/internal/frequency"
)

// TermFrequency maps each token to its share of the document: count / len(tokens).
func TermFrequency(tokens []string) (map[string]float64, error) {
	if len(tokens) == 0 {
		return nil, domain.ErrEmptyDocument
	}
	counts := frequency.Count(tokens)
	total := float64(len(tokens))
	tf := make(map[string]float64, len(counts))
	for term, count := range counts {
		tf[term] = float64(count) / total
	}
	return tf, nil
}

// InverseDocumentFrequency computes log10(N / df) for every term in the corpus,
// where df is the number of documents containing the term at least once.
func InverseDocumentFrequency(docs []domain.Document) (map[string]float64, error) {
	if len(docs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc.Tokens))
		for _, tok := range doc.Tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log10(n / float64(count))
	}
	return idf, nil
}

// Rank scores every term of target by TF * IDF against corpus and returns the
// terms sorted by score ascending, ties broken alphabetically.
// Target is expected to be one of the corpus documents.
func Rank(target []string, corpus []domain.Document) ([]domain.ScoredTerm, error) {
	tf, err := TermFrequency(target)
	if err != nil {
		return nil, err
	}
	idf, err := InverseDocumentFrequency(corpus)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ScoredTerm, 0, len(tf))
	for term, tfv := range tf {
		idfv, ok := idf[term]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrTermNotInCorpus, term)
		}
		out = append(out, domain.ScoredTerm{Term: term, Score: tfv * idfv})
	}
	slices.SortFunc(out, compareScored)
	return out, nil
}

// Sorted returns scores as ScoredTerms in ranking order.
func Sorted(scores map[string]float64) []domain.ScoredTerm {
	out := make([]domain.ScoredTerm, 0, len(scores))
	for term, score := range scores {
		out = append(out, domain.ScoredTerm{Term: term, Score: score})
	}
	slices.SortFunc(out, compareScored)
	return out
}

func compareScored(a, b domain.ScoredTerm) int {
	if c := cmp.Compare(a.Score, b.Score); c != 0 {
		return c
	}
	return strings.Compare(a.Term, b.Term)
}
