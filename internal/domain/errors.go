package domain

import "errors"

var (
	// ErrDegenerateInput is returned when a similarity is requested on two empty maps.
	ErrDegenerateInput = errors.New("similarity of two empty frequency maps is undefined")
	// ErrEmptyDocument is returned when term frequency is requested on zero tokens.
	ErrEmptyDocument = errors.New("empty document")
	// ErrEmptyCorpus is returned when IDF or TF-IDF is requested on no documents.
	ErrEmptyCorpus = errors.New("empty corpus")
	// ErrTermNotInCorpus means the target document is not part of the corpus.
	ErrTermNotInCorpus = errors.New("term not in corpus")
	// ErrUnknownDocument is returned for a label that was never ingested.
	ErrUnknownDocument = errors.New("unknown document")
)
