// Package normalize turns raw file contents into the token sequence the
// frequency and TF-IDF calculators consume.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ASCIIPunctuation is the punctuation set stripped by default.
const ASCIIPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalizer strips punctuation and lowercases text before splitting it on whitespace.
type Normalizer struct {
	punctuation map[rune]struct{}
	lowercase   bool
}

// New creates a Normalizer removing every rune of punctuation.
// An empty punctuation string keeps all characters.
func New(punctuation string, lowercase bool) *Normalizer {
	set := make(map[rune]struct{}, len(punctuation))
	for _, r := range punctuation {
		set[r] = struct{}{}
	}
	return &Normalizer{
		punctuation: set,
		lowercase:   lowercase,
	}
}

// Default returns a Normalizer with the ASCII punctuation set and lowercasing.
func Default() *Normalizer { return New(ASCIIPunctuation, true) }

// Normalize trims text, drops punctuation and lowercases the result.
func (n *Normalizer) Normalize(text string) string {
	text = strings.TrimSpace(text)
	if len(n.punctuation) > 0 {
		text = strings.Map(func(r rune) rune {
			if _, ok := n.punctuation[r]; ok {
				return -1
			}
			return r
		}, text)
	}
	if n.lowercase {
		// cases.Caser is stateful; never share one across calls.
		text = cases.Lower(language.Und).String(text)
	}
	return text
}

// Tokens normalizes text and splits it on whitespace.
func (n *Normalizer) Tokens(text string) []string {
	return strings.Fields(n.Normalize(text))
}
