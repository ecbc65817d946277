// Package frequency counts word and letter occurrences and merges the
// resulting distributions.
package frequency

import (
	"sort"

	"docdistance/internal/domain"
)

// Count returns the number of occurrences of each distinct token.
func Count(tokens []string) domain.FrequencyMap {
	freq := make(domain.FrequencyMap)
	for _, tok := range tokens {
		freq[tok]++
	}
	return freq
}

// CountLetters counts each character of word.
func CountLetters(word string) domain.FrequencyMap {
	freq := make(domain.FrequencyMap)
	for _, r := range word {
		freq[string(r)]++
	}
	return freq
}

// Combine returns a new map holding, for every key of a or b, the sum of its counts.
// Neither input is modified.
func Combine(a, b domain.FrequencyMap) domain.FrequencyMap {
	out := make(domain.FrequencyMap, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] += v
	}
	return out
}

// MostFrequent returns every key whose combined count in a and b is maximal,
// sorted alphabetically. It returns nil when both maps are empty.
func MostFrequent(a, b domain.FrequencyMap) []string {
	combined := Combine(a, b)
	if len(combined) == 0 {
		return nil
	}
	maxCount := 0
	for _, v := range combined {
		if v > maxCount {
			maxCount = v
		}
	}
	var out []string
	for k, v := range combined {
		if v == maxCount {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Total sums the counts of freq.
func Total(freq domain.FrequencyMap) int {
	total := 0
	for _, v := range freq {
		total += v
	}
	return total
}
