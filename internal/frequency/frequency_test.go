package frequency

import (
	"maps"
	"slices"
	"testing"

	"docdistance/internal/domain"
)

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []string
		want   domain.FrequencyMap
	}{
		{name: "empty", tokens: nil, want: domain.FrequencyMap{}},
		{name: "single", tokens: []string{"hello"}, want: domain.FrequencyMap{"hello": 1}},
		{
			name:   "repeats",
			tokens: []string{"hello", "world", "hello", "hello"},
			want:   domain.FrequencyMap{"hello": 3, "world": 1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Count(tt.tokens)
			if !maps.Equal(got, tt.want) {
				t.Errorf("Count(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
			if Total(got) != len(tt.tokens) {
				t.Errorf("Total(Count(%v)) = %d, want %d", tt.tokens, Total(got), len(tt.tokens))
			}
		})
	}
}

func TestCountLetters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want domain.FrequencyMap
	}{
		{word: "", want: domain.FrequencyMap{}},
		{word: "hello", want: domain.FrequencyMap{"h": 1, "e": 1, "l": 2, "o": 1}},
		{word: "that", want: domain.FrequencyMap{"t": 2, "h": 1, "a": 1}},
		{word: "café", want: domain.FrequencyMap{"c": 1, "a": 1, "f": 1, "é": 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			if got := CountLetters(tt.word); !maps.Equal(got, tt.want) {
				t.Errorf("CountLetters(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestCombine(t *testing.T) {
	t.Parallel()

	a := domain.FrequencyMap{"hello": 2, "world": 1}
	b := domain.FrequencyMap{"hello": 1, "friend": 3}
	aCopy, bCopy := maps.Clone(a), maps.Clone(b)

	got := Combine(a, b)
	want := domain.FrequencyMap{"hello": 3, "world": 1, "friend": 3}
	if !maps.Equal(got, want) {
		t.Errorf("Combine() = %v, want %v", got, want)
	}
	if !maps.Equal(Combine(b, a), got) {
		t.Errorf("Combine() is not commutative: %v vs %v", Combine(b, a), got)
	}
	if !maps.Equal(a, aCopy) || !maps.Equal(b, bCopy) {
		t.Errorf("Combine() mutated its inputs: a=%v b=%v", a, b)
	}

	got["hello"] = 100
	if a["hello"] != 2 {
		t.Error("Combine() result aliases its first input")
	}
}

func TestCombineEmpty(t *testing.T) {
	t.Parallel()

	if got := Combine(nil, nil); len(got) != 0 {
		t.Errorf("Combine(nil, nil) = %v, want empty", got)
	}
	a := domain.FrequencyMap{"x": 4}
	if got := Combine(a, nil); !maps.Equal(got, a) {
		t.Errorf("Combine(a, nil) = %v, want %v", got, a)
	}
}

func TestMostFrequent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b domain.FrequencyMap
		want []string
	}{
		{
			name: "tie across maps",
			a:    domain.FrequencyMap{"hello": 5, "world": 1},
			b:    domain.FrequencyMap{"hello": 1, "world": 5},
			want: []string{"hello", "world"},
		},
		{
			name: "single winner",
			a:    domain.FrequencyMap{"hello": 1, "world": 1},
			b:    domain.FrequencyMap{"hello": 1, "friends": 1},
			want: []string{"hello"},
		},
		{
			name: "one side empty",
			a:    domain.FrequencyMap{"b": 2, "a": 2, "c": 1},
			b:    nil,
			want: []string{"a", "b"},
		},
		{
			name: "both empty",
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MostFrequent(tt.a, tt.b); !slices.Equal(got, tt.want) {
				t.Errorf("MostFrequent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func FuzzCombine(f *testing.F) {
	f.Add("hello world hello", "world friend")
	f.Add("", "")
	f.Add("a", "")
	f.Add("\xff\xfe", "x")

	f.Fuzz(func(t *testing.T, x, y string) {
		a, b := CountLetters(x), CountLetters(y)
		ab, ba := Combine(a, b), Combine(b, a)
		if !maps.Equal(ab, ba) {
			t.Errorf("not commutative:\n  ab = %v\n  ba = %v", ab, ba)
		}
		if Total(ab) != Total(a)+Total(b) {
			t.Errorf("Total(Combine) = %d, want %d", Total(ab), Total(a)+Total(b))
		}
	})
}
