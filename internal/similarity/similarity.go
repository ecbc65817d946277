// Package similarity scores how alike two frequency distributions are.
//
// The score is 1 - (L1 distance / combined mass), rounded to two decimals:
// identical maps score 1.0 and maps without a common key score 0.0.
package similarity

import (
	"strconv"

	"docdistance/internal/domain"
	"docdistance/internal/frequency"
)

// Score compares a and b. Both maps empty yields domain.ErrDegenerateInput.
func Score(a, b domain.FrequencyMap) (float64, error) {
	combined := frequency.Combine(a, b)
	total := frequency.Total(combined)
	if total == 0 {
		return 0, domain.ErrDegenerateInput
	}
	diff := 0
	for key := range combined {
		av, inA := a[key]
		bv, inB := b[key]
		switch {
		case inA && inB:
			diff += abs(av - bv)
		case inA:
			diff += av
		default:
			diff += bv
		}
	}
	return round2(1 - float64(diff)/float64(total)), nil
}

// round2 rounds on the exact binary value, sending ties to the even digit:
// 0.125 becomes 0.12.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
