package session

import (
	"sort"
	"strings"

	"github.com/Ajugbo/aiq-platform/internal/scorer"
)

// Summarize scores every qualifying response and averages each category.
// Blank responses and ordinals below 1 do not qualify. The second return
// value is the number of qualifying responses; when it is zero the
// breakdown is all zeros.
func Summarize(responses map[int]string) (scorer.Breakdown, int) {
	ordinals := make([]int, 0, len(responses))
	for ordinal, text := range responses {
		if ordinal < 1 || strings.TrimSpace(text) == "" {
			continue
		}
		ordinals = append(ordinals, ordinal)
	}
	sort.Ints(ordinals)

	var total scorer.Breakdown
	for _, ordinal := range ordinals {
		b := scorer.Evaluate(responses[ordinal], ordinal)
		for _, c := range scorer.Categories() {
			total.Set(c, total.Get(c)+b.Get(c))
		}
	}

	n := len(ordinals)
	if n == 0 {
		return scorer.Breakdown{}, 0
	}

	var avg scorer.Breakdown
	for _, c := range scorer.Categories() {
		avg.Set(c, scorer.RoundHalfUp(float64(total.Get(c))/float64(n)))
	}
	return avg, n
}
