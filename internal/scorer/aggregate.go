package scorer

import "math"

// Aggregate converts a breakdown into the composite score and its level.
// The four categories sum to a 0-100 scale already, so the percentage
// conversion is an identity kept for readability.
func Aggregate(b Breakdown) Composite {
	total := float64(b.Sum())
	score := RoundHalfUp(total / float64(MaxComposite) * 100)
	score = max(0, min(score, MaxComposite))
	return Composite{Score: score, Level: LevelFor(score)}
}

// LevelFor returns the level for a composite score. Thresholds are
// inclusive lower bounds; the first match from the top wins.
func LevelFor(score int) Level {
	for _, th := range levelThresholds {
		if score >= th.min {
			return th.level
		}
	}
	return LevelNovice
}

// RoundHalfUp rounds to the nearest integer, sending .5 toward positive infinity.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
