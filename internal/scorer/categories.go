package scorer

import (
	"strings"
	"unicode/utf8"
)

// text is a response prepared for rule evaluation. The lowercase copy is
// computed once so every case-insensitive rule sees the same string.
type text struct {
	raw   string
	lower string
	runes int
}

func newText(response string) text {
	return text{
		raw:   response,
		lower: strings.ToLower(response),
		runes: utf8.RuneCountInString(response),
	}
}

// ScoreClarity rates sentence structure, specificity, goal statements and layout.
func ScoreClarity(response string) int {
	return scoreClarity(newText(response))
}

// ScoreDepth rates advanced reasoning verbs, multi-step markers, length and
// context awareness. The ordinal does not influence the result.
func ScoreDepth(response string, ordinal int) int {
	return scoreDepth(newText(response), ordinal)
}

// ScoreEfficiency rates length balance, directness and fallback planning.
func ScoreEfficiency(response string) int {
	return scoreEfficiency(newText(response))
}

// ScoreCreativity rates novelty, unconventional framing, breadth of domains and analogies.
func ScoreCreativity(response string) int {
	return scoreCreativity(newText(response))
}

func scoreClarity(t text) int {
	score := BaseScore

	if strings.Contains(t.raw, ".") && t.runes > clarityStructuredLen {
		score += claritySentenceBonus
	}
	if n := strings.Count(t.raw, "?"); n > 0 && n <= clarityMaxQuestionMark {
		score += clarityQuestionBonus
	}
	if containsAny(t.lower, specificMarkers) {
		score += claritySpecificBonus
	}
	if containsAny(t.raw, goalMarkers) {
		score += clarityGoalBonus
	}
	if containsAny(t.raw, layoutMarkers) {
		score += clarityLayoutBonus
	}

	return clampCategory(score)
}

func scoreDepth(t text, _ int) int {
	score := BaseScore

	score += min(countMatches(t.lower, advancedMarkers)*depthAdvancedEach, depthAdvancedCap)
	score += min(countMatches(t.lower, stepMarkers)*depthStepEach, depthStepCap)

	if t.runes > depthLongLen {
		score += depthLongBonus
	}
	if containsAny(t.lower, contextMarkers) {
		score += depthContextBonus
	}

	return clampCategory(score)
}

func scoreEfficiency(t text) int {
	score := BaseScore

	words := len(strings.Fields(t.raw))
	switch {
	case words >= efficiencyConciseMin && words <= efficiencyConciseMax:
		score += efficiencyConciseBonus
	case words > efficiencyConciseMax && words <= efficiencyLongMax:
		score += efficiencyLongBonus
	case words > efficiencyLongMax:
		score += efficiencyVerboseBonus
	}

	if containsAny(t.lower, directMarkers) {
		score += efficiencyDirectBonus
	}
	if containsAny(t.raw, recoveryMarkers) {
		score += efficiencyRecoverBonus
	}

	return clampCategory(score)
}

func scoreCreativity(t text) int {
	score := BaseScore

	if containsAny(t.lower, creativeMarkers) {
		score += creativityNovelBonus
	}
	if containsAny(t.lower, unconventionalMarkers) {
		score += creativityUnconventionalBonus
	}

	score += min(countMatches(t.lower, domainMarkers)*creativityDomainEach, creativityDomainCap)

	if containsAny(t.raw, analogyMarkers) {
		score += creativityAnalogyBonus
	}

	return clampCategory(score)
}

// containsAny reports whether s contains at least one marker. A marker list
// contributes its bonus once no matter how many entries match.
func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// countMatches returns how many distinct markers occur in s.
func countMatches(s string, markers []string) int {
	n := 0
	for _, m := range markers {
		if strings.Contains(s, m) {
			n++
		}
	}
	return n
}

func clampCategory(score int) int {
	return max(0, min(score, MaxCategoryScore))
}
