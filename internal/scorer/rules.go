package scorer

const (
	// BaseScore is the starting score of every category before bonuses.
	BaseScore = 5

	// MaxCategoryScore caps every category.
	MaxCategoryScore = 25

	// MaxComposite caps the aggregated score.
	MaxComposite = 100
)

// Clarity rules.
const (
	clarityStructuredLen   = 50 // runes; a sentence longer than this earns the period bonus
	clarityMaxQuestionMark = 3

	claritySentenceBonus = 5
	clarityQuestionBonus = 3
	claritySpecificBonus = 4
	clarityGoalBonus     = 3
	clarityLayoutBonus   = 5
)

var (
	specificMarkers = []string{"specific", "detailed", "clear", "precise", "exact"}

	// Matched case-sensitively against the original text.
	goalMarkers   = []string{"goal", "objective", "purpose"}
	layoutMarkers = []string{"\n", "- ", "1."}
)

// Depth rules.
const (
	depthAdvancedEach = 3
	depthAdvancedCap  = 9
	depthStepEach     = 2
	depthStepCap      = 6

	depthLongLen      = 200
	depthLongBonus    = 3
	depthContextBonus = 2
)

var (
	advancedMarkers = []string{"analyze", "synthesize", "compare", "evaluate", "strategize"}
	stepMarkers     = []string{"first", "then", "next", "finally", "step"}
	contextMarkers  = []string{"context", "background"}
)

// Efficiency rules.
const (
	efficiencyConciseMin = 50
	efficiencyConciseMax = 200
	efficiencyLongMax    = 400

	efficiencyConciseBonus = 8
	efficiencyLongBonus    = 5
	efficiencyVerboseBonus = 2
	efficiencyDirectBonus  = 4
	efficiencyRecoverBonus = 3
)

var (
	directMarkers = []string{"directly", "specifically", "exactly", "precisely"}

	// Matched case-sensitively against the original text.
	recoveryMarkers = []string{"if not", "alternative", "otherwise"}
)

// Creativity rules.
const (
	creativityNovelBonus          = 5
	creativityUnconventionalBonus = 5
	creativityDomainEach          = 2
	creativityDomainCap           = 6
	creativityAnalogyBonus        = 4
)

var (
	creativeMarkers       = []string{"innovative", "creative", "novel", "unique", "original"}
	unconventionalMarkers = []string{"unconventional", "different approach", "new way", "alternative method"}
	domainMarkers         = []string{"business", "technical", "creative", "analytical", "strategic"}

	// Matched case-sensitively against the original text.
	analogyMarkers = []string{"like", "similar to", "analogous"}
)

// Level thresholds, checked from the top down.
var levelThresholds = []struct {
	min   int
	level Level
}{
	{90, LevelExpert},
	{75, LevelProficient},
	{60, LevelCompetent},
	{40, LevelBeginner},
}
