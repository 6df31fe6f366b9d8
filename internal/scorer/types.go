package scorer

// Category identifies one of the four fixed scoring dimensions.
type Category string

const (
	CategoryClarity    Category = "clarity"
	CategoryDepth      Category = "depth"
	CategoryEfficiency Category = "efficiency"
	CategoryCreativity Category = "creativity"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryClarity, CategoryDepth, CategoryEfficiency, CategoryCreativity}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryClarity:
		return "Clarity"
	case CategoryDepth:
		return "Depth"
	case CategoryEfficiency:
		return "Efficiency"
	case CategoryCreativity:
		return "Creativity"
	default:
		return string(c)
	}
}

// Breakdown holds the four category scores for one evaluated response,
// or the per-category averages of a whole session.
type Breakdown struct {
	Clarity    int `json:"clarity"`
	Depth      int `json:"depth"`
	Efficiency int `json:"efficiency"`
	Creativity int `json:"creativity"`
}

// Get returns the score for a category, or 0 for an unknown category.
func (b Breakdown) Get(c Category) int {
	switch c {
	case CategoryClarity:
		return b.Clarity
	case CategoryDepth:
		return b.Depth
	case CategoryEfficiency:
		return b.Efficiency
	case CategoryCreativity:
		return b.Creativity
	}
	return 0
}

// Set assigns the score for a category. Unknown categories are ignored.
func (b *Breakdown) Set(c Category, v int) {
	switch c {
	case CategoryClarity:
		b.Clarity = v
	case CategoryDepth:
		b.Depth = v
	case CategoryEfficiency:
		b.Efficiency = v
	case CategoryCreativity:
		b.Creativity = v
	}
}

// Sum returns the total of all four category scores.
func (b Breakdown) Sum() int {
	return b.Clarity + b.Depth + b.Efficiency + b.Creativity
}

// Level is the named tier derived from a composite score.
type Level string

const (
	LevelNovice     Level = "AI Novice"
	LevelBeginner   Level = "AI Beginner"
	LevelCompetent  Level = "AI Competent"
	LevelProficient Level = "AI Proficient"
	LevelExpert     Level = "AI Expert"
)

// AllLevels returns all levels in order from lowest to highest.
func AllLevels() []Level {
	return []Level{LevelNovice, LevelBeginner, LevelCompetent, LevelProficient, LevelExpert}
}

// Composite is the aggregated 0-100 score and its level.
type Composite struct {
	Score int   `json:"score"`
	Level Level `json:"level"`
}
