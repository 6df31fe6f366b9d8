package scorer

import "testing"

func TestLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{100, LevelExpert},
		{90, LevelExpert},
		{89, LevelProficient},
		{75, LevelProficient},
		{74, LevelCompetent},
		{60, LevelCompetent},
		{59, LevelBeginner},
		{40, LevelBeginner},
		{39, LevelNovice},
		{0, LevelNovice},
		{-5, LevelNovice},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score); got != tt.want {
			t.Errorf("LevelFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name string
		in   Breakdown
		want Composite
	}{
		{"all zero", Breakdown{}, Composite{0, LevelNovice}},
		{"all base", Breakdown{5, 5, 5, 5}, Composite{20, LevelNovice}},
		{"all max", Breakdown{25, 25, 25, 25}, Composite{100, LevelExpert}},
		{"expert boundary", Breakdown{23, 22, 22, 23}, Composite{90, LevelExpert}},
		{"just below expert", Breakdown{22, 22, 22, 23}, Composite{89, LevelProficient}},
		{"competent", Breakdown{15, 15, 15, 15}, Composite{60, LevelCompetent}},
		{"over range clamps", Breakdown{40, 40, 40, 40}, Composite{100, LevelExpert}},
		{"negative clamps", Breakdown{-10, 0, 0, 0}, Composite{0, LevelNovice}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Aggregate(tt.in); got != tt.want {
				t.Errorf("Aggregate(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAggregate_MonotonicPerCategory(t *testing.T) {
	base := Breakdown{Clarity: 10, Depth: 12, Efficiency: 8, Creativity: 14}
	for _, c := range Categories() {
		prev := -1
		for v := 0; v <= MaxCategoryScore; v++ {
			b := base
			b.Set(c, v)
			got := Aggregate(b).Score
			if got < prev {
				t.Fatalf("%s=%d: score %d dropped below %d", c, v, got, prev)
			}
			prev = got
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{1.49, 1},
		{1.5, 2},
		{2.5, 3},
		{12.333, 12},
		{-0.5, 0},
	}
	for _, tt := range tests {
		if got := RoundHalfUp(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBreakdown_GetSetSum(t *testing.T) {
	var b Breakdown
	for i, c := range Categories() {
		b.Set(c, i+1)
	}
	if b.Sum() != 10 {
		t.Errorf("Sum() = %d, want 10", b.Sum())
	}
	if b.Get(CategoryCreativity) != 4 {
		t.Errorf("Get(creativity) = %d, want 4", b.Get(CategoryCreativity))
	}
	if b.Get(Category("bogus")) != 0 {
		t.Error("Get(unknown) should be 0")
	}
}
