// Package questions holds the fixed assessment questionnaire.
package questions

// Question is one prompt of the assessment.
type Question struct {
	Ordinal int    `json:"ordinal"` // 1-based position
	Title   string `json:"title"`
	Prompt  string `json:"prompt"`
	Hint    string `json:"hint,omitempty"`
}

var bank = []Question{
	{
		Ordinal: 1,
		Title:   "Prompt Design",
		Prompt:  "You need an AI assistant to draft a product launch email for a new budgeting app. Write the exact prompt you would give it.",
		Hint:    "State the goal, the audience and the format you expect.",
	},
	{
		Ordinal: 2,
		Title:   "Problem Decomposition",
		Prompt:  "A customer churn report shows a 15% drop in renewals. Describe step by step how you would use AI to analyze the cause and propose fixes.",
		Hint:    "Break the work into stages and say what each one produces.",
	},
	{
		Ordinal: 3,
		Title:   "Output Refinement",
		Prompt:  "The AI gave you a vague, generic answer to a technical question. How would you refine your request to get a precise, usable result?",
		Hint:    "Think about constraints, examples and what to do if the first retry fails.",
	},
	{
		Ordinal: 4,
		Title:   "Creative Application",
		Prompt:  "Propose an unconventional way to use AI in a field that rarely uses it today, and explain how it would work.",
		Hint:    "Analogies and cross-domain ideas are welcome.",
	},
	{
		Ordinal: 5,
		Title:   "Critical Evaluation",
		Prompt:  "How do you evaluate whether an AI-generated analysis is trustworthy before acting on it? Describe your process.",
		Hint:    "Consider context, sources and an alternative plan if the output is wrong.",
	},
}

// All returns the questionnaire in ordinal order. The slice is a copy.
func All() []Question {
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

// Count returns the number of questions.
func Count() int {
	return len(bank)
}

// ByOrdinal returns the question at the given 1-based position.
func ByOrdinal(ordinal int) (Question, bool) {
	if ordinal < 1 || ordinal > len(bank) {
		return Question{}, false
	}
	return bank[ordinal-1], true
}
