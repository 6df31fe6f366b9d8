package session

import (
	"strings"
	"time"

	"github.com/Ajugbo/aiq-platform/internal/questions"
)

// State tracks one pass through the questionnaire.
type State struct {
	// ID is the UUID for this session.
	ID string

	// Questions is the questionnaire in ordinal order.
	Questions []questions.Question

	// Current is the 1-based ordinal of the displayed question.
	Current int

	// Responses holds the saved text per ordinal.
	Responses map[int]string

	// StartTime is when the session began.
	StartTime time.Time

	// Submitted is set once the session has produced a result.
	Submitted bool
}

// NewState creates a session positioned on the first question.
func NewState(id string, qs []questions.Question) *State {
	return &State{
		ID:        id,
		Questions: qs,
		Current:   1,
		Responses: make(map[int]string),
		StartTime: time.Now(),
	}
}

// Total returns the number of questions.
func (s *State) Total() int {
	return len(s.Questions)
}

// CurrentQuestion returns the displayed question.
func (s *State) CurrentQuestion() questions.Question {
	if s.Current < 1 || s.Current > len(s.Questions) {
		return questions.Question{}
	}
	return s.Questions[s.Current-1]
}

// Response returns the saved text for an ordinal.
func (s *State) Response(ordinal int) string {
	return s.Responses[ordinal]
}

// Save stores text as the response to the current question.
func (s *State) Save(text string) {
	s.Responses[s.Current] = text
}

// Next saves text and moves forward. It returns false on the last
// question, where the caller submits instead.
func (s *State) Next(text string) bool {
	s.Save(text)
	if s.IsLast() {
		return false
	}
	s.Current++
	return true
}

// Previous saves text and moves back. It returns false on the first question.
func (s *State) Previous(text string) bool {
	s.Save(text)
	if s.IsFirst() {
		return false
	}
	s.Current--
	return true
}

// IsFirst reports whether the first question is displayed.
func (s *State) IsFirst() bool {
	return s.Current <= 1
}

// IsLast reports whether the last question is displayed.
func (s *State) IsLast() bool {
	return s.Current >= len(s.Questions)
}

// Progress returns current/total in [0, 1].
func (s *State) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.Current) / float64(len(s.Questions))
}

// Answered counts responses with non-blank text.
func (s *State) Answered() int {
	n := 0
	for _, r := range s.Responses {
		if strings.TrimSpace(r) != "" {
			n++
		}
	}
	return n
}

// Elapsed returns the time since the session started.
func (s *State) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
