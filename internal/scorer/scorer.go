// Package scorer implements the rule-based AIQ scoring engine.
//
// A response is rated on four categories (clarity, depth, efficiency,
// creativity). Each category starts at BaseScore, collects fixed bonuses for
// the signals present in the text and is clamped to [0, MaxCategoryScore].
// Aggregate turns a (session-averaged) breakdown into a 0-100 composite
// score and a named level.
//
// Everything in this package is pure: no I/O, no shared mutable state. The
// functions may be called concurrently.
package scorer

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrMalformedResponse is returned when a response is not text.
var ErrMalformedResponse = errors.New("malformed response")

// ErrInvalidOrdinal is returned when a question ordinal is not 1-based.
var ErrInvalidOrdinal = errors.New("invalid question ordinal")

// MalformedInputError describes a response value that cannot be scored.
type MalformedInputError struct {
	// Kind is the Go type (or "invalid utf-8") of the rejected value.
	Kind string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%v: expected text, got %s", ErrMalformedResponse, e.Kind)
}

func (e *MalformedInputError) Unwrap() error { return ErrMalformedResponse }

// Evaluate scores one response. The ordinal is the 1-based position of the
// question being answered; it is part of the contract but does not alter
// any score.
func Evaluate(response string, ordinal int) Breakdown {
	t := newText(response)
	return Breakdown{
		Clarity:    scoreClarity(t),
		Depth:      scoreDepth(t, ordinal),
		Efficiency: scoreEfficiency(t),
		Creativity: scoreCreativity(t),
	}
}

// EvaluateValue scores a dynamically typed response, as decoded from JSON.
// Anything that is not a valid UTF-8 string fails fast instead of being
// coerced.
func EvaluateValue(v any, ordinal int) (Breakdown, error) {
	if ordinal < 1 {
		return Breakdown{}, fmt.Errorf("%w: %d", ErrInvalidOrdinal, ordinal)
	}

	var response string
	switch r := v.(type) {
	case string:
		response = r
	case *string:
		if r == nil {
			return Breakdown{}, &MalformedInputError{Kind: "nil"}
		}
		response = *r
	case nil:
		return Breakdown{}, &MalformedInputError{Kind: "nil"}
	default:
		return Breakdown{}, &MalformedInputError{Kind: fmt.Sprintf("%T", v)}
	}

	if !utf8.ValidString(response) {
		return Breakdown{}, &MalformedInputError{Kind: "invalid utf-8"}
	}
	return Evaluate(response, ordinal), nil
}
