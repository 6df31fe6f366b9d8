package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ajugbo/aiq-platform/internal/scorer"
)

// ParseResponses converts decoded JSON (object keys are ordinals) into a
// response map. Any non-text value or non-numeric key rejects the whole
// set before anything is scored.
func ParseResponses(raw map[string]any) (map[int]string, error) {
	out := make(map[int]string, len(raw))
	for k, v := range raw {
		ordinal, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || ordinal < 1 {
			return nil, fmt.Errorf("%w: %q", scorer.ErrInvalidOrdinal, k)
		}
		text, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("response %d: %w", ordinal, &scorer.MalformedInputError{Kind: fmt.Sprintf("%T", v)})
		}
		if _, err := scorer.EvaluateValue(text, ordinal); err != nil {
			return nil, fmt.Errorf("response %d: %w", ordinal, err)
		}
		out[ordinal] = text
	}
	return out, nil
}
