package certificate

import (
	"context"
	"fmt"

	"github.com/Ajugbo/aiq-platform/internal/scorer"
	"github.com/Ajugbo/aiq-platform/internal/store"
)

// Verification statuses.
const (
	StatusVerified      = "Verified"
	StatusNotFound      = "Certificate not found"
	StatusInvalidFormat = "Invalid certificate format"
)

// DateLayout formats the verification date.
const DateLayout = "2006-01-02"

// Verification is the outcome of checking a code.
type Verification struct {
	Valid  bool         `json:"valid"`
	Score  *int         `json:"score,omitempty"`
	Level  scorer.Level `json:"level,omitempty"`
	Date   string       `json:"date,omitempty"`
	Status string       `json:"status"`
}

// Verifier checks codes against the stored result.
type Verifier struct {
	Store store.ResultStore
}

// NewVerifier returns a Verifier reading from s.
func NewVerifier(s store.ResultStore) *Verifier {
	return &Verifier{Store: s}
}

// Verify compares code with the stored certificate code. The code is
// compared as given; callers normalize user input first.
//
// A match returns the stored score, level and date. An empty store, or a
// stored result with a different code, reports by shape: "not found" for
// codes that look right and "invalid format" for everything else.
func (v *Verifier) Verify(ctx context.Context, code string) (Verification, error) {
	res, err := v.Store.Get(ctx)
	if err != nil {
		return Verification{}, fmt.Errorf("load result: %w", err)
	}

	if res != nil && res.CertificateCode == code {
		score := res.Score
		return Verification{
			Valid:  true,
			Score:  &score,
			Level:  res.Level,
			Date:   res.Timestamp.Format(DateLayout),
			Status: StatusVerified,
		}, nil
	}

	if HasShape(code) {
		return Verification{Status: StatusNotFound}, nil
	}
	return Verification{Status: StatusInvalidFormat}, nil
}
