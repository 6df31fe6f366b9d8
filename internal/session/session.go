// Package session runs the questionnaire: it tracks navigation state,
// averages the per-response scores and records the final result.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ajugbo/aiq-platform/internal/certificate"
	"github.com/Ajugbo/aiq-platform/internal/questions"
	"github.com/Ajugbo/aiq-platform/internal/scorer"
	"github.com/Ajugbo/aiq-platform/internal/store"
)

// ErrAlreadySubmitted is returned when a session is submitted twice.
var ErrAlreadySubmitted = errors.New("session already submitted")

// Service turns finished sessions into stored results.
type Service struct {
	Store store.ResultStore
	Codes *certificate.Generator
	Now   func() time.Time
}

// NewService creates a Service with the default code generator and clock.
func NewService(s store.ResultStore) *Service {
	return &Service{
		Store: s,
		Codes: certificate.NewGenerator(nil),
		Now:   time.Now,
	}
}

// Start creates a session over the full questionnaire.
func (svc *Service) Start() *State {
	st := NewState(uuid.New().String(), questions.All())
	if svc.Now != nil {
		st.StartTime = svc.Now()
	}
	return st
}

// Submit scores the session, stores the result (replacing any previous
// one) and marks the session submitted.
func (svc *Service) Submit(ctx context.Context, st *State) (*store.Result, error) {
	if st.Submitted {
		return nil, ErrAlreadySubmitted
	}
	res, err := svc.Complete(ctx, st.Responses)
	if err != nil {
		return nil, err
	}
	st.Submitted = true
	return res, nil
}

// Complete scores a set of responses keyed by ordinal and stores the result.
func (svc *Service) Complete(ctx context.Context, responses map[int]string) (*store.Result, error) {
	breakdown, _ := Summarize(responses)
	composite := scorer.Aggregate(breakdown)

	now := time.Now
	if svc.Now != nil {
		now = svc.Now
	}

	res := &store.Result{
		Score:           composite.Score,
		Level:           composite.Level,
		Breakdown:       breakdown,
		CertificateCode: svc.Codes.Code(),
		Timestamp:       now().UTC(),
	}
	if err := svc.Store.Put(ctx, res); err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}
	return res, nil
}
