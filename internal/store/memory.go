package store

import (
	"context"
	"sync"
)

// Memory is an in-process ResultStore.
type Memory struct {
	mu     sync.Mutex
	result *Result
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Put(_ context.Context, r *Result) error {
	if err := r.Validate(); err != nil {
		return err
	}
	cp := *r
	m.mu.Lock()
	m.result = &cp
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(_ context.Context) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.result == nil {
		return nil, nil
	}
	cp := *m.result
	return &cp, nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.result = nil
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close() error { return nil }
