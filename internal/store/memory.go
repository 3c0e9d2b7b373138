package store

import (
	"context"
	"sync"

	"github.com/starford/quote-it/internal/apperr"
	"github.com/starford/quote-it/internal/filter"
	"github.com/starford/quote-it/internal/models"
)

// Memory is an in-memory QuoteStore that keeps quotes in insertion order.
type Memory struct {
	mu     sync.Mutex
	quotes []models.Quote
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Insert appends q.
func (m *Memory) Insert(_ context.Context, q models.Quote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes = append(m.quotes, q)
	return nil
}

// Find evaluates f against every stored quote.
func (m *Memory) Find(_ context.Context, f filter.Expr) ([]models.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Quote
	for _, q := range m.quotes {
		ok, err := filter.Match(f, q)
		if err != nil {
			return nil, apperr.NewStoreError("find", err)
		}
		if ok {
			out = append(out, q)
		}
	}
	return out, nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
