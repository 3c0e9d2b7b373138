package store

import (
	"context"

	"github.com/starford/quote-it/internal/filter"
	"github.com/starford/quote-it/internal/models"
)

// QuoteStore defines the persistence operations the quote service needs.
// Consumers should depend on this interface rather than the concrete *DB type
// so tests can swap in Memory.
type QuoteStore interface {
	// Insert persists a new quote.
	Insert(ctx context.Context, q models.Quote) error
	// Find returns every quote matching f in store order. A nil f matches all.
	Find(ctx context.Context, f filter.Expr) ([]models.Quote, error)
	Close() error
}

// Verify implementations satisfy QuoteStore at compile time.
var (
	_ QuoteStore = (*DB)(nil)
	_ QuoteStore = (*Memory)(nil)
)
