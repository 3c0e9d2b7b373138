// Package quoteservice validates quote requests, builds store filters and
// creates records.
package quoteservice

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/starford/quote-it/internal/caldate"
	"github.com/starford/quote-it/internal/models"
	"github.com/starford/quote-it/internal/store"
)

// Config holds the service dependencies.
type Config struct {
	Store store.QuoteStore
	// Clock returns the local wall-clock time. Defaults to time.Now.
	Clock  func() time.Time
	Logger *slog.Logger
}

// Service coordinates request validation and store access.
type Service struct {
	store  store.QuoteStore
	clock  func() time.Time
	logger *slog.Logger
}

// NewService creates a new quote service.
func NewService(cfg Config) *Service {
	s := &Service{store: cfg.Store, clock: cfg.Clock, logger: cfg.Logger}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Add validates req and inserts a new quote. The date is set only when
// req.StampDate is true, and then always to today's local calendar day.
func (s *Service) Add(ctx context.Context, req AddRequest) (*models.Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.clock()
	q := models.Quote{
		ID:        uuid.NewString(),
		Text:      req.Text,
		Author:    req.Author,
		CreatedAt: now.UTC(),
	}
	if req.StampDate {
		q.Date = caldate.Today(now)
	}

	if err := s.store.Insert(ctx, q); err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "quote added",
		slog.String("id", q.ID),
		slog.Bool("has_author", q.HasAuthor()),
		slog.Bool("has_date", q.HasDate()))
	return &q, nil
}

// List validates req, then returns every matching quote in store order.
// Invalid requests never reach the store.
func (s *Service) List(ctx context.Context, req ListRequest) ([]models.Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	quotes, err := s.store.Find(ctx, req.Filter())
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "quotes listed", slog.Int("count", len(quotes)))
	return quotes, nil
}
