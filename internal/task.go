package internal

import (
	"context"

	"github.com/starford/quote-it/internal/quoteservice"
	"github.com/starford/quote-it/internal/render"
)

// Task is the single operation an invocation performs.
type Task interface {
	// Validate rejects bad input before any store access.
	Validate() error
	Execute(ctx context.Context, svc *quoteservice.Service, p *render.Printer) error
}

// AddTask journals one quote.
type AddTask struct {
	Request quoteservice.AddRequest
}

// Validate implements Task.
func (t AddTask) Validate() error {
	return t.Request.Validate()
}

// Execute implements Task. Nothing is printed on success.
func (t AddTask) Execute(ctx context.Context, svc *quoteservice.Service, _ *render.Printer) error {
	_, err := svc.Add(ctx, t.Request)
	return err
}

// ListTask prints the quotes matching Request, or a message naming the
// active constraints when none match.
type ListTask struct {
	Request quoteservice.ListRequest
}

// Validate implements Task.
func (t ListTask) Validate() error {
	return t.Request.Validate()
}

// Execute implements Task.
func (t ListTask) Execute(ctx context.Context, svc *quoteservice.Service, p *render.Printer) error {
	quotes, err := svc.List(ctx, t.Request)
	if err != nil {
		return err
	}
	if len(quotes) == 0 {
		return p.Message(t.Request.EmptyMessage())
	}
	return p.Quotes(quotes)
}
