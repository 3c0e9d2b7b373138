package quoteservice

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"cloud.google.com/go/civil"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/quote-it/internal/apperr"
	"github.com/starford/quote-it/internal/caldate"
	"github.com/starford/quote-it/internal/filter"
)

// Validation messages.
const (
	MsgTextRequired  = "quote text is required"
	MsgOnWithRange   = "cannot specify an exact date alongside a range bound"
	MsgInvertedRange = "invalid range: before precedes after"
)

// CreateHint is appended to the empty-result message when no constraint was given.
const CreateHint = `. Add one with: quote-it "<quote>" [-A <author>] [-d]`

// AddRequest describes a quote to journal.
type AddRequest struct {
	Text      string `json:"text"`
	Author    string `json:"author"`
	StampDate bool   `json:"date"`
}

// Validate checks that the quote has text.
func (r *AddRequest) Validate() error {
	return usageError(validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.Required.Error(MsgTextRequired)),
	))
}

// ListRequest describes which quotes to list. Zero-valued fields are unset.
// On is mutually exclusive with Before and After; Before and After are
// inclusive and may be combined into a closed range.
type ListRequest struct {
	Author string     `json:"author"`
	On     civil.Date `json:"on"`
	Before civil.Date `json:"before"`
	After  civil.Date `json:"after"`
}

// Validate enforces the date-argument combination rules.
func (r *ListRequest) Validate() error {
	return usageError(validation.ValidateStruct(r,
		validation.Field(&r.On, validation.By(func(any) error {
			if !r.On.IsZero() && (!r.Before.IsZero() || !r.After.IsZero()) {
				return validation.NewError("validation_on_with_range", MsgOnWithRange)
			}
			return nil
		})),
		validation.Field(&r.Before, validation.By(func(any) error {
			if !r.Before.IsZero() && !r.After.IsZero() && r.Before.Before(r.After) {
				return validation.NewError("validation_inverted_range", MsgInvertedRange)
			}
			return nil
		})),
	))
}

// Filter builds the store query for r. It returns nil when r has no
// constraints so the store sees "no filter" rather than an empty conjunction.
func (r *ListRequest) Filter() filter.Expr {
	var exprs []filter.Expr
	if r.Author != "" {
		exprs = append(exprs, filter.Eq(filter.FieldAuthor, r.Author))
	}
	if !r.Before.IsZero() {
		exprs = append(exprs, filter.AtMost(filter.FieldDate, r.Before))
	}
	if !r.On.IsZero() {
		exprs = append(exprs, filter.Eq(filter.FieldDate, r.On))
	}
	if !r.After.IsZero() {
		exprs = append(exprs, filter.AtLeast(filter.FieldDate, r.After))
	}
	return filter.All(exprs...)
}

// Unconstrained reports whether r lists every quote.
func (r *ListRequest) Unconstrained() bool {
	return r.Author == "" && r.On.IsZero() && r.Before.IsZero() && r.After.IsZero()
}

// EmptyMessage describes an empty result, naming every active constraint.
func (r *ListRequest) EmptyMessage() string {
	var b strings.Builder
	b.WriteString("No quotes found")
	if r.Author != "" {
		b.WriteString(" by " + r.Author)
	}
	if !r.On.IsZero() {
		b.WriteString(" on " + caldate.Format(r.On))
	}
	if !r.After.IsZero() {
		b.WriteString(" after " + caldate.Format(r.After))
	}
	if !r.After.IsZero() && !r.Before.IsZero() {
		b.WriteString(" and")
	}
	if !r.Before.IsZero() {
		b.WriteString(" before " + caldate.Format(r.Before))
	}
	if r.Unconstrained() {
		b.WriteString(CreateHint)
	}
	return b.String()
}

// usageError converts ozzo validation errors into usage errors, one per
// field in field-name order.
func usageError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, field := range slices.Sorted(maps.Keys(verrs)) {
		errs = append(errs, apperr.NewUsageError(field, verrs[field].Error()))
	}
	return errors.Join(errs...)
}
