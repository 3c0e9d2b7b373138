// Package filter provides a small typed expression language for querying quotes.
//
// An Expr is one of Predicate or And. A nil Expr means "no filter"; stores
// must treat it as match-all rather than as an empty conjunction.
package filter

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/starford/quote-it/internal/models"
)

// Field names a filterable quote field.
type Field string

// Filterable fields.
const (
	FieldAuthor Field = "author"
	FieldDate   Field = "date"
)

// Op is a comparison operator.
type Op int

// Comparison operators.
const (
	OpEq Op = iota
	OpAtMost
	OpAtLeast
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "="
	case OpAtMost:
		return "<="
	case OpAtLeast:
		return ">="
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Expr is a filter expression.
type Expr interface {
	expr()
}

// Predicate compares one field against a value.
// Value is a string for FieldAuthor and a civil.Date for FieldDate.
type Predicate struct {
	Field Field
	Op    Op
	Value any
}

// And is a conjunction of expressions.
type And []Expr

func (Predicate) expr() {}
func (And) expr() {}

// Eq matches records whose field equals v.
func Eq(f Field, v any) Predicate { return Predicate{Field: f, Op: OpEq, Value: v} }

// AtMost matches records whose field is less than or equal to v.
func AtMost(f Field, v any) Predicate { return Predicate{Field: f, Op: OpAtMost, Value: v} }

// AtLeast matches records whose field is greater than or equal to v.
func AtLeast(f Field, v any) Predicate { return Predicate{Field: f, Op: OpAtLeast, Value: v} }

// All combines exprs into a single expression. It returns nil for no
// expressions and the expression itself for exactly one.
func All(exprs ...Expr) Expr {
	switch len(exprs) {
	case 0:
		return nil
	case 1:
		return exprs[0]
	default:
		return And(exprs)
	}
}

// Match evaluates e against q in memory. A nil Expr matches everything.
func Match(e Expr, q models.Quote) (bool, error) {
	switch e := e.(type) {
	case nil:
		return true, nil
	case And:
		for _, sub := range e {
			ok, err := Match(sub, q)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case Predicate:
		return matchPredicate(e, q)
	default:
		return false, fmt.Errorf("filter: unknown expression %T", e)
	}
}

func matchPredicate(p Predicate, q models.Quote) (bool, error) {
	switch p.Field {
	case FieldAuthor:
		v, ok := p.Value.(string)
		if !ok {
			return false, fmt.Errorf("filter: author value must be a string, got %T", p.Value)
		}
		if !q.HasAuthor() {
			return false, nil
		}
		return compare(strings.Compare(q.Author, v), p.Op)
	case FieldDate:
		v, ok := p.Value.(civil.Date)
		if !ok {
			return false, fmt.Errorf("filter: date value must be a civil.Date, got %T", p.Value)
		}
		if !q.HasDate() {
			return false, nil
		}
		return compare(cmpDate(q.Date, v), p.Op)
	default:
		return false, fmt.Errorf("filter: unknown field %q", p.Field)
	}
}

func compare(c int, op Op) (bool, error) {
	switch op {
	case OpEq:
		return c == 0, nil
	case OpAtMost:
		return c <= 0, nil
	case OpAtLeast:
		return c >= 0, nil
	default:
		return false, fmt.Errorf("filter: unknown operator %v", op)
	}
}

func cmpDate(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
