package filter

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/starford/quote-it/internal/models"
)

func day(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestAll(t *testing.T) {
	if All() != nil {
		t.Error("All() should be nil")
	}
	single := Eq(FieldAuthor, "Seneca")
	if got := All(single); got != single {
		t.Errorf("All(single) = %#v, want the predicate itself", got)
	}
	got := All(single, AtLeast(FieldDate, day(2020, 1, 1)))
	and, ok := got.(And)
	if !ok || len(and) != 2 {
		t.Fatalf("All(a, b) = %#v, want And of 2", got)
	}
}

func TestMatch(t *testing.T) {
	dated := models.Quote{Text: "t", Author: "Seneca", Date: day(2024, 6, 15)}
	bare := models.Quote{Text: "t"}

	cases := []struct {
		name string
		expr Expr
		q    models.Quote
		want bool
	}{
		{"nil matches all", nil, bare, true},
		{"author eq", Eq(FieldAuthor, "Seneca"), dated, true},
		{"author mismatch", Eq(FieldAuthor, "Cato"), dated, false},
		{"author absent", Eq(FieldAuthor, "Seneca"), bare, false},
		{"date eq", Eq(FieldDate, day(2024, 6, 15)), dated, true},
		{"date at most equal", AtMost(FieldDate, day(2024, 6, 15)), dated, true},
		{"date at most earlier", AtMost(FieldDate, day(2024, 6, 14)), dated, false},
		{"date at least equal", AtLeast(FieldDate, day(2024, 6, 15)), dated, true},
		{"date at least later", AtLeast(FieldDate, day(2024, 6, 16)), dated, false},
		{"date absent", AtLeast(FieldDate, day(2000, 1, 1)), bare, false},
		{"and closed range", All(AtLeast(FieldDate, day(2024, 1, 1)), AtMost(FieldDate, day(2024, 12, 31))), dated, true},
		{"and one fails", All(Eq(FieldAuthor, "Seneca"), Eq(FieldDate, day(2024, 1, 1))), dated, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Match(tc.expr, tc.q)
			if err != nil {
				t.Fatalf("Match: %v", err)
			}
			if got != tc.want {
				t.Errorf("Match = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatch_BadValueType(t *testing.T) {
	q := models.Quote{Text: "t", Author: "a", Date: day(2024, 1, 1)}
	if _, err := Match(Eq(FieldDate, "01-01-2024"), q); err == nil {
		t.Error("string date value should be rejected")
	}
	if _, err := Match(Eq(FieldAuthor, 42), q); err == nil {
		t.Error("non-string author value should be rejected")
	}
	if _, err := Match(Eq(Field("text"), "t"), q); err == nil {
		t.Error("unknown field should be rejected")
	}
}
