// Package caldate parses, formats and stamps calendar dates.
//
// Dates are civil.Date values (year, month, day) with no zone attached. The
// instant helpers exist only to read records written as absolute timestamps.
package caldate

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/starford/quote-it/internal/apperr"
)

// Layout is the MM-DD-YYYY form used on the command line and in output.
const Layout = "01-02-2006"

// Parse reads a date in exactly MM-DD-YYYY form.
func Parse(field, s string) (civil.Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil || len(s) != len(Layout) {
		return civil.Date{}, apperr.NewUsageError(field, fmt.Sprintf("date %q must be in MM-DD-YYYY form", s))
	}
	return civil.DateOf(t), nil
}

// Format renders d as MM-DD-YYYY.
func Format(d civil.Date) string {
	return d.In(time.UTC).Format(Layout)
}

// Today returns the calendar day of now in now's own location.
func Today(now time.Time) civil.Date {
	return civil.DateOf(now)
}

// ToInstant returns the UTC instant of local midnight on d in loc.
func ToInstant(d civil.Date, loc *time.Location) time.Time {
	return d.In(loc).UTC()
}

// FromInstant returns the calendar day that t falls on in loc.
func FromInstant(t time.Time, loc *time.Location) civil.Date {
	return civil.DateOf(t.In(loc))
}
