// Package render writes quotes to a terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/starford/quote-it/internal/caldate"
	"github.com/starford/quote-it/internal/models"
)

// Separator closes every rendered quote.
const Separator = "------------"

// Printer renders quotes to w.
type Printer struct {
	w      io.Writer
	text   *color.Color
	author *color.Color
	date   *color.Color
}

// NewPrinter creates a Printer. When colored is false no escape codes are
// written; when true, fatih/color still suppresses them for non-terminals.
func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:      w,
		text:   color.New(color.FgCyan),
		author: color.New(color.FgYellow),
		date:   color.New(color.FgGreen),
	}
	if !colored {
		p.text.DisableColor()
		p.author.DisableColor()
		p.date.DisableColor()
	}
	return p
}

// Quote writes one quote:
//
//	"text"
//	  - author on MM-DD-YYYY
//	------------
//
// preceded by a blank line. The date joins the author line when both are set,
// otherwise it follows the text.
func (p *Printer) Quote(q models.Quote) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(p.text.Sprint(strconv.Quote(q.Text)))
	if q.HasAuthor() {
		b.WriteString("\n  - ")
		b.WriteString(p.author.Sprint(q.Author))
	}
	if q.HasDate() {
		b.WriteString(" on ")
		b.WriteString(p.date.Sprint(caldate.Format(q.Date)))
	}
	b.WriteString("\n" + Separator + "\n")
	_, err := io.WriteString(p.w, b.String())
	return err
}

// Quotes writes each quote in the given order.
func (p *Printer) Quotes(qs []models.Quote) error {
	for _, q := range qs {
		if err := p.Quote(q); err != nil {
			return err
		}
	}
	return nil
}

// Message writes a single line of plain text.
func (p *Printer) Message(msg string) error {
	_, err := fmt.Fprintln(p.w, msg)
	return err
}
