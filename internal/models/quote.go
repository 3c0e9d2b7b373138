// Package models defines the domain types for quote-it.
package models

import (
	"time"

	"cloud.google.com/go/civil"
)

// Quote is a single journaled quote. Records are immutable once inserted.
type Quote struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Author    string     `json:"author,omitempty"` // empty means no author
	Date      civil.Date `json:"date,omitzero"`    // zero means no date
	CreatedAt time.Time  `json:"created_at"`
}

// HasAuthor reports whether the quote carries an author.
func (q Quote) HasAuthor() bool {
	return q.Author != ""
}

// HasDate reports whether the quote carries a calendar date.
func (q Quote) HasDate() bool {
	return !q.Date.IsZero()
}
