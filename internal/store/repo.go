package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/starford/quote-it/internal/apperr"
	"github.com/starford/quote-it/internal/caldate"
	"github.com/starford/quote-it/internal/filter"
	"github.com/starford/quote-it/internal/models"
)

// columns maps filter fields onto quotes table columns.
var columns = map[filter.Field]string{
	filter.FieldAuthor: "author",
	filter.FieldDate:   "date",
}

// Insert stores a new quote. Absent author and date are written as NULL.
func (db *DB) Insert(ctx context.Context, q models.Quote) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO quotes (id, text, author, date, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, q.ID, q.Text, nullString(q.Author), nullDate(q.Date), q.CreatedAt.UTC())
	if err != nil {
		return apperr.NewStoreError("insert", err)
	}
	return nil
}

// Find returns every quote matching f. Rows come back in whatever order
// SQLite yields them; no sort is applied.
func (db *DB) Find(ctx context.Context, f filter.Expr) ([]models.Quote, error) {
	query := `SELECT id, text, author, date, created_at FROM quotes`
	var args []any
	if f != nil {
		clause, whereArgs, err := where(f)
		if err != nil {
			return nil, apperr.NewStoreError("find", err)
		}
		query += " WHERE " + clause
		args = whereArgs
	}

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.NewStoreError("find", err)
	}
	defer rows.Close()

	var out []models.Quote
	for rows.Next() {
		var (
			q         models.Quote
			author    sql.NullString
			date      sql.NullString
			createdAt time.Time
		)
		if err := rows.Scan(&q.ID, &q.Text, &author, &date, &createdAt); err != nil {
			return nil, apperr.NewStoreError("scan", err)
		}
		q.Author = author.String
		if date.Valid {
			d, err := decodeDate(date.String)
			if err != nil {
				return nil, apperr.NewStoreError("decode", fmt.Errorf("quote %s: %w", q.ID, err))
			}
			q.Date = d
		}
		q.CreatedAt = createdAt
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewStoreError("find", err)
	}
	return out, nil
}

// where renders f as a parameterised SQL boolean expression.
func where(f filter.Expr) (string, []any, error) {
	switch e := f.(type) {
	case filter.Predicate:
		col, ok := columns[e.Field]
		if !ok {
			return "", nil, fmt.Errorf("unknown filter field %q", e.Field)
		}
		v, err := sqlValue(e)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("%s %s ?", col, e.Op), []any{v}, nil
	case filter.And:
		if len(e) == 0 {
			return "", nil, fmt.Errorf("empty conjunction")
		}
		parts := make([]string, 0, len(e))
		var args []any
		for _, sub := range e {
			clause, subArgs, err := where(sub)
			if err != nil {
				return "", nil, err
			}
			parts = append(parts, clause)
			args = append(args, subArgs...)
		}
		return "(" + strings.Join(parts, " AND ") + ")", args, nil
	default:
		return "", nil, fmt.Errorf("unsupported filter expression %T", f)
	}
}

func sqlValue(p filter.Predicate) (any, error) {
	switch p.Field {
	case filter.FieldDate:
		d, ok := p.Value.(civil.Date)
		if !ok {
			return nil, fmt.Errorf("date filter value must be a civil.Date, got %T", p.Value)
		}
		return d.String(), nil
	default:
		s, ok := p.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%s filter value must be a string, got %T", p.Field, p.Value)
		}
		return s, nil
	}
}

// decodeDate reads a stored date. Rows written as absolute RFC 3339 instants
// are mapped back to their calendar day in the local zone.
func decodeDate(s string) (civil.Date, error) {
	if d, err := civil.ParseDate(s); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("malformed date %q", s)
	}
	return caldate.FromInstant(t, time.Local), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullDate(d civil.Date) sql.NullString {
	if d.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}
