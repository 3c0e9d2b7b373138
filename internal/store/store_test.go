package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/starford/quote-it/internal/apperr"
	"github.com/starford/quote-it/internal/filter"
	"github.com/starford/quote-it/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "quotes.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func day(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func seed(t *testing.T, s QuoteStore, quotes ...models.Quote) {
	t.Helper()
	for i, q := range quotes {
		if q.ID == "" {
			q.ID = string(rune('a' + i))
		}
		if q.CreatedAt.IsZero() {
			q.CreatedAt = time.Now()
		}
		if err := s.Insert(context.Background(), q); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
}

func texts(qs []models.Quote) map[string]bool {
	out := make(map[string]bool, len(qs))
	for _, q := range qs {
		out[q.Text] = true
	}
	return out
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM quotes`).Scan(&count); err != nil {
		t.Fatalf("quotes table missing: %v", err)
	}
}

func TestOpen_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.db")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open on empty file: %v", err)
	}
	db.Close()
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.db")
	if err := os.WriteFile(path, []byte(strings.Repeat("not a sqlite database\n", 64)), 0o644); err != nil {
		t.Fatal(err)
	}
	if db, err := Open(path); err == nil {
		db.Close()
		t.Fatal("Open on corrupt file should fail")
	}
}

func TestOpen_SecondOpenFailsWhileLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	defer first.Close()

	start := time.Now()
	second, err := Open(path)
	if err == nil {
		second.Close()
		t.Fatal("second Open should fail while the store is locked")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("second Open took %v, want an immediate failure", elapsed)
	}
}

func TestOpen_ReopenAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	second, err := Open(path)
	if err != nil {
		t.Fatalf("Open after Close: %v", err)
	}
	second.Close()
}

func TestInsertAndFindAll(t *testing.T) {
	db := testDB(t)
	seed(t, db,
		models.Quote{Text: "Stay hungry, stay foolish.", Author: "Steve Jobs"},
		models.Quote{Text: "Undated, anonymous."},
		models.Quote{Text: "Dated.", Date: day(2024, 3, 10)},
	)

	got, err := db.Find(context.Background(), nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	byText := make(map[string]models.Quote)
	for _, q := range got {
		byText[q.Text] = q
	}
	jobs := byText["Stay hungry, stay foolish."]
	if jobs.Author != "Steve Jobs" || jobs.HasDate() {
		t.Errorf("jobs quote = %+v", jobs)
	}
	anon := byText["Undated, anonymous."]
	if anon.HasAuthor() || anon.HasDate() {
		t.Errorf("absent fields should read back absent: %+v", anon)
	}
	if d := byText["Dated."].Date; d != day(2024, 3, 10) {
		t.Errorf("date = %v", d)
	}
}

func TestAbsentFieldsStoredAsNull(t *testing.T) {
	db := testDB(t)
	seed(t, db, models.Quote{ID: "x", Text: "bare"})
	var author, date *string
	if err := db.conn.QueryRow(`SELECT author, date FROM quotes WHERE id = 'x'`).Scan(&author, &date); err != nil {
		t.Fatal(err)
	}
	if author != nil || date != nil {
		t.Errorf("author=%v date=%v, want both NULL", author, date)
	}
}

func TestInsert_EmptyTextRejected(t *testing.T) {
	db := testDB(t)
	err := db.Insert(context.Background(), models.Quote{ID: "x", Text: "", CreatedAt: time.Now()})
	if !errors.Is(err, apperr.ErrStore) {
		t.Fatalf("err = %v, want store error", err)
	}
}

func TestFind_Filters(t *testing.T) {
	quotes := []models.Quote{
		{Text: "jan", Author: "A", Date: day(2024, 1, 15)},
		{Text: "jun", Author: "B", Date: day(2024, 6, 15)},
		{Text: "dec", Author: "A", Date: day(2024, 12, 15)},
		{Text: "none", Author: "A"},
	}
	cases := []struct {
		name string
		f    filter.Expr
		want []string
	}{
		{"author", filter.Eq(filter.FieldAuthor, "A"), []string{"jan", "dec", "none"}},
		{"on", filter.Eq(filter.FieldDate, day(2024, 6, 15)), []string{"jun"}},
		{"before inclusive", filter.AtMost(filter.FieldDate, day(2024, 6, 15)), []string{"jan", "jun"}},
		{"after inclusive", filter.AtLeast(filter.FieldDate, day(2024, 6, 15)), []string{"jun", "dec"}},
		{"closed range", filter.All(
			filter.AtLeast(filter.FieldDate, day(2024, 2, 1)),
			filter.AtMost(filter.FieldDate, day(2024, 12, 31)),
		), []string{"jun", "dec"}},
		{"author and range", filter.All(
			filter.Eq(filter.FieldAuthor, "A"),
			filter.AtLeast(filter.FieldDate, day(2024, 2, 1)),
		), []string{"dec"}},
		{"no match", filter.Eq(filter.FieldDate, day(2030, 1, 1)), nil},
	}

	stores := map[string]func(t *testing.T) QuoteStore{
		"sqlite": func(t *testing.T) QuoteStore { return testDB(t) },
		"memory": func(t *testing.T) QuoteStore { return NewMemory() },
	}
	for storeName, mk := range stores {
		for _, tc := range cases {
			t.Run(storeName+"/"+tc.name, func(t *testing.T) {
				s := mk(t)
				seed(t, s, quotes...)
				got, err := s.Find(context.Background(), tc.f)
				if err != nil {
					t.Fatalf("Find: %v", err)
				}
				if len(got) != len(tc.want) {
					t.Fatalf("got %d quotes (%v), want %v", len(got), texts(got), tc.want)
				}
				have := texts(got)
				for _, w := range tc.want {
					if !have[w] {
						t.Errorf("missing %q in %v", w, have)
					}
				}
			})
		}
	}
}

func TestFind_LegacyInstantDate(t *testing.T) {
	db := testDB(t)
	inst := time.Date(2023, time.July, 4, 0, 0, 0, 0, time.Local).UTC().Format(time.RFC3339Nano)
	_, err := db.conn.Exec(`INSERT INTO quotes (id, text, date, created_at) VALUES ('l', 'legacy', ?, ?)`, inst, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	got, err := db.Find(context.Background(), nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 1 || got[0].Date != day(2023, 7, 4) {
		t.Errorf("got %+v, want date 2023-07-04", got)
	}
}

func TestFind_MalformedRowFails(t *testing.T) {
	db := testDB(t)
	seed(t, db, models.Quote{Text: "good"})
	if _, err := db.conn.Exec(`INSERT INTO quotes (id, text, date, created_at) VALUES ('bad', 'bad', 'tuesday', ?)`, time.Now()); err != nil {
		t.Fatal(err)
	}
	got, err := db.Find(context.Background(), nil)
	if !errors.Is(err, apperr.ErrStore) {
		t.Fatalf("err = %v, want store error", err)
	}
	if got != nil {
		t.Errorf("partial result returned: %+v", got)
	}
}

func TestWhere(t *testing.T) {
	clause, args, err := where(filter.All(
		filter.Eq(filter.FieldAuthor, "Seneca"),
		filter.AtMost(filter.FieldDate, day(2024, 1, 31)),
		filter.AtLeast(filter.FieldDate, day(2024, 1, 1)),
	))
	if err != nil {
		t.Fatalf("where: %v", err)
	}
	if want := "(author = ? AND date <= ? AND date >= ?)"; clause != want {
		t.Errorf("clause = %q, want %q", clause, want)
	}
	if len(args) != 3 || args[0] != "Seneca" || args[1] != "2024-01-31" || args[2] != "2024-01-01" {
		t.Errorf("args = %v", args)
	}
}

func TestWhere_Rejects(t *testing.T) {
	bad := []filter.Expr{
		filter.And{},
		filter.Eq(filter.Field("text"), "x"),
		filter.Eq(filter.FieldDate, "2024-01-01"),
		filter.Eq(filter.FieldAuthor, 7),
	}
	for _, f := range bad {
		if _, _, err := where(f); err == nil {
			t.Errorf("where(%#v) should fail", f)
		}
	}
}
