// Package mysql implements ports.Store against the remote MySQL query
// service. It is selected at startup when a DSN is configured; failures
// surface to the caller, there is no silent fallback to local storage.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gomysql "github.com/go-sql-driver/mysql"

	"timegrid/internal/domain"
)

// Store holds a pooled connection to the entries/categories tables.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// New opens a MySQL connection using the provided DSN.
// Example DSN: user:pass@tcp(host:3306)/dbname?parseTime=true&multiStatements=true
func New(ctx context.Context, dsn string, log *slog.Logger) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("mysql: DSN is required")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(c); err != nil {
		db.Close()
		return nil, classify(err)
	}
	return &Store{db: db, log: log}, nil
}

// classify maps driver failures onto the shared error taxonomy: credential
// rejections become ErrAuthorization, everything else ErrServiceUnavailable.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1044, 1045: // access denied
			return fmt.Errorf("%w: %v", domain.ErrAuthorization, err)
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
}

func isDuplicateKey(err error) bool {
	var myErr *gomysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, color FROM categories ORDER BY name`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, classify(err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return cats, nil
}

func (s *Store) AddCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, color) VALUES (?, ?, ?)`,
		c.ID, c.Name, c.Color)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.Category{}, fmt.Errorf("%w: category %q", domain.ErrDuplicateID, c.ID)
		}
		return domain.Category{}, classify(err)
	}
	return c, nil
}

func (s *Store) EntriesForDate(ctx context.Context, date string) ([]domain.Entry, error) {
	return s.queryEntries(ctx,
		`SELECT id, date, start_min, end_min, category, label FROM entries WHERE date = ? ORDER BY start_min`,
		date)
}

func (s *Store) EntriesInRange(ctx context.Context, from, to string) ([]domain.Entry, error) {
	return s.queryEntries(ctx,
		`SELECT id, date, start_min, end_min, category, label FROM entries WHERE date BETWEEN ? AND ?`,
		from, to)
}

func (s *Store) queryEntries(ctx context.Context, query string, args ...any) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var out []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.Date, &e.Start, &e.End, &e.Category, &e.Label); err != nil {
			return nil, classify(err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (s *Store) UpsertEntry(ctx context.Context, e domain.Entry) (domain.Entry, error) {
	if err := e.Validate(); err != nil {
		return domain.Entry{}, err
	}
	const q = `
INSERT INTO entries
  (id, date, start_min, end_min, category, label)
VALUES
  (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  date=VALUES(date),
  start_min=VALUES(start_min),
  end_min=VALUES(end_min),
  category=VALUES(category),
  label=VALUES(label);
`
	if _, err := s.db.ExecContext(ctx, q, e.ID, e.Date, e.Start, e.End, e.Category, e.Label); err != nil {
		return domain.Entry{}, classify(err)
	}
	return e, nil
}

func (s *Store) DeleteEntry(ctx context.Context, e domain.Entry) error {
	// Missing rows delete zero rows, which is the intended no-op.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, e.ID); err != nil {
		return classify(err)
	}
	return nil
}

func (s *Store) AllEntries(ctx context.Context) (map[string][]domain.Entry, error) {
	entries, err := s.queryEntries(ctx,
		`SELECT id, date, start_min, end_min, category, label FROM entries ORDER BY date, start_min`)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]domain.Entry)
	for _, e := range entries {
		out[e.Date] = append(out[e.Date], e)
	}
	return out, nil
}

func (s *Store) ReplaceCategories(ctx context.Context, categories []domain.Category) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return classify(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		tx.Rollback()
		return classify(err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO categories (id, name, color) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return classify(err)
	}
	defer stmt.Close()
	for _, c := range categories {
		if _, err := stmt.ExecContext(ctx, c.ID, c.Name, c.Color); err != nil {
			tx.Rollback()
			return classify(err)
		}
	}
	if err := tx.Commit(); err != nil {
		return classify(err)
	}
	s.log.Info("replaced categories", slog.Int("count", len(categories)))
	return nil
}

func (s *Store) ReplaceEntries(ctx context.Context, entries map[string][]domain.Entry) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return classify(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		tx.Rollback()
		return classify(err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (id, date, start_min, end_min, category, label) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return classify(err)
	}
	defer stmt.Close()
	total := 0
	for date, bucket := range entries {
		for _, e := range bucket {
			if _, err := stmt.ExecContext(ctx, e.ID, date, e.Start, e.End, e.Category, e.Label); err != nil {
				tx.Rollback()
				return classify(err)
			}
			total++
		}
	}
	if err := tx.Commit(); err != nil {
		return classify(err)
	}
	s.log.Info("replaced entries", slog.Int("count", total))
	return nil
}

// Close closes the underlying DB. Not part of ports.Store to keep the
// contract minimal.
func (s *Store) Close() error { return s.db.Close() }
