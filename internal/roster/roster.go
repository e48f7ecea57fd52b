// Package roster cross-references imported employee names against the
// employee roster. The import engine surfaces every distinct name it sees;
// this package narrows that list to the names a roster does not know yet.
// It only ever reads — committing shifts or employees is someone else's job.
package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// DBTX is the interface for roster queries.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// NamesLister supplies the set of known employee names.
type NamesLister interface {
	ListNames(ctx context.Context) ([]string, error)
}

// Store reads roster names from Postgres.
type Store struct {
	db DBTX
}

// NewStore creates a Store backed by the given connection or pool.
func NewStore(db DBTX) *Store {
	return &Store{db: db}
}

// ListNames returns every display name on the roster.
func (s *Store) ListNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT display_name FROM employees ORDER BY display_name`)
	if err != nil {
		return nil, fmt.Errorf("query roster: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan roster name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Service diffs imported names against a roster source.
type Service struct {
	lister NamesLister
}

// NewService creates a Service over any NamesLister.
func NewService(lister NamesLister) *Service {
	return &Service{lister: lister}
}

// FilterUnknown returns the names from seen that are absent from the roster,
// preserving first-seen order. Comparison ignores case and surrounding
// whitespace so sheet typos do not produce false unknowns.
func (s *Service) FilterUnknown(ctx context.Context, seen []string) ([]string, error) {
	names, err := s.lister.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[normalizeName(n)] = true
	}

	unknown := make([]string, 0, len(seen))
	for _, n := range seen {
		if !known[normalizeName(n)] {
			unknown = append(unknown, n)
		}
	}
	return unknown, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
