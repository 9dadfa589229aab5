package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/critiqhq/critiq/internal/catalog/store"

	_ "modernc.org/sqlite"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so every repo works inside
// and outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// A single connection keeps the per-connection pragma in force and
	// makes :memory: databases behave (each pooled connection would
	// otherwise see its own empty database). SQLite serializes writers
	// anyway, so this costs little.
	db.SetMaxOpenConns(1)

	// Enforce FKs (SET NULL on category delete, CASCADE on review delete
	// depend on this).
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithTx executes fn within a transaction, automatically handling
// commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	txs := newTx(tx)

	// Rollback after commit is a safe no-op; this also covers panics.
	defer func() {
		_ = txs.Rollback()
	}()

	if err := fn(txs); err != nil {
		return err
	}

	return txs.Commit()
}

func (s *Store) Users() store.Users           { return &usersRepo{db: s.db} }
func (s *Store) Categories() store.Categories { return &categoriesRepo{db: s.db} }
func (s *Store) Genres() store.Genres         { return &genresRepo{db: s.db} }
func (s *Store) Titles() store.Titles         { return &titlesRepo{db: s.db} }
func (s *Store) Reviews() store.Reviews       { return &reviewsRepo{db: s.db} }
func (s *Store) Comments() store.Comments     { return &commentsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint converts driver unique-constraint failures into the store
// sentinel so callers don't inspect driver error strings.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// defaultLimit bounds unpaginated list queries.
const defaultLimit = 50

func pageBounds(p store.Page) (limit, offset int) {
	limit = p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	offset = max(p.Offset, 0)
	return limit, offset
}
