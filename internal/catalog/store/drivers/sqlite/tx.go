package sqlite

import (
	"context"
	"database/sql"

	"github.com/critiqhq/critiq/internal/catalog/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open

// Ping is a no-op inside a transaction; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed.
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // applied before any tx starts

func (t *txStore) Users() store.Users           { return &usersRepo{db: t.tx} }
func (t *txStore) Categories() store.Categories { return &categoriesRepo{db: t.tx} }
func (t *txStore) Genres() store.Genres         { return &genresRepo{db: t.tx} }
func (t *txStore) Titles() store.Titles         { return &titlesRepo{db: t.tx} }
func (t *txStore) Reviews() store.Reviews       { return &reviewsRepo{db: t.tx} }
func (t *txStore) Comments() store.Comments     { return &commentsRepo{db: t.tx} }
