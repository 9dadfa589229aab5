package store

import (
	"context"
	"errors"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/pkg/idx"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. Sub-repositories keep the surface per-entity and testable.
type Store interface {
	Users() Users
	Categories() Categories
	Genres() Genres
	Titles() Titles
	Reviews() Reviews
	Comments() Comments

	ApplyMigrations() error

	// WithTx executes fn within a transaction, rolled back if fn returns
	// an error and committed otherwise. Multi-step writes that must be
	// atomic (title create with genre links, signup create-or-fetch) go
	// through here; the schema's uniqueness constraints remain the final
	// correctness guarantee under concurrency.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Page bounds list queries. A zero Limit means the driver default.
type Page struct {
	Limit  int
	Offset int
}

type Users interface {
	GetByID(ctx context.Context, id idx.ID) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// List returns users ordered by username. search filters by username
	// substring when non-empty.
	List(ctx context.Context, search string, page Page) ([]domain.User, error)

	Create(ctx context.Context, u domain.User) error

	// Update rewrites all mutable fields including role, superuser and
	// identity version, and bumps updated_at.
	Update(ctx context.Context, u domain.User) error

	Delete(ctx context.Context, id idx.ID) error
}

type Categories interface {
	GetBySlug(ctx context.Context, slug string) (domain.Category, error)
	List(ctx context.Context, search string, page Page) ([]domain.Category, error)
	Create(ctx context.Context, c domain.Category) error
	DeleteBySlug(ctx context.Context, slug string) error
}

type Genres interface {
	GetBySlug(ctx context.Context, slug string) (domain.Genre, error)
	List(ctx context.Context, search string, page Page) ([]domain.Genre, error)
	Create(ctx context.Context, g domain.Genre) error
	DeleteBySlug(ctx context.Context, slug string) error
}

// TitleFilter narrows title listings. Zero-valued fields are ignored.
type TitleFilter struct {
	CategorySlug string
	GenreSlug    string
	Year         *int
	Name         string // substring match
}

type Titles interface {
	// GetByID returns the title with category, genres and aggregate
	// rating populated.
	GetByID(ctx context.Context, id idx.ID) (domain.Title, error)

	List(ctx context.Context, filter TitleFilter, page Page) ([]domain.Title, error)

	// Create writes the title row and its genre links. t.Category and
	// t.Genres must already be resolved records.
	Create(ctx context.Context, t domain.Title) error

	// Update rewrites the title row and replaces its genre links.
	Update(ctx context.Context, t domain.Title) error

	Delete(ctx context.Context, id idx.ID) error
}

type Reviews interface {
	// GetByID scopes the lookup to a title so nested routes 404 on a
	// review that exists under a different parent.
	GetByID(ctx context.Context, titleID, reviewID idx.ID) (domain.Review, error)

	ListByTitle(ctx context.Context, titleID idx.ID, page Page) ([]domain.Review, error)

	// Create fails with ErrAlreadyExists when the author already reviewed
	// the title (schema-level unique pair).
	Create(ctx context.Context, r domain.Review) error

	Update(ctx context.Context, r domain.Review) error
	Delete(ctx context.Context, id idx.ID) error
}

type Comments interface {
	GetByID(ctx context.Context, reviewID, commentID idx.ID) (domain.Comment, error)
	ListByReview(ctx context.Context, reviewID idx.ID, page Page) ([]domain.Comment, error)
	Create(ctx context.Context, c domain.Comment) error
	Update(ctx context.Context, c domain.Comment) error
	Delete(ctx context.Context, id idx.ID) error
}
