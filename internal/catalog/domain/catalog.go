package domain

import (
	"time"

	"github.com/critiqhq/critiq/pkg/idx"
)

// Category groups titles by medium, e.g. "books" or "films".
type Category struct {
	ID        idx.ID
	Name      string
	Slug      string // unique
	CreatedAt time.Time
}

// Genre tags titles, e.g. "drama". A title may carry several.
type Genre struct {
	ID        idx.ID
	Name      string
	Slug      string // unique
	CreatedAt time.Time
}

// Title is a creative work in the catalog.
type Title struct {
	ID          idx.ID
	Name        string
	Year        int
	Description string
	Category    *Category // nil when the category was deleted or never set
	Genres      []Genre

	// Rating is the mean of all review scores, computed on read. Nil when
	// the title has no reviews. Never stored.
	Rating *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
