package domain

import (
	"time"

	"github.com/critiqhq/critiq/pkg/idx"
)

// Review scores a title from 1 to 10. At most one review may exist per
// (title, author) pair, enforced by a schema-level unique constraint.
type Review struct {
	ID             idx.ID
	TitleID        idx.ID
	AuthorID       idx.ID
	AuthorUsername string // denormalized for responses
	Score          int    // 1..10
	Text           string
	PubDate        time.Time
}

// Comment is a reply to a review.
type Comment struct {
	ID             idx.ID
	ReviewID       idx.ID
	AuthorID       idx.ID
	AuthorUsername string
	Text           string
	PubDate        time.Time
}
