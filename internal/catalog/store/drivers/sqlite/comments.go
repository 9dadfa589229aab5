package sqlite

import (
	"context"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/idx"
)

type commentsRepo struct {
	db dbtx
}

const commentSelect = `
	SELECT c.id, c.review_id, c.author_id, u.username, c.text, c.pub_date
	FROM comments c
	JOIN users u ON u.id = c.author_id`

func (r *commentsRepo) GetByID(ctx context.Context, reviewID, commentID idx.ID) (domain.Comment, error) {
	row := r.db.QueryRowContext(ctx,
		commentSelect+` WHERE c.id = ? AND c.review_id = ?`,
		commentID.String(), reviewID.String())
	return scanComment(row)
}

func (r *commentsRepo) ListByReview(ctx context.Context, reviewID idx.ID, page store.Page) ([]domain.Comment, error) {
	limit, offset := pageBounds(page)

	rows, err := r.db.QueryContext(ctx,
		commentSelect+` WHERE c.review_id = ? ORDER BY c.pub_date LIMIT ? OFFSET ?`,
		reviewID.String(), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentsRepo) Create(ctx context.Context, c domain.Comment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (id, review_id, author_id, text, pub_date)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID.String(), c.ReviewID.String(), c.AuthorID.String(), c.Text, c.PubDate.UTC())
	return mapConstraint(err)
}

func (r *commentsRepo) Update(ctx context.Context, c domain.Comment) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE comments SET text = ? WHERE id = ?`, c.Text, c.ID.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *commentsRepo) Delete(ctx context.Context, id idx.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanComment(row rowScanner) (domain.Comment, error) {
	var (
		c                    domain.Comment
		id, reviewID, author string
	)
	err := row.Scan(&id, &reviewID, &author, &c.AuthorUsername, &c.Text, &c.PubDate)
	if err != nil {
		return domain.Comment{}, mapNotFound(err)
	}

	c.ID = idx.ID(id)
	c.ReviewID = idx.ID(reviewID)
	c.AuthorID = idx.ID(author)
	return c, nil
}
