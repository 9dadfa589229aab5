package sqlite

import (
	"context"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/idx"
)

type reviewsRepo struct {
	db dbtx
}

const reviewSelect = `
	SELECT r.id, r.title_id, r.author_id, u.username, r.score, r.text, r.pub_date
	FROM reviews r
	JOIN users u ON u.id = r.author_id`

func (r *reviewsRepo) GetByID(ctx context.Context, titleID, reviewID idx.ID) (domain.Review, error) {
	row := r.db.QueryRowContext(ctx,
		reviewSelect+` WHERE r.id = ? AND r.title_id = ?`,
		reviewID.String(), titleID.String())
	return scanReview(row)
}

func (r *reviewsRepo) ListByTitle(ctx context.Context, titleID idx.ID, page store.Page) ([]domain.Review, error) {
	limit, offset := pageBounds(page)

	rows, err := r.db.QueryContext(ctx,
		reviewSelect+` WHERE r.title_id = ? ORDER BY r.pub_date LIMIT ? OFFSET ?`,
		titleID.String(), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *reviewsRepo) Create(ctx context.Context, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (id, title_id, author_id, score, text, pub_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rv.ID.String(), rv.TitleID.String(), rv.AuthorID.String(),
		rv.Score, rv.Text, rv.PubDate.UTC())
	return mapConstraint(err)
}

func (r *reviewsRepo) Update(ctx context.Context, rv domain.Review) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reviews SET score = ?, text = ? WHERE id = ?`,
		rv.Score, rv.Text, rv.ID.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *reviewsRepo) Delete(ctx context.Context, id idx.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanReview(row rowScanner) (domain.Review, error) {
	var (
		rv                  domain.Review
		id, titleID, author string
	)
	err := row.Scan(&id, &titleID, &author, &rv.AuthorUsername, &rv.Score, &rv.Text, &rv.PubDate)
	if err != nil {
		return domain.Review{}, mapNotFound(err)
	}

	rv.ID = idx.ID(id)
	rv.TitleID = idx.ID(titleID)
	rv.AuthorID = idx.ID(author)
	return rv, nil
}
