package sqlite

import (
	"context"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/idx"
)

type genresRepo struct {
	db dbtx
}

func (r *genresRepo) GetBySlug(ctx context.Context, slug string) (domain.Genre, error) {
	var (
		g  domain.Genre
		id string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, slug, created_at FROM genres WHERE slug = ?`, slug).
		Scan(&id, &g.Name, &g.Slug, &g.CreatedAt)
	if err != nil {
		return domain.Genre{}, mapNotFound(err)
	}
	g.ID = idx.ID(id)
	return g, nil
}

func (r *genresRepo) List(ctx context.Context, search string, page store.Page) ([]domain.Genre, error) {
	limit, offset := pageBounds(page)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, slug, created_at FROM genres
		 WHERE (? = '' OR name LIKE '%' || ? || '%')
		 ORDER BY name
		 LIMIT ? OFFSET ?`,
		search, search, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []domain.Genre
	for rows.Next() {
		var (
			g  domain.Genre
			id string
		)
		if err := rows.Scan(&id, &g.Name, &g.Slug, &g.CreatedAt); err != nil {
			return nil, err
		}
		g.ID = idx.ID(id)
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *genresRepo) Create(ctx context.Context, g domain.Genre) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO genres (id, name, slug, created_at) VALUES (?, ?, ?, ?)`,
		g.ID.String(), g.Name, g.Slug, g.CreatedAt.UTC())
	return mapConstraint(err)
}

func (r *genresRepo) DeleteBySlug(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM genres WHERE slug = ?`, slug)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
